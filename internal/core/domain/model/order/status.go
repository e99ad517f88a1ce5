package order

import "strings"

// Status represents the lifecycle state of a marketplace order.
//
// State transitions (default table):
//
//	CREATED ──┬──> WORKING ──> COMPLETED
//	          ├──> CANCELLED
//	          └──> REJECTED
//
// COMPLETED, CANCELLED and REJECTED are terminal: they have no outbound
// transitions. Re-asserting the current status is always a legal no-op,
// regardless of the table.
//
// The set of states and the legal moves between them are configuration data
// (TransitionTable), not logic, so they can change without touching the
// transition checks.
type Status string

const (
	// Created is the initial status of every new order.
	Created Status = "CREATED"

	// Working indicates the job-master has taken the order into work.
	Working Status = "WORKING"

	// Completed indicates the job was done. Terminal.
	Completed Status = "COMPLETED"

	// Cancelled indicates the customer withdrew the order. Terminal.
	Cancelled Status = "CANCELLED"

	// Rejected indicates the job-master declined or failed the order. Terminal.
	Rejected Status = "REJECTED"
)

// StatusInfo carries display metadata for a status. The numeric code and
// label are presentation data only and never participate in transition
// decisions.
type StatusInfo struct {
	Code  int
	Label string
}

// statusInfo maps each catalog member to its display metadata.
// Populated at startup in place of any runtime type introspection.
var statusInfo = map[Status]StatusInfo{
	Created:   {Code: 0, Label: "Created"},
	Working:   {Code: 1, Label: "In progress"},
	Completed: {Code: 2, Label: "Completed"},
	Cancelled: {Code: -1, Label: "Cancelled"},
	Rejected:  {Code: -2, Label: "Rejected"},
}

// ParseStatus resolves a raw string to a catalog member, case-insensitively.
// The second return value reports whether the string named a valid status.
func ParseStatus(s string) (Status, bool) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := statusInfo[status]; !ok {
		return "", false
	}
	return status, true
}

// IsValidStatus reports whether s, case-insensitively, matches exactly one
// catalog member.
func IsValidStatus(s string) bool {
	_, ok := ParseStatus(s)
	return ok
}

// String returns the canonical (upper-case) name of the status.
func (s Status) String() string {
	return string(s)
}

// Info returns the display metadata for the status. The zero StatusInfo is
// returned for values outside the catalog.
func (s Status) Info() StatusInfo {
	return statusInfo[s]
}

// IsValid reports whether the status is a member of the catalog.
func (s Status) IsValid() bool {
	_, ok := statusInfo[s]
	return ok
}

// TransitionTable declares the legal status moves as a directed edge set.
// A state missing from the table, or mapped to an empty slice, is terminal.
// The table is fixed configuration data; it is never mutated at runtime and
// is therefore safe for unlimited concurrent reads.
type TransitionTable map[Status][]Status

// DefaultTransitionTable returns the transition table used in production.
func DefaultTransitionTable() TransitionTable {
	return TransitionTable{
		Created:   {Working, Cancelled, Rejected},
		Working:   {Completed},
		Completed: {},
		Cancelled: {},
		Rejected:  {},
	}
}

// CanTransition decides whether moving from current to target is legal.
// Both arguments are matched case-insensitively against the catalog; any
// invalid member makes the answer false. Equal statuses are always a legal
// no-op. Otherwise the target must appear in the allowed-set of current.
func (t TransitionTable) CanTransition(current, target string) bool {
	from, ok := ParseStatus(current)
	if !ok {
		return false
	}

	to, ok := ParseStatus(target)
	if !ok {
		return false
	}

	if from == to {
		return true
	}

	for _, allowed := range t[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status has no outbound transitions.
func (t TransitionTable) IsTerminal(s Status) bool {
	return s.IsValid() && len(t[s]) == 0
}

// TerminalStatuses returns every zero-outdegree member of the table.
// The result is the "closed orders" set the query engine defaults to.
func (t TransitionTable) TerminalStatuses() []Status {
	terminal := make([]Status, 0, len(t))
	for s := range t {
		if len(t[s]) == 0 {
			terminal = append(terminal, s)
		}
	}
	return terminal
}

// ClosingStatuses is the set of statuses whose reachability triggers an
// "order closed" notification. Like the transition table it is configuration
// data, kept separate from the terminal set on purpose: CANCELLED is
// terminal but does not notify downstream consumers.
type ClosingStatuses map[Status]struct{}

// DefaultClosingStatuses returns the closing set used in production.
func DefaultClosingStatuses() ClosingStatuses {
	return ClosingStatuses{
		Completed: {},
		Rejected:  {},
	}
}

// Contains reports whether s is a closing status.
func (c ClosingStatuses) Contains(s Status) bool {
	_, ok := c[s]
	return ok
}
