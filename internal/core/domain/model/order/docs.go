// Package order provides domain entities and business logic for marketplace
// order management. It implements the Order aggregate root with lifecycle
// management driven by a configurable status state machine.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, references, and lifecycle
//   - Status: The catalog of lifecycle states with display metadata
//   - TransitionTable: The legal status moves, declared as configuration data
//   - Event: The lifecycle notification payload emitted on create and close
//
// Key business rules:
//   - Every order starts in CREATED and ends in one of the terminal states
//   - Status moves are validated against the transition table; terminal states
//     admit no outbound moves other than the same-status no-op
//   - Re-asserting the current status is idempotent and leaves timestamps alone
//   - The job reference can change only while the order is still CREATED
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
