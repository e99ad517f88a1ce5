package order_test

import (
	"fmt"
	"testing"

	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should use canonical upper-case names", func(t *testing.T) {
		assert.Equal(t, "CREATED", order.Created.String())
		assert.Equal(t, "WORKING", order.Working.String())
		assert.Equal(t, "COMPLETED", order.Completed.String())
		assert.Equal(t, "CANCELLED", order.Cancelled.String())
		assert.Equal(t, "REJECTED", order.Rejected.String())
	})

	t.Run("should carry distinct display codes", func(t *testing.T) {
		codes := map[int]order.Status{}
		for _, status := range []order.Status{
			order.Created,
			order.Working,
			order.Completed,
			order.Cancelled,
			order.Rejected,
		} {
			code := status.Info().Code
			_, seen := codes[code]
			assert.False(t, seen, "code %d assigned twice", code)
			codes[code] = status
		}
	})

	t.Run("should expose the contracted display metadata", func(t *testing.T) {
		assert.Equal(t, order.StatusInfo{Code: 0, Label: "Created"}, order.Created.Info())
		assert.Equal(t, order.StatusInfo{Code: 1, Label: "In progress"}, order.Working.Info())
		assert.Equal(t, order.StatusInfo{Code: 2, Label: "Completed"}, order.Completed.Info())
		assert.Equal(t, order.StatusInfo{Code: -1, Label: "Cancelled"}, order.Cancelled.Info())
		assert.Equal(t, order.StatusInfo{Code: -2, Label: "Rejected"}, order.Rejected.Info())
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every catalog member case-insensitively", func(t *testing.T) {
		cases := map[string]order.Status{
			"CREATED":   order.Created,
			"created":   order.Created,
			"Created":   order.Created,
			"working":   order.Working,
			"WORKING":   order.Working,
			"Completed": order.Completed,
			"cancelled": order.Cancelled,
			"REJECTED":  order.Rejected,
			" created ": order.Created,
		}

		for raw, want := range cases {
			t.Run(fmt.Sprintf("should parse %q", raw), func(t *testing.T) {
				got, ok := order.ParseStatus(raw)
				require.True(t, ok)
				assert.Equal(t, want, got)
			})
		}
	})

	t.Run("should reject strings outside the catalog", func(t *testing.T) {
		for _, raw := range []string{"", "UNKNOWN", "DONE", "creating", "COMPLETE", "0"} {
			t.Run(fmt.Sprintf("should reject %q", raw), func(t *testing.T) {
				_, ok := order.ParseStatus(raw)
				assert.False(t, ok)
				assert.False(t, order.IsValidStatus(raw))
			})
		}
	})
}

func TestTransitionTable_CanTransition(t *testing.T) {
	table := order.DefaultTransitionTable()

	t.Run("should allow the declared edges", func(t *testing.T) {
		allowed := [][2]string{
			{"CREATED", "WORKING"},
			{"CREATED", "CANCELLED"},
			{"CREATED", "REJECTED"},
			{"WORKING", "COMPLETED"},
		}

		for _, edge := range allowed {
			assert.True(t, table.CanTransition(edge[0], edge[1]),
				"%s -> %s should be allowed", edge[0], edge[1])
		}
	})

	t.Run("should reject undeclared edges", func(t *testing.T) {
		forbidden := [][2]string{
			{"CREATED", "COMPLETED"},
			{"WORKING", "CREATED"},
			{"WORKING", "CANCELLED"},
			{"COMPLETED", "WORKING"},
			{"CANCELLED", "CREATED"},
			{"REJECTED", "WORKING"},
		}

		for _, edge := range forbidden {
			assert.False(t, table.CanTransition(edge[0], edge[1]),
				"%s -> %s should be rejected", edge[0], edge[1])
		}
	})

	t.Run("should allow self-transition for every member regardless of case", func(t *testing.T) {
		for _, status := range []string{"CREATED", "working", "Completed", "CANCELLED", "rejected"} {
			assert.True(t, table.CanTransition(status, status))
		}
	})

	t.Run("should reject any invalid participant", func(t *testing.T) {
		assert.False(t, table.CanTransition("CREATED", "UNKNOWN"))
		assert.False(t, table.CanTransition("UNKNOWN", "CREATED"))
		assert.False(t, table.CanTransition("", ""))
		assert.False(t, table.CanTransition("UNKNOWN", "UNKNOWN"))
	})
}

func TestTransitionTable_Terminals(t *testing.T) {
	table := order.DefaultTransitionTable()

	t.Run("should classify zero-outdegree members as terminal", func(t *testing.T) {
		assert.True(t, table.IsTerminal(order.Completed))
		assert.True(t, table.IsTerminal(order.Cancelled))
		assert.True(t, table.IsTerminal(order.Rejected))
		assert.False(t, table.IsTerminal(order.Created))
		assert.False(t, table.IsTerminal(order.Working))
	})

	t.Run("should not classify non-members as terminal", func(t *testing.T) {
		assert.False(t, table.IsTerminal(order.Status("UNKNOWN")))
	})

	t.Run("should list exactly the terminal members", func(t *testing.T) {
		terminal := table.TerminalStatuses()
		assert.ElementsMatch(t,
			[]order.Status{order.Completed, order.Cancelled, order.Rejected},
			terminal)
	})
}

func TestClosingStatuses(t *testing.T) {
	closing := order.DefaultClosingStatuses()

	t.Run("should contain completed and rejected only", func(t *testing.T) {
		assert.True(t, closing.Contains(order.Completed))
		assert.True(t, closing.Contains(order.Rejected))
		assert.False(t, closing.Contains(order.Cancelled))
		assert.False(t, closing.Contains(order.Created))
		assert.False(t, closing.Contains(order.Working))
	})
}
