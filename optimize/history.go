package optimize

import (
	"github.com/promptfit/promptfit/tokens"
)

// historySelection is the outcome of pruning conversation history into a
// sub-budget.
type historySelection struct {
	// kept is a contiguous most-recent suffix of the input, in
	// chronological order.
	kept []Message

	// pruned counts messages dropped from the front.
	pruned int

	// used is the total token cost of the kept messages.
	used int

	// floored is true when the minimum-messages guarantee forced the
	// selection over its budget.
	floored bool
}

// pruneHistory keeps the most recent messages that fit budgetTokens.
// Messages drop oldest-first and are never reordered; the kept slice is
// always a contiguous suffix of the input. The minimum-messages floor can
// push used past the budget, mirroring the reference-document floor.
func pruneHistory(counter tokens.Counter, msgs []Message, budgetTokens int, pol *HistoryPolicy) historySelection {
	var sel historySelection
	if len(msgs) == 0 {
		return sel
	}

	start := 0
	if pol.MaxMessages > 0 && len(msgs) > pol.MaxMessages {
		start = len(msgs) - pol.MaxMessages
	}
	window := msgs[start:]

	costs := make([]int, len(window))
	total := 0
	for i, m := range window {
		costs[i] = counter.Count(m.Content)
		total += costs[i]
	}

	// Drop oldest-first until the suffix fits, but never below the
	// configured minimum.
	drop := 0
	for total > budgetTokens && len(window)-drop > pol.MinMessages {
		total -= costs[drop]
		drop++
	}

	sel.kept = window[drop:]
	sel.used = total
	sel.pruned = start + drop
	sel.floored = total > budgetTokens
	return sel
}
