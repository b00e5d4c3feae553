package optimize

import (
	"fmt"
	"strings"
	"testing"

	"github.com/promptfit/promptfit/tokens"
)

// turnsOfTokens builds n alternating turns, each costing cost tokens
// under the estimating counter.
func turnsOfTokens(n, cost int) []Message {
	msgs := make([]Message, n)
	for i := range msgs {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		msgs[i] = Message{Role: role, Content: strings.Repeat("x", cost*4)}
	}
	return msgs
}

func historyPolicy() HistoryPolicy {
	return DefaultPolicy().History
}

func TestPruneHistory_Empty(t *testing.T) {
	counter := tokens.NewEstimatingCounter()
	pol := historyPolicy()

	sel := pruneHistory(counter, nil, 1000, &pol)
	if len(sel.kept) != 0 || sel.used != 0 || sel.pruned != 0 {
		t.Errorf("empty input produced %+v", sel)
	}
}

func TestPruneHistory_AllFit(t *testing.T) {
	counter := tokens.NewEstimatingCounter()
	pol := historyPolicy()

	msgs := turnsOfTokens(5, 50)
	sel := pruneHistory(counter, msgs, 1000, &pol)

	if len(sel.kept) != 5 {
		t.Fatalf("kept %d messages, expected all 5", len(sel.kept))
	}
	if sel.used != 250 {
		t.Errorf("used = %d, expected 250", sel.used)
	}
	if sel.pruned != 0 {
		t.Errorf("pruned = %d, expected 0", sel.pruned)
	}
}

func TestPruneHistory_DropsOldestFirst(t *testing.T) {
	counter := tokens.NewEstimatingCounter()
	pol := historyPolicy()

	msgs := make([]Message, 10)
	for i := range msgs {
		msgs[i] = Message{Role: "user", Content: fmt.Sprintf("%3d-%s", i, strings.Repeat("x", 196))} // 50 tokens each
	}

	sel := pruneHistory(counter, msgs, 300, &pol)
	if len(sel.kept) != 6 {
		t.Fatalf("kept %d messages, expected 6", len(sel.kept))
	}
	if sel.pruned != 4 {
		t.Errorf("pruned = %d, expected 4", sel.pruned)
	}
	if sel.used != 300 {
		t.Errorf("used = %d, expected 300", sel.used)
	}

	// Kept messages are the contiguous most-recent suffix, in order.
	for i, m := range sel.kept {
		if m.Content != msgs[4+i].Content {
			t.Fatalf("kept[%d] is not input[%d]", i, 4+i)
		}
	}
}

func TestPruneHistory_MaxMessagesWindow(t *testing.T) {
	counter := tokens.NewEstimatingCounter()
	pol := historyPolicy()
	pol.MaxMessages = 3

	msgs := turnsOfTokens(10, 10)
	sel := pruneHistory(counter, msgs, 1000, &pol)

	if len(sel.kept) != 3 {
		t.Fatalf("kept %d messages, expected the 3 most recent", len(sel.kept))
	}
	if sel.pruned != 7 {
		t.Errorf("pruned = %d, expected 7", sel.pruned)
	}
}

func TestPruneHistory_MinMessagesFloor(t *testing.T) {
	counter := tokens.NewEstimatingCounter()
	pol := historyPolicy()
	pol.MinMessages = 2

	msgs := turnsOfTokens(5, 100)
	sel := pruneHistory(counter, msgs, 50, &pol)

	if len(sel.kept) != 2 {
		t.Fatalf("kept %d messages, expected the 2-message floor", len(sel.kept))
	}
	if !sel.floored {
		t.Error("expected the floor override to be flagged")
	}
	if sel.used != 200 {
		t.Errorf("used = %d, expected 200", sel.used)
	}
}

func TestPruneHistory_ZeroBudgetDropsEverything(t *testing.T) {
	counter := tokens.NewEstimatingCounter()
	pol := historyPolicy()

	msgs := turnsOfTokens(4, 10)
	sel := pruneHistory(counter, msgs, 0, &pol)

	if len(sel.kept) != 0 {
		t.Fatalf("kept %d messages, expected 0", len(sel.kept))
	}
	if sel.floored {
		t.Error("nothing kept, floor should not be flagged")
	}
}
