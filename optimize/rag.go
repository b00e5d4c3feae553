package optimize

import (
	"sort"

	"github.com/promptfit/promptfit/tokens"
	"github.com/promptfit/promptfit/truncate"
)

// ragSelection is the outcome of packing reference documents into a
// sub-budget.
type ragSelection struct {
	kept []RankedDocument

	// trimmed counts kept documents whose content was truncated.
	trimmed int

	// removedLowRelevance counts documents dropped by the score filter;
	// removedOverBudget counts documents dropped by budget or count
	// limits.
	removedLowRelevance int
	removedOverBudget   int

	// used is the total token cost of the kept documents.
	used int

	// floored is true when the minimum-results guarantee forced the
	// selection over its budget.
	floored bool
}

func (s ragSelection) removed() int {
	return s.removedLowRelevance + s.removedOverBudget
}

// selectRAG selects, orders, and optionally truncates the reference
// documents that fit budgetTokens. Relevance filtering happens before
// budget packing so budget is never spent on documents the caller already
// deemed too weak. The minimum-results floor can push used past the
// budget; the caller compensates during redistribution.
func selectRAG(counter tokens.Counter, docs []RankedDocument, budgetTokens int, pol *RAGPolicy) ragSelection {
	var sel ragSelection
	if len(docs) == 0 {
		return sel
	}

	filtered := make([]RankedDocument, 0, len(docs))
	for _, d := range docs {
		if d.Score < pol.MinRelevanceScore {
			sel.removedLowRelevance++
			continue
		}
		filtered = append(filtered, d)
	}
	if len(filtered) == 0 {
		return sel
	}

	// Stable: equal scores keep their input order.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})

	trimmer := truncate.NewFromEnd(counter).WithSuffix("")

	for i, d := range filtered {
		if pol.MaxResults > 0 && len(sel.kept) >= pol.MaxResults {
			sel.removedOverBudget += len(filtered) - i
			break
		}

		d, cost, wasTrimmed := fitDocument(counter, trimmer, d, pol)
		if sel.used+cost > budgetTokens {
			sel.removedOverBudget += len(filtered) - i
			break
		}
		if wasTrimmed {
			sel.trimmed++
		}
		sel.kept = append(sel.kept, d)
		sel.used += cost
	}

	// Floor guarantee: a retrieval-backed query must not degrade to fewer
	// than MinResults documents just because context is momentarily
	// expensive, as long as that many survived the relevance filter.
	if pol.MinResults > 0 && len(sel.kept) < pol.MinResults && len(filtered) >= pol.MinResults {
		sel.kept = sel.kept[:0]
		sel.used = 0
		sel.trimmed = 0
		for _, d := range filtered[:pol.MinResults] {
			d, cost, wasTrimmed := fitDocument(counter, trimmer, d, pol)
			if wasTrimmed {
				sel.trimmed++
			}
			sel.kept = append(sel.kept, d)
			sel.used += cost
		}
		sel.removedOverBudget = len(filtered) - len(sel.kept)
		sel.floored = sel.used > budgetTokens
	}

	return sel
}

// fitDocument costs a document, truncating oversized content first when
// the policy allows it. Returns the (possibly truncated) document, its
// token cost, and whether it was truncated.
func fitDocument(counter tokens.Counter, trimmer *truncate.Truncator, d RankedDocument, pol *RAGPolicy) (RankedDocument, int, bool) {
	cost := counter.Count(d.Content)
	if !pol.TrimLargeResults || cost <= pol.MaxTokensPerResult {
		return d, cost, false
	}
	content, _ := trimmer.Truncate(d.Content, pol.MaxTokensPerResult)
	d.Content = content
	return d, counter.Count(content), true
}
