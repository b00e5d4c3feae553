package optimize

import (
	"fmt"
	"strings"
)

// describeStrategy summarizes what the optimizer changed, in the shape
// "removed 3 low-relevance results, trimmed 2 large results, pruned 4
// history messages". Purely descriptive.
func describeStrategy(rag ragSelection, hist historySelection) string {
	var parts []string
	if rag.removedLowRelevance > 0 {
		parts = append(parts, fmt.Sprintf("removed %d low-relevance %s", rag.removedLowRelevance, plural(rag.removedLowRelevance, "result")))
	}
	if rag.removedOverBudget > 0 {
		parts = append(parts, fmt.Sprintf("dropped %d over-budget %s", rag.removedOverBudget, plural(rag.removedOverBudget, "result")))
	}
	if rag.trimmed > 0 {
		parts = append(parts, fmt.Sprintf("trimmed %d large %s", rag.trimmed, plural(rag.trimmed, "result")))
	}
	if hist.pruned > 0 {
		parts = append(parts, fmt.Sprintf("pruned %d history %s", hist.pruned, plural(hist.pruned, "message")))
	}
	if len(parts) == 0 {
		return "no optimization needed"
	}
	return strings.Join(parts, ", ")
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}

// appendSelectionWarnings reports degraded fit from minimum-floor
// overrides and degenerate inputs.
func appendSelectionWarnings(warnings []string, components PromptComponents, policy *Policy, rag ragSelection, hist historySelection, ragBudget, histBudget int) []string {
	if rag.floored {
		warnings = append(warnings, fmt.Sprintf(
			"kept %d reference documents to honor rag.min_results, exceeding the reference budget by %d tokens",
			len(rag.kept), rag.used-ragBudget))
	}
	if hist.floored {
		warnings = append(warnings, fmt.Sprintf(
			"kept %d history messages to honor history.min_messages, exceeding the history budget by %d tokens",
			len(hist.kept), hist.used-histBudget))
	}
	if len(components.RAGResults) > 0 && len(rag.kept) == 0 && rag.removedLowRelevance == len(components.RAGResults) {
		warnings = append(warnings, fmt.Sprintf(
			"no reference documents met the minimum relevance score %.2f", policy.RAG.MinRelevanceScore))
	}
	if len(components.History) == 0 {
		warnings = append(warnings, "no conversation history present")
	}
	return warnings
}

func warnUnknownModel(modelID string, window int) string {
	return fmt.Sprintf("unknown model %q, using default profile with a %d-token window", modelID, window)
}

func warnMandatoryOverBudget(fixed, budget int) string {
	return fmt.Sprintf("system prompt and user message alone cost %d tokens against a budget of %d; nothing remains for context", fixed, budget)
}

func warnHighUtilization(util float64) string {
	return fmt.Sprintf("prompt plus reserved completion uses %.0f%% of the context window", util*100)
}
