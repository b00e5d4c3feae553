package optimize

import (
	"github.com/promptfit/promptfit/model"
	"github.com/promptfit/promptfit/tokens"
)

// Optimizer assembles token-budgeted prompts. It is stateless apart from
// the shared counter cache and is safe for concurrent use.
type Optimizer struct {
	counters *tokens.Cache
	profile  *model.Profile
}

// Option configures an Optimizer.
type Option func(*Optimizer)

// WithCounterCache shares an existing counter cache. Use this when the
// process already holds one so encoders are built only once.
func WithCounterCache(cache *tokens.Cache) Option {
	return func(o *Optimizer) {
		if cache != nil {
			o.counters = cache
		}
	}
}

// WithProfile overrides model-profile lookup with a fixed profile,
// regardless of the model identifier passed to Optimize.
func WithProfile(p model.Profile) Option {
	return func(o *Optimizer) {
		o.profile = &p
	}
}

// New creates an Optimizer with the given options.
func New(opts ...Option) *Optimizer {
	o := &Optimizer{
		counters: tokens.NewCache(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Optimize assembles a prompt from components that fits the model's
// context window under the given policy.
//
// The call fails only for a malformed policy or a zero context window;
// every other condition, including inputs that cannot fit even at the
// configured minimums, returns a usable result with warnings.
func (o *Optimizer) Optimize(components PromptComponents, policy Policy, modelID string) (*OptimizedPrompt, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	profile, known := o.profileFor(modelID)
	if profile.ContextWindow <= 0 {
		return nil, ErrZeroContextWindow
	}
	counter := o.counters.CounterFor(modelID)

	var warnings []string
	if !known {
		warnings = append(warnings, warnUnknownModel(modelID, profile.ContextWindow))
	}

	window := profile.ContextWindow
	systemTokens := counter.Count(components.SystemPrompt)
	userTokens := counter.Count(components.UserMessage)
	original := estimateAll(counter, components, systemTokens, userTokens, window)

	if !policy.Enabled {
		return &OptimizedPrompt{
			SystemPrompt:      components.SystemPrompt,
			UserMessage:       components.UserMessage,
			RAGResults:        components.RAGResults,
			History:           components.History,
			OriginalEstimate:  original,
			OptimizedEstimate: original,
			Strategy:          "optimization disabled, prompt passed through",
			Warnings:          warnings,
		}, nil
	}

	reserved := policy.ReservedCompletionTokens
	if reserved == 0 {
		reserved = profile.ReservedCompletionTokens
	}

	usable := int(float64(window) * (1 - policy.SafetyBufferPercent))
	available := usable - reserved - systemTokens - userTokens
	if available < 0 {
		available = 0
		warnings = append(warnings, warnMandatoryOverBudget(systemTokens+userTokens, usable-reserved))
	}

	ragBudget, histBudget := splitBudget(available, &policy)

	rag := selectRAG(counter, components.RAGResults, ragBudget, &policy.RAG)
	hist := pruneHistory(counter, components.History, histBudget, &policy.History)

	// Single redistribution pass: whichever side left budget unused
	// donates the surplus to the other side, which is re-packed once.
	// One shot keeps the whole call O(n log n) and deterministic.
	if surplus := histBudget - hist.used; surplus > 0 && (rag.removedOverBudget > 0 || rag.floored) {
		ragBudget = capBudget(ragBudget+surplus, policy.RAG.MaxTokens)
		rag = selectRAG(counter, components.RAGResults, ragBudget, &policy.RAG)
	} else if surplus := ragBudget - rag.used; surplus > 0 && (hist.pruned > 0 || hist.floored) {
		histBudget = capBudget(histBudget+surplus, policy.History.MaxTokens)
		hist = pruneHistory(counter, components.History, histBudget, &policy.History)
	}

	optimized := TokenEstimate{
		System:        systemTokens,
		User:          userTokens,
		RAG:           rag.used,
		History:       hist.used,
		Total:         systemTokens + userTokens + rag.used + hist.used,
		ContextWindow: window,
	}

	warnings = appendSelectionWarnings(warnings, components, &policy, rag, hist, ragBudget, histBudget)
	if util := float64(optimized.Total+reserved) / float64(window); util >= policy.WarningThresholdPercent {
		warnings = append(warnings, warnHighUtilization(util))
	}

	saved := original.Total - optimized.Total
	return &OptimizedPrompt{
		SystemPrompt:      components.SystemPrompt,
		UserMessage:       components.UserMessage,
		RAGResults:        rag.kept,
		History:           hist.kept,
		OriginalEstimate:  original,
		OptimizedEstimate: optimized,
		TokensSaved:       saved,
		WasOptimized:      saved > 0,
		Strategy:          describeStrategy(rag, hist),
		Warnings:          warnings,
	}, nil
}

// Estimate counts every component as-is against the model's window,
// without any filtering or trimming.
func (o *Optimizer) Estimate(components PromptComponents, modelID string) TokenEstimate {
	profile, _ := o.profileFor(modelID)
	counter := o.counters.CounterFor(modelID)
	return estimateAll(counter, components,
		counter.Count(components.SystemPrompt),
		counter.Count(components.UserMessage),
		profile.ContextWindow)
}

func (o *Optimizer) profileFor(modelID string) (model.Profile, bool) {
	if o.profile != nil {
		return *o.profile, true
	}
	return model.Lookup(modelID)
}

// splitBudget divides the available budget between the reference and
// history sub-budgets proportionally to their priority weights, each
// additionally capped by its policy ceiling.
func splitBudget(available int, policy *Policy) (ragBudget, histBudget int) {
	wRAG, wHist := policy.Priorities.RAG, policy.Priorities.History
	denom := wRAG + wHist
	if denom <= 0 {
		wRAG, wHist, denom = 1, 1, 2
	}
	ragBudget = capBudget(available*wRAG/denom, policy.RAG.MaxTokens)
	histBudget = capBudget(available*wHist/denom, policy.History.MaxTokens)
	return ragBudget, histBudget
}

// capBudget applies a ceiling; 0 means no ceiling.
func capBudget(budget, ceiling int) int {
	if ceiling > 0 && budget > ceiling {
		return ceiling
	}
	return budget
}

func estimateAll(counter tokens.Counter, components PromptComponents, systemTokens, userTokens, window int) TokenEstimate {
	ragTokens := 0
	for _, d := range components.RAGResults {
		ragTokens += counter.Count(d.Content)
	}
	histTokens := 0
	for _, m := range components.History {
		histTokens += counter.Count(m.Content)
	}
	return TokenEstimate{
		System:        systemTokens,
		User:          userTokens,
		RAG:           ragTokens,
		History:       histTokens,
		Total:         systemTokens + userTokens + ragTokens + histTokens,
		ContextWindow: window,
	}
}
