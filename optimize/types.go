package optimize

// Message is a single prior conversation turn.
type Message struct {
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// RankedDocument is a retrieved reference document with its relevance
// score from the external search service. Source is an opaque label
// carried through unchanged.
type RankedDocument struct {
	Content string  `json:"content" yaml:"content"`
	Score   float64 `json:"score" yaml:"score"`
	Source  string  `json:"source,omitempty" yaml:"source,omitempty"`
}

// PromptComponents are the inputs to one optimization call.
// SystemPrompt and UserMessage are mandatory and are never shortened or
// dropped. RAGResults and History may be empty.
type PromptComponents struct {
	SystemPrompt string           `json:"system_prompt" yaml:"system_prompt"`
	UserMessage  string           `json:"user_message" yaml:"user_message"`
	RAGResults   []RankedDocument `json:"rag_results,omitempty" yaml:"rag_results,omitempty"`
	History      []Message        `json:"history,omitempty" yaml:"history,omitempty"`
}

// TokenEstimate breaks down token counts per prompt component.
type TokenEstimate struct {
	System        int `json:"system" yaml:"system"`
	User          int `json:"user" yaml:"user"`
	RAG           int `json:"rag" yaml:"rag"`
	History       int `json:"history" yaml:"history"`
	Total         int `json:"total" yaml:"total"`
	ContextWindow int `json:"context_window" yaml:"context_window"`
}

// Utilization returns Total as a fraction of the context window.
func (e TokenEstimate) Utilization() float64 {
	if e.ContextWindow <= 0 {
		return 0
	}
	return float64(e.Total) / float64(e.ContextWindow)
}

// OptimizedPrompt is the result of one optimization call.
type OptimizedPrompt struct {
	// SystemPrompt and UserMessage are the caller's inputs, verbatim.
	SystemPrompt string `json:"system_prompt" yaml:"system_prompt"`
	UserMessage  string `json:"user_message" yaml:"user_message"`

	// RAGResults are the kept reference documents in non-increasing
	// score order, possibly truncated.
	RAGResults []RankedDocument `json:"rag_results,omitempty" yaml:"rag_results,omitempty"`

	// History is a contiguous most-recent suffix of the input turns, in
	// chronological order.
	History []Message `json:"history,omitempty" yaml:"history,omitempty"`

	OriginalEstimate  TokenEstimate `json:"original_estimate" yaml:"original_estimate"`
	OptimizedEstimate TokenEstimate `json:"optimized_estimate" yaml:"optimized_estimate"`

	TokensSaved  int  `json:"tokens_saved" yaml:"tokens_saved"`
	WasOptimized bool `json:"was_optimized" yaml:"was_optimized"`

	// Strategy is a human-readable summary of what changed. Purely
	// descriptive; no downstream logic reads it.
	Strategy string `json:"strategy" yaml:"strategy"`

	// Warnings reports recoverable conditions: degraded fit, unknown
	// model, high utilization, degenerate inputs.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// AsComponents returns the optimized output as inputs for a further call.
// Re-optimizing with the same policy is a no-op.
func (p *OptimizedPrompt) AsComponents() PromptComponents {
	return PromptComponents{
		SystemPrompt: p.SystemPrompt,
		UserMessage:  p.UserMessage,
		RAGResults:   p.RAGResults,
		History:      p.History,
	}
}
