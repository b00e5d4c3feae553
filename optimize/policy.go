package optimize

import (
	"fmt"
	"os"
	"strconv"
)

// Default policy values. See DefaultPolicy.
const (
	DefaultReservedCompletionTokens = 4000
	DefaultSafetyBufferPercent      = 0.05
	DefaultWarningThresholdPercent  = 0.80

	DefaultSystemPriority  = 100
	DefaultUserPriority    = 100
	DefaultRAGPriority     = 80
	DefaultHistoryPriority = 60

	DefaultRAGMaxTokens          = 10000
	DefaultRAGMinRelevanceScore  = 0.3
	DefaultRAGMinResults         = 3
	DefaultRAGMaxResults         = 10
	DefaultRAGMaxTokensPerResult = 2000

	DefaultHistoryMaxMessages = 20
	DefaultHistoryMaxTokens   = 5000
)

// Priorities are the relative weights used to split the remaining budget
// between prompt components. System and user are mandatory regardless of
// weight; only the RAG and history weights take part in the split.
type Priorities struct {
	System  int `json:"system" yaml:"system" toml:"system"`
	User    int `json:"user" yaml:"user" toml:"user"`
	RAG     int `json:"rag" yaml:"rag" toml:"rag"`
	History int `json:"history" yaml:"history" toml:"history"`
}

// RAGPolicy governs reference-document selection.
type RAGPolicy struct {
	// MaxTokens caps the reference sub-budget. 0 means no cap.
	MaxTokens int `json:"max_tokens" yaml:"max_tokens" toml:"max_tokens"`

	// MinRelevanceScore drops documents below this score before any
	// budget packing.
	MinRelevanceScore float64 `json:"min_relevance_score" yaml:"min_relevance_score" toml:"min_relevance_score"`

	// MinResults forces this many documents to be kept even over budget,
	// provided that many survive the relevance filter.
	MinResults int `json:"min_results" yaml:"min_results" toml:"min_results"`

	// MaxResults caps the number of kept documents.
	MaxResults int `json:"max_results" yaml:"max_results" toml:"max_results"`

	// TrimLargeResults truncates documents over MaxTokensPerResult
	// instead of costing them whole.
	TrimLargeResults   bool `json:"trim_large_results" yaml:"trim_large_results" toml:"trim_large_results"`
	MaxTokensPerResult int  `json:"max_tokens_per_result" yaml:"max_tokens_per_result" toml:"max_tokens_per_result"`
}

// HistoryPolicy governs conversation-history pruning.
type HistoryPolicy struct {
	// MaxMessages caps how many recent turns are considered at all.
	MaxMessages int `json:"max_messages" yaml:"max_messages" toml:"max_messages"`

	// MinMessages forces this many recent turns to be kept even over
	// budget.
	MinMessages int `json:"min_messages" yaml:"min_messages" toml:"min_messages"`

	// MaxTokens caps the history sub-budget. 0 means no cap.
	MaxTokens int `json:"max_tokens" yaml:"max_tokens" toml:"max_tokens"`
}

// Policy is the full configuration surface for one optimization call.
// Construct with DefaultPolicy and override fields as needed; a Policy is
// read-only once passed to Optimize.
type Policy struct {
	// Enabled bypasses optimization entirely when false: all inputs pass
	// through untrimmed.
	Enabled bool `json:"enabled" yaml:"enabled" toml:"enabled"`

	// ReservedCompletionTokens is held back for the model's reply.
	// 0 uses the model profile's default.
	ReservedCompletionTokens int `json:"reserved_completion_tokens" yaml:"reserved_completion_tokens" toml:"reserved_completion_tokens"`

	// SafetyBufferPercent is the fraction of the window subtracted as a
	// margin for estimation error (0.05 = 5%).
	SafetyBufferPercent float64 `json:"safety_buffer_percent" yaml:"safety_buffer_percent" toml:"safety_buffer_percent"`

	// WarningThresholdPercent is the window utilization fraction above
	// which a warning is emitted (0.80 = 80%).
	WarningThresholdPercent float64 `json:"warning_threshold_percent" yaml:"warning_threshold_percent" toml:"warning_threshold_percent"`

	Priorities Priorities    `json:"priorities" yaml:"priorities" toml:"priorities"`
	RAG        RAGPolicy     `json:"rag" yaml:"rag" toml:"rag"`
	History    HistoryPolicy `json:"history" yaml:"history" toml:"history"`
}

// DefaultPolicy returns a policy with every field at its documented
// default.
func DefaultPolicy() Policy {
	return Policy{
		Enabled:                  true,
		ReservedCompletionTokens: DefaultReservedCompletionTokens,
		SafetyBufferPercent:      DefaultSafetyBufferPercent,
		WarningThresholdPercent:  DefaultWarningThresholdPercent,
		Priorities: Priorities{
			System:  DefaultSystemPriority,
			User:    DefaultUserPriority,
			RAG:     DefaultRAGPriority,
			History: DefaultHistoryPriority,
		},
		RAG: RAGPolicy{
			MaxTokens:          DefaultRAGMaxTokens,
			MinRelevanceScore:  DefaultRAGMinRelevanceScore,
			MinResults:         DefaultRAGMinResults,
			MaxResults:         DefaultRAGMaxResults,
			TrimLargeResults:   true,
			MaxTokensPerResult: DefaultRAGMaxTokensPerResult,
		},
		History: HistoryPolicy{
			MaxMessages: DefaultHistoryMaxMessages,
			MinMessages: 0,
			MaxTokens:   DefaultHistoryMaxTokens,
		},
	}
}

// LoadFromEnv overrides policy fields from environment variables.
// Variables use the PROMPTFIT_ prefix and take precedence over existing
// values:
//
//   - PROMPTFIT_ENABLED: "true" or "false"
//   - PROMPTFIT_RESERVED_TOKENS: reserved completion tokens
//   - PROMPTFIT_SAFETY_BUFFER: safety buffer fraction (e.g., "0.05")
//   - PROMPTFIT_RAG_MAX_TOKENS: reference sub-budget cap
//   - PROMPTFIT_RAG_MIN_SCORE: relevance filter floor
//   - PROMPTFIT_HISTORY_MAX_TOKENS: history sub-budget cap
//   - PROMPTFIT_HISTORY_MAX_MESSAGES: history turn ceiling
func (p *Policy) LoadFromEnv() {
	if v := os.Getenv("PROMPTFIT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			p.Enabled = b
		}
	}
	if v := os.Getenv("PROMPTFIT_RESERVED_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.ReservedCompletionTokens = n
		}
	}
	if v := os.Getenv("PROMPTFIT_SAFETY_BUFFER"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			p.SafetyBufferPercent = f
		}
	}
	if v := os.Getenv("PROMPTFIT_RAG_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.RAG.MaxTokens = n
		}
	}
	if v := os.Getenv("PROMPTFIT_RAG_MIN_SCORE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			p.RAG.MinRelevanceScore = f
		}
	}
	if v := os.Getenv("PROMPTFIT_HISTORY_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.History.MaxTokens = n
		}
	}
	if v := os.Getenv("PROMPTFIT_HISTORY_MAX_MESSAGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.History.MaxMessages = n
		}
	}
}

// Validate checks the policy for caller configuration errors.
// All returned errors wrap ErrInvalidPolicy.
func (p *Policy) Validate() error {
	if p.ReservedCompletionTokens < 0 {
		return fmt.Errorf("%w: reserved_completion_tokens must be >= 0, got %d", ErrInvalidPolicy, p.ReservedCompletionTokens)
	}
	if p.SafetyBufferPercent < 0 || p.SafetyBufferPercent >= 1 {
		return fmt.Errorf("%w: safety_buffer_percent must be in [0, 1), got %v", ErrInvalidPolicy, p.SafetyBufferPercent)
	}
	if p.WarningThresholdPercent < 0 || p.WarningThresholdPercent > 1 {
		return fmt.Errorf("%w: warning_threshold_percent must be in [0, 1], got %v", ErrInvalidPolicy, p.WarningThresholdPercent)
	}
	if p.Priorities.System < 0 || p.Priorities.User < 0 || p.Priorities.RAG < 0 || p.Priorities.History < 0 {
		return fmt.Errorf("%w: priorities must be >= 0", ErrInvalidPolicy)
	}
	if p.RAG.MaxTokens < 0 {
		return fmt.Errorf("%w: rag.max_tokens must be >= 0, got %d", ErrInvalidPolicy, p.RAG.MaxTokens)
	}
	if p.RAG.MinRelevanceScore < 0 || p.RAG.MinRelevanceScore > 1 {
		return fmt.Errorf("%w: rag.min_relevance_score must be in [0, 1], got %v", ErrInvalidPolicy, p.RAG.MinRelevanceScore)
	}
	if p.RAG.MinResults < 0 {
		return fmt.Errorf("%w: rag.min_results must be >= 0, got %d", ErrInvalidPolicy, p.RAG.MinResults)
	}
	if p.RAG.MaxResults < 0 {
		return fmt.Errorf("%w: rag.max_results must be >= 0, got %d", ErrInvalidPolicy, p.RAG.MaxResults)
	}
	if p.RAG.MaxResults > 0 && p.RAG.MinResults > p.RAG.MaxResults {
		return fmt.Errorf("%w: rag.min_results (%d) exceeds rag.max_results (%d)", ErrInvalidPolicy, p.RAG.MinResults, p.RAG.MaxResults)
	}
	if p.RAG.TrimLargeResults && p.RAG.MaxTokensPerResult <= 0 {
		return fmt.Errorf("%w: rag.max_tokens_per_result must be > 0 when trimming, got %d", ErrInvalidPolicy, p.RAG.MaxTokensPerResult)
	}
	if p.History.MaxMessages < 0 {
		return fmt.Errorf("%w: history.max_messages must be >= 0, got %d", ErrInvalidPolicy, p.History.MaxMessages)
	}
	if p.History.MinMessages < 0 {
		return fmt.Errorf("%w: history.min_messages must be >= 0, got %d", ErrInvalidPolicy, p.History.MinMessages)
	}
	if p.History.MaxMessages > 0 && p.History.MinMessages > p.History.MaxMessages {
		return fmt.Errorf("%w: history.min_messages (%d) exceeds history.max_messages (%d)", ErrInvalidPolicy, p.History.MinMessages, p.History.MaxMessages)
	}
	if p.History.MaxTokens < 0 {
		return fmt.Errorf("%w: history.max_tokens must be >= 0, got %d", ErrInvalidPolicy, p.History.MaxTokens)
	}
	return nil
}
