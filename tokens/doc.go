// Package tokens provides token counting for LLM prompt budgeting.
//
// Two counter implementations are available:
//
//   - BPECounter: real byte-pair-encoding counts backed by embedded
//     tiktoken vocabularies. No network or disk access.
//   - EstimatingCounter: a fast ~4 chars/token heuristic, used as the
//     fallback when no encoding is known for a model.
//
// # Counter
//
// The Counter interface provides token counting methods:
//
//	counter := tokens.NewEstimatingCounter()
//	count := counter.Count("Hello, world!")     // ~3 tokens
//	fits := counter.FitsInLimit("text", 1000)   // true if <= 1000 tokens
//
// # Per-model cache
//
// Cache maps model identifiers to counters, building each counter once on
// first use. It is safe for concurrent use and is meant to be constructed
// once at process start and shared:
//
//	cache := tokens.NewCache()
//	n := cache.Count("claude-sonnet-4", text)
//
// Unknown model identifiers resolve to the default encoding rather than
// failing.
package tokens
