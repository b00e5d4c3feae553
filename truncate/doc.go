// Package truncate provides token-aware text truncation for prompt
// budgeting.
//
// Truncation is purely positional: text is cut to fit a token limit, never
// summarized or rewritten. Three strategies are available:
//
//   - FromEnd: remove content from the end (default)
//   - FromMiddle: remove content from the middle, keeping start and end
//   - FromStart: remove content from the start
//
// # Basic Usage
//
//	tr := truncate.NewFromEnd(counter)
//	result, truncated := tr.Truncate("very long text...", 100)
//
// When the counter supports exact token slicing (tokens.Slicer), cuts land
// on token boundaries. Estimating counters fall back to a binary search
// over rune prefixes.
//
// For one-off truncation with the default estimator:
//
//	result := truncate.ToTokens(text, 100)
package truncate
