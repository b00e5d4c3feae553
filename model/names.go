// Package model provides model profiles for prompt budgeting: context window
// sizes, reserved completion tokens, and tokenizer encodings, keyed by
// normalized model family names.
//
// Unknown model identifiers never fail a lookup; they resolve to
// DefaultProfile so the optimizer can degrade gracefully and report a
// warning instead of erroring.
package model

import "strings"

// ModelName represents a normalized model family name.
type ModelName string

// Claude model family constants.
const (
	ModelOpus   ModelName = "opus"
	ModelSonnet ModelName = "sonnet"
	ModelHaiku  ModelName = "haiku"
)

// OpenAI model family constants.
const (
	ModelGPT     ModelName = "gpt"      // GPT-5 family (gpt-5, gpt-5.1, ...)
	ModelGPTMini ModelName = "gpt-mini" // Small/cheap GPT (gpt-5-mini, gpt-5-nano)
	ModelGPT4    ModelName = "gpt-4"    // GPT-4 family (gpt-4, gpt-4-turbo)
	ModelGPT4o   ModelName = "gpt-4o"   // GPT-4o family
)

// Normalize converts a full model identifier to its family alias.
// For example, "claude-sonnet-4-20250514" becomes "sonnet" and
// "gpt-4o-2024-08-06" becomes "gpt-4o".
// If the name is already a family alias or doesn't match any known pattern,
// it is returned as-is.
func Normalize(name string) ModelName {
	switch ModelName(name) {
	case ModelOpus, ModelSonnet, ModelHaiku,
		ModelGPT, ModelGPTMini, ModelGPT4, ModelGPT4o:
		return ModelName(name)
	}
	lower := strings.ToLower(name)

	// Claude models
	if strings.Contains(lower, "opus") {
		return ModelOpus
	}
	if strings.Contains(lower, "sonnet") {
		return ModelSonnet
	}
	if strings.Contains(lower, "haiku") {
		return ModelHaiku
	}

	// GPT models (order matters: check specific patterns first)
	if strings.HasPrefix(lower, "gpt-4o") {
		return ModelGPT4o
	}
	if strings.HasPrefix(lower, "gpt-4") {
		return ModelGPT4
	}
	if strings.HasPrefix(lower, "gpt-5") {
		if strings.Contains(lower, "-mini") || strings.Contains(lower, "-nano") {
			return ModelGPTMini
		}
		return ModelGPT
	}

	return ModelName(name)
}
