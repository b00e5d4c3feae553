package optimize

import "errors"

// Sentinel errors for optimizer configuration problems. Everything else
// the optimizer encounters is a recoverable condition reported through
// OptimizedPrompt.Warnings.
var (
	// ErrInvalidPolicy indicates a malformed policy value (negative
	// budget, out-of-range percentage, inverted floor/ceiling).
	ErrInvalidPolicy = errors.New("invalid optimization policy")

	// ErrZeroContextWindow indicates the model profile has no usable
	// context window.
	ErrZeroContextWindow = errors.New("model context window is zero")
)
