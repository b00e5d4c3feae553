// Package promptfit assembles token-budgeted prompts for LLM calls.
//
// Given a system instruction, a user message, ranked reference documents,
// and prior conversation turns, promptfit produces a prompt guaranteed to
// fit a model's context window after reserving room for the reply, losing
// as little relevant information as possible, deterministically, with no
// network or disk I/O on the hot path. Each subpackage can be used
// independently:
//
//   - optimize: the budget allocator: priority split, reference-document
//     selection, history pruning, redistribution, diagnostics
//   - tokens: BPE and estimating token counters with a per-model cache
//   - model: context-window profiles for common model families
//   - truncate: token-aware text truncation strategies
//   - policyfile: policy files (YAML/TOML/JSON), hot reload, JSON schema
//   - assemble: flatten an optimized prompt into a single string
//
// # Quick Start
//
//	import "github.com/promptfit/promptfit/optimize"
//
//	opt := optimize.New()
//	result, err := opt.Optimize(optimize.PromptComponents{
//	    SystemPrompt: system,
//	    UserMessage:  question,
//	    RAGResults:   docs,
//	    History:      turns,
//	}, optimize.DefaultPolicy(), "claude-sonnet-4")
//
// result.RAGResults and result.History hold what fit; result.Warnings and
// result.Strategy describe what was dropped and why.
//
// # Design Philosophy
//
//   - The system prompt and user message are never altered
//   - Over-budget inputs degrade, they never fail
//   - Identical inputs produce byte-identical output
//   - Sensible defaults with full configurability
package promptfit
