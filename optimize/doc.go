// Package optimize assembles token-budgeted LLM prompts.
//
// Given a system prompt, a user message, ranked reference documents, and
// prior conversation turns, Optimizer.Optimize produces a prompt that fits
// a model's context window after reserving room for the reply, losing as
// little relevant information as possible. The computation is pure and
// deterministic: no network, no disk, no randomness.
//
// The system prompt and user message are mandatory and never altered.
// The remaining budget is split between reference documents and history
// by priority weight; each side is packed independently and unused budget
// is handed to the other side in a single redistribution pass.
//
//	opt := optimize.New()
//	result, err := opt.Optimize(components, optimize.DefaultPolicy(), "claude-sonnet-4")
//
// Over-budget inputs never fail: when configured minimums cannot fit, the
// closest feasible prompt is returned and the condition is reported in
// Warnings. Only a malformed policy is an error.
package optimize
