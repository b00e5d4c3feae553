// Package assemble renders an optimized prompt into a single string for
// the LLM-invocation layer.
//
// The default layout places the system prompt first, then the kept
// reference documents with their source labels, then the conversation
// turns, then the user message:
//
//	text, err := assemble.New().Render(prompt)
//
// A custom Go template can replace the default layout. Rendering is
// deterministic: identical prompts produce byte-identical output.
package assemble
