package assemble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptfit/promptfit/optimize"
)

func samplePrompt() *optimize.OptimizedPrompt {
	return &optimize.OptimizedPrompt{
		SystemPrompt: "You are a careful assistant.",
		UserMessage:  "What changed in the last release?",
		RAGResults: []optimize.RankedDocument{
			{Content: "Release notes body.", Score: 0.92, Source: "CHANGELOG.md"},
			{Content: "Migration guide body.", Score: 0.81},
		},
		History: []optimize.Message{
			{Role: "user", Content: "Which version are we on?"},
			{Role: "assistant", Content: "v2.3.1."},
		},
	}
}

func TestRenderDefaultTemplate(t *testing.T) {
	out, err := New().Render(samplePrompt())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "You are a careful assistant.\n"))
	assert.Contains(t, out, "## Reference documents")
	assert.Contains(t, out, "### CHANGELOG.md (relevance 0.92)")
	assert.Contains(t, out, "### (unlabeled) (relevance 0.81)")
	assert.Contains(t, out, "Release notes body.")
	assert.Contains(t, out, "## Conversation")
	assert.Contains(t, out, "user: Which version are we on?")
	assert.Contains(t, out, "assistant: v2.3.1.")
	assert.True(t, strings.HasSuffix(out, "What changed in the last release?\n"))

	// Sections follow the system prompt and precede the user message.
	refs := strings.Index(out, "## Reference documents")
	conv := strings.Index(out, "## Conversation")
	user := strings.Index(out, "What changed in the last release?")
	assert.Less(t, refs, conv)
	assert.Less(t, conv, user)
}

func TestRenderSkipsEmptySections(t *testing.T) {
	prompt := samplePrompt()
	prompt.RAGResults = nil
	prompt.History = nil

	out, err := New().Render(prompt)
	require.NoError(t, err)

	assert.NotContains(t, out, "## Reference documents")
	assert.NotContains(t, out, "## Conversation")
	assert.Contains(t, out, prompt.SystemPrompt)
	assert.Contains(t, out, prompt.UserMessage)
}

func TestRenderCustomTemplate(t *testing.T) {
	a, err := NewWithTemplate(`{{upper .SystemPrompt}} | {{len .RAGResults}} docs | {{.UserMessage}}`)
	require.NoError(t, err)

	out, err := a.Render(samplePrompt())
	require.NoError(t, err)
	assert.Equal(t, "YOU ARE A CAREFUL ASSISTANT. | 2 docs | What changed in the last release?", out)
}

func TestRenderIndentHelper(t *testing.T) {
	a, err := NewWithTemplate(`{{indent 2 .SystemPrompt}}`)
	require.NoError(t, err)

	out, err := a.Render(&optimize.OptimizedPrompt{SystemPrompt: "line one\nline two"})
	require.NoError(t, err)
	assert.Equal(t, "  line one\n  line two", out)
}

func TestNewWithTemplateErrors(t *testing.T) {
	_, err := NewWithTemplate("")
	assert.ErrorIs(t, err, ErrParse)

	_, err = NewWithTemplate("{{.Unclosed")
	assert.ErrorIs(t, err, ErrParse)
}

func TestRenderNilPrompt(t *testing.T) {
	_, err := New().Render(nil)
	assert.ErrorIs(t, err, ErrNilPrompt)
}

func TestRenderExecuteError(t *testing.T) {
	a, err := NewWithTemplate(`{{.NoSuchField}}`)
	require.NoError(t, err)

	_, err = a.Render(samplePrompt())
	assert.ErrorIs(t, err, ErrExecute)
}
