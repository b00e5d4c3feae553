package assemble

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/promptfit/promptfit/optimize"
)

// Sentinel errors for prompt assembly.
var (
	// ErrNilPrompt is returned when the prompt is nil.
	ErrNilPrompt = errors.New("prompt is nil")

	// ErrParse is returned when a custom template fails to parse.
	ErrParse = errors.New("template parse error")

	// ErrExecute is returned when template execution fails.
	ErrExecute = errors.New("template execution error")
)

// DefaultTemplate is the default prompt layout.
const DefaultTemplate = `{{.SystemPrompt}}
{{- if .RAGResults}}

## Reference documents
{{- range .RAGResults}}

### {{if .Source}}{{.Source}}{{else}}(unlabeled){{end}} (relevance {{printf "%.2f" .Score}})
{{.Content}}
{{- end}}
{{- end}}
{{- if .History}}

## Conversation
{{- range .History}}

{{.Role}}: {{.Content}}
{{- end}}
{{- end}}

{{.UserMessage}}
`

// Assembler renders optimized prompts to a single string.
type Assembler struct {
	tmpl *template.Template
}

// New creates an assembler with the default layout.
func New() *Assembler {
	tmpl := template.Must(template.New("prompt").Funcs(funcs()).Parse(DefaultTemplate))
	return &Assembler{tmpl: tmpl}
}

// NewWithTemplate creates an assembler with a custom layout. The template
// executes against an optimize.OptimizedPrompt.
func NewWithTemplate(layout string) (*Assembler, error) {
	if layout == "" {
		return nil, fmt.Errorf("%w: empty template", ErrParse)
	}
	tmpl, err := template.New("prompt").Funcs(funcs()).Parse(layout)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return &Assembler{tmpl: tmpl}, nil
}

// Render flattens the optimized prompt into one string.
func (a *Assembler) Render(prompt *optimize.OptimizedPrompt) (string, error) {
	if prompt == nil {
		return "", ErrNilPrompt
	}

	var sb strings.Builder
	if err := a.tmpl.Execute(&sb, prompt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecute, err)
	}
	return sb.String(), nil
}

// funcs returns the helper functions available to layouts.
func funcs() template.FuncMap {
	return template.FuncMap{
		"upper":  strings.ToUpper,
		"lower":  strings.ToLower,
		"trim":   strings.TrimSpace,
		"join":   strings.Join,
		"indent": indent,
	}
}

// indent prefixes each line of s with n spaces.
func indent(n int, s string) string {
	if n <= 0 || s == "" {
		return s
	}
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}
