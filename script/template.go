package script

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var templateExpr = regexp.MustCompile(`\${([^}]+)}`)

// Template is text with embedded ${...} Risor expressions. Each expression
// is replaced by the display form of its result; Nothing renders as an
// empty string.
type Template struct {
	raw   string
	parts []templatePart
}

type templatePart struct {
	text string
	code Evaluator
}

// NewTemplate compiles every expression in raw with c.
func NewTemplate(c Compiler, raw string) (*Template, error) {
	// First validate that all ${...} expressions are properly closed
	openCount := strings.Count(raw, "${")
	closeCount := strings.Count(raw, "}")
	if openCount > closeCount {
		return nil, fmt.Errorf("unclosed template expression in string: %q", raw)
	}

	t := &Template{raw: raw}
	var lastEnd int
	for _, match := range templateExpr.FindAllStringSubmatchIndex(raw, -1) {
		if match[0] > lastEnd {
			t.parts = append(t.parts, templatePart{text: raw[lastEnd:match[0]]})
		}
		expr := raw[match[2]:match[3]]
		code, err := c.Compile(context.Background(), expr)
		if err != nil {
			return nil, fmt.Errorf("failed to compile template expression %q: %w", expr, err)
		}
		t.parts = append(t.parts, templatePart{code: code})
		lastEnd = match[1]
	}
	if lastEnd < len(raw) {
		t.parts = append(t.parts, templatePart{text: raw[lastEnd:]})
	}
	return t, nil
}

// Eval evaluates the embedded expressions and returns the rendered text.
func (t *Template) Eval(ctx context.Context, globals map[string]any) (string, error) {
	var sb strings.Builder
	for _, part := range t.parts {
		if part.code == nil {
			sb.WriteString(part.text)
			continue
		}
		result, err := part.code.Evaluate(ctx, globals)
		if err != nil {
			return "", fmt.Errorf("failed to evaluate template expression: %w", err)
		}
		if result.IsSomething() {
			result.Str(&sb)
		}
	}
	return sb.String(), nil
}

// Raw returns the template source.
func (t *Template) Raw() string {
	return t.raw
}
