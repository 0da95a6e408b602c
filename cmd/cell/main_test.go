package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/deepnoodle-ai/cell"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	doc := writeDoc(t, "name: cell\ntags: [a, b]\n")

	tests := []struct {
		name     string
		config   Config
		contains []string
	}{
		{
			name:     "inspect yaml",
			config:   Config{File: doc},
			contains: []string{"Type:   expression", "Size:   2", "Truthy: true", "Value:  ((name cell) (tags (a b)))"},
		},
		{
			name:     "inspect yaml repr",
			config:   Config{File: doc, Repr: true},
			contains: []string{`Value:  (("name" "cell") ("tags" ("a" "b")))`},
		},
		{
			name:     "eval",
			config:   Config{Eval: "[1, 2, 3]", Repr: true},
			contains: []string{"Size:   3", "Value:  (1 2 3)"},
		},
		{
			name:     "eval against doc",
			config:   Config{File: doc, Eval: "doc[1][1]", Repr: true},
			contains: []string{"Type:   expression", `Value:  ("a" "b")`},
		},
		{
			name:     "falsy value",
			config:   Config{Eval: "0"},
			contains: []string{"Type:   int", "Truthy: false"},
		},
		{
			name:     "json",
			config:   Config{Eval: `[1, "two"]`, JSON: true},
			contains: []string{"[\n  1,\n  \"two\"\n]"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), &tt.config, &out, cell.DiscardLogger())
			require.NoError(t, err)
			for _, want := range tt.contains {
				require.Contains(t, out.String(), want)
			}
		})
	}
}

func TestRunOutput(t *testing.T) {
	doc := writeDoc(t, "name: cell\n")
	out := filepath.Join(t.TempDir(), "out.yaml")

	var buf bytes.Buffer
	err := run(context.Background(), &Config{File: doc, Eval: "doc[0]", Output: out}, &buf, cell.DiscardLogger())
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "- name\n- cell\n", string(data))
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer

	err := run(context.Background(), &Config{File: filepath.Join(t.TempDir(), "missing.yaml")}, &out, cell.DiscardLogger())
	require.ErrorContains(t, err, "failed to load")

	err = run(context.Background(), &Config{Eval: "1 +"}, &out, cell.DiscardLogger())
	require.ErrorContains(t, err, "failed to evaluate code")
	require.True(t, cell.MatchesErrorType(err, cell.ErrorTypeScript))

	require.Empty(t, out.String())
}

func TestRunIDs(t *testing.T) {
	a, b := newRunID(), newRunID()
	require.NotEqual(t, a, b)
	require.Regexp(t, `^inspect_[0-9a-z]{26}$`, a)
}
