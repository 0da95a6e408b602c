package host

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/deepnoodle-ai/cell"
	"gopkg.in/yaml.v3"
)

// Encode converts a Var to a YAML node. An Expression whose elements are
// all (Text value) pairs becomes a mapping and any other Expression a
// sequence, so that loading the result yields an equal Var. Nothing becomes
// null and payloads without a YAML form become their display text.
func Encode(v cell.Var) *yaml.Node {
	switch p := v.Value().(type) {
	case nil:
		return scalarNode("!!null", "null")
	case Int:
		return scalarNode("!!int", strconv.FormatInt(int64(p), 10))
	case Float:
		return scalarNode("!!float", formatYAMLFloat(float64(p)))
	case Bool:
		return scalarNode("!!bool", strconv.FormatBool(bool(p)))
	case Text:
		return scalarNode("!!str", string(p))
	case cell.Expression:
		items := p.Items()
		if len(items) > 0 && allPairs(items) {
			n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			for _, entry := range items {
				n.Content = append(n.Content, Encode(entry.Lead()), Encode(entry.Last()))
			}
			return n
		}
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range items {
			n.Content = append(n.Content, Encode(item))
		}
		return n
	default:
		return scalarNode("!!str", cell.Str(v))
	}
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func allPairs(items []cell.Var) bool {
	for _, entry := range items {
		e := cell.Cast[cell.Expression](entry)
		if e == nil || e.Size() != 2 {
			return false
		}
		if _, ok := e.Lead().Value().(Text); !ok {
			return false
		}
	}
	return true
}

func formatYAMLFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return cell.Repr(cell.New(Float(f)))
}

// Marshal encodes v as a YAML document.
func Marshal(v cell.Var) ([]byte, error) {
	data, err := yaml.Marshal(Encode(v))
	if err != nil {
		return nil, cell.WrapError(cell.ErrorTypeDecode, err)
	}
	return data, nil
}

// SaveFile writes v to path as a YAML document, creating parent
// directories as needed.
func SaveFile(path string, v cell.Var) error {
	data, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write yaml file: %w", err)
	}
	return nil
}
