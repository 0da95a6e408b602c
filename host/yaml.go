package host

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/deepnoodle-ai/cell"
	"gopkg.in/yaml.v3"
)

// LoadOptions configure how a YAML document is turned into a Var.
type LoadOptions struct {
	// Logger receives debug records about dropped values. Defaults to a
	// discard logger.
	Logger *slog.Logger

	// KeepNulls loads null values as empty Expressions. By default they are
	// dropped, since an Expression cannot hold Nothing.
	KeepNulls bool
}

// LoadFile loads a Var from a YAML file
func LoadFile(path string, opts LoadOptions) (cell.Var, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cell.Var{}, fmt.Errorf("failed to read yaml file: %w", err)
	}
	return Load(data, opts)
}

// LoadString loads a Var from a YAML string
func LoadString(data string, opts LoadOptions) (cell.Var, error) {
	return Load([]byte(data), opts)
}

// Load decodes the first document in data. Sequences become Expressions,
// mappings become Expressions of (key value) pairs in document order and
// scalars become host payloads according to their resolved tag. An empty
// document loads as Nothing.
func Load(data []byte, opts LoadOptions) (cell.Var, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return cell.Var{}, cell.WrapError(cell.ErrorTypeDecode, err)
	}
	l := &loader{opts: opts}
	if l.opts.Logger == nil {
		l.opts.Logger = cell.DiscardLogger()
	}
	return l.node(&doc)
}

type loader struct {
	opts LoadOptions
}

func (l *loader) node(n *yaml.Node) (cell.Var, error) {
	switch n.Kind {
	case 0:
		return cell.Var{}, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return cell.Var{}, nil
		}
		return l.node(n.Content[0])
	case yaml.AliasNode:
		return l.node(n.Alias)
	case yaml.SequenceNode:
		return l.sequence(n)
	case yaml.MappingNode:
		return l.mapping(n)
	case yaml.ScalarNode:
		return l.scalar(n)
	}
	return cell.Var{}, cell.NewError(cell.ErrorTypeDecode,
		fmt.Sprintf("line %d: unsupported yaml node kind %d", n.Line, n.Kind))
}

func (l *loader) sequence(n *yaml.Node) (cell.Var, error) {
	var e cell.Expression
	for i, child := range n.Content {
		v, err := l.node(child)
		if err != nil {
			return cell.Var{}, err
		}
		if v.IsNothing() {
			l.opts.Logger.Debug("dropped null sequence item", "line", child.Line, "index", i)
			continue
		}
		e = e.Append(v)
	}
	return cell.New(e), nil
}

func (l *loader) mapping(n *yaml.Node) (cell.Var, error) {
	if len(n.Content)%2 != 0 {
		return cell.Var{}, cell.NewError(cell.ErrorTypeDecode,
			fmt.Sprintf("line %d: mapping has a key without a value", n.Line))
	}
	var e cell.Expression
	for i := 0; i < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]
		key, err := l.node(keyNode)
		if err != nil {
			return cell.Var{}, err
		}
		val, err := l.node(valNode)
		if err != nil {
			return cell.Var{}, err
		}
		if key.IsNothing() || val.IsNothing() {
			l.opts.Logger.Debug("dropped mapping entry with null",
				"line", keyNode.Line, "key", keyNode.Value)
			continue
		}
		e = e.Append(Pair(key, val))
	}
	return cell.New(e), nil
}

func (l *loader) scalar(n *yaml.Node) (cell.Var, error) {
	switch n.ShortTag() {
	case "!!null":
		if l.opts.KeepNulls {
			return cell.List(), nil
		}
		return cell.Var{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return cell.Var{}, cell.WrapError(cell.ErrorTypeDecode, err)
		}
		return cell.New(Bool(b)), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return cell.New(Int(i)), nil
		}
		// Out of int64 range.
		var f float64
		if err := n.Decode(&f); err != nil {
			return cell.Var{}, cell.WrapError(cell.ErrorTypeDecode, err)
		}
		return cell.New(Float(f)), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return cell.Var{}, cell.WrapError(cell.ErrorTypeDecode, err)
		}
		return cell.New(Float(f)), nil
	}
	// !!str, !!timestamp, !!binary and custom tags keep their source text.
	return cell.New(Text(n.Value)), nil
}
