package script

import (
	"sort"
	"time"

	"github.com/deepnoodle-ai/cell"
	"github.com/deepnoodle-ai/cell/host"
	"github.com/risor-io/risor/object"
)

// FromRisor converts a Risor object to a Var. Scalars become host payloads,
// lists become Expressions, sets become Expressions ordered by their
// inspected form and maps become Expressions of (key value) pairs ordered by
// key. Other objects become the Text of their inspected form.
func FromRisor(obj object.Object) cell.Var {
	switch o := obj.(type) {
	case nil, *object.NilType:
		return cell.Var{}

	case *object.String:
		return cell.New(host.Text(o.Value()))

	case *object.Int:
		return cell.New(host.Int(o.Value()))

	case *object.Float:
		return cell.New(host.Float(o.Value()))

	case *object.Bool:
		return cell.New(host.Bool(o.Value()))

	case *object.Time:
		return cell.New(host.Text(o.Value().Format(time.RFC3339Nano)))

	case *object.List:
		var e cell.Expression
		for _, item := range o.Value() {
			e = e.Append(FromRisor(item))
		}
		return cell.New(e)

	case *object.Set:
		var items []object.Object
		for _, item := range o.Value() {
			items = append(items, item)
		}
		sort.Slice(items, func(i, j int) bool {
			return items[i].Inspect() < items[j].Inspect()
		})
		var e cell.Expression
		for _, item := range items {
			e = e.Append(FromRisor(item))
		}
		return cell.New(e)

	case *object.Map:
		entries := o.Value()
		keys := make([]string, 0, len(entries))
		for key := range entries {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		var e cell.Expression
		for _, key := range keys {
			e = e.Append(host.Pair(cell.New(host.Text(key)), FromRisor(entries[key])))
		}
		return cell.New(e)

	default:
		// Fallback to string representation
		return cell.New(host.Text(obj.Inspect()))
	}
}

// ToRisor converts a Var to a Risor object. Host payloads become the
// matching scalar, Expressions become lists and Nothing becomes nil. Other
// payloads become the string of their display form.
func ToRisor(v cell.Var) object.Object {
	switch p := v.Value().(type) {
	case nil:
		return object.Nil
	case host.Int:
		return object.NewInt(int64(p))
	case host.Float:
		return object.NewFloat(float64(p))
	case host.Text:
		return object.NewString(string(p))
	case host.Bool:
		return object.NewBool(bool(p))
	case cell.Expression:
		items := p.Items()
		objs := make([]object.Object, 0, len(items))
		for _, item := range items {
			objs = append(objs, ToRisor(item))
		}
		return object.NewList(objs)
	default:
		return object.NewString(cell.Str(v))
	}
}

// risorGlobal converts Vars for use as Risor globals and passes every other
// value through for Risor to convert.
func risorGlobal(value any) any {
	if v, ok := value.(cell.Var); ok {
		return ToRisor(v)
	}
	return value
}
