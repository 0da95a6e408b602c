package host

import (
	"math"
	"sort"
	"time"

	"github.com/deepnoodle-ai/cell"
)

// FromGo converts a Go value to a Var. Scalars become host payloads, slices
// become Expressions and string-keyed maps become Expressions of (key value)
// pairs ordered by key. Elements that convert to Nothing are absorbed by the
// enclosing Expression. Any other value is wrapped as is.
func FromGo(x any) cell.Var {
	switch v := x.(type) {
	case nil:
		return cell.Var{}
	case cell.Var:
		return v
	case bool:
		return cell.New(Bool(v))
	case string:
		return cell.New(Text(v))
	case []byte:
		return cell.New(Text(v))
	case int:
		return cell.New(Int(v))
	case int8:
		return cell.New(Int(v))
	case int16:
		return cell.New(Int(v))
	case int32:
		return cell.New(Int(v))
	case int64:
		return cell.New(Int(v))
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return cell.New(Int(v))
	case uint16:
		return cell.New(Int(v))
	case uint32:
		return cell.New(Int(v))
	case uint64:
		return fromUint(v)
	case float32:
		return cell.New(Float(v))
	case float64:
		return cell.New(Float(v))
	case time.Time:
		return cell.New(Text(v.Format(time.RFC3339Nano)))
	case []any:
		e := cell.Expression{}
		for _, item := range v {
			e = e.Append(FromGo(item))
		}
		return cell.New(e)
	case []string:
		e := cell.Expression{}
		for _, item := range v {
			e = e.Append(cell.New(Text(item)))
		}
		return cell.New(e)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		e := cell.Expression{}
		for _, key := range keys {
			e = e.Append(Pair(cell.New(Text(key)), FromGo(v[key])))
		}
		return cell.New(e)
	}
	return cell.New(x)
}

// uint64 values past the int64 range lose precision as Floats.
func fromUint(u uint64) cell.Var {
	if u > math.MaxInt64 {
		return cell.New(Float(u))
	}
	return cell.New(Int(u))
}

// Pair builds the two element (key value) Expression used for mapping
// entries.
func Pair(key, val cell.Var) cell.Var {
	return cell.List(key, val)
}

// ToGo converts a Var back to a plain Go value. Host payloads become their Go
// scalar, Expressions become []any and Nothing becomes nil. Other payloads
// are returned unchanged.
func ToGo(v cell.Var) any {
	switch p := v.Value().(type) {
	case nil:
		return nil
	case Int:
		return int64(p)
	case Float:
		return float64(p)
	case Text:
		return string(p)
	case Bool:
		return bool(p)
	case cell.Expression:
		items := p.Items()
		result := make([]any, 0, len(items))
		for _, item := range items {
			result = append(result, ToGo(item))
		}
		return result
	default:
		return p
	}
}

// ToMap converts an Expression of (key value) pairs into a map. It reports
// false when v is not such an Expression or a key is not Text.
func ToMap(v cell.Var) (map[string]any, bool) {
	e := cell.Cast[cell.Expression](v)
	if e == nil {
		return nil, false
	}
	result := make(map[string]any, e.Size())
	for _, entry := range e.Items() {
		if entry.Size() != 2 {
			return nil, false
		}
		key, ok := entry.Lead().Value().(Text)
		if !ok {
			return nil, false
		}
		result[string(key)] = ToGo(entry.Last())
	}
	return result, true
}
