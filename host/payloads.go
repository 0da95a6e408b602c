// Package host bridges Go and YAML data into cell Vars. It provides the
// scalar payloads used for host values along with conversions to and from
// plain Go values.
package host

import (
	"cmp"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/deepnoodle-ai/cell"
)

// Int is a signed integer payload.
type Int int64

// Float is a floating point payload.
type Float float64

// Text is a string payload.
type Text string

// Bool is a boolean payload.
type Bool bool

type (
	intOp   func(a, b int64) (int64, bool)
	floatOp func(a, b float64) (float64, bool)
)

// apply runs iop when other is an Int. When other is a Float, when iop is nil
// or when iop cannot produce an integer result, fop is tried on the promoted
// operands instead.
func (i Int) apply(other cell.Var, iop intOp, fop floatOp) cell.Var {
	if o, ok := other.Value().(Int); ok && iop != nil {
		if r, ok := iop(int64(i), int64(o)); ok {
			return cell.New(Int(r))
		}
	}
	return Float(i).apply(other, fop)
}

func (f Float) apply(other cell.Var, fop floatOp) cell.Var {
	var b float64
	switch o := other.Value().(type) {
	case Float:
		b = float64(o)
	case Int:
		b = float64(o)
	default:
		return cell.Var{}
	}
	if r, ok := fop(float64(f), b); ok {
		return cell.New(Float(r))
	}
	return cell.Var{}
}

func (i Int) Type() string { return "int" }
func (i Int) Cat() string  { return "number" }
func (i Int) Is() bool     { return i != 0 }

func (i Int) Comp(other cell.Var) float64 {
	o, ok := other.Value().(Int)
	if !ok {
		return math.NaN()
	}
	return float64(cmp.Compare(i, o))
}

func (i Int) Str(w io.Writer)  { io.WriteString(w, strconv.FormatInt(int64(i), 10)) }
func (i Int) Repr(w io.Writer) { i.Str(w) }

func (i Int) Add(other cell.Var) cell.Var {
	return i.apply(other, func(a, b int64) (int64, bool) { return a + b, true }, addFloat)
}

func (i Int) Sub(other cell.Var) cell.Var {
	return i.apply(other, func(a, b int64) (int64, bool) { return a - b, true }, subFloat)
}

func (i Int) Mul(other cell.Var) cell.Var {
	return i.apply(other, func(a, b int64) (int64, bool) { return a * b, true }, mulFloat)
}

// Div truncates toward zero.
func (i Int) Div(other cell.Var) cell.Var {
	return i.apply(other, func(a, b int64) (int64, bool) {
		if b == 0 {
			return 0, false
		}
		return a / b, true
	}, divFloat)
}

// Mod is the floored modulus; the result takes the sign of the divisor.
func (i Int) Mod(other cell.Var) cell.Var {
	return i.apply(other, func(a, b int64) (int64, bool) {
		if b == 0 {
			return 0, false
		}
		m := a % b
		if m != 0 && (m < 0) != (b < 0) {
			m += b
		}
		return m, true
	}, modFloat)
}

func (i Int) FDiv(other cell.Var) cell.Var {
	return i.apply(other, func(a, b int64) (int64, bool) {
		if b == 0 {
			return 0, false
		}
		q := a / b
		if a%b != 0 && (a < 0) != (b < 0) {
			q--
		}
		return q, true
	}, fdivFloat)
}

// Rem is the truncated remainder; the result takes the sign of the dividend.
func (i Int) Rem(other cell.Var) cell.Var {
	return i.apply(other, func(a, b int64) (int64, bool) {
		if b == 0 {
			return 0, false
		}
		return a % b, true
	}, remFloat)
}

// Pow stays integral for non-negative integer exponents.
func (i Int) Pow(other cell.Var) cell.Var {
	return i.apply(other, func(a, b int64) (int64, bool) {
		if b < 0 {
			return 0, false
		}
		r := int64(1)
		for ; b > 0; b >>= 1 {
			if b&1 == 1 {
				r *= a
			}
			a *= a
		}
		return r, true
	}, powFloat)
}

// Root always yields a Float.
func (i Int) Root(other cell.Var) cell.Var { return i.apply(other, nil, rootFloat) }

func (i Int) BAnd(other cell.Var) cell.Var {
	if o, ok := other.Value().(Int); ok {
		return cell.New(i & o)
	}
	return cell.Var{}
}

func (i Int) BOr(other cell.Var) cell.Var {
	if o, ok := other.Value().(Int); ok {
		return cell.New(i | o)
	}
	return cell.Var{}
}

func (i Int) BXor(other cell.Var) cell.Var {
	if o, ok := other.Value().(Int); ok {
		return cell.New(i ^ o)
	}
	return cell.Var{}
}

func (i Int) BNeg() cell.Var { return cell.New(^i) }
func (i Int) UAdd() cell.Var { return cell.New(i) }
func (i Int) UNeg() cell.Var { return cell.New(-i) }

func (f Float) Type() string { return "float" }
func (f Float) Cat() string  { return "number" }
func (f Float) Is() bool     { return f != 0 }

// Comp is NaN when either operand is NaN.
func (f Float) Comp(other cell.Var) float64 {
	o, ok := other.Value().(Float)
	if !ok || math.IsNaN(float64(f)) || math.IsNaN(float64(o)) {
		return math.NaN()
	}
	return float64(cmp.Compare(f, o))
}

func (f Float) Str(w io.Writer) {
	io.WriteString(w, strconv.FormatFloat(float64(f), 'g', -1, 64))
}

// Repr always carries a fraction or exponent so that it reads back as a
// Float and never as an Int.
func (f Float) Repr(w io.Writer) {
	s := strconv.FormatFloat(float64(f), 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	io.WriteString(w, s)
}

func (f Float) Add(other cell.Var) cell.Var  { return f.apply(other, addFloat) }
func (f Float) Sub(other cell.Var) cell.Var  { return f.apply(other, subFloat) }
func (f Float) Mul(other cell.Var) cell.Var  { return f.apply(other, mulFloat) }
func (f Float) Div(other cell.Var) cell.Var  { return f.apply(other, divFloat) }
func (f Float) Mod(other cell.Var) cell.Var  { return f.apply(other, modFloat) }
func (f Float) FDiv(other cell.Var) cell.Var { return f.apply(other, fdivFloat) }
func (f Float) Rem(other cell.Var) cell.Var  { return f.apply(other, remFloat) }
func (f Float) Pow(other cell.Var) cell.Var  { return f.apply(other, powFloat) }
func (f Float) Root(other cell.Var) cell.Var { return f.apply(other, rootFloat) }
func (f Float) UAdd() cell.Var               { return cell.New(f) }
func (f Float) UNeg() cell.Var               { return cell.New(-f) }

func addFloat(a, b float64) (float64, bool) { return a + b, true }
func subFloat(a, b float64) (float64, bool) { return a - b, true }
func mulFloat(a, b float64) (float64, bool) { return a * b, true }
func powFloat(a, b float64) (float64, bool) { return math.Pow(a, b), true }

func divFloat(a, b float64) (float64, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

func modFloat(a, b float64) (float64, bool) {
	if b == 0 {
		return 0, false
	}
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m, true
}

func fdivFloat(a, b float64) (float64, bool) {
	if b == 0 {
		return 0, false
	}
	return math.Floor(a / b), true
}

func remFloat(a, b float64) (float64, bool) {
	if b == 0 {
		return 0, false
	}
	return math.Mod(a, b), true
}

func rootFloat(a, b float64) (float64, bool) {
	if b == 0 {
		return 0, false
	}
	return math.Pow(a, 1/b), true
}

func (t Text) Type() string { return "text" }
func (t Text) Cat() string  { return "text" }
func (t Text) Is() bool     { return t != "" }

func (t Text) Comp(other cell.Var) float64 {
	o, ok := other.Value().(Text)
	if !ok {
		return math.NaN()
	}
	return float64(strings.Compare(string(t), string(o)))
}

func (t Text) Str(w io.Writer)  { io.WriteString(w, string(t)) }
func (t Text) Repr(w io.Writer) { io.WriteString(w, strconv.Quote(string(t))) }

// Add concatenates another Text.
func (t Text) Add(other cell.Var) cell.Var {
	if o, ok := other.Value().(Text); ok {
		return cell.New(t + o)
	}
	return cell.Var{}
}

// Size counts runes, not bytes.
func (t Text) Size() int { return utf8.RuneCountInString(string(t)) }

// Has reports whether other is a substring.
func (t Text) Has(other cell.Var) bool {
	o, ok := other.Value().(Text)
	return ok && strings.Contains(string(t), string(o))
}

func (b Bool) Type() string { return "bool" }
func (b Bool) Cat() string  { return "bool" }
func (b Bool) Is() bool     { return bool(b) }

// Comp orders false before true.
func (b Bool) Comp(other cell.Var) float64 {
	o, ok := other.Value().(Bool)
	if !ok {
		return math.NaN()
	}
	return float64(cmp.Compare(b.int(), o.int()))
}

func (b Bool) int() int {
	if b {
		return 1
	}
	return 0
}

func (b Bool) Str(w io.Writer)  { io.WriteString(w, strconv.FormatBool(bool(b))) }
func (b Bool) Repr(w io.Writer) { b.Str(w) }

func (b Bool) BAnd(other cell.Var) cell.Var {
	if o, ok := other.Value().(Bool); ok {
		return cell.New(b && o)
	}
	return cell.Var{}
}

func (b Bool) BOr(other cell.Var) cell.Var {
	if o, ok := other.Value().(Bool); ok {
		return cell.New(b || o)
	}
	return cell.Var{}
}

func (b Bool) BXor(other cell.Var) cell.Var {
	if o, ok := other.Value().(Bool); ok {
		return cell.New(Bool(b != o))
	}
	return cell.Var{}
}

func (b Bool) BNeg() cell.Var { return cell.New(!b) }
