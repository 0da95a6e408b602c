// Package cell provides Var, an immutable handle to a value of any type with
// a uniform set of operations, and Expression, a persistent double-ended
// sequence of Vars.
package cell

import (
	"fmt"
	"hash/fnv"
	"io"
	"math"
	"reflect"
	"strings"
)

// box holds a payload. A box is never modified after construction, so any
// number of Vars may share one.
type box struct {
	data    any
	adopted bool // data is a *T owned by the box
}

var nothingBox = &box{data: Nothing{}}

// value returns the payload itself, dereferencing an adopted pointer.
func (b *box) value() any {
	if b.adopted {
		return reflect.ValueOf(b.data).Elem().Interface()
	}
	return b.data
}

// Var is an immutable handle to a value of any type. Vars are cheap to copy
// and copies share the same payload. The zero Var holds Nothing.
//
// Every operation is forwarded to the payload's customization points (see
// points.go). Operations the payload does not implement return a neutral
// result: Nothing, false, zero or NaN. No operation modifies the receiver;
// those that "change" a value return a new Var.
type Var struct {
	self *box
}

// New wraps x in a Var. A Var argument is returned unchanged and nil yields
// Nothing.
func New(x any) Var {
	switch x := x.(type) {
	case nil, Nothing:
		return Var{}
	case Var:
		return x
	}
	return Var{self: &box{data: x}}
}

// Adopt wraps the value p points to without copying it. The Var reports T as
// its type, so Cast[T] returns p itself. The caller must not modify *p once
// it has been adopted. Adopting a nil pointer or a *Nothing yields the zero
// Var.
func Adopt[T any](p *T) Var {
	if p == nil {
		return Var{}
	}
	if _, ok := any(p).(*Nothing); ok {
		return Var{}
	}
	return Var{self: &box{data: p, adopted: true}}
}

func (v Var) unbox() *box {
	if v.self == nil {
		return nothingBox
	}
	return v.self
}

// payload returns the value used for dispatch. For an adopted payload this
// is the pointer, whose method set includes the value receiver methods.
func (v Var) payload() any {
	return v.unbox().data
}

// Cast returns the payload as a *T if its type is exactly T, and nil
// otherwise. No conversion is attempted.
func Cast[T any](v Var) *T {
	b := v.unbox()
	if b.adopted {
		p, _ := b.data.(*T)
		return p
	}
	if reflect.TypeOf(b.data) != reflect.TypeFor[T]() {
		return nil
	}
	x := b.data.(T)
	return &x
}

// Copy returns a copy of the payload if its type is exactly T, and the zero
// value of T otherwise.
func Copy[T any](v Var) T {
	if p := Cast[T](v); p != nil {
		return *p
	}
	var zero T
	return zero
}

// As is like Copy but reports a type mismatch as an error.
func As[T any](v Var) (T, error) {
	if p := Cast[T](v); p != nil {
		return *p, nil
	}
	var zero T
	return zero, NewError(ErrorTypeTypeMismatch,
		fmt.Sprintf("cannot use %s as %s", v.ID(), reflect.TypeFor[T]()))
}

// Value returns the payload, or nil when v holds Nothing. An adopted payload
// is returned by value.
func (v Var) Value() any {
	if v.IsNothing() {
		return nil
	}
	return v.unbox().value()
}

// ID returns the dynamic type of the payload.
func (v Var) ID() reflect.Type {
	b := v.unbox()
	t := reflect.TypeOf(b.data)
	if b.adopted {
		return t.Elem()
	}
	return t
}

// IsType reports whether v and other hold payloads of the same type.
func (v Var) IsType(other Var) bool {
	return v.ID() == other.ID()
}

// Hash returns the payload's hash. By default this is the FNV-1a hash of the
// payload's representation, so values with the same Repr hash alike.
func (v Var) Hash() uint64 {
	if p, ok := v.payload().(Hasher); ok {
		return p.Hash()
	}
	h := fnv.New64a()
	v.Repr(h)
	return h.Sum64()
}

// Type returns the payload's type name, defaulting to its Go type.
func (v Var) Type() string {
	if p, ok := v.payload().(Typer); ok {
		return p.Type()
	}
	return v.ID().String()
}

// Cat returns the payload's category.
func (v Var) Cat() string {
	if p, ok := v.payload().(Categorizer); ok {
		return p.Cat()
	}
	return "uncategorized"
}

// Help returns the payload's documentation.
func (v Var) Help() string {
	if p, ok := v.payload().(Helper); ok {
		return p.Help()
	}
	return "No object documentation available."
}

// Is reports the truth value of the payload, false by default.
func (v Var) Is() bool {
	if p, ok := v.payload().(Booler); ok {
		return p.Is()
	}
	return false
}

// IsNothing reports whether v holds Nothing. This is a type check and does
// not depend on the payload's truth value.
func (v Var) IsNothing() bool {
	_, ok := v.unbox().data.(Nothing)
	return ok
}

// IsSomething is the negation of IsNothing.
func (v Var) IsSomething() bool {
	return !v.IsNothing()
}

// Str writes the display form of the payload to w. Payloads without a
// Displayer are printed with fmt.
func (v Var) Str(w io.Writer) {
	if p, ok := v.payload().(Displayer); ok {
		p.Str(w)
		return
	}
	fmt.Fprint(w, v.unbox().value())
}

// Repr writes the round-trip form of the payload to w. Payloads without a
// Representer are written as nothing.
func (v Var) Repr(w io.Writer) {
	if p, ok := v.payload().(Representer); ok {
		p.Repr(w)
		return
	}
	Nothing{}.Repr(w)
}

// String returns the display form of v.
func (v Var) String() string {
	return Str(v)
}

// GoString returns the round-trip form of v, used by the %#v verb.
func (v Var) GoString() string {
	return Repr(v)
}

// OpCode returns the payload's operator tag, NothingOp by default.
func (v Var) OpCode() OpCode {
	if p, ok := v.payload().(OpCoder); ok {
		return p.OpCode()
	}
	return NothingOp
}

// Comp compares v with other: 0 when equal, positive when v is greater,
// negative when v is less and NaN when the two are not comparable.
func (v Var) Comp(other Var) float64 {
	if p, ok := v.payload().(Comparer); ok {
		return p.Comp(other)
	}
	return math.NaN()
}

// The relational operators are derived from Comp alone. A NaN comparison
// makes all of them false except Ne.

func (v Var) Eq(other Var) bool { return v.Comp(other) == 0 }
func (v Var) Ne(other Var) bool { return v.Comp(other) != 0 }
func (v Var) Lt(other Var) bool { return v.Comp(other) < 0 }
func (v Var) Le(other Var) bool { return v.Comp(other) <= 0 }
func (v Var) Gt(other Var) bool { return v.Comp(other) > 0 }
func (v Var) Ge(other Var) bool { return v.Comp(other) >= 0 }

// Str returns the display form of v.
func Str(v Var) string {
	var sb strings.Builder
	v.Str(&sb)
	return sb.String()
}

// Repr returns the round-trip form of v.
func Repr(v Var) string {
	var sb strings.Builder
	v.Repr(&sb)
	return sb.String()
}
