package cell

import (
	"io"
	"math"
)

// Term is a stack of values: a chain of Nodes with a cached length. Pushing
// and popping at the top are O(1) and share the existing chain.
type Term struct {
	chain Var // head Node, or Nothing when empty
	size  int
}

// NewTerm returns a stack holding x, or an empty stack if x is Nothing.
func NewTerm(x Var) Term {
	return Term{}.push(x)
}

// push returns t with x on top. Pushing Nothing returns t.
func (t Term) push(x Var) Term {
	if x.IsNothing() {
		return t
	}
	head := t.chain
	if t.size == 0 {
		head = New(Node{})
	}
	return Term{chain: head.Join(x), size: t.size + 1}
}

// pop returns t without its top element. Popping an empty stack returns an
// empty stack.
func (t Term) pop() Term {
	if t.size <= 1 {
		return Term{}
	}
	return Term{chain: t.chain.Next(), size: t.size - 1}
}

// top returns the top element, or Nothing.
func (t Term) top() Var {
	return t.chain.Lead()
}

// bottom returns the element at the bottom of the stack, or Nothing.
func (t Term) bottom() Var {
	var x Var
	t.each(func(v Var) bool { x = v; return true })
	return x
}

// reverse returns a new stack with the elements in opposite order.
func (t Term) reverse() Term {
	if t.size <= 1 {
		return t
	}
	return Term{chain: t.chain.Reverse(), size: t.size}
}

// each calls fn with the elements from top to bottom until fn returns false.
func (t Term) each(fn func(x Var) bool) {
	if n, ok := t.chain.payload().(Node); ok {
		n.walk(fn)
	}
}

func (t Term) items() []Var {
	items := make([]Var, 0, t.size)
	t.each(func(x Var) bool { items = append(items, x); return true })
	return items
}

func (Term) Type() string { return "term" }

func (t Term) Is() bool { return t.size > 0 }

func (t Term) Size() int { return t.size }

func (t Term) Lead() Var { return t.top() }

func (t Term) Join(other Var) Var { return New(t.push(other)) }

func (t Term) Next() Var { return New(t.pop()) }

func (t Term) Reverse() Var { return New(t.reverse()) }

// Comp returns 0 when other is a stack of the same size with equal elements
// in the same order, and NaN otherwise.
func (t Term) Comp(other Var) float64 {
	o := Cast[Term](other)
	if o == nil || o.size != t.size {
		return math.NaN()
	}
	if t.size == 0 {
		return 0
	}
	return t.chain.Comp(o.chain)
}

func (t Term) Str(w io.Writer) {
	io.WriteString(w, "(")
	if t.size > 0 {
		t.chain.Str(w)
	}
	io.WriteString(w, ")")
}

func (t Term) Repr(w io.Writer) {
	io.WriteString(w, "(")
	if t.size > 0 {
		t.chain.Repr(w)
	}
	io.WriteString(w, ")")
}
