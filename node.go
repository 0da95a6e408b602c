package cell

import (
	"io"
	"math"
)

// Node is a cons cell: an element and a link to the rest of the chain. The
// link holds another Node, or Nothing at the end of the chain. Nodes are
// never modified, so chains that share a suffix share its cells.
type Node struct {
	data Var
	next Var
}

// NewNode returns a single cell holding x. NewNode(Nothing) is the empty
// node.
func NewNode(x Var) Node {
	return Node{data: x}
}

// walk calls fn with each element from the head of the chain until fn
// returns false.
func (n Node) walk(fn func(x Var) bool) {
	if !n.Is() {
		return
	}
	for cur := n; ; {
		if !fn(cur.data) {
			return
		}
		next, ok := cur.next.payload().(Node)
		if !ok {
			return
		}
		cur = next
	}
}

func (Node) Type() string { return "node" }

func (n Node) Is() bool { return n.data.IsSomething() }

// Comp returns 0 when other is a chain with equal elements in the same
// order, and NaN otherwise.
func (n Node) Comp(other Var) float64 {
	o := Cast[Node](other)
	if o == nil {
		return math.NaN()
	}
	var a, b []Var
	n.walk(func(x Var) bool { a = append(a, x); return true })
	o.walk(func(x Var) bool { b = append(b, x); return true })
	if !equalItems(a, b) {
		return math.NaN()
	}
	return 0
}

func (n Node) Str(w io.Writer) {
	n.write(w, Var.Str)
}

func (n Node) Repr(w io.Writer) {
	n.write(w, Var.Repr)
}

func (n Node) write(w io.Writer, render func(Var, io.Writer)) {
	first := true
	n.walk(func(x Var) bool {
		if !first {
			io.WriteString(w, " ")
		}
		first = false
		render(x, w)
		return true
	})
}

func (n Node) Size() int {
	size := 0
	n.walk(func(Var) bool { size++; return true })
	return size
}

func (n Node) Lead() Var { return n.data }

// Join returns a new cell holding other in front of n. Joining Nothing
// returns n unchanged.
func (n Node) Join(other Var) Var {
	if other.IsNothing() {
		return New(n)
	}
	a := Node{data: other}
	if n.Is() {
		a.next = New(n)
	}
	return New(a)
}

// Next returns the rest of the chain, or the empty node at its end.
func (n Node) Next() Var {
	if n.next.IsNothing() {
		return New(Node{})
	}
	return n.next
}

func (n Node) Reverse() Var {
	if n.next.IsNothing() {
		return New(n)
	}
	a := New(Node{})
	n.walk(func(x Var) bool {
		a = a.Join(x)
		return true
	})
	return a
}

// equalItems reports whether a and b hold equal elements in the same order.
func equalItems(a, b []Var) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Ne(b[i]) {
			return false
		}
	}
	return true
}
