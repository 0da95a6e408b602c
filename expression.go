package cell

import (
	"io"
	"math"
)

// BalanceLimit is the largest ratio allowed between the two stacks of an
// Expression before elements are moved from the larger to the smaller.
const BalanceLimit = 2

// Expression is a persistent double-ended sequence built from two stacks.
// The lead stack holds the front of the sequence with the first element on
// top; the last stack holds the back with the final element on top. Pushing
// or popping at either end is amortized O(1), and every update returns a new
// Expression that shares unchanged cells with the old one.
type Expression struct {
	lead Term
	last Term
}

// NewExpression returns an Expression holding xs in order. Each element is
// wrapped with New and linked to the back; nil and Nothing are skipped.
func NewExpression(xs ...any) Expression {
	var e Expression
	for _, x := range xs {
		e = e.link(New(x))
	}
	return e
}

// List is NewExpression wrapped in a Var.
func List(xs ...any) Var {
	return New(NewExpression(xs...))
}

func (e Expression) size() int {
	return e.lead.size + e.last.size
}

func (e Expression) join(x Var) Expression {
	if x.IsNothing() {
		return e
	}
	e.lead = e.lead.push(x)
	return e.balance()
}

func (e Expression) link(x Var) Expression {
	if x.IsNothing() {
		return e
	}
	e.last = e.last.push(x)
	return e.balance()
}

func (e Expression) next() Expression {
	if e.size() == 0 {
		return Expression{}
	}
	if e.lead.size == 0 {
		e.lead, e.last = e.last.reverse(), Term{}
	}
	e.lead = e.lead.pop()
	return e.balance()
}

func (e Expression) prev() Expression {
	if e.size() == 0 {
		return Expression{}
	}
	if e.last.size == 0 {
		e.last, e.lead = e.lead.reverse(), Term{}
	}
	e.last = e.last.pop()
	return e.balance()
}

func (e Expression) first() Var {
	if e.lead.size > 0 {
		return e.lead.top()
	}
	return e.last.bottom()
}

func (e Expression) final() Var {
	if e.last.size > 0 {
		return e.last.top()
	}
	return e.lead.bottom()
}

// balance moves elements across when one stack outgrows the other by more
// than BalanceLimit.
func (e Expression) balance() Expression {
	switch {
	case overloaded(e.lead, e.last):
		e.lead, e.last = transfer(e.lead, e.last)
	case overloaded(e.last, e.lead):
		e.last, e.lead = transfer(e.last, e.lead)
	}
	return e
}

func overloaded(a, b Term) bool {
	return a.size > 1 && a.size > BalanceLimit*b.size
}

// transfer moves the half of from nearer its bottom underneath to, keeping
// the order of the whole sequence. It returns the new from and to.
func transfer(from, to Term) (Term, Term) {
	keep := from.size - from.size/BalanceLimit
	kept := make([]Var, 0, keep)
	for range keep {
		kept = append(kept, from.top())
		from = from.pop()
	}

	// The element left on top of from now belongs at the bottom of to.
	var moved Term
	for ; from.size > 0; from = from.pop() {
		moved = moved.push(from.top())
	}
	for r := to.reverse(); r.size > 0; r = r.pop() {
		moved = moved.push(r.top())
	}

	var rest Term
	for i := len(kept) - 1; i >= 0; i-- {
		rest = rest.push(kept[i])
	}
	return rest, moved
}

// Items returns the elements front to back.
func (e Expression) Items() []Var {
	items := make([]Var, 0, e.size())
	items = append(items, e.lead.items()...)
	back := e.last.items()
	for i := len(back) - 1; i >= 0; i-- {
		items = append(items, back[i])
	}
	return items
}

// Append is Link without the Var wrapper, for building an Expression in a
// loop.
func (e Expression) Append(x Var) Expression { return e.link(x) }

// Prepend is Join without the Var wrapper.
func (e Expression) Prepend(x Var) Expression { return e.join(x) }

func (Expression) Type() string { return "expression" }

func (e Expression) Is() bool { return e.size() > 0 }

func (e Expression) Size() int { return e.size() }

func (e Expression) Lead() Var { return e.first() }

func (e Expression) Last() Var { return e.final() }

// Join returns the Expression with other in front. Joining Nothing returns
// the Expression unchanged.
func (e Expression) Join(other Var) Var { return New(e.join(other)) }

// Link returns the Expression with other at the back. Linking Nothing
// returns the Expression unchanged.
func (e Expression) Link(other Var) Var { return New(e.link(other)) }

func (e Expression) Next() Var { return New(e.next()) }

func (e Expression) Prev() Var { return New(e.prev()) }

// Reverse swaps the two stacks.
func (e Expression) Reverse() Var {
	return New(Expression{lead: e.last, last: e.lead})
}

// Has reports whether some element equals other.
func (e Expression) Has(other Var) bool {
	for _, x := range e.Items() {
		if x.Eq(other) {
			return true
		}
	}
	return false
}

// Comp returns 0 when other is an Expression of the same length with equal
// elements front to back. Expressions are not ordered, so every other case
// is NaN.
func (e Expression) Comp(other Var) float64 {
	o := Cast[Expression](other)
	if o == nil || o.size() != e.size() {
		return math.NaN()
	}
	if !equalItems(e.Items(), o.Items()) {
		return math.NaN()
	}
	return 0
}

// Add concatenates other, which must be an Expression, onto the back.
func (e Expression) Add(other Var) Var {
	o := Cast[Expression](other)
	if o == nil {
		return Var{}
	}
	a, b := e, *o
	for b.size() > 0 {
		x := b.first()
		b = b.next()
		a = a.link(x)
	}
	return New(a)
}

func (e Expression) Str(w io.Writer) {
	e.write(w, Var.Str)
}

func (e Expression) Repr(w io.Writer) {
	e.write(w, Var.Repr)
}

func (e Expression) write(w io.Writer, render func(Var, io.Writer)) {
	io.WriteString(w, "(")
	for i, x := range e.Items() {
		if i > 0 {
			io.WriteString(w, " ")
		}
		render(x, w)
	}
	io.WriteString(w, ")")
}
