package cell

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func reprs(items []Var) []string {
	out := make([]string, len(items))
	for i, x := range items {
		out[i] = Repr(x)
	}
	return out
}

func requireBalanced(t *testing.T, e Expression) {
	t.Helper()
	a, b := e.lead.size, e.last.size
	if a+b < 2 {
		return
	}
	require.LessOrEqual(t, a, BalanceLimit*b, "lead=%d last=%d", a, b)
	require.LessOrEqual(t, b, BalanceLimit*a, "lead=%d last=%d", a, b)
}

func TestExpressionRender(t *testing.T) {
	tests := []struct {
		name string
		seq  Var
		want string
	}{
		{name: "empty", seq: List(), want: "()"},
		{name: "single", seq: List(num(1)), want: "(1)"},
		{name: "linked", seq: New(Expression{}).Link(New(num(1))).Link(New(num(2))).Link(New(num(3))), want: "(1 2 3)"},
		{name: "joined", seq: New(Expression{}).Join(New(num(3))).Join(New(num(2))).Join(New(num(1))), want: "(1 2 3)"},
		{name: "nested", seq: List(List(nums(1, 2)...), num(3), List()), want: "((1 2) 3 ())"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Repr(tt.seq))
			require.Equal(t, tt.want, Str(tt.seq))
		})
	}
}

func TestExpressionStrUsesElementDisplay(t *testing.T) {
	seq := List("a", num(2))
	require.Equal(t, "(a 2)", Str(seq))
	require.Equal(t, "(nothing 2)", Repr(seq))
}

func TestExpressionComp(t *testing.T) {
	a := List(nums(1, 2)...)
	b := New(Expression{}).Join(New(num(2))).Join(New(num(1)))
	c := List(nums(1, 3)...)

	require.Equal(t, 0.0, a.Comp(b))
	require.True(t, a.Eq(b))

	require.True(t, math.IsNaN(a.Comp(c)))
	require.False(t, a.Eq(c))
	require.False(t, a.Lt(c))
	require.False(t, a.Gt(c))
	require.False(t, a.Le(c))
	require.False(t, a.Ge(c))
	require.True(t, a.Ne(c))

	require.True(t, math.IsNaN(a.Comp(List(nums(1, 2, 3)...))))
	require.True(t, math.IsNaN(a.Comp(New(num(1)))))
	require.True(t, List().Eq(List()))
}

func TestExpressionNothingAbsorption(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5} {
		s := List(nums(seqInts(n)...)...)
		require.Equal(t, s, s.Join(Var{}))
		require.Equal(t, s, s.Link(Var{}))
		require.Equal(t, n, s.Link(Var{}).Size())
	}
	require.Equal(t, 2, List(num(1), nil, Nothing{}, Var{}, num(2)).Size())

	nothing := Nothing{}
	one := List(num(1))
	require.Equal(t, 1, one.Link(Adopt(&nothing)).Size())
	require.Equal(t, "(1)", Repr(one.Join(Adopt(&nothing))))
}

func TestExpressionEmptyAccess(t *testing.T) {
	e := List()
	require.False(t, e.Is())
	require.True(t, e.Lead().IsNothing())
	require.True(t, e.Last().IsNothing())
	require.Equal(t, "()", Repr(e.Next()))
	require.Equal(t, "()", Repr(e.Prev()))
	require.Equal(t, "expression", e.Next().Type())
}

func TestExpressionLeadLast(t *testing.T) {
	for n := 1; n <= 12; n++ {
		s := List(nums(seqInts(n)...)...)
		require.Equal(t, "1", Repr(s.Lead()), "n=%d", n)
		require.Equal(t, strconv.Itoa(n), Repr(s.Last()), "n=%d", n)
	}
}

func TestExpressionPeekOneSided(t *testing.T) {
	one := NewExpression(num(9))
	require.Equal(t, 0, one.lead.size)
	require.Equal(t, "9", Repr(one.Lead()))
	require.Equal(t, "9", Repr(one.Last()))

	rev := Copy[Expression](one.Reverse())
	require.Equal(t, 0, rev.last.size)
	require.Equal(t, "9", Repr(rev.Last()))
}

func TestExpressionReverse(t *testing.T) {
	for n := 0; n <= 9; n++ {
		s := List(nums(seqInts(n)...)...)
		r := s.Reverse()
		require.True(t, r.Reverse().Eq(s), "n=%d", n)
		require.Equal(t, Repr(s.Last()), Repr(r.Lead()), "n=%d", n)
		require.Equal(t, n, r.Size())

		want := reprs(Copy[Expression](s).Items())
		for i, j := 0, len(want)-1; i < j; i, j = i+1, j-1 {
			want[i], want[j] = want[j], want[i]
		}
		require.Equal(t, want, reprs(Copy[Expression](r).Items()))
	}
}

func TestExpressionSizeMatchesNextCount(t *testing.T) {
	for n := 0; n <= 20; n++ {
		s := List(nums(seqInts(n)...)...)
		steps := 0
		for s.Is() {
			s = s.Next()
			steps++
		}
		require.Equal(t, n, steps)
	}
}

func TestExpressionBalanceAfterPushes(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	var e Expression
	for i := range 500 {
		if rng.IntN(2) == 0 {
			e = e.join(New(num(i)))
		} else {
			e = e.link(New(num(i)))
		}
		requireBalanced(t, e)
	}

	e = Expression{}
	for i := range 200 {
		e = e.link(New(num(i)))
		requireBalanced(t, e)
	}
	e = Expression{}
	for i := range 200 {
		e = e.join(New(num(i)))
		requireBalanced(t, e)
	}
}

func TestExpressionMatchesSliceModel(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	var e Expression
	var model []string
	for i := range 2000 {
		switch rng.IntN(4) {
		case 0:
			e = e.join(New(num(i)))
			model = append([]string{strconv.Itoa(i)}, model...)
		case 1:
			e = e.link(New(num(i)))
			model = append(model, strconv.Itoa(i))
		case 2:
			if len(model) > 0 {
				require.Equal(t, model[0], Repr(e.Lead()))
				model = model[1:]
			}
			e = e.next()
		case 3:
			if len(model) > 0 {
				require.Equal(t, model[len(model)-1], Repr(e.Last()))
				model = model[:len(model)-1]
			}
			e = e.prev()
		}
		require.Equal(t, len(model), e.Size())
		requireBalanced(t, e)
	}
	require.Equal(t, model, reprs(e.Items()))
}

func TestExpressionPersistence(t *testing.T) {
	base := List(nums(1, 2, 3)...)
	grown := base.Link(New(num(4))).Join(New(num(0)))
	shrunk := base.Next().Prev()
	flipped := base.Reverse()

	require.Equal(t, "(1 2 3)", Repr(base))
	require.Equal(t, "(0 1 2 3 4)", Repr(grown))
	require.Equal(t, "(2)", Repr(shrunk))
	require.Equal(t, "(3 2 1)", Repr(flipped))
	require.Equal(t, 3, base.Size())
}

func TestExpressionAdd(t *testing.T) {
	a := List(nums(1, 2)...)
	b := List(nums(3, 4, 5)...)

	sum := a.Add(b)
	require.Equal(t, "(1 2 3 4 5)", Repr(sum))
	require.Equal(t, "(1 2)", Repr(a))
	require.Equal(t, "(3 4 5)", Repr(b))
	require.Equal(t, "(1 2)", Repr(a.Add(List())))
	require.Equal(t, "(3 4 5)", Repr(List().Add(b)))
	require.True(t, a.Add(New(num(3))).IsNothing())
	requireBalanced(t, Copy[Expression](sum))
}

func TestExpressionHas(t *testing.T) {
	s := List(nums(1, 2, 3)...)
	require.True(t, s.Has(New(num(2))))
	require.False(t, s.Has(New(num(4))))
	require.False(t, s.Has(Var{}))
	require.True(t, List(List(num(1))).Has(List(num(1))))
}

func TestExpressionHashFollowsRepr(t *testing.T) {
	a := List(nums(1, 2)...)
	b := New(Expression{}).Join(New(num(2))).Join(New(num(1)))
	require.Equal(t, a.Hash(), b.Hash())
	require.NotEqual(t, a.Hash(), a.Reverse().Hash())
}

func TestExpressionLongRender(t *testing.T) {
	n := 100
	s := List(nums(seqInts(n)...)...)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strconv.Itoa(i + 1)
	}
	require.Equal(t, "("+strings.Join(parts, " ")+")", Repr(s))
}

func TestExpressionAppendPrepend(t *testing.T) {
	var e Expression
	e = e.Append(New(num(2))).Append(New(num(3))).Prepend(New(num(1)))
	e = e.Append(Var{}).Prepend(Var{})
	require.Equal(t, "(1 2 3)", Repr(New(e)))
	require.Equal(t, 3, e.Size())
}

// seqInts returns 1..n.
func seqInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}
