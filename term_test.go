package cell

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTermPushPop(t *testing.T) {
	s := New(Term{})
	for _, x := range []int{1, 2, 3} {
		s = s.Join(New(num(x)))
	}
	require.Equal(t, 3, s.Size())
	require.Equal(t, "3", Repr(s.Lead()))

	var popped []string
	for s.Is() {
		popped = append(popped, Repr(s.Lead()))
		s = s.Next()
	}
	require.Equal(t, []string{"3", "2", "1"}, popped)
	require.Equal(t, 0, s.Size())
	require.True(t, s.Lead().IsNothing())
	require.Equal(t, "()", Repr(s))

	empty := s.Next()
	require.Equal(t, 0, empty.Size())
	require.Equal(t, "term", empty.Type())
}

func TestNewTerm(t *testing.T) {
	require.Equal(t, 1, NewTerm(New(num(4))).Size())
	require.Equal(t, 0, NewTerm(Var{}).Size())
	require.Equal(t, "(4)", Repr(New(NewTerm(New(num(4))))))
}

func TestTermNothingAbsorption(t *testing.T) {
	s := New(NewTerm(New(num(1))))
	require.Equal(t, s, s.Join(Var{}))
	require.Equal(t, 1, s.Join(Var{}).Size())
}

func TestTermReverse(t *testing.T) {
	s := New(Term{}).Join(New(num(1))).Join(New(num(2))).Join(New(num(3)))
	r := s.Reverse()
	require.Equal(t, "(1 2 3)", Repr(r))
	require.Equal(t, "(3 2 1)", Repr(s))
	require.Equal(t, 3, r.Size())
	require.True(t, r.Reverse().Eq(s))
}

func TestTermComp(t *testing.T) {
	a := New(Term{}).Join(New(num(1))).Join(New(num(2)))
	b := New(Term{}).Join(New(num(1))).Join(New(num(2)))
	c := New(Term{}).Join(New(num(2))).Join(New(num(2)))
	require.Equal(t, 0.0, a.Comp(b))
	require.True(t, math.IsNaN(a.Comp(c)))
	require.True(t, math.IsNaN(a.Comp(a.Next())))
	require.True(t, New(Term{}).Eq(New(Term{})))
	require.True(t, math.IsNaN(a.Comp(List(nums(2, 1)...))))
}
