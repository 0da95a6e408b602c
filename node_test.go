package cell

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeJoinAndWalk(t *testing.T) {
	n := New(Node{})
	require.False(t, n.Is())
	require.Equal(t, 0, n.Size())

	n = n.Join(New(num(1))).Join(New(num(2))).Join(New(num(3)))
	require.True(t, n.Is())
	require.Equal(t, 3, n.Size())
	require.Equal(t, "3 2 1", Repr(n))
	require.Equal(t, "node", n.Type())

	require.Equal(t, "1 2 3", Repr(n.Reverse()))
	require.Equal(t, "3 2 1", Repr(n), "reverse must not modify the original")
}

func TestNodeNothingAbsorption(t *testing.T) {
	n := New(NewNode(New(num(1))))
	require.Equal(t, n, n.Join(Var{}))
}

func TestNodeNextEndsWithEmptyNode(t *testing.T) {
	n := New(NewNode(New(num(1))))
	rest := n.Next()
	require.True(t, rest.IsSomething())
	require.False(t, rest.Is())
	require.Equal(t, "node", rest.Type())
}

func TestNodeComp(t *testing.T) {
	build := func(xs ...int) Var {
		n := New(Node{})
		for _, x := range xs {
			n = n.Join(New(num(x)))
		}
		return n
	}
	require.True(t, build(1, 2).Eq(build(1, 2)))
	require.True(t, math.IsNaN(build(1, 2).Comp(build(1, 3))))
	require.True(t, math.IsNaN(build(1, 2).Comp(build(1))))
	require.True(t, math.IsNaN(build(1).Comp(New(num(1)))))
	require.True(t, build().Eq(build()))
}

func TestNodeSharesSuffix(t *testing.T) {
	base := New(NewNode(New(num(1))))
	a := base.Join(New(num(2)))
	b := base.Join(New(num(3)))
	require.Equal(t, base, a.Next())
	require.Equal(t, base, b.Next())
	require.Equal(t, "2 1", Repr(a))
	require.Equal(t, "3 1", Repr(b))
}
