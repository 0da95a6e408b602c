package cell

import (
	"fmt"
	"io"
	"math"
)

// num is a minimal ordered payload for exercising comparisons.
type num int

func (n num) Is() bool { return n != 0 }

func (n num) Comp(other Var) float64 {
	o := Cast[num](other)
	if o == nil {
		return math.NaN()
	}
	return float64(n - *o)
}

func (n num) Repr(w io.Writer) { fmt.Fprint(w, int(n)) }

func (n num) Add(other Var) Var {
	o := Cast[num](other)
	if o == nil {
		return Var{}
	}
	return New(n + *o)
}

// label renders its text as its representation.
type label string

func (l label) Repr(w io.Writer) { io.WriteString(w, string(l)) }

// loud is truthy but otherwise uses every default.
type loud struct{}

func (loud) Is() bool { return true }

func nums(xs ...int) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = num(x)
	}
	return out
}
