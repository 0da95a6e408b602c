package cell

import (
	"io"
	"math"
)

// Nothing is the empty value. It is the payload of the zero Var, the result
// of any unsupported operation, and the marker for an exhausted sequence.
// Nothing is never stored as an element: joining or linking it onto a
// sequence leaves the sequence unchanged.
type Nothing struct{}

func (Nothing) Type() string { return "nothing" }

func (Nothing) Is() bool { return false }

func (Nothing) Comp(Var) float64 { return math.NaN() }

func (Nothing) Str(w io.Writer) { io.WriteString(w, "nothing") }

func (Nothing) Repr(w io.Writer) { io.WriteString(w, "nothing") }
