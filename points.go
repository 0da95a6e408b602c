package cell

import "io"

// The interfaces below are the customization points a payload may implement
// to take part in the Var API. A payload implements only the points its
// semantics need; every other operation falls back to the default
// documented on the matching Var method.

// Typer names the payload's type.
type Typer interface {
	Type() string
}

// Categorizer names the payload's category.
type Categorizer interface {
	Cat() string
}

// Helper describes the payload for interactive help.
type Helper interface {
	Help() string
}

// Hasher overrides the default hash of the payload's representation.
type Hasher interface {
	Hash() uint64
}

// Booler computes the truth value of the payload.
type Booler interface {
	Is() bool
}

// Displayer writes the display form of the payload.
type Displayer interface {
	Str(w io.Writer)
}

// Representer writes a form of the payload that can be read back.
type Representer interface {
	Repr(w io.Writer)
}

// Comparer compares the payload with another value. It returns 0 when the
// two are equal, a positive number when the payload is greater, a negative
// number when it is less and NaN when they cannot be compared.
type Comparer interface {
	Comp(other Var) float64
}

type (
	// Adder wraps the Add method.
	Adder interface{ Add(other Var) Var }

	// Subtracter wraps the Sub method.
	Subtracter interface{ Sub(other Var) Var }

	// Multiplier wraps the Mul method.
	Multiplier interface{ Mul(other Var) Var }

	// Divider wraps the Div method.
	Divider interface{ Div(other Var) Var }

	// Modder wraps the Mod method.
	Modder interface{ Mod(other Var) Var }

	// FloorDivider wraps the FDiv method.
	FloorDivider interface{ FDiv(other Var) Var }

	// Remainderer wraps the Rem method.
	Remainderer interface{ Rem(other Var) Var }

	// Powerer wraps the Pow method.
	Powerer interface{ Pow(other Var) Var }

	// Rooter wraps the Root method.
	Rooter interface{ Root(other Var) Var }
)

type (
	// BitAnder wraps the BAnd method.
	BitAnder interface{ BAnd(other Var) Var }

	// BitOrer wraps the BOr method.
	BitOrer interface{ BOr(other Var) Var }

	// BitXorer wraps the BXor method.
	BitXorer interface{ BXor(other Var) Var }

	// BitNegater wraps the BNeg method.
	BitNegater interface{ BNeg() Var }

	// UnaryAdder wraps the UAdd method.
	UnaryAdder interface{ UAdd() Var }

	// UnaryNegater wraps the UNeg method.
	UnaryNegater interface{ UNeg() Var }
)

type (
	// Haser reports whether the payload contains an element.
	Haser interface{ Has(other Var) bool }

	// Sizer reports the number of elements in the payload.
	Sizer interface{ Size() int }

	// Leader returns the lead element of the payload.
	Leader interface{ Lead() Var }

	// Laster returns the last element of the payload.
	Laster interface{ Last() Var }

	// Joiner places an element in front of the payload.
	Joiner interface{ Join(other Var) Var }

	// Linker places an element behind the payload.
	Linker interface{ Link(other Var) Var }

	// Nexter drops the lead element of the payload.
	Nexter interface{ Next() Var }

	// Prever drops the last element of the payload.
	Prever interface{ Prev() Var }

	// Reverser reverses the order of the payload's elements.
	Reverser interface{ Reverse() Var }

	// Getter retrieves a keyed element.
	Getter interface{ Get(key Var) Var }

	// Setter returns the payload with a keyed element replaced.
	Setter interface{ Set(key, val Var) Var }

	// Deleter returns the payload with a keyed element removed.
	Deleter interface{ Del(key Var) Var }
)

// OpCoder reports the role of the payload in the surrounding grammar.
type OpCoder interface {
	OpCode() OpCode
}

// OpCode is an opaque operator tag. The core stores and compares tags but
// never interprets them; the table mapping syntax to tags lives with the
// interpreter.
type OpCode int

// NothingOp is the tag of a value with no operator role.
const NothingOp OpCode = 0
