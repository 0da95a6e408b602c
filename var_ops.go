package cell

// Arithmetic and bitwise operations. Each returns Nothing when the payload
// does not implement the operation.

// Add returns the sum of v and other, Nothing by default.
func (v Var) Add(other Var) Var {
	if p, ok := v.payload().(Adder); ok {
		return p.Add(other)
	}
	return Var{}
}

// Sub returns the difference of v and other, Nothing by default.
func (v Var) Sub(other Var) Var {
	if p, ok := v.payload().(Subtracter); ok {
		return p.Sub(other)
	}
	return Var{}
}

// Mul returns the product of v and other, Nothing by default.
func (v Var) Mul(other Var) Var {
	if p, ok := v.payload().(Multiplier); ok {
		return p.Mul(other)
	}
	return Var{}
}

// Div returns v divided by other, Nothing by default.
func (v Var) Div(other Var) Var {
	if p, ok := v.payload().(Divider); ok {
		return p.Div(other)
	}
	return Var{}
}

// Mod returns v modulo other, Nothing by default.
func (v Var) Mod(other Var) Var {
	if p, ok := v.payload().(Modder); ok {
		return p.Mod(other)
	}
	return Var{}
}

// FDiv is floor division.
func (v Var) FDiv(other Var) Var {
	if p, ok := v.payload().(FloorDivider); ok {
		return p.FDiv(other)
	}
	return Var{}
}

// Rem returns the remainder of v divided by other, Nothing by default.
func (v Var) Rem(other Var) Var {
	if p, ok := v.payload().(Remainderer); ok {
		return p.Rem(other)
	}
	return Var{}
}

// Pow returns v raised to the power other, Nothing by default.
func (v Var) Pow(other Var) Var {
	if p, ok := v.payload().(Powerer); ok {
		return p.Pow(other)
	}
	return Var{}
}

// Root returns the other-th root of v, Nothing by default.
func (v Var) Root(other Var) Var {
	if p, ok := v.payload().(Rooter); ok {
		return p.Root(other)
	}
	return Var{}
}

// BAnd returns the bitwise and of v and other, Nothing by default.
func (v Var) BAnd(other Var) Var {
	if p, ok := v.payload().(BitAnder); ok {
		return p.BAnd(other)
	}
	return Var{}
}

// BOr returns the bitwise or of v and other, Nothing by default.
func (v Var) BOr(other Var) Var {
	if p, ok := v.payload().(BitOrer); ok {
		return p.BOr(other)
	}
	return Var{}
}

// BXor returns the bitwise exclusive or of v and other, Nothing by default.
func (v Var) BXor(other Var) Var {
	if p, ok := v.payload().(BitXorer); ok {
		return p.BXor(other)
	}
	return Var{}
}

// BNeg returns the bitwise complement of v, Nothing by default.
func (v Var) BNeg() Var {
	if p, ok := v.payload().(BitNegater); ok {
		return p.BNeg()
	}
	return Var{}
}

// UAdd is the unary identity.
func (v Var) UAdd() Var {
	if p, ok := v.payload().(UnaryAdder); ok {
		return p.UAdd()
	}
	return Var{}
}

// UNeg is the unary complement.
func (v Var) UNeg() Var {
	if p, ok := v.payload().(UnaryNegater); ok {
		return p.UNeg()
	}
	return Var{}
}

// Collection operations. Has defaults to false, Size to 0 and the rest to
// Nothing.

// Has reports whether v contains other, false by default.
func (v Var) Has(other Var) bool {
	if p, ok := v.payload().(Haser); ok {
		return p.Has(other)
	}
	return false
}

// Size returns the number of elements in v, 0 by default.
func (v Var) Size() int {
	if p, ok := v.payload().(Sizer); ok {
		return p.Size()
	}
	return 0
}

// Lead returns the first element.
func (v Var) Lead() Var {
	if p, ok := v.payload().(Leader); ok {
		return p.Lead()
	}
	return Var{}
}

// Last returns the final element.
func (v Var) Last() Var {
	if p, ok := v.payload().(Laster); ok {
		return p.Last()
	}
	return Var{}
}

// Join returns v with other placed in front.
func (v Var) Join(other Var) Var {
	if p, ok := v.payload().(Joiner); ok {
		return p.Join(other)
	}
	return Var{}
}

// Link returns v with other placed behind.
func (v Var) Link(other Var) Var {
	if p, ok := v.payload().(Linker); ok {
		return p.Link(other)
	}
	return Var{}
}

// Next returns v without its first element.
func (v Var) Next() Var {
	if p, ok := v.payload().(Nexter); ok {
		return p.Next()
	}
	return Var{}
}

// Prev returns v without its final element.
func (v Var) Prev() Var {
	if p, ok := v.payload().(Prever); ok {
		return p.Prev()
	}
	return Var{}
}

// Reverse returns v with its elements in reverse order, Nothing by default.
func (v Var) Reverse() Var {
	if p, ok := v.payload().(Reverser); ok {
		return p.Reverse()
	}
	return Var{}
}

// Get returns the element stored under key, Nothing by default.
func (v Var) Get(key Var) Var {
	if p, ok := v.payload().(Getter); ok {
		return p.Get(key)
	}
	return Var{}
}

// Set returns v with key mapped to val, Nothing by default.
func (v Var) Set(key, val Var) Var {
	if p, ok := v.payload().(Setter); ok {
		return p.Set(key, val)
	}
	return Var{}
}

// Del returns v without the element stored under key, Nothing by default.
func (v Var) Del(key Var) Var {
	if p, ok := v.payload().(Deleter); ok {
		return p.Del(key)
	}
	return Var{}
}

// PopLead returns the first element of *seq and replaces *seq with the
// remainder.
func PopLead(seq *Var) Var {
	x := seq.Lead()
	*seq = seq.Next()
	return x
}

// PopLast returns the final element of *seq and replaces *seq with the
// remainder.
func PopLast(seq *Var) Var {
	x := seq.Last()
	*seq = seq.Prev()
	return x
}

// Drop applies Next n times.
func Drop(v Var, n int) Var {
	for ; n > 0; n-- {
		v = v.Next()
	}
	return v
}

// DropLast applies Prev n times.
func DropLast(v Var, n int) Var {
	for ; n > 0; n-- {
		v = v.Prev()
	}
	return v
}

// Items drains v front to back with PopLead. It stops at the first Nothing,
// which marks an exhausted sequence.
func Items(v Var) []Var {
	items := make([]Var, 0, v.Size())
	for v.Is() {
		x := PopLead(&v)
		if x.IsNothing() {
			break
		}
		items = append(items, x)
	}
	return items
}
