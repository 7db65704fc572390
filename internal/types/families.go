package types

// FamilyMask describes broad categories of types an operator accepts.
type FamilyMask uint32

const (
	FamilyNone FamilyMask = 0
	FamilyBool FamilyMask = 1 << iota
	FamilySignedInt
	FamilyUnsignedInt
	FamilyFloat
	FamilyVector
	FamilyMatrix
	FamilyArray
	FamilySampler
)

const (
	FamilyIntegral = FamilySignedInt | FamilyUnsignedInt
	FamilyNumeric  = FamilyIntegral | FamilyFloat
)

// FamilyOf classifies a type into the operator family lattice.
func (c *Context) FamilyOf(id TypeID) FamilyMask {
	t, ok := c.Lookup(id)
	if !ok {
		return FamilyNone
	}
	switch t.Kind {
	case KindBool:
		return FamilyBool
	case KindInt:
		return FamilySignedInt
	case KindUInt:
		return FamilyUnsignedInt
	case KindFloat:
		return FamilyFloat
	case KindVector:
		return FamilyVector
	case KindMatrix:
		return FamilyMatrix
	case KindArray:
		return FamilyArray
	case KindSampler:
		return FamilySampler
	}
	return FamilyNone
}

// ComponentFamily classifies the scalar component of scalars, vectors and
// matrices; aggregate kinds without a scalar component map to FamilyNone.
func (c *Context) ComponentFamily(id TypeID) FamilyMask {
	comp := c.ComponentType(id)
	if comp == NoTypeID {
		return FamilyNone
	}
	return c.FamilyOf(comp)
}

// ImplicitlyCoercible reports whether `from` converts to `to` without an
// explicit constructor: identity, scalar numeric widening (int/uint to
// float), or the elementwise equivalent for same-shape vectors.
func (c *Context) ImplicitlyCoercible(from, to TypeID) bool {
	if from == to {
		return from != NoTypeID
	}
	ft, ok := c.Lookup(from)
	if !ok {
		return false
	}
	tt, ok := c.Lookup(to)
	if !ok {
		return false
	}
	if isScalarKind(ft.Kind) && isScalarKind(tt.Kind) {
		return scalarWidens(ft.Kind, tt.Kind)
	}
	if ft.Kind == KindVector && tt.Kind == KindVector && ft.Rows == tt.Rows {
		return c.ImplicitlyCoercible(ft.Elem, tt.Elem)
	}
	return false
}

// CoerceCost returns the number of implicit conversion steps needed to
// turn `from` into `to`: 0 for identity, 1 for a scalar widening or its
// elementwise vector equivalent. ok is false when no implicit conversion
// exists.
func (c *Context) CoerceCost(from, to TypeID) (int, bool) {
	if from == to {
		if from == NoTypeID {
			return 0, false
		}
		return 0, true
	}
	if c.ImplicitlyCoercible(from, to) {
		return 1, true
	}
	return 0, false
}

// CommonType picks the type both operands of a binary expression coerce to.
// For mixed vector/scalar and matrix/scalar operands the aggregate side wins
// when the scalar coerces to its component type (componentwise semantics).
func (c *Context) CommonType(a, b TypeID) (TypeID, bool) {
	if a == b {
		return a, a != NoTypeID
	}
	if c.ImplicitlyCoercible(a, b) {
		return b, true
	}
	if c.ImplicitlyCoercible(b, a) {
		return a, true
	}
	at, aok := c.Lookup(a)
	bt, bok := c.Lookup(b)
	if !aok || !bok {
		return NoTypeID, false
	}
	// vector/matrix against scalar: splat the scalar side.
	if (at.Kind == KindVector || at.Kind == KindMatrix) && isScalarKind(bt.Kind) &&
		c.ImplicitlyCoercible(b, at.Elem) {
		return a, true
	}
	if (bt.Kind == KindVector || bt.Kind == KindMatrix) && isScalarKind(at.Kind) &&
		c.ImplicitlyCoercible(a, bt.Elem) {
		return b, true
	}
	return NoTypeID, false
}

func isScalarKind(k Kind) bool {
	switch k {
	case KindBool, KindInt, KindUInt, KindFloat:
		return true
	}
	return false
}

func scalarWidens(from, to Kind) bool {
	if to != KindFloat {
		return false
	}
	return from == KindInt || from == KindUInt
}
