package types

import "fmt"

// Context bundles the type interner with the queries the front end needs
// while type-checking DSL expressions. It is owned by the compiler service
// and borrowed (read-mostly) by every build session.
type Context struct {
	interner *Interner
	builtins Builtins
}

// NewContext builds a fresh type context with its own interner.
func NewContext() *Context {
	in := NewInterner()
	return &Context{interner: in, builtins: in.Builtins()}
}

// Interner exposes the underlying interner for callers that need to
// construct aggregate types (arrays, non-square matrices).
func (c *Context) Interner() *Interner { return c.interner }

// Builtins returns TypeIDs for the built-in types.
func (c *Context) Builtins() Builtins { return c.builtins }

// Lookup returns the descriptor for a TypeID.
func (c *Context) Lookup(id TypeID) (Type, bool) { return c.interner.Lookup(id) }

// Array interns a fixed-size array type.
func (c *Context) Array(elem TypeID, count uint32) TypeID {
	return c.interner.Intern(MakeArray(elem, count))
}

// Vector interns a vector with the given scalar component type.
func (c *Context) Vector(component TypeID, rows uint8) TypeID {
	return c.interner.Intern(MakeVector(component, rows))
}

// IsScalar reports whether id is one of bool/int/uint/float.
func (c *Context) IsScalar(id TypeID) bool {
	t, ok := c.Lookup(id)
	if !ok {
		return false
	}
	switch t.Kind {
	case KindBool, KindInt, KindUInt, KindFloat:
		return true
	}
	return false
}

// IsVector reports whether id is a vector type.
func (c *Context) IsVector(id TypeID) bool {
	t, ok := c.Lookup(id)
	return ok && t.Kind == KindVector
}

// IsMatrix reports whether id is a matrix type.
func (c *Context) IsMatrix(id TypeID) bool {
	t, ok := c.Lookup(id)
	return ok && t.Kind == KindMatrix
}

// IsArray reports whether id is an array type.
func (c *Context) IsArray(id TypeID) bool {
	t, ok := c.Lookup(id)
	return ok && t.Kind == KindArray
}

// ComponentType returns the scalar component of a scalar/vector/matrix type.
func (c *Context) ComponentType(id TypeID) TypeID {
	t, ok := c.Lookup(id)
	if !ok {
		return NoTypeID
	}
	switch t.Kind {
	case KindBool, KindInt, KindUInt, KindFloat:
		return id
	case KindVector, KindMatrix:
		return t.Elem
	}
	return NoTypeID
}

// ComponentCount returns the number of scalar slots a constructor for id
// consumes: 1 for scalars, rows for vectors, cols*rows for matrices.
func (c *Context) ComponentCount(id TypeID) int {
	t, ok := c.Lookup(id)
	if !ok {
		return 0
	}
	switch t.Kind {
	case KindBool, KindInt, KindUInt, KindFloat:
		return 1
	case KindVector:
		return int(t.Rows)
	case KindMatrix:
		return int(t.Cols) * int(t.Rows)
	}
	return 0
}

// ElementType returns the type produced by indexing into id: array element,
// vector component, or matrix column. ok is false for non-indexable types.
func (c *Context) ElementType(id TypeID) (TypeID, bool) {
	t, found := c.Lookup(id)
	if !found {
		return NoTypeID, false
	}
	switch t.Kind {
	case KindArray:
		return t.Elem, true
	case KindVector:
		return t.Elem, true
	case KindMatrix:
		return c.Vector(t.Elem, t.Rows), true
	}
	return NoTypeID, false
}

// IsIntegral reports whether id is int or uint (scalar only).
func (c *Context) IsIntegral(id TypeID) bool {
	t, ok := c.Lookup(id)
	if !ok {
		return false
	}
	return t.Kind == KindInt || t.Kind == KindUInt
}

// Name renders a human-readable type name ("float", "vec3", "int[4]", "mat2").
func (c *Context) Name(id TypeID) string {
	t, ok := c.Lookup(id)
	if !ok {
		return "<invalid>"
	}
	switch t.Kind {
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUInt:
		return "uint"
	case KindFloat:
		return "float"
	case KindSampler:
		return "sampler"
	case KindVector:
		comp, _ := c.Lookup(t.Elem)
		switch comp.Kind {
		case KindFloat:
			return fmt.Sprintf("vec%d", t.Rows)
		case KindInt:
			return fmt.Sprintf("ivec%d", t.Rows)
		case KindUInt:
			return fmt.Sprintf("uvec%d", t.Rows)
		case KindBool:
			return fmt.Sprintf("bvec%d", t.Rows)
		}
		return fmt.Sprintf("vector<%s,%d>", comp.Kind, t.Rows)
	case KindMatrix:
		if t.Cols == t.Rows {
			return fmt.Sprintf("mat%d", t.Cols)
		}
		return fmt.Sprintf("mat%dx%d", t.Cols, t.Rows)
	case KindArray:
		return fmt.Sprintf("%s[%d]", c.Name(t.Elem), t.Count)
	}
	return "<invalid>"
}
