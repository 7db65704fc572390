package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	KindBool
	KindInt
	KindUInt
	KindFloat
	KindVector
	KindMatrix
	KindArray
	KindSampler
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
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
	case KindVector:
		return "vector"
	case KindMatrix:
		return "matrix"
	case KindArray:
		return "array"
	case KindSampler:
		return "sampler"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Type is a compact descriptor for any supported shading-language type.
type Type struct {
	Kind Kind
	Elem TypeID // component type for vectors, column type source for matrices, element type for arrays
	Cols uint8  // matrix columns
	Rows uint8  // vector size / matrix rows
	Count uint32 // array element count
}

// Descriptor helpers ---------------------------------------------------------

// MakeScalar describes one of the scalar primitives (bool/int/uint/float).
func MakeScalar(kind Kind) Type {
	return Type{Kind: kind}
}

// MakeVector describes a vector of `rows` components of the given scalar type.
func MakeVector(component TypeID, rows uint8) Type {
	return Type{Kind: KindVector, Elem: component, Rows: rows}
}

// MakeMatrix describes a cols x rows matrix of float components.
func MakeMatrix(component TypeID, cols, rows uint8) Type {
	return Type{Kind: KindMatrix, Elem: component, Cols: cols, Rows: rows}
}

// MakeArray describes a fixed-size array of element type.
func MakeArray(elem TypeID, count uint32) Type {
	return Type{Kind: KindArray, Elem: elem, Count: count}
}
