package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the built-in shading-language types.
type Builtins struct {
	Invalid TypeID
	Void    TypeID
	Bool    TypeID
	Int     TypeID
	UInt    TypeID
	Float   TypeID

	Vec2, Vec3, Vec4    TypeID
	IVec2, IVec3, IVec4 TypeID
	UVec2, UVec3, UVec4 TypeID
	BVec2, BVec3, BVec4 TypeID

	Mat2, Mat3, Mat4 TypeID

	Sampler TypeID
}

// Interner provides stable TypeIDs by hashing structural descriptors.
type Interner struct {
	types    []Type
	index    map[typeKey]TypeID
	builtins Builtins
}

// NewInterner constructs an interner seeded with the built-in types.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[typeKey]TypeID, 64),
	}
	b := &in.builtins
	b.Invalid = in.internRaw(Type{Kind: KindInvalid})
	b.Void = in.Intern(Type{Kind: KindVoid})
	b.Bool = in.Intern(MakeScalar(KindBool))
	b.Int = in.Intern(MakeScalar(KindInt))
	b.UInt = in.Intern(MakeScalar(KindUInt))
	b.Float = in.Intern(MakeScalar(KindFloat))

	b.Vec2 = in.Intern(MakeVector(b.Float, 2))
	b.Vec3 = in.Intern(MakeVector(b.Float, 3))
	b.Vec4 = in.Intern(MakeVector(b.Float, 4))
	b.IVec2 = in.Intern(MakeVector(b.Int, 2))
	b.IVec3 = in.Intern(MakeVector(b.Int, 3))
	b.IVec4 = in.Intern(MakeVector(b.Int, 4))
	b.UVec2 = in.Intern(MakeVector(b.UInt, 2))
	b.UVec3 = in.Intern(MakeVector(b.UInt, 3))
	b.UVec4 = in.Intern(MakeVector(b.UInt, 4))
	b.BVec2 = in.Intern(MakeVector(b.Bool, 2))
	b.BVec3 = in.Intern(MakeVector(b.Bool, 3))
	b.BVec4 = in.Intern(MakeVector(b.Bool, 4))

	b.Mat2 = in.Intern(MakeMatrix(b.Float, 2, 2))
	b.Mat3 = in.Intern(MakeMatrix(b.Float, 3, 3))
	b.Mat4 = in.Intern(MakeMatrix(b.Float, 4, 4))

	b.Sampler = in.Intern(Type{Kind: KindSampler})
	return in
}

// Builtins returns TypeIDs for the built-in types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	key := typeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internRaw(t)
}

// internRaw adds the descriptor to the storage without consulting the map.
func (in *Interner) internRaw(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	key := typeKey(t)
	in.index[key] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

type typeKey struct {
	Kind  Kind
	Elem  TypeID
	Cols  uint8
	Rows  uint8
	Count uint32
}
