package types

import "testing"

func TestInternerBuiltins(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if b.Float == NoTypeID || b.Vec4 == NoTypeID || b.Mat3 == NoTypeID {
		t.Fatalf("builtins not initialized")
	}
	vec4, _ := in.Lookup(b.Vec4)
	if vec4.Kind != KindVector || vec4.Rows != 4 || vec4.Elem != b.Float {
		t.Fatalf("vec4 descriptor wrong: %+v", vec4)
	}
}

func TestInternerDeduplicatesDescriptors(t *testing.T) {
	in := NewInterner()
	elem := in.Builtins().Float
	arr1 := in.Intern(MakeArray(elem, 4))
	arr2 := in.Intern(MakeArray(elem, 4))
	if arr1 != arr2 {
		t.Fatalf("array types should be deduplicated")
	}
	arr3 := in.Intern(MakeArray(elem, 8))
	if arr1 == arr3 {
		t.Fatalf("arrays of different length must differ")
	}
}

func TestInternerVectorShapeAffectsIdentity(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	v3 := in.Intern(MakeVector(b.Float, 3))
	iv3 := in.Intern(MakeVector(b.Int, 3))
	if v3 != b.Vec3 || iv3 != b.IVec3 {
		t.Fatalf("builtin vectors should round-trip through Intern")
	}
	if v3 == iv3 {
		t.Fatalf("component type must affect identity")
	}
}
