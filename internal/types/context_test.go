package types

import "testing"

func TestContextNames(t *testing.T) {
	c := NewContext()
	b := c.Builtins()
	cases := []struct {
		id   TypeID
		want string
	}{
		{b.Float, "float"},
		{b.Vec3, "vec3"},
		{b.IVec2, "ivec2"},
		{b.BVec4, "bvec4"},
		{b.Mat2, "mat2"},
		{c.Array(b.Int, 4), "int[4]"},
	}
	for _, tc := range cases {
		if got := c.Name(tc.id); got != tc.want {
			t.Fatalf("Name(%d) = %q, want %q", tc.id, got, tc.want)
		}
	}
}

func TestElementType(t *testing.T) {
	c := NewContext()
	b := c.Builtins()
	if elem, ok := c.ElementType(b.Vec3); !ok || elem != b.Float {
		t.Fatalf("vec3 element should be float")
	}
	if col, ok := c.ElementType(b.Mat3); !ok || col != b.Vec3 {
		t.Fatalf("mat3 column should be vec3")
	}
	arr := c.Array(b.UInt, 8)
	if elem, ok := c.ElementType(arr); !ok || elem != b.UInt {
		t.Fatalf("array element should be uint")
	}
	if _, ok := c.ElementType(b.Float); ok {
		t.Fatalf("float must not be indexable")
	}
}

func TestImplicitCoercion(t *testing.T) {
	c := NewContext()
	b := c.Builtins()
	if !c.ImplicitlyCoercible(b.Int, b.Float) {
		t.Fatalf("int should widen to float")
	}
	if !c.ImplicitlyCoercible(b.IVec3, b.Vec3) {
		t.Fatalf("ivec3 should widen to vec3 elementwise")
	}
	if c.ImplicitlyCoercible(b.Float, b.Int) {
		t.Fatalf("float must not narrow to int")
	}
	if c.ImplicitlyCoercible(b.Vec2, b.Vec3) {
		t.Fatalf("vector shapes must match")
	}
	if c.ImplicitlyCoercible(b.Bool, b.Float) {
		t.Fatalf("bool never coerces to numeric")
	}
}

func TestCoerceCost(t *testing.T) {
	c := NewContext()
	b := c.Builtins()
	if cost, ok := c.CoerceCost(b.Float, b.Float); !ok || cost != 0 {
		t.Fatalf("identity should cost 0")
	}
	if cost, ok := c.CoerceCost(b.Int, b.Float); !ok || cost != 1 {
		t.Fatalf("widening should cost 1")
	}
	if _, ok := c.CoerceCost(b.Float, b.Int); ok {
		t.Fatalf("narrowing has no implicit cost")
	}
	if _, ok := c.CoerceCost(NoTypeID, NoTypeID); ok {
		t.Fatalf("the invalid type never coerces")
	}
}

func TestCommonType(t *testing.T) {
	c := NewContext()
	b := c.Builtins()
	if ct, ok := c.CommonType(b.Int, b.Float); !ok || ct != b.Float {
		t.Fatalf("int+float should meet at float")
	}
	if ct, ok := c.CommonType(b.Vec3, b.Float); !ok || ct != b.Vec3 {
		t.Fatalf("vec3+float should splat to vec3")
	}
	if ct, ok := c.CommonType(b.Mat2, b.Int); !ok || ct != b.Mat2 {
		t.Fatalf("mat2+int should splat to mat2, got %v ok=%v", ct, ok)
	}
	if _, ok := c.CommonType(b.Int, b.UInt); ok {
		t.Fatalf("int and uint must not unify implicitly")
	}
	if _, ok := c.CommonType(b.Vec2, b.Vec3); ok {
		t.Fatalf("mismatched vector shapes must not unify")
	}
}
