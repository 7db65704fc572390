package builder

import (
	"testing"

	"prism/internal/diag"
	"prism/internal/ir"
)

func TestCheckPassesValidExpressionThrough(t *testing.T) {
	s, bag := newTestSession(t)
	e := s.Int(1)
	if got := s.Check(e); got != e {
		t.Fatalf("Check must return a valid expression unchanged")
	}
	if bag.Len() != 0 {
		t.Fatalf("no diagnostics expected, got %d", bag.Len())
	}
}

func TestCheckReportsNilOnceAndPoisonStaysQuiet(t *testing.T) {
	s, bag := newTestSession(t)
	sentinel := s.Check(nil)
	if !sentinel.IsPoison() {
		t.Fatalf("Check(nil) must yield the poison sentinel")
	}
	if bag.ErrorCount() != 1 {
		t.Fatalf("expected exactly one report, got %d", bag.ErrorCount())
	}
	// The sentinel is a valid, inert input for every later operation.
	out := s.ConvertBinary(sentinel, ir.BinAdd, s.Int(1))
	if !out.IsPoison() {
		t.Fatalf("poison must propagate")
	}
	out = s.ConvertIndex(out, sentinel)
	if !out.IsPoison() {
		t.Fatalf("poison must propagate through indexing")
	}
	if bag.ErrorCount() != 1 {
		t.Fatalf("propagation must not re-report; got %d errors", bag.ErrorCount())
	}
}

func TestCoerceWidensIntToFloat(t *testing.T) {
	s, bag := newTestSession(t)
	b := s.TypeContext().Builtins()
	out := s.Coerce(s.Int(3), b.Float)
	if out.Type != b.Float || out.Kind != ir.ExprConstruct {
		t.Fatalf("expected an inserted float conversion, got %s %s",
			out.Kind, s.TypeContext().Name(out.Type))
	}
	if bag.Len() != 0 {
		t.Fatalf("valid coercion must not report")
	}
}

func TestCoerceIdentityInsertsNothing(t *testing.T) {
	s, _ := newTestSession(t)
	e := s.Float(1)
	if got := s.Coerce(e, s.TypeContext().Builtins().Float); got != e {
		t.Fatalf("identity coercion must return the operand unchanged")
	}
}

func TestCoerceRejectsNarrowing(t *testing.T) {
	s, bag := newTestSession(t)
	b := s.TypeContext().Builtins()
	out := s.Coerce(s.Float(1.5), b.Int)
	if !out.IsPoison() {
		t.Fatalf("float to int must fail")
	}
	if bag.ErrorCount() != 1 || bag.Items()[0].Code != diag.ExprTypeMismatch {
		t.Fatalf("expected one type-mismatch report, got %+v", bag.Items())
	}
}

func TestConvertBinaryWidensMixedArithmetic(t *testing.T) {
	s, _ := newTestSession(t)
	b := s.TypeContext().Builtins()
	out := s.ConvertBinary(s.Int(2), ir.BinAdd, s.Float(0.5))
	if out.Type != b.Float {
		t.Fatalf("int + float should widen to float, got %s", s.TypeContext().Name(out.Type))
	}
	bin := out.Data.(ir.BinaryData)
	if bin.Left.Kind != ir.ExprConstruct {
		t.Fatalf("the int side should carry the inserted widening")
	}
}

func TestConvertBinaryRejectsBoolArithmetic(t *testing.T) {
	s, bag := newTestSession(t)
	out := s.ConvertBinary(s.Bool(true), ir.BinAdd, s.Bool(false))
	if !out.IsPoison() {
		t.Fatalf("bool + bool must fail")
	}
	if bag.ErrorCount() != 1 || bag.Items()[0].Code != diag.ExprBadOperator {
		t.Fatalf("expected one unsupported-operator report, got %+v", bag.Items())
	}
}

func TestConvertBinaryComparisonsYieldBool(t *testing.T) {
	s, _ := newTestSession(t)
	b := s.TypeContext().Builtins()
	out := s.ConvertBinary(s.Int(1), ir.BinLess, s.Int(2))
	if out.Type != b.Bool {
		t.Fatalf("comparison should yield bool")
	}
	eq := s.ConvertBinary(s.Construct(b.Vec2, s.Float(1)), ir.BinEq, s.Construct(b.Vec2, s.Float(1)))
	if eq.Type != b.Bool {
		t.Fatalf("vector equality should yield bool")
	}
}

func TestConvertBinaryVectorScalarSplat(t *testing.T) {
	s, _ := newTestSession(t)
	b := s.TypeContext().Builtins()
	v := s.Construct(b.Vec3, s.Float(1), s.Float(2), s.Float(3))
	out := s.ConvertBinary(v, ir.BinMul, s.Float(2))
	if out.Type != b.Vec3 {
		t.Fatalf("vec3 * float should stay vec3, got %s", s.TypeContext().Name(out.Type))
	}
}

func TestConvertBinaryLogicalRequiresBool(t *testing.T) {
	s, bag := newTestSession(t)
	b := s.TypeContext().Builtins()
	good := s.ConvertBinary(s.Bool(true), ir.BinLogicalAnd, s.Bool(false))
	if good.Type != b.Bool || bag.Len() != 0 {
		t.Fatalf("bool && bool should succeed")
	}
	bad := s.ConvertBinary(s.Int(1), ir.BinLogicalAnd, s.Bool(true))
	if !bad.IsPoison() {
		t.Fatalf("int && bool must fail")
	}
}

func TestConvertBinaryAssignment(t *testing.T) {
	s, bag := newTestSession(t)
	b := s.TypeContext().Builtins()
	v := s.NewVar("x", b.Float, ir.Modifiers{})
	out := s.ConvertBinary(s.Ref(v), ir.BinAssign, s.Int(1))
	if out.Type != b.Float || bag.Len() != 0 {
		t.Fatalf("assignment with widening initializer should succeed")
	}
	lit := s.ConvertBinary(s.Float(1), ir.BinAssign, s.Float(2))
	if !lit.IsPoison() || bag.Items()[0].Code != diag.ExprNotAssignable {
		t.Fatalf("assigning to a literal must fail with not-assignable")
	}
}

func TestConvertBinaryAssignmentToConstFails(t *testing.T) {
	s, bag := newTestSession(t)
	b := s.TypeContext().Builtins()
	v := s.NewVar("k", b.Float, ir.Modifiers{Flags: ir.ModifierConst})
	out := s.ConvertBinary(s.Ref(v), ir.BinAssign, s.Float(2))
	if !out.IsPoison() || bag.Items()[0].Code != diag.ExprNotAssignable {
		t.Fatalf("assigning to a const variable must fail")
	}
}

func TestConvertBinaryCompoundChecksBaseOperator(t *testing.T) {
	s, bag := newTestSession(t)
	b := s.TypeContext().Builtins()
	flag := s.NewVar("flag", b.Bool, ir.Modifiers{})
	out := s.ConvertBinary(s.Ref(flag), ir.BinAddAssign, s.Bool(true))
	if !out.IsPoison() {
		t.Fatalf("bool += bool must fail")
	}
	if bag.Items()[0].Code != diag.ExprBadOperator {
		t.Fatalf("expected bad-operator, got %+v", bag.Items()[0])
	}
}

func TestConvertPrefixAndPostfix(t *testing.T) {
	s, bag := newTestSession(t)
	b := s.TypeContext().Builtins()
	neg := s.ConvertPrefix(ir.UnMinus, s.Float(1))
	if neg.Type != b.Float {
		t.Fatalf("unary minus keeps the operand type")
	}
	not := s.ConvertPrefix(ir.UnLogicalNot, s.Bool(true))
	if not.Type != b.Bool {
		t.Fatalf("logical not yields bool")
	}
	v := s.NewVar("i", b.Int, ir.Modifiers{})
	inc := s.ConvertPostfix(s.Ref(v), ir.UnIncrement)
	if inc.Type != b.Int || bag.Len() != 0 {
		t.Fatalf("i++ on an int variable should succeed")
	}
	bad := s.ConvertPostfix(s.Int(1), ir.UnIncrement)
	if !bad.IsPoison() || bag.Items()[0].Code != diag.ExprNotAssignable {
		t.Fatalf("1++ must fail with not-assignable")
	}
	badNot := s.ConvertPrefix(ir.UnLogicalNot, s.Int(1))
	if !badNot.IsPoison() {
		t.Fatalf("!int must fail")
	}
}

func TestConvertIndex(t *testing.T) {
	s, bag := newTestSession(t)
	b := s.TypeContext().Builtins()
	arr := s.TypeContext().Array(b.Float, 4)
	v := s.NewVar("values", arr, ir.Modifiers{})
	out := s.ConvertIndex(s.Ref(v), s.Int(2))
	if out.Type != b.Float || bag.Len() != 0 {
		t.Fatalf("indexing float[4] should yield float")
	}
	m := s.NewVar("m", b.Mat3, ir.Modifiers{})
	col := s.ConvertIndex(s.Ref(m), s.Int(0))
	if col.Type != b.Vec3 {
		t.Fatalf("indexing mat3 should yield vec3")
	}
	badBase := s.ConvertIndex(s.Float(1), s.Int(0))
	if !badBase.IsPoison() || bag.Items()[0].Code != diag.ExprBadIndex {
		t.Fatalf("indexing a scalar must fail")
	}
	badIndex := s.ConvertIndex(s.Ref(v), s.Float(0))
	if !badIndex.IsPoison() {
		t.Fatalf("a float index must fail")
	}
}

func TestConstructVector(t *testing.T) {
	s, bag := newTestSession(t)
	b := s.TypeContext().Builtins()
	full := s.Construct(b.Vec3, s.Float(1), s.Float(2), s.Float(3))
	if full.Type != b.Vec3 || bag.Len() != 0 {
		t.Fatalf("vec3 from three scalars should succeed")
	}
	splat := s.Construct(b.Vec4, s.Float(0))
	if splat.Type != b.Vec4 {
		t.Fatalf("single-scalar splat should succeed")
	}
	mixed := s.Construct(b.Vec4, s.Construct(b.Vec2, s.Float(1), s.Float(2)), s.Float(3), s.Float(4))
	if mixed.Type != b.Vec4 || bag.Len() != 0 {
		t.Fatalf("vec4(vec2, float, float) should succeed")
	}
	short := s.Construct(b.Vec3, s.Float(1), s.Float(2))
	if !short.IsPoison() || bag.Items()[0].Code != diag.ExprArgCount {
		t.Fatalf("component shortfall must fail with arg-count")
	}
}

func TestConstructScalarAndArray(t *testing.T) {
	s, bag := newTestSession(t)
	b := s.TypeContext().Builtins()
	conv := s.Construct(b.Float, s.Int(1))
	if conv.Type != b.Float || bag.Len() != 0 {
		t.Fatalf("float(int) is an explicit conversion and should succeed")
	}
	arr := s.TypeContext().Array(b.Float, 2)
	ok := s.Construct(arr, s.Float(1), s.Int(2))
	if ok.Type != arr || bag.Len() != 0 {
		t.Fatalf("array constructor with coercible elements should succeed")
	}
	bad := s.Construct(arr, s.Float(1))
	if !bad.IsPoison() {
		t.Fatalf("wrong element count must fail")
	}
	noCtor := s.Construct(b.Sampler, s.Int(0))
	if !noCtor.IsPoison() {
		t.Fatalf("sampler has no constructor")
	}
}

func TestSwizzle(t *testing.T) {
	s, bag := newTestSession(t)
	b := s.TypeContext().Builtins()
	v := s.NewVar("v", b.Vec4, ir.Modifiers{})
	xyz := s.Swizzle(s.Ref(v), "xyz")
	if xyz.Type != b.Vec3 || bag.Len() != 0 {
		t.Fatalf("v.xyz should be vec3")
	}
	x := s.Swizzle(s.Ref(v), "x")
	if x.Type != b.Float {
		t.Fatalf("single component should be scalar")
	}
	v2 := s.NewVar("uv", b.Vec2, ir.Modifiers{})
	bad := s.Swizzle(s.Ref(v2), "xyz")
	if !bad.IsPoison() || bag.Items()[0].Code != diag.ExprBadSwizzle {
		t.Fatalf("z on a vec2 must fail")
	}
	notVec := s.Swizzle(s.Float(1), "x")
	if !notVec.IsPoison() {
		t.Fatalf("swizzling a scalar must fail")
	}
}
