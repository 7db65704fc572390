package builder

import (
	"fmt"
	"strings"

	"prism/internal/diag"
	"prism/internal/ir"
	"prism/internal/symbols"
	"prism/internal/types"
)

// The conversion pipeline turns raw operand expressions plus an operator
// into a type-checked IR node, or fails gracefully. Every failure here is
// locally recoverable: the operation reports once through the error hook
// and returns the poison sentinel, which all later operations propagate
// silently. The caller can keep composing a larger tree; whether the build
// as a whole succeeded is the compiler's end-of-session tally.

// Check reports an error if the argument is nil and substitutes the poison
// sentinel; a non-nil argument is returned unmodified.
func (s *Session) Check(e *ir.Expr) *ir.Expr {
	if e == nil {
		s.report(diag.ExprNullOperand,
			"operand is missing (was an earlier DSL call already reported?)")
		return ir.Poison()
	}
	return e
}

// Coerce inserts the minimal implicit conversion needed to make e
// assignable to target, or reports a type mismatch and returns poison.
func (s *Session) Coerce(e *ir.Expr, target types.TypeID) *ir.Expr {
	e = s.Check(e)
	if e.IsPoison() {
		return e
	}
	if cost, ok := s.tctx.CoerceCost(e.Type, target); ok {
		if cost == 0 {
			return e
		}
		return &ir.Expr{
			Kind: ir.ExprConstruct,
			Type: target,
			Data: ir.ConstructData{Args: []*ir.Expr{e}},
		}
	}
	s.report(diag.ExprTypeMismatch, fmt.Sprintf("expected '%s', but found '%s'",
		s.tctx.Name(target), s.tctx.Name(e.Type)))
	return ir.Poison()
}

// Construct builds a value-construction expression for target from the
// argument expressions, validating count and coercibility against the
// target's constructor rules.
func (s *Session) Construct(target types.TypeID, args ...*ir.Expr) *ir.Expr {
	checked := make([]*ir.Expr, len(args))
	for i, a := range args {
		checked[i] = s.Check(a)
		if checked[i].IsPoison() {
			return ir.Poison()
		}
	}
	t, ok := s.tctx.Lookup(target)
	if !ok {
		s.report(diag.ExprBadConstructor, "cannot construct a value of an invalid type")
		return ir.Poison()
	}
	switch t.Kind {
	case types.KindBool, types.KindInt, types.KindUInt, types.KindFloat:
		return s.constructScalar(target, checked)
	case types.KindVector, types.KindMatrix:
		return s.constructComposite(target, checked)
	case types.KindArray:
		return s.constructArray(target, t, checked)
	}
	s.report(diag.ExprBadConstructor,
		fmt.Sprintf("type '%s' has no constructor", s.tctx.Name(target)))
	return ir.Poison()
}

// Scalar constructors are explicit conversions: any scalar argument is
// accepted (float(myInt), bool(flag), ...).
func (s *Session) constructScalar(target types.TypeID, args []*ir.Expr) *ir.Expr {
	if len(args) != 1 {
		s.report(diag.ExprArgCount, fmt.Sprintf(
			"constructor '%s' expects 1 argument, but found %d",
			s.tctx.Name(target), len(args)))
		return ir.Poison()
	}
	if !s.tctx.IsScalar(args[0].Type) {
		s.report(diag.ExprBadConstructor, fmt.Sprintf(
			"cannot construct '%s' from '%s'",
			s.tctx.Name(target), s.tctx.Name(args[0].Type)))
		return ir.Poison()
	}
	return &ir.Expr{Kind: ir.ExprConstruct, Type: target, Data: ir.ConstructData{Args: args}}
}

// Vector and matrix constructors accept either a single scalar (splat for
// vectors, diagonal for matrices) or any mix of scalars and vectors whose
// component counts sum to exactly the target's slot count. Component types
// convert explicitly, so vec3(1, 2, 3) is fine.
func (s *Session) constructComposite(target types.TypeID, args []*ir.Expr) *ir.Expr {
	want := s.tctx.ComponentCount(target)
	if len(args) == 1 && s.tctx.IsScalar(args[0].Type) {
		return &ir.Expr{Kind: ir.ExprConstruct, Type: target, Data: ir.ConstructData{Args: args}}
	}
	have := 0
	for _, a := range args {
		if !s.tctx.IsScalar(a.Type) && !s.tctx.IsVector(a.Type) {
			s.report(diag.ExprBadConstructor, fmt.Sprintf(
				"invalid argument of type '%s' to constructor '%s'",
				s.tctx.Name(a.Type), s.tctx.Name(target)))
			return ir.Poison()
		}
		have += s.tctx.ComponentCount(a.Type)
	}
	if have != want {
		s.report(diag.ExprArgCount, fmt.Sprintf(
			"constructor '%s' expects %d scalar components, but found %d",
			s.tctx.Name(target), want, have))
		return ir.Poison()
	}
	return &ir.Expr{Kind: ir.ExprConstruct, Type: target, Data: ir.ConstructData{Args: args}}
}

func (s *Session) constructArray(target types.TypeID, t types.Type, args []*ir.Expr) *ir.Expr {
	if len(args) != int(t.Count) {
		s.report(diag.ExprArgCount, fmt.Sprintf(
			"constructor '%s' expects %d elements, but found %d",
			s.tctx.Name(target), t.Count, len(args)))
		return ir.Poison()
	}
	coerced := make([]*ir.Expr, len(args))
	for i, a := range args {
		coerced[i] = s.Coerce(a, t.Elem)
		if coerced[i].IsPoison() {
			return ir.Poison()
		}
	}
	return &ir.Expr{Kind: ir.ExprConstruct, Type: target, Data: ir.ConstructData{Args: coerced}}
}

// ConvertBinary validates the operator against the operand types, coerces
// both sides to their common type and builds the resulting node.
func (s *Session) ConvertBinary(left *ir.Expr, op ir.BinaryOp, right *ir.Expr) *ir.Expr {
	left = s.Check(left)
	right = s.Check(right)
	if left.IsPoison() || right.IsPoison() {
		return ir.Poison()
	}
	if op.IsAssignment() {
		return s.convertAssignment(left, op, right)
	}
	spec, ok := binarySpecTable[op]
	if !ok {
		s.report(diag.ExprBadOperator, fmt.Sprintf("unsupported operator '%s'", op))
		return ir.Poison()
	}
	common, ok := s.tctx.CommonType(left.Type, right.Type)
	if !ok {
		s.report(diag.ExprBadOperator, s.operandError(op, left.Type, right.Type))
		return ir.Poison()
	}
	if spec.operands&s.tctx.ComponentFamily(common) == 0 ||
		!binaryShapeAllowed(s.tctx, common, spec) {
		s.report(diag.ExprBadOperator, s.operandError(op, left.Type, right.Type))
		return ir.Poison()
	}
	result := common
	if spec.result == resultBool {
		result = s.tctx.Builtins().Bool
	}
	return &ir.Expr{
		Kind: ir.ExprBinary,
		Type: result,
		Data: ir.BinaryData{Op: op, Left: s.coerceOperand(left, common), Right: s.coerceOperand(right, common)},
	}
}

// coerceOperand adapts a validated binary operand to the common type. A
// scalar standing against a vector or matrix stays scalar (codegen
// broadcasts it componentwise), widening only to the component type.
func (s *Session) coerceOperand(e *ir.Expr, common types.TypeID) *ir.Expr {
	if e.Type == common {
		return e
	}
	if s.tctx.ImplicitlyCoercible(e.Type, common) {
		return s.Coerce(e, common)
	}
	comp := s.tctx.ComponentType(common)
	if e.Type != comp && s.tctx.ImplicitlyCoercible(e.Type, comp) {
		return s.Coerce(e, comp)
	}
	return e
}

func (s *Session) convertAssignment(left *ir.Expr, op ir.BinaryOp, right *ir.Expr) *ir.Expr {
	if !s.assignable(left) {
		s.report(diag.ExprNotAssignable,
			fmt.Sprintf("cannot assign to this expression ('%s' operand is not a storage location)", op))
		return ir.Poison()
	}
	if base, compound := compoundBase[op]; compound {
		spec := binarySpecTable[base]
		if spec.operands&s.tctx.ComponentFamily(left.Type) == 0 ||
			!binaryShapeAllowed(s.tctx, left.Type, spec) {
			s.report(diag.ExprBadOperator, s.operandError(op, left.Type, right.Type))
			return ir.Poison()
		}
	}
	right = s.Coerce(right, left.Type)
	if right.IsPoison() {
		return ir.Poison()
	}
	return &ir.Expr{
		Kind: ir.ExprBinary,
		Type: left.Type,
		Data: ir.BinaryData{Op: op, Left: left, Right: right},
	}
}

// assignable reports whether e denotes a storage location. Read-only
// variables are rejected via their symbol flags.
func (s *Session) assignable(e *ir.Expr) bool {
	switch d := e.Data.(type) {
	case ir.VarRefData:
		if sym, ok := s.symtab.Get(d.Symbol); ok {
			return sym.Flags&symbols.SymbolFlagReadOnly == 0
		}
		return true
	case ir.IndexData:
		return s.assignable(d.Base)
	case ir.SwizzleData:
		return s.assignable(d.Base)
	}
	return false
}

// ConvertPrefix validates a prefix operator against its operand type and
// builds the resulting node.
func (s *Session) ConvertPrefix(op ir.UnaryOp, e *ir.Expr) *ir.Expr {
	e = s.Check(e)
	if e.IsPoison() {
		return e
	}
	spec, ok := prefixSpecTable[op]
	if !ok {
		s.report(diag.ExprBadOperator, fmt.Sprintf("unsupported prefix operator '%s'", op))
		return ir.Poison()
	}
	if !s.unaryOperandOK(op, spec, e) {
		return ir.Poison()
	}
	result := e.Type
	if op == ir.UnLogicalNot {
		result = s.tctx.Builtins().Bool
	}
	return &ir.Expr{Kind: ir.ExprPrefix, Type: result, Data: ir.PrefixData{Op: op, Operand: e}}
}

// ConvertPostfix validates a postfix operator (++/--) against its operand
// type and builds the resulting node.
func (s *Session) ConvertPostfix(e *ir.Expr, op ir.UnaryOp) *ir.Expr {
	e = s.Check(e)
	if e.IsPoison() {
		return e
	}
	spec, ok := postfixSpecTable[op]
	if !ok {
		s.report(diag.ExprBadOperator, fmt.Sprintf("unsupported postfix operator '%s'", op))
		return ir.Poison()
	}
	if !s.unaryOperandOK(op, spec, e) {
		return ir.Poison()
	}
	return &ir.Expr{Kind: ir.ExprPostfix, Type: e.Type, Data: ir.PostfixData{Op: op, Operand: e}}
}

func (s *Session) unaryOperandOK(op ir.UnaryOp, spec unarySpec, e *ir.Expr) bool {
	if spec.operands&s.tctx.ComponentFamily(e.Type) == 0 ||
		!shapeAllowed(s.tctx, e.Type, spec.shape) {
		s.report(diag.ExprBadOperator, fmt.Sprintf(
			"'%s' cannot operate on '%s'", op, s.tctx.Name(e.Type)))
		return false
	}
	if spec.assignable && !s.assignable(e) {
		s.report(diag.ExprNotAssignable,
			fmt.Sprintf("'%s' operand is not a storage location", op))
		return false
	}
	return true
}

// ConvertIndex validates that base is indexable and index is integral, and
// builds the resulting node typed as the element type.
func (s *Session) ConvertIndex(base, index *ir.Expr) *ir.Expr {
	base = s.Check(base)
	index = s.Check(index)
	if base.IsPoison() || index.IsPoison() {
		return ir.Poison()
	}
	elem, ok := s.tctx.ElementType(base.Type)
	if !ok {
		s.report(diag.ExprBadIndex, fmt.Sprintf(
			"type '%s' is not indexable", s.tctx.Name(base.Type)))
		return ir.Poison()
	}
	if !s.tctx.IsIntegral(index.Type) {
		s.report(diag.ExprBadIndex, fmt.Sprintf(
			"index must be an integer, but found '%s'", s.tctx.Name(index.Type)))
		return ir.Poison()
	}
	return &ir.Expr{Kind: ir.ExprIndex, Type: elem, Data: ir.IndexData{Base: base, Index: index}}
}

// Swizzle builds a component-selection expression ("xyzw" letters) on a
// vector base.
func (s *Session) Swizzle(base *ir.Expr, components string) *ir.Expr {
	base = s.Check(base)
	if base.IsPoison() {
		return base
	}
	t, ok := s.tctx.Lookup(base.Type)
	if !ok || t.Kind != types.KindVector {
		s.report(diag.ExprBadSwizzle, fmt.Sprintf(
			"cannot swizzle a value of type '%s'", s.tctx.Name(base.Type)))
		return ir.Poison()
	}
	if len(components) == 0 || len(components) > 4 {
		s.report(diag.ExprBadSwizzle, fmt.Sprintf(
			"invalid swizzle '.%s'", components))
		return ir.Poison()
	}
	idx := make([]uint8, len(components))
	for i := 0; i < len(components); i++ {
		pos := strings.IndexByte("xyzw", components[i])
		if pos < 0 || pos >= int(t.Rows) {
			s.report(diag.ExprBadSwizzle, fmt.Sprintf(
				"invalid swizzle component '%c' for '%s'",
				components[i], s.tctx.Name(base.Type)))
			return ir.Poison()
		}
		idx[i] = uint8(pos)
	}
	result := t.Elem
	if len(idx) > 1 {
		result = s.tctx.Vector(t.Elem, uint8(len(idx)))
	}
	return &ir.Expr{Kind: ir.ExprSwizzle, Type: result,
		Data: ir.SwizzleData{Base: base, Components: idx}}
}

func (s *Session) operandError(op ir.BinaryOp, left, right types.TypeID) string {
	return fmt.Sprintf("type mismatch: '%s' cannot operate on '%s', '%s'",
		op, s.tctx.Name(left), s.tctx.Name(right))
}
