package builder

import (
	"prism/internal/ir"
	"prism/internal/types"
)

// binaryResult describes how to derive the result type for an operator.
type binaryResult uint8

const (
	resultCommon binaryResult = iota // the coerced common operand type
	resultBool                       // scalar bool regardless of operands
)

// binaryFlags annotate shape handling for binary operators.
type binaryFlags uint8

const (
	flagNone     binaryFlags = 0
	flagVectorOK binaryFlags = 1 << iota // componentwise on vectors
	flagMatrixOK                         // defined on matrices
)

// binarySpec lists the component families an operator accepts and the
// expected result.
type binarySpec struct {
	operands types.FamilyMask
	result   binaryResult
	flags    binaryFlags
}

var binarySpecTable = map[ir.BinaryOp]binarySpec{
	ir.BinAdd: {operands: types.FamilyNumeric, result: resultCommon, flags: flagVectorOK | flagMatrixOK},
	ir.BinSub: {operands: types.FamilyNumeric, result: resultCommon, flags: flagVectorOK | flagMatrixOK},
	ir.BinMul: {operands: types.FamilyNumeric, result: resultCommon, flags: flagVectorOK | flagMatrixOK},
	ir.BinDiv: {operands: types.FamilyNumeric, result: resultCommon, flags: flagVectorOK | flagMatrixOK},

	ir.BinMod:        {operands: types.FamilyIntegral, result: resultCommon, flags: flagVectorOK},
	ir.BinShiftLeft:  {operands: types.FamilyIntegral, result: resultCommon, flags: flagVectorOK},
	ir.BinShiftRight: {operands: types.FamilyIntegral, result: resultCommon, flags: flagVectorOK},
	ir.BinBitAnd:     {operands: types.FamilyIntegral, result: resultCommon, flags: flagVectorOK},
	ir.BinBitOr:      {operands: types.FamilyIntegral, result: resultCommon, flags: flagVectorOK},
	ir.BinBitXor:     {operands: types.FamilyIntegral, result: resultCommon, flags: flagVectorOK},

	ir.BinLogicalAnd: {operands: types.FamilyBool, result: resultBool},
	ir.BinLogicalOr:  {operands: types.FamilyBool, result: resultBool},

	ir.BinEq:    {operands: types.FamilyBool | types.FamilyNumeric, result: resultBool, flags: flagVectorOK | flagMatrixOK},
	ir.BinNotEq: {operands: types.FamilyBool | types.FamilyNumeric, result: resultBool, flags: flagVectorOK | flagMatrixOK},

	// Ordering comparisons carry no shape flags: scalars only.
	ir.BinLess:      {operands: types.FamilyNumeric, result: resultBool},
	ir.BinLessEq:    {operands: types.FamilyNumeric, result: resultBool},
	ir.BinGreater:   {operands: types.FamilyNumeric, result: resultBool},
	ir.BinGreaterEq: {operands: types.FamilyNumeric, result: resultBool},
}

// compoundBase maps compound assignments to the operator whose rules the
// right-hand side must satisfy.
var compoundBase = map[ir.BinaryOp]ir.BinaryOp{
	ir.BinAddAssign: ir.BinAdd,
	ir.BinSubAssign: ir.BinSub,
	ir.BinMulAssign: ir.BinMul,
	ir.BinDivAssign: ir.BinDiv,
}

// unaryShape describes what shapes a unary operator tolerates.
type unaryShape uint8

const (
	shapeScalarOnly unaryShape = iota
	shapeComponentwise          // scalars, vectors, matrices
	shapeNoMatrix               // scalars and vectors
)

// unarySpec describes operand expectations for unary operators.
type unarySpec struct {
	operands   types.FamilyMask
	shape      unaryShape
	assignable bool // operand must be a storage location (++/--)
}

var prefixSpecTable = map[ir.UnaryOp]unarySpec{
	ir.UnPlus:       {operands: types.FamilyNumeric, shape: shapeComponentwise},
	ir.UnMinus:      {operands: types.FamilyNumeric, shape: shapeComponentwise},
	ir.UnLogicalNot: {operands: types.FamilyBool, shape: shapeScalarOnly},
	ir.UnBitNot:     {operands: types.FamilyIntegral, shape: shapeNoMatrix},
	ir.UnIncrement:  {operands: types.FamilyNumeric, shape: shapeNoMatrix, assignable: true},
	ir.UnDecrement:  {operands: types.FamilyNumeric, shape: shapeNoMatrix, assignable: true},
}

var postfixSpecTable = map[ir.UnaryOp]unarySpec{
	ir.UnIncrement: {operands: types.FamilyNumeric, shape: shapeNoMatrix, assignable: true},
	ir.UnDecrement: {operands: types.FamilyNumeric, shape: shapeNoMatrix, assignable: true},
}

// shapeAllowed checks an operand type's aggregate shape against the spec.
func shapeAllowed(tctx *types.Context, id types.TypeID, shape unaryShape) bool {
	switch {
	case tctx.IsScalar(id):
		return true
	case tctx.IsVector(id):
		return shape != shapeScalarOnly
	case tctx.IsMatrix(id):
		return shape == shapeComponentwise
	}
	return false
}

// binaryShapeAllowed checks the common operand type against a binary spec.
func binaryShapeAllowed(tctx *types.Context, id types.TypeID, spec binarySpec) bool {
	switch {
	case tctx.IsScalar(id):
		return true
	case tctx.IsVector(id):
		return spec.flags&flagVectorOK != 0
	case tctx.IsMatrix(id):
		return spec.flags&flagMatrixOK != 0
	}
	return false
}
