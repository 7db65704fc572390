package ir

// BinaryOp enumerates binary operators the DSL can emit.
type BinaryOp uint8

const (
	BinInvalid BinaryOp = iota
	BinAdd
	BinSub
	BinMul
	BinDiv
	BinMod
	BinShiftLeft
	BinShiftRight
	BinBitAnd
	BinBitOr
	BinBitXor
	BinLogicalAnd
	BinLogicalOr
	BinEq
	BinNotEq
	BinLess
	BinLessEq
	BinGreater
	BinGreaterEq
	BinAssign
	BinAddAssign
	BinSubAssign
	BinMulAssign
	BinDivAssign
)

// String returns the operator's surface syntax.
func (op BinaryOp) String() string {
	switch op {
	case BinAdd:
		return "+"
	case BinSub:
		return "-"
	case BinMul:
		return "*"
	case BinDiv:
		return "/"
	case BinMod:
		return "%"
	case BinShiftLeft:
		return "<<"
	case BinShiftRight:
		return ">>"
	case BinBitAnd:
		return "&"
	case BinBitOr:
		return "|"
	case BinBitXor:
		return "^"
	case BinLogicalAnd:
		return "&&"
	case BinLogicalOr:
		return "||"
	case BinEq:
		return "=="
	case BinNotEq:
		return "!="
	case BinLess:
		return "<"
	case BinLessEq:
		return "<="
	case BinGreater:
		return ">"
	case BinGreaterEq:
		return ">="
	case BinAssign:
		return "="
	case BinAddAssign:
		return "+="
	case BinSubAssign:
		return "-="
	case BinMulAssign:
		return "*="
	case BinDivAssign:
		return "/="
	default:
		return "?"
	}
}

// IsAssignment reports whether the operator writes through its left operand.
func (op BinaryOp) IsAssignment() bool {
	switch op {
	case BinAssign, BinAddAssign, BinSubAssign, BinMulAssign, BinDivAssign:
		return true
	}
	return false
}

// UnaryOp enumerates prefix and postfix operators.
type UnaryOp uint8

const (
	UnInvalid UnaryOp = iota
	UnPlus
	UnMinus
	UnLogicalNot
	UnBitNot
	UnIncrement
	UnDecrement
)

// String returns the operator's surface syntax.
func (op UnaryOp) String() string {
	switch op {
	case UnPlus:
		return "+"
	case UnMinus:
		return "-"
	case UnLogicalNot:
		return "!"
	case UnBitNot:
		return "~"
	case UnIncrement:
		return "++"
	case UnDecrement:
		return "--"
	default:
		return "?"
	}
}
