// Package ir defines the typed intermediate representation the DSL front
// end assembles: expressions, statements and top-level program elements.
//
// Every expression carries a TypeID resolved at construction time. A failed
// conversion is represented by the distinguished Poison expression rather
// than a nil pointer, so downstream consumers handle failure as a regular
// variant of the expression sum type. Poison is inert: it carries no type
// and no payload, and every IR consumer must tolerate it.
//
// Nodes are owned by whichever container currently holds them: the program
// element list, a parent expression or statement, or a local builder
// variable before attachment.
package ir

import (
	"prism/internal/symbols"
	"prism/internal/types"
)

// ExprKind enumerates IR expression kinds.
type ExprKind uint8

const (
	// ExprPoison is the sentinel produced by failed conversions.
	ExprPoison ExprKind = iota
	// ExprLiteral represents bool/int/float literals.
	ExprLiteral
	// ExprVarRef represents a variable reference.
	ExprVarRef
	// ExprBinary represents binary operators (+, -, ==, =, ...).
	ExprBinary
	// ExprPrefix represents prefix operators (-, !, ~, ++x, --x).
	ExprPrefix
	// ExprPostfix represents postfix operators (x++, x--).
	ExprPostfix
	// ExprIndex represents indexing (base[index]).
	ExprIndex
	// ExprSwizzle represents vector component selection (v.xyz).
	ExprSwizzle
	// ExprConstruct represents value construction (vec3(x, 1.0)).
	ExprConstruct
	// ExprTernary represents test ? ifTrue : ifFalse.
	ExprTernary
	// ExprCall represents a function call.
	ExprCall
)

// String returns a human-readable name for the expression kind.
func (k ExprKind) String() string {
	switch k {
	case ExprPoison:
		return "Poison"
	case ExprLiteral:
		return "Literal"
	case ExprVarRef:
		return "VarRef"
	case ExprBinary:
		return "Binary"
	case ExprPrefix:
		return "Prefix"
	case ExprPostfix:
		return "Postfix"
	case ExprIndex:
		return "Index"
	case ExprSwizzle:
		return "Swizzle"
	case ExprConstruct:
		return "Construct"
	case ExprTernary:
		return "Ternary"
	case ExprCall:
		return "Call"
	default:
		return "Unknown"
	}
}

// Expr represents a typed IR expression.
type Expr struct {
	Kind ExprKind
	Type types.TypeID // NoTypeID only for Poison
	Data ExprData     // Kind-specific payload, nil for Poison
}

// ExprData is the interface for expression-specific data.
type ExprData interface {
	exprData()
}

// Poison returns a fresh sentinel expression.
func Poison() *Expr {
	return &Expr{Kind: ExprPoison}
}

// IsPoison reports whether e is the failure sentinel. A nil expression is
// not poison; nil means "absent", poison means "failed".
func (e *Expr) IsPoison() bool {
	return e != nil && e.Kind == ExprPoison
}

// LiteralKind enumerates literal value kinds.
type LiteralKind uint8

const (
	LiteralBool LiteralKind = iota
	LiteralInt
	LiteralFloat
)

// LiteralData holds data for ExprLiteral.
type LiteralData struct {
	Kind       LiteralKind
	BoolValue  bool
	IntValue   int64
	FloatValue float64
}

func (LiteralData) exprData() {}

// VarRefData holds data for ExprVarRef.
type VarRefData struct {
	Name   string
	Symbol symbols.SymbolID
}

func (VarRefData) exprData() {}

// BinaryData holds data for ExprBinary.
type BinaryData struct {
	Op    BinaryOp
	Left  *Expr
	Right *Expr
}

func (BinaryData) exprData() {}

// PrefixData holds data for ExprPrefix.
type PrefixData struct {
	Op      UnaryOp
	Operand *Expr
}

func (PrefixData) exprData() {}

// PostfixData holds data for ExprPostfix.
type PostfixData struct {
	Op      UnaryOp
	Operand *Expr
}

func (PostfixData) exprData() {}

// IndexData holds data for ExprIndex.
type IndexData struct {
	Base  *Expr
	Index *Expr
}

func (IndexData) exprData() {}

// SwizzleData holds data for ExprSwizzle. Components are indices into the
// base vector (0..3).
type SwizzleData struct {
	Base       *Expr
	Components []uint8
}

func (SwizzleData) exprData() {}

// ConstructData holds data for ExprConstruct; the constructed type is the
// expression's Type.
type ConstructData struct {
	Args []*Expr
}

func (ConstructData) exprData() {}

// TernaryData holds data for ExprTernary.
type TernaryData struct {
	Test    *Expr
	IfTrue  *Expr
	IfFalse *Expr
}

func (TernaryData) exprData() {}

// CallData holds data for ExprCall.
type CallData struct {
	Name   string
	Symbol symbols.SymbolID
	Args   []*Expr
}

func (CallData) exprData() {}
