package ir

import (
	"prism/internal/symbols"
	"prism/internal/types"
)

// VarDecl describes a declared variable (global or local).
type VarDecl struct {
	Name      string
	Type      types.TypeID
	Modifiers *Modifiers
	Symbol    symbols.SymbolID
}

// Param describes one function parameter.
type Param struct {
	Name      string
	Type      types.TypeID
	Modifiers *Modifiers
}

// FunctionDecl describes a function signature.
type FunctionDecl struct {
	Name   string
	Return types.TypeID
	Params []Param
	Symbol symbols.SymbolID
}

// ElementKind enumerates top-level program element kinds.
type ElementKind uint8

const (
	// ElemGlobalVar is a top-level variable declaration.
	ElemGlobalVar ElementKind = iota
	// ElemFunction is a function definition (declaration plus body).
	ElemFunction
)

// String returns a human-readable name for the element kind.
func (k ElementKind) String() string {
	switch k {
	case ElemGlobalVar:
		return "GlobalVar"
	case ElemFunction:
		return "Function"
	default:
		return "Unknown"
	}
}

// ProgramElement is one top-level declaration in insertion order; later
// elements may reference earlier ones.
type ProgramElement struct {
	Kind ElementKind
	Data ElementData
}

// ElementData is the interface for element-specific data.
type ElementData interface {
	elementData()
}

// GlobalVarData holds data for ElemGlobalVar.
type GlobalVarData struct {
	Decl *VarDecl
	// Init is nil for uninitialized globals.
	Init *Expr
}

func (GlobalVarData) elementData() {}

// FunctionData holds data for ElemFunction.
type FunctionData struct {
	Decl *FunctionDecl
	Body *Stmt
}

func (FunctionData) elementData() {}
