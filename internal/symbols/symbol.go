package symbols

import "prism/internal/types"

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolVariable
	SymbolParameter
	SymbolFunction
	SymbolType
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolVariable:
		return "variable"
	case SymbolParameter:
		return "parameter"
	case SymbolFunction:
		return "function"
	case SymbolType:
		return "type"
	default:
		return "invalid"
	}
}

// SymbolFlags encode misc attributes for quick checks.
type SymbolFlags uint8

const (
	SymbolFlagBuiltin SymbolFlags = 1 << iota
	SymbolFlagGlobal
	SymbolFlagReadOnly
)

// Symbol is one named entity visible to DSL name resolution.
type Symbol struct {
	Name  string
	Kind  SymbolKind
	Type  types.TypeID
	Flags SymbolFlags
	Scope ScopeID
}
