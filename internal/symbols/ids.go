// Package symbols provides the scoped symbol table the DSL front end
// resolves declarations against. The table is owned by the compiler service;
// build sessions borrow it and push/pop scopes as function bodies are built.
package symbols

// SymbolID identifies a symbol within a table.
type SymbolID uint32

// ScopeID identifies a scope within a table.
type ScopeID uint32

// Invalid ID constants (zero is sentinel).
const (
	NoSymbolID SymbolID = 0
	NoScopeID  ScopeID  = 0
)

// IsValid returns true if the ID is valid (non-zero).
func (id SymbolID) IsValid() bool { return id != NoSymbolID }
func (id ScopeID) IsValid() bool  { return id != NoScopeID }
