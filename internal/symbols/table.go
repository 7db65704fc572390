package symbols

import (
	"fmt"

	"fortio.org/safecast"
)

type scope struct {
	parent ScopeID
	names  map[string]SymbolID
}

// Table is a scoped symbol table. Slot 0 of each arena is reserved as the
// invalid sentinel so the zero ID never resolves.
type Table struct {
	scopes  []scope
	symbols []Symbol
	current ScopeID
}

// NewTable builds a table with a single global scope already open.
func NewTable() *Table {
	t := &Table{
		scopes:  make([]scope, 1, 8),
		symbols: make([]Symbol, 1, 64),
	}
	t.current = t.newScope(NoScopeID)
	return t
}

func (t *Table) newScope(parent ScopeID) ScopeID {
	n, err := safecast.Conv[uint32](len(t.scopes))
	if err != nil {
		panic(fmt.Errorf("scope count overflow: %w", err))
	}
	t.scopes = append(t.scopes, scope{parent: parent, names: make(map[string]SymbolID, 8)})
	return ScopeID(n)
}

// Push opens a nested scope and makes it current.
func (t *Table) Push() ScopeID {
	t.current = t.newScope(t.current)
	return t.current
}

// Pop closes the current scope, restoring its parent. Popping the global
// scope is a programming error.
func (t *Table) Pop() {
	parent := t.scopes[t.current].parent
	if !parent.IsValid() {
		panic("symbols: popped the global scope")
	}
	t.current = parent
}

// Current returns the innermost open scope.
func (t *Table) Current() ScopeID { return t.current }

// Define inserts a symbol into the current scope. Returns false when the
// name is already bound in this scope (outer shadowing is allowed).
func (t *Table) Define(sym Symbol) (SymbolID, bool) {
	sc := &t.scopes[t.current]
	if _, exists := sc.names[sym.Name]; exists {
		return NoSymbolID, false
	}
	n, err := safecast.Conv[uint32](len(t.symbols))
	if err != nil {
		panic(fmt.Errorf("symbol count overflow: %w", err))
	}
	id := SymbolID(n)
	sym.Scope = t.current
	t.symbols = append(t.symbols, sym)
	sc.names[sym.Name] = id
	return id, true
}

// Lookup resolves a name by walking from the current scope outward.
func (t *Table) Lookup(name string) (SymbolID, bool) {
	for sc := t.current; sc.IsValid(); sc = t.scopes[sc].parent {
		if id, ok := t.scopes[sc].names[name]; ok {
			return id, true
		}
	}
	return NoSymbolID, false
}

// Get returns the symbol record for an ID.
func (t *Table) Get(id SymbolID) (Symbol, bool) {
	if !id.IsValid() || int(id) >= len(t.symbols) {
		return Symbol{}, false
	}
	return t.symbols[id], true
}

// Len reports the number of live symbols (excluding the sentinel slot).
func (t *Table) Len() int { return len(t.symbols) - 1 }
