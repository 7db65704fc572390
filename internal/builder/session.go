// Package builder is the front-end construction layer of the shading
// language compiler: a per-goroutine session that assembles typed IR from
// DSL calls embedded in Go code, without any textual parsing.
//
// One session is current per goroutine at a time, installed by Start and
// located via Instance. Expression-building calls flow through the
// conversion pipeline (convert.go), which consults the modifier pool and
// the mangler and reports failures through the error hook, returning the
// poison sentinel instead of aborting the call chain. Finished top-level
// declarations accumulate in the session's program element list, which the
// compiler service consumes when the build ends.
package builder

import (
	"prism/internal/diag"
	"prism/internal/ir"
	"prism/internal/symbols"
	"prism/internal/types"
)

// Compiler is the narrow view of the compiler service a build session
// needs. The concrete service lives in internal/compile; keeping the
// contract here avoids exposing session internals to it.
type Compiler interface {
	// TypeContext returns the shared type tables. Read-only from the
	// session's point of view aside from interning new aggregates.
	TypeContext() *types.Context
	// Symbols returns the symbol table this build resolves names against.
	Symbols() *symbols.Table
	// Reporter receives every recoverable diagnostic for the final tally.
	Reporter() diag.Reporter
}

// Session tracks all per-goroutine state associated with DSL output.
type Session struct {
	compiler Compiler
	tctx     *types.Context
	symtab   *symbols.Table

	elements []*ir.ProgramElement
	current  *ir.FunctionDecl

	mangle  bool
	mangler Mangler
	pool    modifierPool
	stack   []Frame
	handler ErrorHandler
}

// NewSession builds a session bound to the given compiler service.
// Mangling starts enabled; only tests should turn it off.
func NewSession(c Compiler) *Session {
	return &Session{
		compiler: c,
		tctx:     c.TypeContext(),
		symtab:   c.Symbols(),
		mangle:   true,
		mangler:  NewMangler(),
		pool:     newModifierPool(),
	}
}

// Compiler returns the compiler service for the current build.
func (s *Session) Compiler() Compiler { return s.compiler }

// TypeContext returns the type tables used by DSL operations.
func (s *Session) TypeContext() *types.Context { return s.tctx }

// SymbolTable returns the symbol table of the current build. The table is
// borrowed; its lifetime is owned by the compiler service.
func (s *Session) SymbolTable() *symbols.Table { return s.symtab }

// ProgramElements returns the ordered top-level declarations produced so
// far. Insertion order is semantically significant.
func (s *Session) ProgramElements() []*ir.ProgramElement { return s.elements }

// AppendElement appends a finished top-level declaration.
func (s *Session) AppendElement(e *ir.ProgramElement) {
	s.elements = append(s.elements, e)
}

// CurrentFunction returns the function for which nodes are being
// generated, or nil at global scope.
func (s *Session) CurrentFunction() *ir.FunctionDecl { return s.current }

// SetCurrentFunction specifies the function for which nodes are being
// generated. Pass nil when returning to global scope.
func (s *Session) SetCurrentFunction(fn *ir.FunctionDecl) { s.current = fn }

// ManglingEnabled reports whether name mangling is enabled. This should
// always be enabled outside of tests.
func (s *Session) ManglingEnabled() bool { return s.mangle }

// SetMangling toggles name mangling. Disabling it sacrifices
// collision-freedom for readable output and exists only for deterministic
// tests.
func (s *Session) SetMangling(enabled bool) { s.mangle = enabled }

// Name returns the (possibly mangled) final name that should be used for
// an entity with the given raw name.
func (s *Session) Name(raw string) string {
	if !s.mangle {
		return raw
	}
	return s.mangler.Mangle(raw)
}

// Modifiers returns the canonical pooled pointer representing the given
// qualifier set.
func (s *Session) Modifiers(m ir.Modifiers) *ir.Modifiers {
	return s.pool.intern(m)
}

func (s *Session) functionName() string {
	if s.current == nil {
		return ""
	}
	return s.current.Name
}
