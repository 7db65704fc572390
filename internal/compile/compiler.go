// Package compile is the compiler service behind DSL build sessions. A
// Compiler owns the shared state one build borrows through the session:
// the type tables, the symbol table and the diagnostic sink. Finish seals
// a build into a Program; BuildAll runs many independent builds in
// parallel, one session per goroutine.
package compile

import (
	"prism/internal/diag"
	"prism/internal/ir"
	"prism/internal/symbols"
	"prism/internal/types"
)

// Compiler holds the per-build state shared by every DSL call of one
// build. It is not safe for concurrent use; parallel builds each get
// their own Compiler (see BuildAll).
type Compiler struct {
	settings Settings
	tctx     *types.Context
	bag      *diag.Bag
	symtab   *symbols.Table
}

// New creates a compiler service with fresh type and symbol tables.
func New(settings Settings) *Compiler {
	if settings.MaxDiagnostics <= 0 {
		settings.MaxDiagnostics = DefaultSettings().MaxDiagnostics
	}
	return &Compiler{
		settings: settings,
		tctx:     types.NewContext(),
		bag:      diag.NewBag(settings.MaxDiagnostics),
		symtab:   symbols.NewTable(),
	}
}

// Settings returns the settings this build was created with.
func (c *Compiler) Settings() Settings { return c.settings }

// TypeContext returns the build's type tables.
func (c *Compiler) TypeContext() *types.Context { return c.tctx }

// Symbols returns the build's symbol table.
func (c *Compiler) Symbols() *symbols.Table { return c.symtab }

// Reporter returns the sink that tallies recoverable diagnostics.
func (c *Compiler) Reporter() diag.Reporter { return diag.BagReporter{Bag: c.bag} }

// Bag exposes the accumulated diagnostics of the build in progress.
func (c *Compiler) Bag() *diag.Bag { return c.bag }

// Succeeded reports whether the build has produced no errors so far.
// Success is only meaningful at the end of a session; individual DSL
// calls recover and continue.
func (c *Compiler) Succeeded() bool { return !c.bag.HasErrors() }

// Program is the sealed output of one build: the ordered top-level
// declarations plus every diagnostic the build produced. Types keeps the
// build's type tables alive so the elements stay renderable.
type Program struct {
	Name        string
	Elements    []*ir.ProgramElement
	Types       *types.Context
	Diagnostics []diag.Diagnostic
}

// Succeeded reports whether the build produced no errors.
func (p *Program) Succeeded() bool { return p.ErrorCount() == 0 }

// ErrorCount returns the number of error-severity diagnostics.
func (p *Program) ErrorCount() int {
	n := 0
	for i := range p.Diagnostics {
		if p.Diagnostics[i].Severity >= diag.SevError {
			n++
		}
	}
	return n
}

// Dump renders the program's declarations as readable text.
func (p *Program) Dump() string {
	return ir.DumpString(p.Elements, p.Types)
}

// Finish seals the build into a Program. The diagnostics are copied so
// the program stays valid after the compiler is discarded.
func (c *Compiler) Finish(name string, elements []*ir.ProgramElement) *Program {
	diags := make([]diag.Diagnostic, c.bag.Len())
	copy(diags, c.bag.Items())
	return &Program{Name: name, Elements: elements, Types: c.tctx, Diagnostics: diags}
}
