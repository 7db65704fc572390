package builder

import (
	"fmt"

	"prism/internal/diag"
	"prism/internal/ir"
	"prism/internal/symbols"
	"prism/internal/types"
)

// core.go is the statement-level DSL surface: declaring variables and
// functions, and assembling control flow around pipeline-produced
// expressions.

// Literal helpers ------------------------------------------------------------

// Bool builds a bool literal.
func (s *Session) Bool(v bool) *ir.Expr {
	return &ir.Expr{Kind: ir.ExprLiteral, Type: s.tctx.Builtins().Bool,
		Data: ir.LiteralData{Kind: ir.LiteralBool, BoolValue: v}}
}

// Int builds an int literal.
func (s *Session) Int(v int64) *ir.Expr {
	return &ir.Expr{Kind: ir.ExprLiteral, Type: s.tctx.Builtins().Int,
		Data: ir.LiteralData{Kind: ir.LiteralInt, IntValue: v}}
}

// Float builds a float literal.
func (s *Session) Float(v float64) *ir.Expr {
	return &ir.Expr{Kind: ir.ExprLiteral, Type: s.tctx.Builtins().Float,
		Data: ir.LiteralData{Kind: ir.LiteralFloat, FloatValue: v}}
}

// Variables ------------------------------------------------------------------

// Var is the DSL handle for a declared variable. The handle stays valid
// for the whole session; Ref produces a fresh reference expression each
// time.
type Var struct {
	decl *ir.VarDecl
}

// Decl exposes the underlying declaration.
func (v *Var) Decl() *ir.VarDecl { return v.decl }

// NewVar declares a variable in the current scope under a (possibly
// mangled) final name. Redeclaring a name within the same scope is a
// recoverable error; the returned handle is still usable so the caller
// can keep building.
func (s *Session) NewVar(name string, t types.TypeID, mods ir.Modifiers) *Var {
	final := s.Name(name)
	flags := symbols.SymbolFlags(0)
	if mods.Flags&ir.ModifierConst != 0 {
		flags |= symbols.SymbolFlagReadOnly
	}
	if s.current == nil {
		flags |= symbols.SymbolFlagGlobal
	}
	id, ok := s.symtab.Define(symbols.Symbol{
		Name:  final,
		Kind:  symbols.SymbolVariable,
		Type:  t,
		Flags: flags,
	})
	if !ok {
		s.report(diag.DeclRedeclared,
			fmt.Sprintf("symbol '%s' was already defined in this scope", final))
	}
	return &Var{decl: &ir.VarDecl{
		Name:      final,
		Type:      t,
		Modifiers: s.Modifiers(mods),
		Symbol:    id,
	}}
}

// Ref builds a reference expression for the variable.
func (s *Session) Ref(v *Var) *ir.Expr {
	return &ir.Expr{Kind: ir.ExprVarRef, Type: v.decl.Type,
		Data: ir.VarRefData{Name: v.decl.Name, Symbol: v.decl.Symbol}}
}

// Declare builds the declaration statement for a variable created with
// NewVar. A nil init leaves the variable uninitialized; otherwise the
// initializer is coerced to the variable's type.
func (s *Session) Declare(v *Var, init *ir.Expr) *ir.Stmt {
	if init != nil {
		init = s.Coerce(init, v.decl.Type)
	}
	return &ir.Stmt{Kind: ir.StmtVarDecl, Data: ir.VarDeclData{Decl: v.decl, Init: init}}
}

// DeclareGlobal declares a top-level variable and appends it to the
// program element list.
func (s *Session) DeclareGlobal(v *Var, init *ir.Expr) {
	if init != nil {
		init = s.Coerce(init, v.decl.Type)
	}
	s.AppendElement(&ir.ProgramElement{
		Kind: ir.ElemGlobalVar,
		Data: ir.GlobalVarData{Decl: v.decl, Init: init},
	})
}

// Statements -----------------------------------------------------------------

// ExprStmt wraps an expression into a statement.
func (s *Session) ExprStmt(e *ir.Expr) *ir.Stmt {
	return &ir.Stmt{Kind: ir.StmtExpr, Data: ir.ExprStmtData{Expr: s.Check(e)}}
}

// Block groups statements in a nested scope.
func (s *Session) Block(stmts ...*ir.Stmt) *ir.Stmt {
	return &ir.Stmt{Kind: ir.StmtBlock, Data: ir.BlockData{Stmts: stmts}}
}

// If builds a conditional; ifFalse may be nil. The test coerces to bool.
func (s *Session) If(test *ir.Expr, ifTrue, ifFalse *ir.Stmt) *ir.Stmt {
	test = s.Coerce(test, s.tctx.Builtins().Bool)
	return &ir.Stmt{Kind: ir.StmtIf, Data: ir.IfData{Test: test, IfTrue: ifTrue, IfFalse: ifFalse}}
}

// For builds a C-style loop; init, test and next may each be nil. A
// present test coerces to bool.
func (s *Session) For(init *ir.Stmt, test, next *ir.Expr, body *ir.Stmt) *ir.Stmt {
	if test != nil {
		test = s.Coerce(test, s.tctx.Builtins().Bool)
	}
	return &ir.Stmt{Kind: ir.StmtFor, Data: ir.ForData{Init: init, Test: test, Next: next, Body: body}}
}

// While builds a while loop; the test coerces to bool.
func (s *Session) While(test *ir.Expr, body *ir.Stmt) *ir.Stmt {
	test = s.Coerce(test, s.tctx.Builtins().Bool)
	return &ir.Stmt{Kind: ir.StmtWhile, Data: ir.WhileData{Test: test, Body: body}}
}

// Do builds a do/while loop; the test coerces to bool.
func (s *Session) Do(body *ir.Stmt, test *ir.Expr) *ir.Stmt {
	test = s.Coerce(test, s.tctx.Builtins().Bool)
	return &ir.Stmt{Kind: ir.StmtDo, Data: ir.DoData{Body: body, Test: test}}
}

// Ternary builds test ? ifTrue : ifFalse, unifying the branch types.
func (s *Session) Ternary(test, ifTrue, ifFalse *ir.Expr) *ir.Expr {
	test = s.Coerce(test, s.tctx.Builtins().Bool)
	ifTrue = s.Check(ifTrue)
	ifFalse = s.Check(ifFalse)
	if test.IsPoison() || ifTrue.IsPoison() || ifFalse.IsPoison() {
		return ir.Poison()
	}
	// Unlike binary arithmetic, both branches must reach the common type
	// implicitly; there is no scalar broadcast across a ternary.
	common, ok := s.tctx.CommonType(ifTrue.Type, ifFalse.Type)
	if !ok || !s.tctx.ImplicitlyCoercible(ifTrue.Type, common) ||
		!s.tctx.ImplicitlyCoercible(ifFalse.Type, common) {
		s.report(diag.ExprBranchMismatch, fmt.Sprintf(
			"ternary branches have incompatible types '%s' and '%s'",
			s.tctx.Name(ifTrue.Type), s.tctx.Name(ifFalse.Type)))
		return ir.Poison()
	}
	return &ir.Expr{Kind: ir.ExprTernary, Type: common, Data: ir.TernaryData{
		Test: test, IfTrue: s.Coerce(ifTrue, common), IfFalse: s.Coerce(ifFalse, common)}}
}

// Return builds a return statement, checking the value against the
// current function's return type. A nil expression returns void.
func (s *Session) Return(e *ir.Expr) *ir.Stmt {
	if s.current == nil {
		s.report(diag.DeclBadReturn, "return statement outside a function body")
		return &ir.Stmt{Kind: ir.StmtReturn, Data: ir.ReturnData{Expr: ir.Poison()}}
	}
	void := s.tctx.Builtins().Void
	if e == nil {
		if s.current.Return != void {
			s.report(diag.DeclBadReturn, fmt.Sprintf(
				"function '%s' must return a value of type '%s'",
				s.current.Name, s.tctx.Name(s.current.Return)))
		}
		return &ir.Stmt{Kind: ir.StmtReturn, Data: ir.ReturnData{}}
	}
	if s.current.Return == void {
		s.report(diag.DeclBadReturn, fmt.Sprintf(
			"function '%s' may not return a value", s.current.Name))
		return &ir.Stmt{Kind: ir.StmtReturn, Data: ir.ReturnData{Expr: ir.Poison()}}
	}
	return &ir.Stmt{Kind: ir.StmtReturn, Data: ir.ReturnData{Expr: s.Coerce(e, s.current.Return)}}
}

// Discard builds a discard statement.
func (s *Session) Discard() *ir.Stmt {
	return &ir.Stmt{Kind: ir.StmtDiscard, Data: ir.DiscardData{}}
}

// Call builds a call to a previously defined function.
func (s *Session) Call(name string, args ...*ir.Expr) *ir.Expr {
	checked := make([]*ir.Expr, len(args))
	for i, a := range args {
		checked[i] = s.Check(a)
		if checked[i].IsPoison() {
			return ir.Poison()
		}
	}
	id, ok := s.symtab.Lookup(name)
	if !ok {
		s.report(diag.ExprUnknownFunction, fmt.Sprintf("unknown function '%s'", name))
		return ir.Poison()
	}
	sym, _ := s.symtab.Get(id)
	if sym.Kind != symbols.SymbolFunction {
		s.report(diag.ExprNotCallable, fmt.Sprintf("'%s' is not a function", name))
		return ir.Poison()
	}
	return &ir.Expr{Kind: ir.ExprCall, Type: sym.Type,
		Data: ir.CallData{Name: name, Symbol: id, Args: checked}}
}
