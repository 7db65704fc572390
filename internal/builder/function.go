package builder

import (
	"fmt"

	"prism/internal/diag"
	"prism/internal/ir"
	"prism/internal/symbols"
	"prism/internal/types"
)

// Function is the DSL handle for a function being defined.
type Function struct {
	sess      *Session
	decl      *ir.FunctionDecl
	paramVars []*Var
}

// Function starts a function definition: the name is finalized (mangled if
// needed) and bound in the enclosing scope.
func (s *Session) Function(name string, ret types.TypeID, params ...ir.Param) *Function {
	final := s.Name(name)
	id, ok := s.symtab.Define(symbols.Symbol{
		Name: final,
		Kind: symbols.SymbolFunction,
		Type: ret,
	})
	if !ok {
		s.report(diag.DeclRedeclared,
			fmt.Sprintf("symbol '%s' was already defined in this scope", final))
	}
	decl := &ir.FunctionDecl{Name: final, Return: ret, Params: params, Symbol: id}
	return &Function{sess: s, decl: decl}
}

// Decl exposes the function declaration being built.
func (f *Function) Decl() *ir.FunctionDecl { return f.decl }

// Param returns a reference expression for the i-th parameter. Only valid
// inside the body callback of Define.
func (f *Function) Param(i int) *ir.Expr {
	if i < 0 || i >= len(f.paramVars) {
		f.sess.report(diag.DeclNotDeclared, fmt.Sprintf(
			"function '%s' has no parameter %d in scope", f.decl.Name, i))
		return ir.Poison()
	}
	return f.sess.Ref(f.paramVars[i])
}

// Define builds the function body and appends the finished definition to
// the program element list. The callback runs with this function as the
// session's current function and with the parameters bound in a fresh
// scope; both are restored on exit, including on panic.
func (f *Function) Define(body func() []*ir.Stmt) {
	s := f.sess
	prev := s.CurrentFunction()
	s.SetCurrentFunction(f.decl)
	s.symtab.Push()
	defer func() {
		s.symtab.Pop()
		s.SetCurrentFunction(prev)
	}()

	f.paramVars = make([]*Var, len(f.decl.Params))
	for i, p := range f.decl.Params {
		id, ok := s.symtab.Define(symbols.Symbol{
			Name: p.Name,
			Kind: symbols.SymbolParameter,
			Type: p.Type,
		})
		if !ok {
			s.report(diag.DeclRedeclared, fmt.Sprintf(
				"duplicate parameter '%s' in function '%s'", p.Name, f.decl.Name))
		}
		f.paramVars[i] = &Var{decl: &ir.VarDecl{
			Name:      p.Name,
			Type:      p.Type,
			Modifiers: p.Modifiers,
			Symbol:    id,
		}}
	}

	stmts := body()
	s.AppendElement(&ir.ProgramElement{
		Kind: ir.ElemFunction,
		Data: ir.FunctionData{Decl: f.decl, Body: s.Block(stmts...)},
	})
}
