package ir

import (
	"fmt"
	"io"
	"strings"

	"prism/internal/types"
)

// Printer dumps IR to a stable text format used by tests, the demo CLI and
// the program cache.
type Printer struct {
	w      io.Writer
	tctx   *types.Context
	indent int
	err    error
}

// NewPrinter creates a printer writing to w, resolving type names via tctx.
func NewPrinter(w io.Writer, tctx *types.Context) *Printer {
	return &Printer{w: w, tctx: tctx}
}

// Dump writes the program elements to w.
func Dump(w io.Writer, elements []*ProgramElement, tctx *types.Context) error {
	p := NewPrinter(w, tctx)
	for _, e := range elements {
		p.element(e)
	}
	return p.err
}

// DumpString renders the program elements into a string.
func DumpString(elements []*ProgramElement, tctx *types.Context) string {
	var sb strings.Builder
	_ = Dump(&sb, elements, tctx)
	return sb.String()
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) line(format string, args ...any) {
	p.printf("%s", strings.Repeat("  ", p.indent))
	p.printf(format, args...)
	p.printf("\n")
}

func (p *Printer) element(e *ProgramElement) {
	switch d := e.Data.(type) {
	case GlobalVarData:
		p.line("global %s%s: %s%s",
			modifierPrefix(d.Decl.Modifiers), d.Decl.Name,
			p.tctx.Name(d.Decl.Type), initSuffix(p.tctx, d.Init))
	case FunctionData:
		params := make([]string, len(d.Decl.Params))
		for i, prm := range d.Decl.Params {
			params[i] = fmt.Sprintf("%s%s: %s",
				modifierPrefix(prm.Modifiers), prm.Name, p.tctx.Name(prm.Type))
		}
		p.line("fn %s(%s) -> %s", d.Decl.Name,
			strings.Join(params, ", "), p.tctx.Name(d.Decl.Return))
		p.indent++
		p.stmt(d.Body)
		p.indent--
	default:
		p.line("<unknown element %s>", e.Kind)
	}
}

func (p *Printer) stmt(s *Stmt) {
	if s == nil {
		p.line("<nil stmt>")
		return
	}
	switch d := s.Data.(type) {
	case ExprStmtData:
		p.line("%s", ExprString(d.Expr, p.tctx))
	case VarDeclData:
		p.line("var %s%s: %s%s",
			modifierPrefix(d.Decl.Modifiers), d.Decl.Name,
			p.tctx.Name(d.Decl.Type), initSuffix(p.tctx, d.Init))
	case BlockData:
		p.line("block")
		p.indent++
		for _, st := range d.Stmts {
			p.stmt(st)
		}
		p.indent--
	case IfData:
		p.line("if %s", ExprString(d.Test, p.tctx))
		p.indent++
		p.stmt(d.IfTrue)
		p.indent--
		if d.IfFalse != nil {
			p.line("else")
			p.indent++
			p.stmt(d.IfFalse)
			p.indent--
		}
	case ForData:
		p.line("for %s; %s; %s", optStmtHeader(p, d.Init),
			optExpr(p.tctx, d.Test), optExpr(p.tctx, d.Next))
		p.indent++
		p.stmt(d.Body)
		p.indent--
	case WhileData:
		p.line("while %s", ExprString(d.Test, p.tctx))
		p.indent++
		p.stmt(d.Body)
		p.indent--
	case DoData:
		p.line("do")
		p.indent++
		p.stmt(d.Body)
		p.indent--
		p.line("while %s", ExprString(d.Test, p.tctx))
	case ReturnData:
		if d.Expr == nil {
			p.line("return")
		} else {
			p.line("return %s", ExprString(d.Expr, p.tctx))
		}
	case DiscardData:
		p.line("discard")
	default:
		p.line("<unknown stmt %s>", s.Kind)
	}
}

func optStmtHeader(p *Printer, s *Stmt) string {
	if s == nil {
		return ""
	}
	if d, ok := s.Data.(VarDeclData); ok {
		return fmt.Sprintf("var %s: %s%s", d.Decl.Name,
			p.tctx.Name(d.Decl.Type), initSuffix(p.tctx, d.Init))
	}
	if d, ok := s.Data.(ExprStmtData); ok {
		return ExprString(d.Expr, p.tctx)
	}
	return "<stmt>"
}

func optExpr(tctx *types.Context, e *Expr) string {
	if e == nil {
		return ""
	}
	return ExprString(e, tctx)
}

func initSuffix(tctx *types.Context, init *Expr) string {
	if init == nil {
		return ""
	}
	return " = " + ExprString(init, tctx)
}

func modifierPrefix(m *Modifiers) string {
	if m == nil {
		return ""
	}
	desc := m.Description()
	if desc == "" {
		return ""
	}
	return desc + " "
}

var swizzleLetters = [4]byte{'x', 'y', 'z', 'w'}

// ExprString renders an expression inline, fully parenthesized.
func ExprString(e *Expr, tctx *types.Context) string {
	if e == nil {
		return "<nil>"
	}
	switch d := e.Data.(type) {
	case nil:
		if e.Kind == ExprPoison {
			return "<poison>"
		}
		return "<empty>"
	case LiteralData:
		switch d.Kind {
		case LiteralBool:
			return fmt.Sprintf("%t", d.BoolValue)
		case LiteralInt:
			return fmt.Sprintf("%d", d.IntValue)
		default:
			return fmt.Sprintf("%g", d.FloatValue)
		}
	case VarRefData:
		return d.Name
	case BinaryData:
		return fmt.Sprintf("(%s %s %s)",
			ExprString(d.Left, tctx), d.Op, ExprString(d.Right, tctx))
	case PrefixData:
		return fmt.Sprintf("(%s%s)", d.Op, ExprString(d.Operand, tctx))
	case PostfixData:
		return fmt.Sprintf("(%s%s)", ExprString(d.Operand, tctx), d.Op)
	case IndexData:
		return fmt.Sprintf("%s[%s]", ExprString(d.Base, tctx), ExprString(d.Index, tctx))
	case SwizzleData:
		var sb strings.Builder
		for _, c := range d.Components {
			if int(c) < len(swizzleLetters) {
				sb.WriteByte(swizzleLetters[c])
			} else {
				sb.WriteByte('?')
			}
		}
		return fmt.Sprintf("%s.%s", ExprString(d.Base, tctx), sb.String())
	case ConstructData:
		args := make([]string, len(d.Args))
		for i, a := range d.Args {
			args[i] = ExprString(a, tctx)
		}
		return fmt.Sprintf("%s(%s)", tctx.Name(e.Type), strings.Join(args, ", "))
	case TernaryData:
		return fmt.Sprintf("(%s ? %s : %s)", ExprString(d.Test, tctx),
			ExprString(d.IfTrue, tctx), ExprString(d.IfFalse, tctx))
	case CallData:
		args := make([]string, len(d.Args))
		for i, a := range d.Args {
			args[i] = ExprString(a, tctx)
		}
		return fmt.Sprintf("%s(%s)", d.Name, strings.Join(args, ", "))
	default:
		return fmt.Sprintf("<%s>", e.Kind)
	}
}
