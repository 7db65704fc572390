package ir

import (
	"strings"
	"testing"

	"prism/internal/types"
)

func TestExprStringNesting(t *testing.T) {
	tctx := types.NewContext()
	b := tctx.Builtins()
	one := &Expr{Kind: ExprLiteral, Type: b.Int, Data: LiteralData{Kind: LiteralInt, IntValue: 1}}
	x := &Expr{Kind: ExprVarRef, Type: b.Float, Data: VarRefData{Name: "x"}}
	sum := &Expr{Kind: ExprBinary, Type: b.Float, Data: BinaryData{Op: BinAdd, Left: x, Right: one}}
	neg := &Expr{Kind: ExprPrefix, Type: b.Float, Data: PrefixData{Op: UnMinus, Operand: sum}}
	if got := ExprString(neg, tctx); got != "(-(x + 1))" {
		t.Fatalf("got %q", got)
	}
}

func TestExprStringPoisonAndConstruct(t *testing.T) {
	tctx := types.NewContext()
	b := tctx.Builtins()
	if got := ExprString(Poison(), tctx); got != "<poison>" {
		t.Fatalf("poison renders as %q", got)
	}
	half := &Expr{Kind: ExprLiteral, Type: b.Float, Data: LiteralData{Kind: LiteralFloat, FloatValue: 0.5}}
	ctor := &Expr{Kind: ExprConstruct, Type: b.Vec3, Data: ConstructData{Args: []*Expr{half}}}
	if got := ExprString(ctor, tctx); got != "vec3(0.5)" {
		t.Fatalf("constructor renders as %q", got)
	}
}

func TestDumpFunction(t *testing.T) {
	tctx := types.NewContext()
	b := tctx.Builtins()
	ret := &Stmt{Kind: StmtReturn, Data: ReturnData{
		Expr: &Expr{Kind: ExprVarRef, Type: b.Vec4, Data: VarRefData{Name: "color"}},
	}}
	body := &Stmt{Kind: StmtBlock, Data: BlockData{Stmts: []*Stmt{ret}}}
	fn := &ProgramElement{Kind: ElemFunction, Data: FunctionData{
		Decl: &FunctionDecl{Name: "main", Return: b.Vec4,
			Params: []Param{{Name: "color", Type: b.Vec4, Modifiers: &Modifiers{Flags: ModifierIn}}}},
		Body: body,
	}}
	out := DumpString([]*ProgramElement{fn}, tctx)
	want := "fn main(in color: vec4) -> vec4\n  block\n    return color\n"
	if out != want {
		t.Fatalf("dump mismatch:\n got: %q\nwant: %q", out, want)
	}
}

func TestModifiersDescription(t *testing.T) {
	m := Modifiers{Flags: ModifierConst | ModifierHighP}
	if got := m.Description(); got != "const highp" {
		t.Fatalf("got %q", got)
	}
	if got := (Modifiers{}).Description(); got != "" {
		t.Fatalf("zero value should render empty, got %q", got)
	}
	if strings.Contains(Modifiers{Flags: ModifierUniform}.Description(), " ") {
		t.Fatalf("single flag should have no separator")
	}
}
