package compile

import (
	"strings"
	"testing"

	"prism/internal/builder"
	"prism/internal/ir"
)

func TestFinishSealsDiagnostics(t *testing.T) {
	c := New(DefaultSettings())
	guard := builder.Start(c)
	defer guard.End()

	s := builder.Instance()
	s.SetErrorHandler(builder.ErrorHandlerFunc(func(string) {}))
	b := s.TypeContext().Builtins()
	v := s.NewVar("x", b.Float, ir.Modifiers{})
	s.DeclareGlobal(v, s.Bool(true)) // bool does not coerce to float

	p := c.Finish("bad", s.ProgramElements())
	if p.Succeeded() || p.ErrorCount() != 1 {
		t.Fatalf("expected exactly one error, got %d", p.ErrorCount())
	}

	// The sealed program must not alias the live bag.
	s.ReportError("late")
	if len(p.Diagnostics) != 1 {
		t.Fatalf("sealed diagnostics grew after Finish")
	}
}

func TestBuildRunsRecipeAndSeals(t *testing.T) {
	p := Build(DefaultSettings(), ProgramSpec{
		Name: "tint",
		Build: func(s *builder.Session) {
			b := s.TypeContext().Builtins()
			v := s.NewVar("tint", b.Vec4, ir.Modifiers{Flags: ir.ModifierUniform})
			s.DeclareGlobal(v, nil)
		},
	})
	if !p.Succeeded() {
		t.Fatalf("unexpected diagnostics: %+v", p.Diagnostics)
	}
	if !strings.Contains(p.Dump(), "tint") {
		t.Fatalf("dump missing declaration:\n%s", p.Dump())
	}
}

func TestMaxDiagnosticsDefaultApplied(t *testing.T) {
	c := New(Settings{})
	if got := int(c.Bag().Cap()); got != DefaultSettings().MaxDiagnostics {
		t.Fatalf("zero max should take the default, got %d", got)
	}
}
