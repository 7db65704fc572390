package diag

import (
	"math"
	"strings"
	"testing"
)

func TestBagRespectsLimit(t *testing.T) {
	b := NewBag(2)
	if !b.Add(Diagnostic{Severity: SevError, Code: ExprTypeMismatch, Message: "first"}) {
		t.Fatalf("first add should succeed")
	}
	if !b.Add(Diagnostic{Severity: SevWarning, Code: ExprInfo, Message: "second"}) {
		t.Fatalf("second add should succeed")
	}
	if b.Add(Diagnostic{Severity: SevError, Code: ExprBadOperator, Message: "third"}) {
		t.Fatalf("third add should be rejected at the limit")
	}
	if b.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", b.Len())
	}
}

func TestBagClampsOutOfRangeLimits(t *testing.T) {
	huge := NewBag(1 << 20)
	if huge.Cap() != math.MaxUint16 {
		t.Fatalf("oversized limit should clamp to 65535, got %d", huge.Cap())
	}
	if !huge.Add(Diagnostic{Severity: SevError, Code: ExprNullOperand, Message: "still open"}) {
		t.Fatalf("clamped bag should accept diagnostics")
	}
	neg := NewBag(-1)
	if neg.Cap() != 0 || neg.Add(Diagnostic{Severity: SevError, Code: ExprNullOperand}) {
		t.Fatalf("negative limit should hold nothing")
	}
}

func TestBagErrorTally(t *testing.T) {
	b := NewBag(16)
	b.Add(Diagnostic{Severity: SevWarning, Code: ExprInfo, Message: "warn"})
	if b.HasErrors() {
		t.Fatalf("warnings must not count as errors")
	}
	b.Add(Diagnostic{Severity: SevError, Code: ExprNullOperand, Message: "null operand"})
	b.Add(Diagnostic{Severity: SevError, Code: ExprBadIndex, Message: "bad index"})
	if !b.HasErrors() || b.ErrorCount() != 2 {
		t.Fatalf("expected 2 errors, got %d", b.ErrorCount())
	}
}

func TestMultiReporterFanOut(t *testing.T) {
	a, b := NewBag(8), NewBag(8)
	m := MultiReporter{BagReporter{Bag: a}, nil, BagReporter{Bag: b}}
	m.Report(ExprTypeMismatch, SevError, "main", "cannot coerce int to bool", nil)
	if a.Len() != 1 || b.Len() != 1 {
		t.Fatalf("fan-out failed: %d/%d", a.Len(), b.Len())
	}
	if a.Items()[0].Function != "main" {
		t.Fatalf("function context lost")
	}
}

func TestRenderPlain(t *testing.T) {
	var sb strings.Builder
	Render(&sb, []Diagnostic{
		{Severity: SevError, Code: ExprTypeMismatch, Function: "main", Message: "expected 'float', found 'bool'"},
		{Severity: SevWarning, Code: DeclInfo, Message: "unused global"},
	}, false)
	out := sb.String()
	if !strings.Contains(out, "ERROR [PRI1002] in main: expected 'float', found 'bool'") {
		t.Fatalf("unexpected render output:\n%s", out)
	}
	if !strings.Contains(out, "WARNING [PRI2000] unused global") {
		t.Fatalf("global-scope diagnostic missing function-less form:\n%s", out)
	}
}
