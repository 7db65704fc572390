package builder

import (
	"testing"

	"prism/internal/diag"
	"prism/internal/symbols"
	"prism/internal/types"
)

// testCompiler is the minimal compiler service used by builder tests.
type testCompiler struct {
	tctx *types.Context
	sym  *symbols.Table
	bag  *diag.Bag
}

func newTestCompiler() *testCompiler {
	return &testCompiler{
		tctx: types.NewContext(),
		sym:  symbols.NewTable(),
		bag:  diag.NewBag(64),
	}
}

func (c *testCompiler) TypeContext() *types.Context { return c.tctx }
func (c *testCompiler) Symbols() *symbols.Table     { return c.sym }
func (c *testCompiler) Reporter() diag.Reporter     { return diag.BagReporter{Bag: c.bag} }

// newTestSession installs a session for the test's goroutine with a
// swallowing error handler, so recoverable errors land in the bag instead
// of terminating the test binary.
func newTestSession(t *testing.T) (*Session, *diag.Bag) {
	t.Helper()
	c := newTestCompiler()
	guard := Start(c)
	t.Cleanup(guard.End)
	s := Instance()
	s.SetErrorHandler(ErrorHandlerFunc(func(string) {}))
	return s, c.bag
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic")
		}
	}()
	fn()
}
