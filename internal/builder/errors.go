package builder

import (
	"os"

	"prism/internal/diag"
)

// ErrorHandler is notified of every recoverable DSL error. With no handler
// installed, errors are rendered to stderr and the process terminates: a
// construction error normally indicates a defect in the calling code
// generator, not recoverable user input. Installing a handler makes
// termination the handler's choice.
type ErrorHandler interface {
	HandleError(msg string)
}

// ErrorHandlerFunc adapts a function to the ErrorHandler interface.
type ErrorHandlerFunc func(msg string)

func (f ErrorHandlerFunc) HandleError(msg string) { f(msg) }

// Stubbed in tests of the default fatal path.
var exit = os.Exit

// SetErrorHandler installs the handler for this session; nil clears it,
// restoring the fatal default.
func (s *Session) SetErrorHandler(h ErrorHandler) { s.handler = h }

// ReportError notifies the session's error channel of a DSL error.
func (s *Session) ReportError(msg string) {
	s.report(diag.UnknownCode, msg)
}

// report routes one recoverable error: it is always recorded with the
// compiler's reporter (the end-of-build tally), then either handed to the
// installed handler or rendered fatally.
func (s *Session) report(code diag.Code, msg string) {
	fn := s.functionName()
	if r := s.compiler.Reporter(); r != nil {
		r.Report(code, diag.SevError, fn, msg, nil)
	}
	if s.handler != nil {
		s.handler.HandleError(msg)
		return
	}
	diag.RenderTo(os.Stderr, []diag.Diagnostic{{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Function: fn,
	}})
	exit(1)
}
