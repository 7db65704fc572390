package diag

// Reporter is the minimal contract for receiving diagnostics from the
// front end. Implementations: BagReporter (stores into a Bag), NopReporter,
// MultiReporter (fan-out).
type Reporter interface {
	Report(code Code, sev Severity, function, msg string, notes []Note)
}

// BagReporter is an adapter that writes into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, function, msg string, notes []Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Function: function, Notes: notes,
	})
}

// NopReporter discards every diagnostic.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, string, string, []Note) {}

// MultiReporter forwards each diagnostic to every wrapped reporter.
type MultiReporter []Reporter

func (m MultiReporter) Report(code Code, sev Severity, function, msg string, notes []Note) {
	for _, r := range m {
		if r != nil {
			r.Report(code, sev, function, msg, notes)
		}
	}
}
