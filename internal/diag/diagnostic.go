package diag

// Severity ranks a diagnostic produced during IR assembly. The front end
// only treats SevError as build-failing; anything below is advisory.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning flags suspicious but buildable DSL constructs.
	SevWarning
	// SevError marks a failed conversion; the expression it came from is
	// replaced by the poison sentinel.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Note attaches secondary context to a diagnostic.
type Note struct {
	Msg string
}

// Diagnostic is a single recoverable build error captured during IR assembly.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	// Function names the function definition being built when the error was
	// reported; empty when the error occurred at global scope.
	Function string
	Notes    []Note
}
