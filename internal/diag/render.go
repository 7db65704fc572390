package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	codeColor    = color.New(color.Faint)
)

func severityColor(s Severity) *color.Color {
	switch s {
	case SevError:
		return errorColor
	case SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

// Render writes one diagnostic per line to w. Colors are applied only when
// colorize is true; use RenderTo for automatic terminal detection.
func Render(w io.Writer, diags []Diagnostic, colorize bool) {
	prev := color.NoColor
	color.NoColor = !colorize
	defer func() { color.NoColor = prev }()

	for i := range diags {
		d := &diags[i]
		sev := severityColor(d.Severity).Sprint(d.Severity.String())
		code := codeColor.Sprintf("[%s]", d.Code)
		if d.Function != "" {
			fmt.Fprintf(w, "%s %s in %s: %s\n", sev, code, d.Function, d.Message)
		} else {
			fmt.Fprintf(w, "%s %s %s\n", sev, code, d.Message)
		}
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  note: %s\n", n.Msg)
		}
	}
}

// RenderTo renders diagnostics to f, colorizing when f is a terminal.
func RenderTo(f *os.File, diags []Diagnostic) {
	Render(f, diags, isatty.IsTerminal(f.Fd()))
}
