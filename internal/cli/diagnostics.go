package cli

import (
	"io"

	"github.com/fatih/color"

	"parcelable-generator/internal/diagnostic"
)

// printDiagnostics writes one colored line per diagnostic, most severe first.
func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	errorColor := color.New(color.FgRed, color.Bold)
	warningColor := color.New(color.FgYellow)
	infoColor := color.New(color.FgCyan)

	for _, d := range diags.All() {
		c := infoColor

		switch d.Severity {
		case diagnostic.SeverityError:
			c = errorColor
		case diagnostic.SeverityWarning:
			c = warningColor
		}

		c.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}
