package ui

import (
	"fmt"
	"io"
)

// Unicode symbols for status lines.
const (
	SymbolSuccess = "✓"
	SymbolFail    = "✗"
	SymbolWarning = "⚠"
)

// PrintSuccess writes "✓ msg" with the symbol in the success color.
func PrintSuccess(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", SuccessStyle().Render(SymbolSuccess), msg)
}

// PrintWarning writes "⚠ msg" with the symbol in the warning color.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", WarningStyle().Render(SymbolWarning), msg)
}
