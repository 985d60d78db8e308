// Package terminal reports whether the process is attached to an interactive terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin and stderr are both terminals.
// Prompts read keys from stdin and draw on stderr so stdout stays pipeable.
func IsInteractive() bool {
	return IsTerminal(os.Stdin) && IsTerminal(os.Stderr)
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
