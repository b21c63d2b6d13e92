package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// isTerminal reports whether w is attached to a terminal.
func isTerminal(w io.Writer) bool {
	switch v := w.(type) {
	case *os.File:
		return term.IsTerminal(int(v.Fd()))
	default:
		return false
	}
}

// interactive reports whether the process can run interactive selection:
// stdin must deliver key input and stdout must accept drawing.
func interactive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}
