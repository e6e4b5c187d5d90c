// Package terminal inspects the process's standard streams.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether r is a file attached to a terminal. Reading
// elements from an interactive stdin would wait for the user, so callers use
// this to require explicit input instead.
func IsInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
