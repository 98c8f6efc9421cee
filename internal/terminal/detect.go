// Package terminal answers whether confirmation prompts can be shown.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether the process can hold a prompt conversation:
// stdin and stdout must both be terminals. Piped or redirected invocations
// fail this check, which forces callers to pass an explicit yes flag instead
// of blocking on input that will never arrive.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
