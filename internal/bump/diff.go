package bump

import (
	"fmt"
	"io"
	"strings"

	"github.com/aymanbagabas/go-udiff"
	"github.com/fatih/color"
)

// printDiff renders a unified diff of the manifest change, additions in
// green and deletions in red.
func printDiff(out io.Writer, path string, before string, after string) {
	diff := udiff.Unified(path+" (before)", path+" (after)", before, after)
	if diff == "" {
		return
	}
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			_, _ = green.Fprintln(out, line)
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			_, _ = red.Fprintln(out, line)
		default:
			_, _ = fmt.Fprintln(out, line)
		}
	}
}
