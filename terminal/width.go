// Package terminal discovers the column count of the output device.
package terminal

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// FallbackWidth is the column count assumed when the writer is not a
// terminal or the size query fails.
const FallbackWidth = 80

// Width returns the column count of w. Only *os.File writers that are
// real terminals are queried; every other writer gets FallbackWidth.
func Width(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return FallbackWidth
	}

	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FallbackWidth
	}

	cols, _, err := term.GetSize(int(fd))
	if err != nil || cols <= 0 {
		return FallbackWidth
	}
	return cols
}
