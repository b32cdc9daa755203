package tui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is assumed when the output is not a terminal or its size is
// unknown.
const DefaultWidth = 80

// Terminal wraps an output stream and reports whether it is an interactive
// terminal.
type Terminal struct {
	out   io.Writer
	fd    int
	isTTY bool
}

// NewTerminal creates a Terminal writing to out. Only an *os.File attached
// to a terminal counts as interactive.
func NewTerminal(out io.Writer) *Terminal {
	t := &Terminal{out: out, fd: -1}
	if f, ok := out.(*os.File); ok {
		t.fd = int(f.Fd())
		t.isTTY = term.IsTerminal(t.fd)
	}
	return t
}

// IsTerminal reports whether cursor movement can be used.
func (t *Terminal) IsTerminal() bool {
	return t.isTTY
}

// Width returns the terminal width in columns, or DefaultWidth.
func (t *Terminal) Width() int {
	if !t.isTTY {
		return DefaultWidth
	}
	width, _, err := term.GetSize(t.fd)
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// ANSI escape sequences
const (
	ClearLine  = "\033[K"    // Clear from cursor to end of line
	CursorHide = "\033[?25l" // Hide cursor
	CursorShow = "\033[?25h" // Show cursor

	Reset = "\033[0m"
	Dim   = "\033[2m"
)

// CursorUp returns an ANSI escape sequence to move the cursor up n lines.
func CursorUp(n int) string {
	return fmt.Sprintf("\033[%dA", n)
}

// HideCursor hides the cursor on interactive terminals.
func (t *Terminal) HideCursor() {
	if t.isTTY {
		fmt.Fprint(t.out, CursorHide)
	}
}

// ShowCursor shows the cursor on interactive terminals.
func (t *Terminal) ShowCursor() {
	if t.isTTY {
		fmt.Fprint(t.out, CursorShow)
	}
}

// Write writes the given string to the terminal output.
func (t *Terminal) Write(s string) {
	fmt.Fprint(t.out, s)
}
