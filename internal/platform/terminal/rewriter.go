// Package terminal provides the control sequences used to redraw a prompt
// line in place.
package terminal

import "github.com/charmbracelet/x/ansi"

// LineRewriter produces the sequences needed to overwrite earlier output.
type LineRewriter interface {
	ClearScreenBelow() string
	CursorUp(n int) string
	ClearLineRight() string
}

// New returns the ANSI rewriter when escapes are enabled and a no-op one
// otherwise.
func New(escapes bool) LineRewriter {
	if escapes {
		return ANSI{}
	}
	return Plain{}
}

type ANSI struct{}

func (ANSI) ClearScreenBelow() string { return ansi.EraseDisplay(0) }

func (ANSI) CursorUp(n int) string {
	if n <= 0 {
		return ""
	}
	return ansi.CursorUp(n)
}

func (ANSI) ClearLineRight() string { return ansi.EraseLine(0) }

// Plain is used for terminals without escape sequence support.
type Plain struct{}

func (Plain) ClearScreenBelow() string { return "" }
func (Plain) CursorUp(int) string      { return "" }
func (Plain) ClearLineRight() string   { return "" }
