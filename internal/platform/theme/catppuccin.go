package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
)

// Styles are bound to a single output so colour detection follows the
// writer the program actually prints to.
type Styles struct {
	Title  lipgloss.Style
	Rule   lipgloss.Style
	Header lipgloss.Style
	Muted  lipgloss.Style
	Hot    lipgloss.Style
	Bar    lipgloss.Style
}

// New builds styles for w. With escapes disabled every style renders plain text.
func New(w io.Writer, escapes bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !escapes {
		r.SetColorProfile(termenv.Ascii)
	}
	return Styles{
		Title:  r.NewStyle().Foreground(Sapphire).Bold(true),
		Rule:   r.NewStyle().Foreground(Lavender),
		Header: r.NewStyle().Foreground(Sapphire).Bold(true),
		Muted:  r.NewStyle().Foreground(Subtext0),
		Hot:    r.NewStyle().Foreground(Peach).Bold(true),
		Bar:    r.NewStyle().Foreground(Green),
	}
}

// Plain returns styles that never emit escape sequences.
func Plain(w io.Writer) Styles { return New(w, false) }
