package shell

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	err    lipgloss.Style
	ok     lipgloss.Style
	active lipgloss.Style
	dim    lipgloss.Style
}

// newStyles binds colors to w, so output that is not a terminal stays plain.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		err:    r.NewStyle().Foreground(lipgloss.Color("9")),
		ok:     r.NewStyle().Foreground(lipgloss.Color("10")),
		active: r.NewStyle().Bold(true),
		dim:    r.NewStyle().Faint(true),
	}
}
