package shell

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles renders headers for one output writer.  Colors are dropped
// automatically when the writer is not a terminal.
type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	errText lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ade80")),
		section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#60a5fa")),
		errText: r.NewStyle().Foreground(lipgloss.Color("#f87171")),
		muted:   r.NewStyle().Faint(true),
	}
}
