// Package style holds the terminal palette shared by message sinks and the
// mapcat CLI.
package style

import (
	"io"

	"github.com/arthur-debert/mapcat/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles is the set of styles bound to one renderer
type Styles struct {
	Heading lipgloss.Style
	Muted   lipgloss.Style
	Path    lipgloss.Style
	Success lipgloss.Style

	severity map[types.Severity]lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for w. With color false the
// renderer emits plain text regardless of what the terminal supports.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// New builds the palette on r
func New(r *lipgloss.Renderer) Styles {
	return Styles{
		Heading: r.NewStyle().Foreground(HeadingColor).Bold(true),
		Muted:   r.NewStyle().Foreground(MutedColor),
		Path:    r.NewStyle().Foreground(SecondaryColor).Italic(true),
		Success: r.NewStyle().Foreground(SuccessColor).Bold(true),
		severity: map[types.Severity]lipgloss.Style{
			types.SeverityError:   r.NewStyle().Foreground(ErrorColor).Bold(true),
			types.SeverityWarning: r.NewStyle().Foreground(WarningColor).Bold(true),
			types.SeverityNote:    r.NewStyle().Foreground(NoteColor),
			types.SeverityInfo:    r.NewStyle().Foreground(InfoColor),
		},
	}
}

// Severity returns the label style for sev
func (s Styles) Severity(sev types.Severity) lipgloss.Style {
	if st, ok := s.severity[sev]; ok {
		return st
	}
	return s.Muted
}

// Label renders the severity tag, e.g. "ERROR:"
func (s Styles) Label(sev types.Severity) string {
	return s.Severity(sev).Render(string(sev) + ":")
}
