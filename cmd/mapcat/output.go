package mapcat

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arthur-debert/mapcat/pkg/style"
	"github.com/charmbracelet/lipgloss"
)

// printer writes plain or styled text to one stream
type printer struct {
	w      io.Writer
	styles style.Styles
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, styles: style.New(style.NewRenderer(w, colorFor(w)))}
}

func (p *printer) lines(items []string) {
	for _, item := range items {
		fmt.Fprintln(p.w, item)
	}
}

func (p *printer) note(text string) {
	fmt.Fprintln(p.w, p.styles.Muted.Render(text))
}

// table renders rows in two aligned columns under a heading
func (p *printer) table(header [2]string, rows [][2]string) {
	width := lipgloss.Width(header[0])
	for _, row := range rows {
		if w := lipgloss.Width(row[0]); w > width {
			width = w
		}
	}

	left := lipgloss.NewStyle().Width(width + 2)
	fmt.Fprintln(p.w, p.styles.Heading.Render(left.Render(header[0])+header[1]))
	for _, row := range rows {
		fmt.Fprintln(p.w, left.Render(row[0])+p.styles.Path.Render(row[1]))
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
