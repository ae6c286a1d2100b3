// Package frame draws fixed-width text panels framed by constant.UIBorder and constant.UILine.
//
//	+==============...==+
//	| title             |
//	+--------------...--+
//	| body              |
//	+==============...==+
//
// Every row is exactly constant.UIWidth+2 printable columns, colored or not.
package frame

import (
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/mo"
	"github.com/taskframe/taskframe/color"
	"github.com/taskframe/taskframe/constant"
)

// Inner is the printable width available between the row edges.
const Inner = constant.UIWidth - 2

// TabWidth is the distance between tab stops inside a row.
const TabWidth = 4

// Renderer writes framed panels.
type Renderer struct {
	palette mo.Option[color.Palette]
}

// New returns a Renderer that styles titles with palette when it is present.
func New(palette mo.Option[color.Palette]) *Renderer {
	return &Renderer{palette: palette}
}

// Render writes a panel with title and one or more rows per body line.
func (r *Renderer) Render(w io.Writer, title string, body ...string) error {
	var b strings.Builder

	b.WriteString(constant.UIBorder + "\n")
	for _, line := range Lines(title) {
		b.WriteString(edge(color.Paint(r.palette, color.StyleTitle, line)) + "\n")
	}
	b.WriteString(constant.UILine + "\n")
	for _, text := range body {
		for _, row := range Row(text) {
			b.WriteString(row + "\n")
		}
	}
	b.WriteString(constant.UIBorder + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Row frames content, wrapping it onto as many rows as needed.
func Row(content string) []string {
	lines := Lines(content)
	rows := make([]string, len(lines))
	for i, line := range lines {
		rows[i] = edge(line)
	}
	return rows
}

// Lines splits content into lines no wider than Inner, breaking on words
// and hard-wrapping words that do not fit a line on their own.
// Tabs are expanded to spaces first.
func Lines(content string) []string {
	if content == "" {
		return []string{""}
	}
	return strings.Split(wrap.String(wordwrap.String(expandTabs(content), Inner), Inner), "\n")
}

// expandTabs replaces each tab with spaces up to the next TabWidth stop.
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		var (
			b   strings.Builder
			col int
		)
		segments := strings.Split(line, "\t")
		for j, seg := range segments {
			b.WriteString(seg)
			col += ansi.PrintableRuneWidth(seg)
			if j < len(segments)-1 {
				pad := TabWidth - col%TabWidth
				b.WriteString(strings.Repeat(" ", pad))
				col += pad
			}
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// edge pads line to exactly Inner columns and adds the row edges.
func edge(line string) string {
	width := ansi.PrintableRuneWidth(line)
	if width > Inner {
		line = truncate.String(line, Inner)
		width = ansi.PrintableRuneWidth(line)
	}
	return "| " + line + strings.Repeat(" ", Inner-width) + " |"
}
