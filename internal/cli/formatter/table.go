package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const tableColGap = 2

// RenderTable renders an aligned table with a dim separator under the
// header. Widths are measured with lipgloss so styled cells line up.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	measure := func(cells []string) {
		for i := range widths {
			if i < len(cells) {
				widths[i] = max(widths[i], lipgloss.Width(cells[i]))
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	styled := make([]string, len(headers))
	rules := make([]string, len(headers))
	for i, h := range headers {
		styled[i] = StyleHeader.Render(h)
		rules[i] = StyleDim.Render(strings.Repeat("─", widths[i]))
	}

	var b strings.Builder
	writeTableRow(&b, headers, styled, widths)
	writeTableRow(&b, nil, rules, widths)
	for _, row := range rows {
		writeTableRow(&b, row, row, widths)
	}
	return b.String()
}

// writeTableRow pads each rendered cell to its column width. plain holds the
// unstyled text used for measuring; nil means rendered is already plain.
func writeTableRow(b *strings.Builder, plain, rendered []string, widths []int) {
	for i, w := range widths {
		cell, measured := "", ""
		if i < len(rendered) {
			cell = rendered[i]
			measured = cell
		}
		if plain != nil && i < len(plain) {
			measured = plain[i]
		}
		b.WriteString(cell)
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", max(w-lipgloss.Width(measured), 0)+tableColGap))
		}
	}
	b.WriteString("\n")
}
