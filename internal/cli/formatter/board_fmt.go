package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/casetracker/internal/board"
	"github.com/charmbracelet/lipgloss"
)

// LoadFailedNotice is shown when the case source could not be read. The
// board still renders, with every column empty.
const LoadFailedNotice = "Cases could not be loaded. Showing an empty board; see the log for details."

const tableSummaryWidth = 48

// BoardOptions controls the printed board.
type BoardOptions struct {
	Expanded   bool
	Width      int
	LoadFailed bool
}

// FormatBoard renders every column one after another for non-interactive
// output. Collapsed columns print as a table; expanded ones print full cards.
func FormatBoard(columns []board.Column, opts BoardOptions) string {
	var b strings.Builder
	if opts.LoadFailed {
		b.WriteString(Dim(LoadFailedNotice) + "\n\n")
	}

	for i, col := range columns {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(fmt.Sprintf("%s (%d)", col.Phase, len(col.Cases))) + "\n")

		if len(col.Cases) == 0 {
			b.WriteString(Dim(NoCasesInPhase) + "\n")
			continue
		}

		if !opts.Expanded {
			rows := make([][]string, 0, len(col.Cases))
			for _, c := range col.Cases {
				rows = append(rows, []string{
					c.ID.String(),
					ClientLabel(c.ClientName),
					StatusPill(c.Status),
					Truncate(c.MainSummary, tableSummaryWidth),
				})
			}
			b.WriteString(RenderTable([]string{"ID", "CLIENT", "STATUS", "SUMMARY"}, rows))
			continue
		}

		for _, c := range col.Cases {
			b.WriteString(FormatCard(c, CardOptions{Expanded: true, Width: opts.Width}) + "\n")
		}
	}
	return b.String()
}

// FormatColumn renders one board column for the interactive view: a header
// with the case count above the already-rendered cards.
func FormatColumn(col board.Column, cards []string, width int, focused bool) string {
	title := fmt.Sprintf("%s (%d)", col.Phase, len(col.Cases))
	header := StyleHeader.Render(Truncate(title, width))
	if !focused {
		header = StyleDim.Bold(true).Render(Truncate(title, width))
	}

	parts := []string{header, StyleDim.Render(strings.Repeat("─", max(width, 1)))}
	if len(cards) == 0 {
		parts = append(parts, Dim(NoCasesInPhase))
	}
	parts = append(parts, cards...)

	return lipgloss.NewStyle().Width(width).Render(strings.Join(parts, "\n"))
}
