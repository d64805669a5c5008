package cli

import (
	"fmt"

	"github.com/alexanderramin/casetracker/internal/board"
	"github.com/alexanderramin/casetracker/internal/cli/formatter"
	"github.com/alexanderramin/casetracker/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const jumpLabelSummaryWidth = 40

// casetrackerHuhTheme returns a huh theme using the Gruvbox palette.
func casetrackerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardJumpToCase builds a select over every case on the board, in column
// order. Returns nil when the board is empty.
func wizardJumpToCase(columns []board.Column, result *domain.CaseID) *huh.Form {
	var options []huh.Option[domain.CaseID]
	for _, col := range columns {
		for _, c := range col.Cases {
			label := fmt.Sprintf("%s  %s · %s  %s",
				c.ID, formatter.ClientLabel(c.ClientName), col.Phase,
				formatter.Truncate(c.MainSummary, jumpLabelSummaryWidth))
			options = append(options, huh.NewOption(label, c.ID))
		}
	}
	if len(options) == 0 {
		return nil
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.CaseID]().
				Title("Jump to which case?").
				Options(options...).
				Value(result),
		),
	).WithTheme(casetrackerHuhTheme()).WithShowHelp(false)
}
