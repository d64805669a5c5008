package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/casetracker/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor returns the accent color for a status class. Card borders use
// it, so the four classes must stay visually distinct.
func StatusColor(class domain.StatusClass) lipgloss.Color {
	switch class {
	case domain.ClassApproved:
		return ColorGreen
	case domain.ClassNotApproved:
		return ColorRed
	case domain.ClassPending:
		return ColorYellow
	default:
		return ColorDim
	}
}

// StatusPill returns a colored status indicator such as "● Pending".
func StatusPill(status domain.ReviewStatus) string {
	class := domain.Classify(status)
	style := lipgloss.NewStyle().Foreground(StatusColor(class))
	switch class {
	case domain.ClassApproved:
		return style.Render("✔ " + string(domain.StatusApproved))
	case domain.ClassNotApproved:
		return style.Render("✖ " + string(domain.StatusNotApproved))
	case domain.ClassPending:
		return style.Render("● " + string(domain.StatusPending))
	default:
		return style.Render("○ " + string(domain.StatusNotStarted))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
