package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/casetracker/internal/domain"
	"github.com/alexanderramin/casetracker/internal/notice"
	"github.com/charmbracelet/lipgloss"
)

// Placeholder texts shown in place of absent data.
const (
	NotAvailable       = "N/A"
	NoStateCases       = "No relevant state cases found."
	NoFederalCases     = "No relevant federal cases found."
	NoCasesInPhase     = "No cases in this phase."
	PendingReviewHint  = "Pending review"
	ExpandedIndicator  = "▲"
	CollapsedIndicator = "▼"
)

// CardOptions controls how a single case card renders.
type CardOptions struct {
	Expanded bool
	Focused  bool
	// Controls renders the key hints for review actions and notices. Only
	// the interactive board sets it.
	Controls bool
	// Width is the outer width including the border. Zero leaves it unset.
	Width int
}

// FormatCard renders one case as a bordered card whose border color follows
// the status class.
func FormatCard(c domain.Case, opts CardOptions) string {
	var b strings.Builder
	b.WriteString(formatCardHeader(c, opts.Expanded))
	if opts.Expanded {
		b.WriteString("\n\n")
		b.WriteString(formatCardDetail(c, opts.Controls))
	}

	border := lipgloss.RoundedBorder()
	if opts.Focused {
		border = lipgloss.ThickBorder()
	}
	style := lipgloss.NewStyle().
		Border(border).
		BorderForeground(StatusColor(domain.Classify(c.Status))).
		PaddingLeft(1).
		PaddingRight(1)
	if opts.Width > 2 {
		style = style.Width(opts.Width - 2)
	}
	return style.Render(b.String())
}

// formatCardHeader is the always-visible part of a card.
func formatCardHeader(c domain.Case, expanded bool) string {
	summary := Bold(c.MainSummary)
	if strings.TrimSpace(c.MainSummary) == "" {
		summary = Dim("No summary")
	}

	indicator := CollapsedIndicator
	if expanded {
		indicator = ExpandedIndicator
	}

	lines := []string{
		summary,
		Dim("ID: ") + c.ID.String(),
		Dim("Client: ") + ClientLabel(c.ClientName),
		Dim("Venue: ") + VenueLabel(c.Venue),
		StatusPill(c.Status) + "  " + Dim(indicator),
	}
	return strings.Join(lines, "\n")
}

func formatCardDetail(c domain.Case, controls bool) string {
	var sections []string

	findings := []string{label("Key Findings:")}
	for _, f := range c.KeyFindings {
		findings = append(findings, "• "+f)
	}
	sections = append(sections, strings.Join(findings, "\n"))

	sections = append(sections,
		label("Medical History:")+"\n"+c.MedicalHistorySummary,
		label("HIPAA Necessity:")+"\n"+c.HIPAANecessity,
		formatCitations("Relevant Cases:", c.RelevantCases, NoStateCases),
		formatCitations("Federal Cases:", c.FederalCases, NoFederalCases),
	)

	if c.Notes != "" {
		sections = append(sections, label("Notes: ")+c.Notes)
	}

	if steps := c.CurrentChecklist(); len(steps) > 0 {
		sections = append(sections, formatChecklist(c.LitigationPhase, steps))
	}

	sections = append(sections, label("Political Reading: ")+c.PoliticalReading)

	// Every expanded pending card carries a review affordance; only the
	// card holding the controls shows the keys.
	if controls {
		if hints := formatControls(c); hints != "" {
			sections = append(sections, hints)
		}
	} else if domain.ShowsReviewActions(c.Status) {
		sections = append(sections, Dim(PendingReviewHint))
	}
	return strings.Join(sections, "\n\n")
}

func formatCitations(title string, cites domain.Citations, empty string) string {
	lines := []string{label(title)}
	if len(cites) == 0 {
		lines = append(lines, Dim(empty))
		return strings.Join(lines, "\n")
	}
	for _, rc := range cites {
		lines = append(lines,
			"• "+Bold(rc.CaseName)+" - "+rc.Citation,
			"  Court: "+rc.Court,
			"  Summary: "+rc.Summary,
			fmt.Sprintf("  Relevance: %d%%", rc.RelevancePercent()),
		)
	}
	return strings.Join(lines, "\n")
}

func formatChecklist(phase domain.Phase, steps []domain.ChecklistStep) string {
	done := 0
	for _, s := range steps {
		if s.Done {
			done++
		}
	}

	lines := []string{label(string(phase)+" Checklist:") + " " + RenderProgress(done, len(steps), 10)}
	for _, s := range steps {
		if s.Done {
			lines = append(lines, StyleGreen.Render("✔ ")+s.Name)
		} else {
			lines = append(lines, Dim("○ ")+s.Name)
		}
	}
	return strings.Join(lines, "\n")
}

func formatControls(c domain.Case) string {
	var hints []string
	if domain.ShowsReviewActions(c.Status) {
		hints = append(hints,
			StyleGreen.Render("[a] Approve"),
			StyleRed.Render("[x] Decline"),
		)
	}
	if event, ok := notice.EventFor(c.LitigationPhase); ok {
		hints = append(hints, Dim(fmt.Sprintf("[n] %s notice", event)))
	}
	return strings.Join(hints, "   ")
}

func label(text string) string {
	return StyleBlue.Bold(true).Render(text)
}

// ClientLabel returns the client name or the N/A placeholder.
func ClientLabel(name string) string {
	if name == "" {
		return NotAvailable
	}
	return name
}

// VenueLabel returns "<court type>, <county>" or the N/A placeholder.
func VenueLabel(v domain.Venue) string {
	if !v.Known() {
		return NotAvailable
	}
	return v.CourtType + ", " + v.County
}
