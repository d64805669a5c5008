package formatter

import (
	"regexp"
	"testing"

	"github.com/alexanderramin/casetracker/internal/domain"
)

// ansiPattern matches ANSI escape sequences so assertions are
// terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func sampleCase(t *testing.T) domain.Case {
	t.Helper()
	return domain.Case{
		ID:                    domain.IntID(7),
		LitigationPhase:       domain.PhaseDiscovery,
		Status:                domain.StatusPending,
		MainSummary:           "Rear-end collision on I-80",
		ClientName:            "Dana Ruiz",
		Venue:                 domain.Venue{CourtType: "Superior Court", County: "Alameda"},
		KeyFindings:           domain.StringList{"Police report assigns fault", "Two witnesses"},
		MedicalHistorySummary: "Prior back injury in 2019",
		HIPAANecessity:        "Release needed for ER records",
		PoliticalReading:      "Neutral venue",
		RelevantCases: domain.Citations{{
			CaseName:       "Smith v. Jones",
			Citation:       "12 Cal.4th 345",
			Court:          "Cal. Supreme Court",
			Summary:        "Comparative fault",
			RelevanceScore: 0.87,
		}},
		Checklist: domain.Checklist{
			domain.PhaseDiscovery: {
				{Name: "Send interrogatories", Done: true},
				{Name: "Schedule deposition", Done: false},
			},
			domain.PhaseTrial: {{Name: "Jury instructions", Done: false}},
		},
	}
}
