// Package testutil builds case records for tests.
package testutil

import (
	"github.com/alexanderramin/casetracker/internal/domain"
)

// CaseOption customizes a test case.
type CaseOption func(*domain.Case)

func WithPhase(p domain.Phase) CaseOption {
	return func(c *domain.Case) {
		c.LitigationPhase = p
	}
}

func WithStatus(s domain.ReviewStatus) CaseOption {
	return func(c *domain.Case) {
		c.Status = s
	}
}

func WithClient(name string) CaseOption {
	return func(c *domain.Case) {
		c.ClientName = name
	}
}

func WithSummary(s string) CaseOption {
	return func(c *domain.Case) {
		c.MainSummary = s
	}
}

func WithVenue(courtType, county string) CaseOption {
	return func(c *domain.Case) {
		c.Venue = domain.Venue{CourtType: courtType, County: county}
	}
}

func WithFindings(findings ...string) CaseOption {
	return func(c *domain.Case) {
		c.KeyFindings = domain.StringList(findings)
	}
}

// WithStep appends a checklist step under phase.
func WithStep(phase domain.Phase, name string, done bool) CaseOption {
	return func(c *domain.Case) {
		if c.Checklist == nil {
			c.Checklist = domain.Checklist{}
		}
		c.Checklist[phase] = append(c.Checklist[phase], domain.ChecklistStep{Name: name, Done: done})
	}
}

// NewTestCase returns a Discovery case in Not Started with a summary, ready
// for the options to adjust.
func NewTestCase(id domain.CaseID, opts ...CaseOption) domain.Case {
	c := domain.Case{
		ID:              id,
		LitigationPhase: domain.PhaseDiscovery,
		Status:          domain.StatusNotStarted,
		MainSummary:     "Case summary",
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
