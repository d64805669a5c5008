// Package board owns the canonical case collection and partitions it into
// the fixed phase columns.
package board

import (
	"github.com/alexanderramin/casetracker/internal/domain"
)

// Column is one phase and the cases currently in it, in collection order.
type Column struct {
	Phase domain.Phase
	Cases []domain.Case
}

// Board is the single owner of the case collection. The collection is
// replaced wholesale on load and afterwards only individual statuses change,
// always by building a new slice.
type Board struct {
	phases []domain.Phase
	cases  []domain.Case
}

// New returns an empty board with the given column order. A nil phases
// slice uses domain.Phases.
func New(phases []domain.Phase) *Board {
	if phases == nil {
		phases = domain.Phases
	}
	return &Board{phases: phases}
}

// Phases returns the column order.
func (b *Board) Phases() []domain.Phase { return b.phases }

// Cases returns the canonical collection. Callers must treat it as read-only.
func (b *Board) Cases() []domain.Case { return b.cases }

// Len returns the number of cases in the collection.
func (b *Board) Len() int { return len(b.cases) }

// Replace installs a freshly loaded collection. Statuses are normalized here,
// once, so nothing downstream re-trims them.
func (b *Board) Replace(cases []domain.Case) {
	next := make([]domain.Case, len(cases))
	for i, c := range cases {
		next[i] = c.WithStatus(domain.NormalizeStatus(c.Status))
	}
	b.cases = next
}

// Lookup returns the case with the given id.
func (b *Board) Lookup(id domain.CaseID) (domain.Case, bool) {
	for _, c := range b.cases {
		if c.ID.Equal(id) {
			return c, true
		}
	}
	return domain.Case{}, false
}

// LookupText returns the first case whose id renders as text, regardless of
// whether the source used a string or an integer.
func (b *Board) LookupText(text string) (domain.Case, bool) {
	for _, c := range b.cases {
		if c.ID.String() == text {
			return c, true
		}
	}
	return domain.Case{}, false
}

// UpdateStatus replaces the status of the case with the given id. The new
// collection shares every other record with the old one. An unknown id
// leaves the collection untouched. Reports whether a record changed.
func (b *Board) UpdateStatus(id domain.CaseID, status domain.ReviewStatus) bool {
	idx := -1
	for i, c := range b.cases {
		if c.ID.Equal(id) {
			idx = i
			break
		}
	}
	if idx < 0 || b.cases[idx].Status == status {
		return false
	}

	next := make([]domain.Case, len(b.cases))
	copy(next, b.cases)
	next[idx] = next[idx].WithStatus(status)
	b.cases = next
	return true
}

// Columns partitions the current collection into one column per phase.
// Empty columns are included so every phase always renders.
func (b *Board) Columns() []Column {
	groups := Partition(b.cases, b.phases)
	cols := make([]Column, len(b.phases))
	for i, p := range b.phases {
		cols[i] = Column{Phase: p, Cases: groups[p]}
	}
	return cols
}

// Partition groups cases by phase in a single pass, keeping collection order
// within each group. Cases whose phase is not listed are dropped.
func Partition(cases []domain.Case, phases []domain.Phase) map[domain.Phase][]domain.Case {
	groups := make(map[domain.Phase][]domain.Case, len(phases))
	for _, p := range phases {
		groups[p] = nil
	}
	for _, c := range cases {
		if _, ok := groups[c.LitigationPhase]; ok {
			groups[c.LitigationPhase] = append(groups[c.LitigationPhase], c)
		}
	}
	return groups
}
