package domain

import "strings"

// Phase is a litigation workflow stage used to bucket cases into columns.
type Phase string

const (
	PhaseDiscovery  Phase = "Discovery"
	PhaseSettlement Phase = "Settlement Discussion"
	PhasePreTrial   Phase = "Pre-Trial"
	PhaseTrial      Phase = "Trial"
)

// Phases is the fixed column order of the board. Partitioning and rendering
// both read it; nothing derives phases from the data.
var Phases = []Phase{PhaseDiscovery, PhaseSettlement, PhasePreTrial, PhaseTrial}

// IsKnownPhase reports whether p is one of the fixed board phases.
func IsKnownPhase(p Phase) bool {
	for _, known := range Phases {
		if p == known {
			return true
		}
	}
	return false
}

// ReviewStatus is the review state of a case. It is the only field the board
// mutates at runtime.
type ReviewStatus string

const (
	StatusNotStarted  ReviewStatus = "Not Started"
	StatusPending     ReviewStatus = "Pending"
	StatusApproved    ReviewStatus = "Approved"
	StatusNotApproved ReviewStatus = "Not Approved"
)

// NormalizeStatus trims incidental whitespace and maps absent or
// unrecognized values to StatusNotStarted.
func NormalizeStatus(s ReviewStatus) ReviewStatus {
	switch ReviewStatus(strings.TrimSpace(string(s))) {
	case StatusPending:
		return StatusPending
	case StatusApproved:
		return StatusApproved
	case StatusNotApproved:
		return StatusNotApproved
	default:
		return StatusNotStarted
	}
}

// StatusClass is the display category derived from a status string.
type StatusClass string

const (
	ClassNotStarted  StatusClass = "notStarted"
	ClassPending     StatusClass = "pending"
	ClassApproved    StatusClass = "approved"
	ClassNotApproved StatusClass = "notApproved"
)

// Classify maps any status string to its display class. It never fails;
// empty, whitespace-only and unknown values classify as ClassNotStarted.
func Classify(status ReviewStatus) StatusClass {
	switch NormalizeStatus(status) {
	case StatusPending:
		return ClassPending
	case StatusApproved:
		return ClassApproved
	case StatusNotApproved:
		return ClassNotApproved
	default:
		return ClassNotStarted
	}
}

// ShowsReviewActions reports whether approve/decline controls apply to a
// case with the given status.
func ShowsReviewActions(status ReviewStatus) bool {
	return strings.TrimSpace(string(status)) == string(StatusPending)
}
