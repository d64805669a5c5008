// Package notice drafts the scheduling notice a client receives when their
// case enters a phase that needs them in person. Drafts are never sent.
package notice

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/casetracker/internal/domain"
)

// Event is the client-facing appointment a phase calls for.
type Event string

const (
	EventDeposition Event = "Deposition"
	EventMediation  Event = "Mediation"
)

const defaultClientName = "Client"

// Notice is a drafted client message.
type Notice struct {
	Event   Event
	Subject string
	Body    string
}

// EventFor returns the event the phase calls for, matching case-insensitively.
func EventFor(p domain.Phase) (Event, bool) {
	switch strings.ToLower(strings.TrimSpace(string(p))) {
	case strings.ToLower(string(domain.PhaseDiscovery)):
		return EventDeposition, true
	case strings.ToLower(string(domain.PhaseSettlement)):
		return EventMediation, true
	}
	return "", false
}

// Draft builds the notice for c, or reports false when its phase needs none.
func Draft(c domain.Case) (Notice, bool) {
	event, ok := EventFor(c.LitigationPhase)
	if !ok {
		return Notice{}, false
	}
	client := domain.CoalesceStr(strings.TrimSpace(c.ClientName), defaultClientName)
	return Notice{
		Event:   event,
		Subject: fmt.Sprintf("%s Request", event),
		Body: fmt.Sprintf("Hello %s,\n\n"+
			"We are reaching out to schedule your %s. "+
			"Please let us know your availability.\n\n"+
			"Best regards,\nDonna", client, event),
	}, true
}

// String renders the notice as a plain-text message.
func (n Notice) String() string {
	return fmt.Sprintf("Subject: %s\n\n%s\n", n.Subject, n.Body)
}
