package cli

import (
	"github.com/alexanderramin/casetracker/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// statusChangeMsg asks the board owner to record a review decision.
type statusChangeMsg struct {
	id     domain.CaseID
	status domain.ReviewStatus
}

// focusCaseMsg moves the board cursor onto the given case.
type focusCaseMsg struct {
	id domain.CaseID
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func changeStatus(id domain.CaseID, status domain.ReviewStatus) tea.Cmd {
	return func() tea.Msg { return statusChangeMsg{id: id, status: status} }
}

func focusCase(id domain.CaseID) tea.Cmd {
	return func() tea.Msg { return focusCaseMsg{id: id} }
}
