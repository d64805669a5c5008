package cli

import (
	"testing"

	"github.com/alexanderramin/casetracker/internal/domain"
	"github.com/alexanderramin/casetracker/internal/teatest"
)

// TestDriver wraps teatest.Driver with board-specific inspection methods.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel, sizes the terminal generously so no
// card is clipped, and drains Init, which performs the load.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(200, 150))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Board returns the home view.
func (d *TestDriver) Board() *boardView {
	return d.appModel().viewStack[0].(*boardView)
}

// FocusedCase returns the case under the board cursor.
func (d *TestDriver) FocusedCase() (domain.Case, bool) {
	return d.Board().focusedCase()
}

// Case returns the current record for id from the canonical collection.
func (d *TestDriver) Case(id domain.CaseID) domain.Case {
	d.T.Helper()
	c, ok := d.State().Board.Lookup(id)
	if !ok {
		d.T.Fatalf("case %s not on the board", id)
	}
	return c
}

// IsQuitting reports whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
