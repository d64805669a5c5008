package cli

import (
	"testing"

	"github.com/alexanderramin/casetracker/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	shortHelp  []key.Binding
	initCmd    tea.Cmd
	updateCmd  tea.Cmd
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return v.initCmd }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, v.updateCmd
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return v.shortHelp }
func (v *stubView) Title() string            { return v.title }
func newStubView(id ViewID, title, text string) *stubView {
	return &stubView{id: id, title: title, viewText: text}
}

func newTestModel(t *testing.T) appModel {
	t.Helper()
	app, _ := testApp(t, &stubLoader{cases: fixtureCases()})
	return newAppModel(app)
}

func TestNewAppModelStartsAtBoard(t *testing.T) {
	m := newTestModel(t)

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewBoard, m.activeView().ID())
	assert.Zero(t, m.state.Board.Len())
}

func TestAppModel_NavigationMessages(t *testing.T) {
	m := newTestModel(t)
	v2 := newStubView(ViewNotice, "Notice", "notice view")

	model, cmd := m.Update(pushViewMsg{view: v2})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, v2, m.activeView())

	model, cmd = m.Update(popViewMsg{})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewBoard, m.activeView().ID())

	// The home view is never popped.
	model, _ = m.Update(popViewMsg{})
	m = model.(appModel)
	require.Len(t, m.viewStack, 1)
}

func TestAppModel_WindowResizeForwardsToActiveView(t *testing.T) {
	m := newTestModel(t)
	v := newStubView(ViewNotice, "Notice", "notice")
	m.viewStack = append(m.viewStack, v)

	model, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(appModel)
	require.Nil(t, cmd)

	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 30, m.state.Height)
	assert.Equal(t, 26, m.state.ContentHeight())
	require.Len(t, v.updateSeen, 1)
	_, ok := v.updateSeen[0].(tea.WindowSizeMsg)
	assert.True(t, ok)
}

func TestAppModel_KeyHandling_GlobalAndCaptured(t *testing.T) {
	t.Run("q quits when active view does not capture input", func(t *testing.T) {
		m := newTestModel(t)

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})

	t.Run("form receives q and esc", func(t *testing.T) {
		m := newTestModel(t)
		v := newStubView(ViewForm, "Jump", "form")
		m.viewStack = append(m.viewStack, v)

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		require.Nil(t, cmd)
		assert.False(t, m.quitting)

		model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		m = model.(appModel)
		require.Len(t, m.viewStack, 2, "esc belongs to the form")
		require.Len(t, v.updateSeen, 2)
		assert.Equal(t, "q", v.updateSeen[0].(tea.KeyMsg).String())
	})

	t.Run("esc pops back", func(t *testing.T) {
		m := newTestModel(t)
		m.viewStack = append(m.viewStack, newStubView(ViewNotice, "Notice", "notice"))

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		m = model.(appModel)
		require.Nil(t, cmd)
		require.Len(t, m.viewStack, 1)
	})

	t.Run("ctrl+c always quits", func(t *testing.T) {
		m := newTestModel(t)
		m.viewStack = append(m.viewStack, newStubView(ViewForm, "Jump", "form"))

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
	})
}

func TestAppModel_WizardCompletePopsAndRunsNext(t *testing.T) {
	m := newTestModel(t)
	m.viewStack = append(m.viewStack, newStubView(ViewForm, "Jump", "wizard"))

	next := focusCase(domain.IntID(7))
	model, cmd := m.Update(wizardCompleteMsg{nextCmd: next})
	m = model.(appModel)

	require.Len(t, m.viewStack, 1)
	require.NotNil(t, cmd)
	assert.Equal(t, focusCaseMsg{id: domain.IntID(7)}, cmd())
}

func TestAppModel_StatusChangeAppliesToBoard(t *testing.T) {
	m := newTestModel(t)
	m.state.Board.Replace(fixtureCases())
	// A view above the board must not swallow the decision.
	m.viewStack = append(m.viewStack, newStubView(ViewNotice, "Notice", "notice"))

	model, _ := m.Update(statusChangeMsg{id: domain.IntID(7), status: domain.StatusApproved})
	m = model.(appModel)

	c, ok := m.state.Board.Lookup(domain.IntID(7))
	require.True(t, ok)
	assert.Equal(t, domain.StatusApproved, c.Status)
}

func TestAppModel_HeaderAndStatusBar(t *testing.T) {
	m := newTestModel(t)
	m.state.Board.Replace(fixtureCases())
	m.viewStack = append(m.viewStack, &stubView{
		id:        ViewNotice,
		title:     "Deposition Notice",
		shortHelp: []key.Binding{key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "do thing"))},
	})

	out := m.View()
	assert.Contains(t, out, appTitle)
	assert.Contains(t, out, "Deposition Notice")
	assert.Contains(t, out, "5 cases")
	assert.Contains(t, out, "x: do thing")
	assert.Contains(t, out, "esc: back")
}

func TestViewCapturesInput(t *testing.T) {
	assert.False(t, viewCapturesInput(nil))
	assert.True(t, viewCapturesInput(newStubView(ViewForm, "Form", "")))
	assert.False(t, viewCapturesInput(newStubView(ViewBoard, "", "")))
	assert.False(t, viewCapturesInput(newStubView(ViewNotice, "Notice", "")))
}
