package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/alexanderramin/casetracker/internal/board"
	"github.com/alexanderramin/casetracker/internal/cli/formatter"
	"github.com/alexanderramin/casetracker/internal/domain"
	"github.com/alexanderramin/casetracker/internal/notice"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── messages ─────────────────────────────────────────────────────────────────

// casesLoadedMsg carries the result of the single startup load.
type casesLoadedMsg struct {
	cases []domain.Case
	err   error
}

// ── key bindings ─────────────────────────────────────────────────────────────

type boardKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Approve key.Binding
	Decline key.Binding
	Notice  key.Binding
	Jump    key.Binding
	Quit    key.Binding
}

var boardKeys = boardKeyMap{
	Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "column")),
	Right:   key.NewBinding(key.WithKeys("right", "l")),
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "case")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Toggle:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "expand")),
	Approve: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "approve")),
	Decline: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "decline")),
	Notice:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notice")),
	Jump:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "jump")),
	Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

// ── view ─────────────────────────────────────────────────────────────────────

const (
	minColumnWidth     = 24
	defaultColumnWidth = 32
	columnGap          = 1
)

// boardView is the home screen: one column per phase, each a stack of case
// cards. It reads the collection from SharedState and requests status
// changes with statusChangeMsg; it never mutates the collection itself.
type boardView struct {
	state      *SharedState
	loading    bool
	loadFailed bool
	spinner    spinner.Model

	// Focus cursor: column index and card index within that column.
	col int
	row int

	// expanded holds the per-card toggle. It is keyed by case id so it
	// survives status changes, which replace the records.
	expanded map[domain.CaseID]bool
}

func newBoardView(state *SharedState) *boardView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = formatter.StylePurple

	return &boardView{
		state:    state,
		loading:  true,
		spinner:  s,
		expanded: make(map[domain.CaseID]bool),
	}
}

func (v *boardView) ID() ViewID    { return ViewBoard }
func (v *boardView) Title() string { return "" }

func (v *boardView) ShortHelp() []key.Binding {
	if v.loading {
		return []key.Binding{boardKeys.Quit}
	}
	hints := []key.Binding{boardKeys.Left, boardKeys.Up, boardKeys.Toggle}
	if c, ok := v.focusedCase(); ok && v.expanded[c.ID] {
		if domain.ShowsReviewActions(c.Status) {
			hints = append(hints, boardKeys.Approve, boardKeys.Decline)
		}
		if _, ok := notice.EventFor(c.LitigationPhase); ok {
			hints = append(hints, boardKeys.Notice)
		}
	}
	return append(hints, boardKeys.Jump, boardKeys.Quit)
}

func (v *boardView) Init() tea.Cmd {
	return tea.Batch(v.spinner.Tick, v.loadCases())
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *boardView) loadCases() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		cases, err := app.Loader.Load(context.Background())
		return casesLoadedMsg{cases: cases, err: err}
	}
}

// ── focus helpers ────────────────────────────────────────────────────────────

func (v *boardView) columns() []board.Column {
	return v.state.Board.Columns()
}

func (v *boardView) focusedCase() (domain.Case, bool) {
	cols := v.columns()
	if v.col < 0 || v.col >= len(cols) {
		return domain.Case{}, false
	}
	cases := cols[v.col].Cases
	if v.row < 0 || v.row >= len(cases) {
		return domain.Case{}, false
	}
	return cases[v.row], true
}

func (v *boardView) clampRow() {
	cols := v.columns()
	if v.col >= len(cols) {
		v.col = max(0, len(cols)-1)
	}
	n := 0
	if v.col < len(cols) {
		n = len(cols[v.col].Cases)
	}
	v.row = min(max(v.row, 0), max(n-1, 0))
}

func (v *boardView) focusOn(id domain.CaseID) {
	for ci, col := range v.columns() {
		for ri, c := range col.Cases {
			if c.ID.Equal(id) {
				v.col, v.row = ci, ri
				return
			}
		}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *boardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case casesLoadedMsg:
		v.loading = false
		if msg.err != nil {
			// The loader's observer has logged it; the board stays empty.
			v.loadFailed = true
			return v, nil
		}
		v.state.Board.Replace(msg.cases)
		v.clampRow()
		return v, nil

	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case focusCaseMsg:
		v.focusOn(msg.id)
		return v, nil

	case tea.KeyMsg:
		if v.loading {
			return v, nil
		}
		return v, v.handleKey(msg)
	}

	return v, nil
}

func (v *boardView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, boardKeys.Left):
		if v.col > 0 {
			v.col--
			v.clampRow()
		}
	case key.Matches(msg, boardKeys.Right):
		if v.col < len(v.columns())-1 {
			v.col++
			v.clampRow()
		}
	case key.Matches(msg, boardKeys.Up):
		if v.row > 0 {
			v.row--
		}
	case key.Matches(msg, boardKeys.Down):
		v.row++
		v.clampRow()

	case key.Matches(msg, boardKeys.Toggle):
		if c, ok := v.focusedCase(); ok {
			v.expanded[c.ID] = !v.expanded[c.ID]
		}

	case key.Matches(msg, boardKeys.Approve):
		return v.review(domain.StatusApproved)
	case key.Matches(msg, boardKeys.Decline):
		return v.review(domain.StatusNotApproved)

	case key.Matches(msg, boardKeys.Notice):
		c, ok := v.focusedCase()
		if !ok || !v.expanded[c.ID] {
			return nil
		}
		if n, ok := notice.Draft(c); ok {
			return pushView(newNoticeView(v.state, c, n))
		}

	case key.Matches(msg, boardKeys.Jump):
		var target domain.CaseID
		if c, ok := v.focusedCase(); ok {
			target = c.ID
		}
		form := wizardJumpToCase(v.columns(), &target)
		return startWizardCmd(v.state, "Jump", form, func() tea.Cmd {
			return focusCase(target)
		})
	}
	return nil
}

// review requests a status change for the focused card. It only acts while
// the card shows its review controls: focused, expanded and pending.
func (v *boardView) review(status domain.ReviewStatus) tea.Cmd {
	c, ok := v.focusedCase()
	if !ok || !v.expanded[c.ID] || !domain.ShowsReviewActions(c.Status) {
		return nil
	}
	return changeStatus(c.ID, status)
}

// ── view rendering ───────────────────────────────────────────────────────────

func (v *boardView) View() string {
	if v.loading {
		return "\n  " + v.spinner.View() + " " + formatter.Dim("Loading cases...")
	}

	var b strings.Builder
	if v.loadFailed {
		b.WriteString(formatter.Dim(formatter.LoadFailedNotice) + "\n")
	}

	width := v.columnWidth()
	avail := 0
	if v.state.Height > 0 {
		// Column header and rule take two lines.
		avail = v.state.ContentHeight() - 2
		if v.loadFailed {
			avail--
		}
	}

	cols := v.columns()
	rendered := make([]string, 0, len(cols)*2)
	for ci, col := range cols {
		cards := make([]string, len(col.Cases))
		for ri, c := range col.Cases {
			focused := ci == v.col && ri == v.row
			cards[ri] = formatter.FormatCard(c, formatter.CardOptions{
				Expanded: v.expanded[c.ID],
				Focused:  focused,
				Controls: focused,
				Width:    width,
			})
		}
		if ci == v.col && avail > 0 {
			cards = scrollToFocus(cards, v.row, avail)
		}
		if ci > 0 {
			rendered = append(rendered, strings.Repeat(" ", columnGap))
		}
		rendered = append(rendered, formatter.FormatColumn(col, cards, width, ci == v.col))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))

	out := b.String()
	if v.state.Height > 0 {
		lines := strings.Split(out, "\n")
		if limit := v.state.ContentHeight(); len(lines) > limit {
			out = strings.Join(lines[:limit], "\n")
		}
	}
	return out
}

func (v *boardView) columnWidth() int {
	n := len(v.columns())
	if v.state.Width <= 0 || n == 0 {
		return defaultColumnWidth
	}
	return max((v.state.Width-columnGap*(n-1))/n, minColumnWidth)
}

// scrollToFocus drops leading cards until the focused card fits within
// avail lines, marking how many were skipped.
func scrollToFocus(cards []string, focus, avail int) []string {
	if focus >= len(cards) {
		return cards
	}
	start := 0
	for start < focus && stackHeight(cards[start:focus+1])+1 > avail {
		start++
	}
	if start == 0 {
		return cards
	}
	more := formatter.Dim("↑ " + pluralCases(start) + " above")
	return append([]string{more}, cards[start:]...)
}

func stackHeight(cards []string) int {
	h := 0
	for _, c := range cards {
		h += lipgloss.Height(c)
	}
	return h
}

func pluralCases(n int) string {
	if n == 1 {
		return "1 case"
	}
	return strconv.Itoa(n) + " cases"
}
