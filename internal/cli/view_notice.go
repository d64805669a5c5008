package cli

import (
	"github.com/alexanderramin/casetracker/internal/cli/formatter"
	"github.com/alexanderramin/casetracker/internal/domain"
	"github.com/alexanderramin/casetracker/internal/notice"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// noticeView previews the drafted client notice for one case. The draft is
// display-only; nothing is sent.
type noticeView struct {
	state  *SharedState
	c      domain.Case
	notice notice.Notice
	vp     viewport.Model
}

func newNoticeView(state *SharedState, c domain.Case, n notice.Notice) *noticeView {
	vp := viewport.New(state.Width, state.ContentHeight())
	vp.KeyMap = noticeViewportKeyMap()
	vp.SetContent(formatter.RenderBox(string(n.Event)+" notice · "+c.ID.String(), n.String()))

	return &noticeView{state: state, c: c, notice: n, vp: vp}
}

func (v *noticeView) ID() ViewID    { return ViewNotice }
func (v *noticeView) Title() string { return string(v.notice.Event) + " Notice" }

func (v *noticeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		noticeCloseKey,
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

var noticeCloseKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "close"))

func (v *noticeView) Init() tea.Cmd {
	if v.state.App != nil && v.state.App.Logger != nil {
		v.state.App.Logger.Debug("notice drafted",
			zap.String("id", v.c.ID.String()),
			zap.String("event", string(v.notice.Event)),
		)
	}
	return nil
}

func (v *noticeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		v.vp.Width = size.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, noticeCloseKey) {
		return v, popView()
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *noticeView) View() string {
	if v.state.Height == 0 {
		return formatter.RenderBox(string(v.notice.Event)+" notice · "+v.c.ID.String(), v.notice.String())
	}
	return v.vp.View()
}

// noticeViewportKeyMap leaves letter keys free for the global bindings.
func noticeViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		Up:       key.NewBinding(key.WithKeys("up")),
		Down:     key.NewBinding(key.WithKeys("down")),
	}
}
