// Package tui is the terminal dashboard over the resource sync controller.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emiliopalmerini/hyperfocus/internal/controller"
	"github.com/emiliopalmerini/hyperfocus/internal/domain"
)

const clockInterval = 30 * time.Second

// opDoneMsg reports a finished controller operation.
type opDoneMsg struct {
	op  string
	err error
}

type tickMsg time.Time

// Model is the dashboard TUI. Controller calls run inside tea.Cmds and the
// view re-reads the snapshot when they settle.
type Model struct {
	ctrl    *controller.Controller
	coord   *controller.Coordinator
	persist func(context.Context) error
	now     func() time.Time

	snap   controller.Snapshot
	cursor int
	busy   string
	styles *Styles
	width  int
	height int
}

type Option func(*Model)

// WithPersist runs fn after every settled operation.
func WithPersist(fn func(context.Context) error) Option {
	return func(m *Model) { m.persist = fn }
}

// WithClock overrides the clock used for active session durations.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

func NewModel(ctrl *controller.Controller, coord *controller.Coordinator, opts ...Option) *Model {
	m := &Model{
		ctrl:   ctrl,
		coord:  coord,
		now:    time.Now,
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.sync()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// run executes fn in a tea.Cmd and reports the outcome as opDoneMsg.
func (m *Model) run(op string, fn func(ctx context.Context) error) tea.Cmd {
	m.busy = op
	return func() tea.Msg {
		ctx := context.Background()
		err := fn(ctx)
		if m.persist != nil {
			_ = m.persist(ctx)
		}
		return opDoneMsg{op: op, err: err}
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tick()

	case opDoneMsg:
		m.busy = ""
		m.sync()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "j", "down":
		if m.cursor < len(m.sessions())-1 {
			m.cursor++
		}
		return nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return nil
	}

	if m.busy != "" {
		return nil
	}

	switch msg.String() {
	case "enter":
		s, ok := m.cursorSession()
		if !ok {
			return nil
		}
		return m.run("select", func(ctx context.Context) error {
			return m.ctrl.Select(ctx, s.ID)
		})
	case "r":
		userID, rng := m.snap.UserID, m.snap.Range
		if userID == "" {
			return nil
		}
		return m.run("reload", func(ctx context.Context) error {
			return m.ctrl.LoadAll(ctx, userID, rng)
		})
	case "t":
		userID, rng := m.snap.UserID, nextRange(m.snap.Range)
		if userID == "" {
			return nil
		}
		return m.run("range", func(ctx context.Context) error {
			return m.ctrl.LoadAll(ctx, userID, rng)
		})
	case "s":
		return m.run("start session", m.coord.StartSession)
	case "e":
		s, ok := m.cursorSession()
		if !ok || !s.IsActive() {
			return nil
		}
		return m.run("end session", func(ctx context.Context) error {
			return m.coord.EndSession(ctx, s.ID)
		})
	case "d":
		return m.run("demo", m.coord.SeedDemoData)
	}
	return nil
}

// sync re-reads the snapshot and keeps the cursor on a valid row, preferring
// the selected session.
func (m *Model) sync() {
	m.snap = m.ctrl.Snapshot()
	sessions := m.sessions()
	if id := m.snap.SelectedSessionID; id != nil {
		for i, s := range sessions {
			if s.ID == *id {
				m.cursor = i
				return
			}
		}
	}
	if m.cursor >= len(sessions) {
		m.cursor = len(sessions) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) sessions() []domain.Session {
	return m.snap.Views.Sessions.Value
}

func (m *Model) cursorSession() (domain.Session, bool) {
	sessions := m.sessions()
	if m.cursor < 0 || m.cursor >= len(sessions) {
		return domain.Session{}, false
	}
	return sessions[m.cursor], true
}

func nextRange(r domain.Range) domain.Range {
	ranges := domain.Ranges()
	for i, candidate := range ranges {
		if candidate == r {
			return ranges[(i+1)%len(ranges)]
		}
	}
	return domain.DefaultRange
}
