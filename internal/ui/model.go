package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/nibzard/henhouse/internal/store"
	"github.com/nibzard/henhouse/internal/tracker"
)

// Model is the bubbletea model for the checklist. It owns the expansion
// state, which is never persisted, and forwards task toggles to the store.
type Model struct {
	ctx    context.Context
	store  *store.Store
	logger *log.Logger

	state    tracker.State
	expanded map[string]bool
	cursor   int
	saveErr  error

	keys   keyMap
	help   help.Model
	bar    progress.Model
	styles styles
}

// row is one visible line the cursor can rest on. task is -1 for step rows.
type row struct {
	step int
	task int
}

func (r row) isStep() bool { return r.task < 0 }

// NewModel loads the current state from st. Every step starts collapsed.
func NewModel(ctx context.Context, st *store.Store, opts ...TUIOption) *Model {
	c := newTUIConfig(opts)
	return &Model{
		ctx:      ctx,
		store:    st,
		logger:   c.logger,
		state:    st.Load(ctx),
		expanded: make(map[string]bool),
		keys:     defaultKeyMap(),
		help:     help.New(),
		bar: progress.New(
			progress.WithSolidFill(accentColor),
			progress.WithoutPercentage(),
			progress.WithWidth(c.barWidth),
		),
		styles: defaultStyles(),
	}
}

// State returns the checklist as currently shown.
func (m *Model) State() tracker.State {
	return m.state
}

// SaveErr returns the error from the most recent save, if it failed.
func (m *Model) SaveErr() error {
	return m.saveErr
}

// Expanded reports whether the step's tasks are visible.
func (m *Model) Expanded(stepID string) bool {
	return m.expanded[stepID]
}

// ToggleTask sets the task's done flag and writes the state through. When
// the save fails the new state is kept and the error is surfaced.
func (m *Model) ToggleTask(stepID, taskID string, done bool) {
	next, err := m.store.Toggle(m.ctx, m.state, stepID, taskID, done)
	m.state = next
	m.saveErr = err
	if err != nil {
		m.logger.Error("save failed", "step", stepID, "task", taskID, "err", err)
	}
}

// ToggleExpand flips the step's expansion. Unknown ids are ignored.
func (m *Model) ToggleExpand(stepID string) {
	if _, ok := m.state.Step(stepID); !ok {
		return
	}
	m.setExpanded(func(id string) bool {
		if id == stepID {
			return !m.expanded[id]
		}
		return m.expanded[id]
	})
}

func (m *Model) setAllExpanded(open bool) {
	m.setExpanded(func(string) bool { return open })
}

// setExpanded applies fn to every step and keeps the cursor on the same
// step when that step's task rows disappear.
func (m *Model) setExpanded(fn func(id string) bool) {
	current, hasCurrent := m.currentRow()
	for _, st := range m.state {
		if fn(st.ID) {
			m.expanded[st.ID] = true
		} else {
			delete(m.expanded, st.ID)
		}
	}
	if !hasCurrent {
		m.cursor = 0
		return
	}
	rows := m.rows()
	for i, r := range rows {
		if r == current {
			m.cursor = i
			return
		}
	}
	for i, r := range rows {
		if r.isStep() && r.step == current.step {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

func (m *Model) rows() []row {
	var rows []row
	for i, st := range m.state {
		rows = append(rows, row{step: i, task: -1})
		if !m.expanded[st.ID] {
			continue
		}
		for j := range st.Tasks {
			rows = append(rows, row{step: i, task: j})
		}
	}
	return rows
}

func (m *Model) currentRow() (row, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// activate handles enter/space on the row under the cursor.
func (m *Model) activate() {
	r, ok := m.currentRow()
	if !ok {
		return
	}
	st := m.state[r.step]
	if r.isStep() {
		m.ToggleExpand(st.ID)
		return
	}
	t := st.Tasks[r.task]
	m.ToggleTask(st.ID, t.ID, !t.Done)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor--
			m.clampCursor()
		case key.Matches(msg, m.keys.Down):
			m.cursor++
			m.clampCursor()
		case key.Matches(msg, m.keys.Toggle):
			m.activate()
		case key.Matches(msg, m.keys.ExpandAll):
			m.setAllExpanded(true)
		case key.Matches(msg, m.keys.CollapseAll):
			m.setAllExpanded(false)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}
