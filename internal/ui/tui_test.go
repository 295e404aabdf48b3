package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/henhouse/internal/kv"
	"github.com/nibzard/henhouse/internal/store"
	"github.com/nibzard/henhouse/internal/tracker"
)

// readOnlyStorage serves nothing and rejects writes.
type readOnlyStorage struct{}

func (readOnlyStorage) Get(context.Context, string) (string, bool, error) { return "", false, nil }
func (readOnlyStorage) Set(context.Context, string, string) error {
	return errors.New("disk full")
}
func (readOnlyStorage) Driver() kv.Driver { return "readonly" }
func (readOnlyStorage) Close() error      { return nil }

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func newTestModel(t *testing.T, storage kv.Storage) (*Model, *store.Store) {
	t.Helper()
	st := store.New(storage)
	return NewModel(context.Background(), st, WithBarWidth(10)), st
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestNewModelStartsCollapsed(t *testing.T) {
	m, _ := newTestModel(t, kv.NewMemory())

	if got := len(m.rows()); got != 6 {
		t.Fatalf("visible rows: got %d, want 6", got)
	}
	for _, st := range m.State() {
		if m.Expanded(st.ID) {
			t.Errorf("step %s expanded on start", st.ID)
		}
	}

	view := m.View()
	for _, want := range []string{
		"Hen House Tracker",
		"Overall Progress",
		"0%",
		"(0/30 tasks)",
		"Step 1 – Develop Recipes",
		"Deadline: Oct 2025",
		"[Tasks]",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Research flavor trends") {
		t.Error("collapsed view shows task labels")
	}
}

func TestEnterExpandsStep(t *testing.T) {
	m, _ := newTestModel(t, kv.NewMemory())

	send(m, keyEnter)
	if !m.Expanded("s1") {
		t.Fatal("enter on step row did not expand it")
	}
	if got := len(m.rows()); got != 12 {
		t.Errorf("visible rows: got %d, want 12", got)
	}
	view := m.View()
	if !strings.Contains(view, "[Hide]") {
		t.Error("expanded step should show the Hide hint")
	}
	if !strings.Contains(view, "[ ] Research flavor trends & competitors") {
		t.Error("expanded step should list its tasks")
	}

	send(m, keyEnter)
	if m.Expanded("s1") {
		t.Error("second enter did not collapse the step")
	}
}

func TestSpaceTogglesTaskAndPersists(t *testing.T) {
	mem := kv.NewMemory()
	m, st := newTestModel(t, mem)

	send(m, keyEnter, keyDown, keySpace)

	task, _ := tracker.FindTask(m.State(), "s1", "s1t1")
	if !task.Done {
		t.Fatal("space on task row did not check it")
	}
	step, _ := m.State().Step("s1")
	if step.Progress != 17 {
		t.Errorf("step progress: got %d, want 17", step.Progress)
	}
	view := m.View()
	if !strings.Contains(view, "[x] Research flavor trends & competitors") {
		t.Error("checked task should render as [x]")
	}
	if !strings.Contains(view, "(1/30 tasks)") {
		t.Error("overall counts not updated")
	}

	saved := st.Load(context.Background())
	if task, _ := tracker.FindTask(saved, "s1", "s1t1"); !task.Done {
		t.Error("toggle was not written through to storage")
	}

	send(m, keySpace)
	saved = st.Load(context.Background())
	if task, _ := tracker.FindTask(saved, "s1", "s1t1"); task.Done {
		t.Error("second toggle did not uncheck the task")
	}
}

func TestExpansionIsNotPersisted(t *testing.T) {
	mem := kv.NewMemory()
	m, st := newTestModel(t, mem)

	send(m, runes("e"), keyDown, keyEnter)

	raw, _, err := mem.Get(context.Background(), st.Key())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(raw, "expanded") {
		t.Errorf("stored value carries view state: %s", raw)
	}

	reopened := NewModel(context.Background(), st)
	if reopened.Expanded("s1") {
		t.Error("expansion survived a reload")
	}
	if task, _ := tracker.FindTask(reopened.State(), "s1", "s1t1"); !task.Done {
		t.Error("task completion did not survive a reload")
	}
}

func TestCursorMovement(t *testing.T) {
	m, _ := newTestModel(t, kv.NewMemory())

	send(m, keyUp)
	if m.cursor != 0 {
		t.Errorf("cursor moved above the first row: %d", m.cursor)
	}
	for i := 0; i < 20; i++ {
		send(m, runes("j"))
	}
	if m.cursor != 5 {
		t.Errorf("cursor: got %d, want 5 (last step row)", m.cursor)
	}
	send(m, runes("k"))
	if m.cursor != 4 {
		t.Errorf("cursor after k: got %d, want 4", m.cursor)
	}
}

func TestCollapseAllKeepsCursorOnStep(t *testing.T) {
	m, _ := newTestModel(t, kv.NewMemory())

	send(m, runes("e"))
	for _, st := range m.State() {
		if !m.Expanded(st.ID) {
			t.Fatalf("step %s not expanded by e", st.ID)
		}
	}
	if got := len(m.rows()); got != 36 {
		t.Fatalf("visible rows: got %d, want 36", got)
	}

	// Move onto the second task of step 2: s1 (1 + 6 rows), s2 row, s2t1, s2t2.
	for i := 0; i < 9; i++ {
		send(m, keyDown)
	}
	r, _ := m.currentRow()
	if r.step != 1 || r.task != 1 {
		t.Fatalf("cursor row: got %+v, want step 1 task 1", r)
	}

	send(m, runes("c"))
	r, _ = m.currentRow()
	if !r.isStep() || r.step != 1 {
		t.Errorf("after collapse cursor row: got %+v, want step row 1", r)
	}
}

func TestToggleIntents(t *testing.T) {
	m, _ := newTestModel(t, kv.NewMemory())

	m.ToggleExpand("nope")
	if m.Expanded("nope") {
		t.Error("unknown step became expanded")
	}

	before := m.State()
	m.ToggleTask("s9", "s9t1", true)
	if m.SaveErr() != nil {
		t.Errorf("unknown task produced an error: %v", m.SaveErr())
	}
	if tracker.OverallProgress(m.State()) != tracker.OverallProgress(before) {
		t.Error("unknown task changed the state")
	}

	m.ToggleTask("s3", "s3t2", true)
	if task, _ := tracker.FindTask(m.State(), "s3", "s3t2"); !task.Done {
		t.Error("ToggleTask intent did not apply")
	}
}

func TestSaveFailureKeepsToggle(t *testing.T) {
	m, _ := newTestModel(t, readOnlyStorage{})

	m.ToggleTask("s1", "s1t1", true)
	if m.SaveErr() == nil {
		t.Fatal("expected a save error")
	}
	if task, _ := tracker.FindTask(m.State(), "s1", "s1t1"); !task.Done {
		t.Error("in-memory state should reflect the toggle after a failed save")
	}
	if !strings.Contains(m.View(), "save failed: ") {
		t.Error("view does not show the save error")
	}
}

func TestHelpAndQuit(t *testing.T) {
	m, _ := newTestModel(t, kv.NewMemory())

	send(m, runes("?"))
	if !m.help.ShowAll {
		t.Error("? did not open full help")
	}
	if !strings.Contains(m.View(), "collapse all") {
		t.Error("full help missing collapse binding")
	}

	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		cmd := send(m, msg)
		if cmd == nil {
			t.Fatalf("%s returned no command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s did not quit", msg)
		}
	}
}

func TestIsTTY(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("buffer reported as TTY")
	}
}
