package ui

import (
	"fmt"
	"strings"

	"github.com/nibzard/henhouse/internal/tracker"
)

const title = "Hen House Tracker"

func (m *Model) View() string {
	var b strings.Builder
	m.writeTitle(&b)
	m.writeOverall(&b)

	current, _ := m.currentRow()
	for i, st := range m.state {
		m.writeStep(&b, i, st, current)
	}

	m.writeStatus(&b)
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) writeTitle(b *strings.Builder) {
	b.WriteString(m.styles.title.Render(title) + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
}

func (m *Model) writeOverall(b *strings.Builder) {
	o := tracker.OverallProgress(m.state)
	b.WriteString(m.styles.section.Render("Overall Progress") + "\n")
	fmt.Fprintf(b, "  %s %3d%%  (%d/%d tasks)\n\n",
		m.bar.ViewAs(float64(o.Percent)/100), o.Percent, o.DoneTasks, o.TotalTasks)
}

func (m *Model) writeStep(b *strings.Builder, idx int, st tracker.Step, current row) {
	open := m.expanded[st.ID]
	hint := "Tasks"
	if open {
		hint = "Hide"
	}

	cursor := "  "
	if current.isStep() && current.step == idx {
		cursor = m.styles.cursor.Render("> ")
	}
	fmt.Fprintf(b, "%s%s  %s\n", cursor, m.styles.stepName.Render(st.Title), m.styles.hint.Render("["+hint+"]"))
	b.WriteString("    " + m.styles.deadline.Render("Deadline: "+st.Deadline) + "\n")
	fmt.Fprintf(b, "    %s %3d%%\n", m.bar.ViewAs(float64(st.Progress)/100), st.Progress)

	if open {
		for j, t := range st.Tasks {
			m.writeTask(b, t, current.step == idx && current.task == j)
		}
	}
	b.WriteString("\n")
}

func (m *Model) writeTask(b *strings.Builder, t tracker.Task, selected bool) {
	cursor := "    "
	if selected {
		cursor = "  " + m.styles.cursor.Render("> ")
	}
	box := "[ ]"
	label := m.styles.taskOpen.Render(t.Label)
	if t.Done {
		box = "[x]"
		label = m.styles.taskDone.Render(t.Label)
	}
	fmt.Fprintf(b, "%s  %s %s\n", cursor, box, label)
}

func (m *Model) writeStatus(b *strings.Builder) {
	if m.saveErr == nil {
		return
	}
	b.WriteString(m.styles.errLine.Render("save failed: "+m.saveErr.Error()) + "\n\n")
}
