package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/selin-ak/tickdo/internal/route"
	"github.com/selin-ak/tickdo/internal/ui"
)

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("8")).
	Padding(0, 1)

func (m Model) View() string {
	t := ui.Current()
	st := m.dispatcher.State()

	var lines []string

	done := st.Todos.CompletedCount()
	pending := st.Todos.ActiveCount()
	lines = append(lines, fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), len(st.Todos),
	))
	lines = append(lines, "")
	lines = append(lines, m.entry.View())

	// List and footer disappear entirely while there is nothing to
	// show, whatever the filter says.
	if len(st.Todos) > 0 {
		lines = append(lines, "")
		lines = append(lines, m.rows()...)
		lines = append(lines, "")
		lines = append(lines, m.footer())
	}

	if m.status != "" {
		lines = append(lines, t.Muted.Render(m.status))
	}
	lines = append(lines, t.Muted.Render("a add · space done · e edit · d delete · 1/2/3 filter · q quit"))

	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) rows() []string {
	t := ui.Current()
	st := m.dispatcher.State()
	visible := st.Visible()
	if len(visible) == 0 {
		return []string{t.Muted.Render("nothing " + st.Filter.String())}
	}

	out := make([]string, 0, len(visible))
	for i, todo := range visible {
		// The row under edit shows the edit buffer, not the item text.
		if st.Editing != nil && st.Editing.ID == todo.ID {
			out = append(out, "  "+m.edit.View())
			continue
		}

		box := t.Muted.Render(t.BoxUnchecked)
		text := todo.Text
		if todo.Completed {
			box = t.Success.Render(t.BoxChecked)
			text = t.Done.Render(text)
		}
		prefix := "  "
		if i == m.cursor {
			prefix = t.Selected.Render("> ")
		}
		out = append(out, fmt.Sprintf("%s%s %s", prefix, box, text))
	}
	return out
}

func (m Model) footer() string {
	t := ui.Current()
	st := m.dispatcher.State()

	// Count over the whole list; the filter only hides rows.
	left := st.Todos.ActiveCount()
	noun := "items"
	if left == 1 {
		noun = "item"
	}

	var filters []string
	for _, f := range []route.Filter{route.All, route.Active, route.Completed} {
		label := f.Fragment()
		if f == st.Filter {
			label = t.Accent.Render(label)
		} else {
			label = t.Muted.Render(label)
		}
		filters = append(filters, label)
	}

	parts := []string{
		fmt.Sprintf("%d %s left", left, noun),
		strings.Join(filters, " "),
	}
	if st.Todos.CompletedCount() > 0 {
		parts = append(parts, t.Muted.Render("c clears done"))
	}
	return strings.Join(parts, "   ")
}

// Run starts the interactive list over an already-booted dispatcher.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
