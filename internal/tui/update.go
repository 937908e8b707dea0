package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/selin-ak/tickdo/internal/engine"
	"github.com/selin-ak/tickdo/internal/route"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case persistDoneMsg:
		// Write failures never feed back into state; log and move on.
		if msg.err != nil {
			m.logf("[store] write failed: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		if m.dispatcher.State().Editing != nil {
			return m.updateEditMode(msg)
		}
		if m.entry.Focused() {
			return m.updateEntryMode(msg)
		}
		return m.updateListMode(msg)
	}

	return m, nil
}

// updateEntryMode handles keys while the new-item input is focused.
// Keys are consumed here; they never reach the list bindings.
func (m Model) updateEntryMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		cmd := m.dispatch(engine.Submit{})
		m.entry.SetValue(m.dispatcher.State().Input)
		if m.dispatcher.State().Input == "" {
			m.entry.Blur()
		}
		return m, cmd

	case "esc":
		// Leaves the input; the pending text survives in state.
		m.entry.Blur()
		return m, nil
	}

	var tiCmd tea.Cmd
	m.entry, tiCmd = m.entry.Update(msg)
	cmd := m.dispatch(engine.TextChanged{Text: m.entry.Value()})
	return m, tea.Batch(tiCmd, cmd)
}

// updateEditMode handles keys while a todo is being edited in place.
func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		cmd := m.dispatch(engine.CommitEdit{})
		m.edit.Blur()
		m.clampCursor()
		return m, cmd

	case "esc":
		cmd := m.dispatch(engine.CancelEdit{})
		m.edit.Blur()
		return m, cmd
	}

	var tiCmd tea.Cmd
	m.edit, tiCmd = m.edit.Update(msg)
	cmd := m.dispatch(engine.EditTextChanged{Text: m.edit.Value()})
	return m, tea.Batch(tiCmd, cmd)
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.cursor--
		m.clampCursor()
		return m, nil

	case "down", "j":
		m.cursor++
		m.clampCursor()
		return m, nil

	case "a":
		m.entry.Focus()
		m.entry.CursorEnd()
		return m, nil

	case " ":
		if id, ok := m.selectedID(); ok {
			cmd := m.dispatch(engine.Toggle{ID: id})
			m.clampCursor()
			return m, cmd
		}
		return m, nil

	case "d":
		if id, ok := m.selectedID(); ok {
			cmd := m.dispatch(engine.Delete{ID: id})
			m.clampCursor()
			return m, cmd
		}
		return m, nil

	case "e":
		if id, ok := m.selectedID(); ok {
			return m, m.dispatch(engine.StartEdit{ID: id})
		}
		return m, nil

	case "m":
		// Toggle-all: complete everything unless everything already is.
		target := m.dispatcher.State().Todos.ActiveCount() > 0
		cmd := m.dispatch(engine.MarkAll{Completed: target})
		m.clampCursor()
		return m, cmd

	case "c":
		cmd := m.dispatch(engine.ClearCompleted{})
		m.clampCursor()
		return m, cmd

	case "1":
		return m, m.dispatch(engine.Navigate{Target: "#/"})

	case "2":
		return m, m.dispatch(engine.Navigate{Target: "#/active"})

	case "3":
		return m, m.dispatch(engine.Navigate{Target: "#/completed"})

	case "b":
		if m.loc.Back() {
			cmd := m.dispatch(engine.FilterChanged{Filter: route.Resolve(m.loc.Fragment())})
			m.clampCursor()
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m Model) selectedID() (int, bool) {
	visible := m.dispatcher.State().Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return 0, false
	}
	return visible[m.cursor].ID, true
}
