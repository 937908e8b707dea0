// Package tui renders the application state and owns the dispatch
// loop: key messages become engine events, returned effects are
// carried out against the store, the inputs, and the location.
package tui

import (
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/selin-ak/tickdo/internal/engine"
	"github.com/selin-ak/tickdo/internal/nav"
	"github.com/selin-ak/tickdo/internal/route"
	"github.com/selin-ak/tickdo/internal/storage"
)

type persistDoneMsg struct{ err error }

// Model is the bubbletea model. All application state lives in the
// dispatcher; the fields here are presentation-only (cursor, inputs,
// window size).
type Model struct {
	dispatcher *engine.Dispatcher
	store      storage.Store
	loc        *nav.Location

	entry textinput.Model
	edit  textinput.Model

	cursor int
	width  int
	height int
	status string
	debug  bool
}

// New builds the model around an already-booted dispatcher.
func New(d *engine.Dispatcher, store storage.Store, loc *nav.Location, debug bool) Model {
	entry := textinput.New()
	entry.Prompt = "> "
	entry.Placeholder = "What needs to be done?"
	entry.CharLimit = 200
	entry.SetValue(d.State().Input)

	edit := textinput.New()
	edit.Prompt = "> "
	edit.CharLimit = 200

	return Model{
		dispatcher: d,
		store:      store,
		loc:        loc,
		entry:      entry,
		edit:       edit,
		debug:      debug,
	}
}

func (m Model) Init() tea.Cmd { return nil }

// dispatch feeds one event through the engine and performs the
// returned effects. Persist becomes a fire-and-forget command; focus
// and navigation effects apply to the local collaborators.
func (m *Model) dispatch(ev engine.Event) tea.Cmd {
	_, effects := m.dispatcher.Dispatch(ev)
	return m.perform(effects)
}

func (m *Model) perform(effects []engine.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, eff := range effects {
		switch eff := eff.(type) {
		case engine.Persist:
			data := eff.Data
			cmds = append(cmds, func() tea.Msg {
				return persistDoneMsg{err: m.store.Write(data)}
			})

		case engine.Focus:
			// A focus target that does not exist is dropped silently.
			m.applyFocus(eff.ElementID)

		case engine.PushURL:
			m.loc.Push(eff.URL)
			cmds = append(cmds, m.dispatch(engine.FilterChanged{Filter: route.Resolve(eff.URL)}))

		case engine.LoadURL:
			// External target: surfaced to the user, bypasses app state.
			m.status = "open externally: " + eff.URL
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) applyFocus(elementID string) {
	if elementID == engine.NewFieldID {
		m.entry.Focus()
		m.entry.CursorEnd()
		return
	}
	if editing := m.dispatcher.State().Editing; editing != nil && elementID == engine.EditFieldID(editing.ID) {
		m.edit.SetValue(editing.Text)
		m.edit.CursorEnd()
		m.edit.Focus()
	}
}

// clampCursor keeps the selection inside the currently visible rows.
func (m *Model) clampCursor() {
	n := len(m.dispatcher.State().Visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) logf(format string, args ...any) {
	if m.debug {
		log.Printf(format, args...)
	}
}
