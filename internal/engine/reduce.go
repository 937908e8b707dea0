// Package engine is the unidirectional state-update core: a pure
// reducer from (State, Event) to (State, effects), plus the Dispatcher
// that owns the current state and keeps storage in sync.
package engine

import (
	"strings"

	"github.com/selin-ak/tickdo/internal/model"
)

// Reduce applies one event and returns the next state plus requested
// side effects. It is pure: no I/O, no shared mutable state, and the
// incoming state is never modified. Events that reference a missing
// todo id are benign no-ops (the id may have gone away in another
// tab), never errors.
func Reduce(s State, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case TextChanged:
		s.Input = ev.Text
		return s, nil

	case Submit:
		if strings.TrimSpace(s.Input) == "" {
			return s, nil
		}
		todos := s.Todos.Clone()
		// The stored text keeps its original whitespace; trimming is
		// only the emptiness check.
		todos = append(todos, model.Todo{ID: s.Todos.NextID(), Text: s.Input})
		s.Todos = todos
		s.Input = ""
		return s, nil

	case Delete:
		i := s.Todos.Find(ev.ID)
		if i < 0 {
			return s, nil
		}
		todos := make(model.List, 0, len(s.Todos)-1)
		todos = append(todos, s.Todos[:i]...)
		todos = append(todos, s.Todos[i+1:]...)
		s.Todos = todos
		return s, nil

	case Toggle:
		i := s.Todos.Find(ev.ID)
		if i < 0 {
			return s, nil
		}
		todos := s.Todos.Clone()
		todos[i].Completed = !todos[i].Completed
		s.Todos = todos
		return s, nil

	case ClearCompleted:
		if s.Todos.CompletedCount() == 0 {
			return s, nil
		}
		todos := make(model.List, 0, len(s.Todos))
		for _, t := range s.Todos {
			if !t.Completed {
				todos = append(todos, t)
			}
		}
		s.Todos = todos
		return s, nil

	case MarkAll:
		changed := false
		for _, t := range s.Todos {
			if t.Completed != ev.Completed {
				changed = true
				break
			}
		}
		if !changed {
			return s, nil
		}
		todos := s.Todos.Clone()
		for i := range todos {
			todos[i].Completed = ev.Completed
		}
		s.Todos = todos
		return s, nil

	case StartEdit:
		i := s.Todos.Find(ev.ID)
		if i < 0 {
			return s, nil
		}
		s.Editing = &Edit{ID: ev.ID, Text: s.Todos[i].Text}
		return s, []Effect{Focus{ElementID: EditFieldID(ev.ID)}}

	case EditTextChanged:
		if s.Editing == nil {
			return s, nil
		}
		s.Editing = &Edit{ID: s.Editing.ID, Text: ev.Text}
		return s, nil

	case CancelEdit:
		s.Editing = nil
		return s, nil

	case CommitEdit:
		if s.Editing == nil {
			return s, nil
		}
		edit := *s.Editing
		s.Editing = nil
		i := s.Todos.Find(edit.ID)
		if i < 0 {
			// Deleted mid-edit: editing still ends, todos untouched.
			return s, nil
		}
		todos := s.Todos.Clone()
		todos[i].Text = edit.Text
		s.Todos = todos
		return s, nil

	case FilterChanged:
		s.Filter = ev.Filter
		return s, nil

	case Navigate:
		if strings.HasPrefix(ev.Target, "#") {
			return s, []Effect{PushURL{URL: ev.Target}}
		}
		return s, []Effect{LoadURL{URL: ev.Target}}
	}

	return s, nil
}
