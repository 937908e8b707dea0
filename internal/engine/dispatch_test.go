package engine

import (
	"encoding/json"
	"testing"

	"github.com/selin-ak/tickdo/internal/model"
	"github.com/selin-ak/tickdo/internal/route"
)

func persistEffects(effects []Effect) []Persist {
	var out []Persist
	for _, eff := range effects {
		if p, ok := eff.(Persist); ok {
			out = append(out, p)
		}
	}
	return out
}

func TestDispatchPersistsOnListChange(t *testing.T) {
	d := NewDispatcher(State{})
	d.Dispatch(TextChanged{Text: "Buy milk"})
	_, effects := d.Dispatch(Submit{})

	persists := persistEffects(effects)
	if len(persists) != 1 {
		t.Fatalf("persist effects = %d, want 1", len(persists))
	}

	var stored model.List
	if err := json.Unmarshal([]byte(persists[0].Data), &stored); err != nil {
		t.Fatalf("persist payload is not valid JSON: %v", err)
	}
	want := model.List{{ID: 0, Text: "Buy milk"}}
	if !stored.Equal(want) {
		t.Fatalf("persisted %v, want %v", stored, want)
	}
}

func TestDispatchSkipsPersistForEphemeralChanges(t *testing.T) {
	d := NewDispatcher(State{Todos: model.List{{ID: 0, Text: "a"}}})

	events := []Event{
		TextChanged{Text: "typing..."},
		TextChanged{Text: "   "},
		Submit{}, // whitespace-only: rejected, so no list change
		FilterChanged{Filter: route.Active},
		StartEdit{ID: 0},
		EditTextChanged{Text: "still typing"},
		CancelEdit{},
		Delete{ID: 99},
		Toggle{ID: 99},
	}
	for _, ev := range events {
		_, effects := d.Dispatch(ev)
		if len(persistEffects(effects)) != 0 {
			t.Fatalf("%T persisted", ev)
		}
	}
}

func TestDispatchMarkAllPersistsOnceWithAllItems(t *testing.T) {
	d := NewDispatcher(State{Todos: model.List{
		{ID: 0, Text: "a"},
		{ID: 1, Text: "b"},
		{ID: 2, Text: "c", Completed: true},
	}})

	_, effects := d.Dispatch(MarkAll{Completed: true})
	persists := persistEffects(effects)
	if len(persists) != 1 {
		t.Fatalf("persist effects = %d, want exactly 1", len(persists))
	}

	var stored model.List
	if err := json.Unmarshal([]byte(persists[0].Data), &stored); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if len(stored) != 3 {
		t.Fatalf("persisted %d items, want 3", len(stored))
	}
	for _, todo := range stored {
		if !todo.Completed {
			t.Fatalf("persisted item not completed: %v", todo)
		}
	}
}

func TestDispatchMarkAllNoopDoesNotPersist(t *testing.T) {
	d := NewDispatcher(State{Todos: model.List{{ID: 0, Text: "a", Completed: true}}})
	_, effects := d.Dispatch(MarkAll{Completed: true})
	if len(persistEffects(effects)) != 0 {
		t.Fatalf("markall with no change persisted")
	}
}

func TestDispatchCommitEditPersists(t *testing.T) {
	d := NewDispatcher(State{Todos: model.List{{ID: 0, Text: "old"}}})
	d.Dispatch(StartEdit{ID: 0})
	d.Dispatch(EditTextChanged{Text: "new"})
	_, effects := d.Dispatch(CommitEdit{})
	if len(persistEffects(effects)) != 1 {
		t.Fatalf("commit with a text change must persist")
	}
}

func TestDispatchHoldsCurrentState(t *testing.T) {
	d := NewDispatcher(State{})
	d.Dispatch(TextChanged{Text: "x"})
	d.Dispatch(Submit{})
	if len(d.State().Todos) != 1 {
		t.Fatalf("dispatcher did not retain the new state")
	}
}

func TestBoot(t *testing.T) {
	s := Boot(`[{"id":3,"text":"carry on","completed":true}]`, true, "#/completed")
	if len(s.Todos) != 1 || s.Todos[0].ID != 3 || !s.Todos[0].Completed {
		t.Fatalf("todos = %v", s.Todos)
	}
	if s.Filter != route.Completed {
		t.Fatalf("filter = %v", s.Filter)
	}

	s = Boot("", false, "#/bogus")
	if len(s.Todos) != 0 || s.Filter != route.All {
		t.Fatalf("empty boot = %+v", s)
	}
}
