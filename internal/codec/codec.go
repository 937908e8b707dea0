// Package codec converts the todo list to and from its persisted JSON
// form. Encoding is total; decoding absorbs every kind of bad input
// into an empty list so that a corrupt store never becomes a startup
// fault.
package codec

import (
	"encoding/json"

	"github.com/selin-ak/tickdo/internal/model"
)

// Encode renders the list as a JSON array of {id, text, completed}
// objects in list order. It never fails: the model contains only
// plain marshal-safe fields.
func Encode(todos model.List) string {
	if todos == nil {
		todos = model.List{}
	}
	b, err := json.Marshal(todos)
	if err != nil {
		// Unreachable with the Todo field set; keep the contract total.
		return "[]"
	}
	return string(b)
}

// Decode parses a persisted blob back into a list. ok=false means the
// blob was absent. Malformed JSON, a non-array document, or elements
// with wrong field types all decode to an empty list.
func Decode(raw string, ok bool) model.List {
	if !ok {
		return model.List{}
	}
	var todos model.List
	if err := json.Unmarshal([]byte(raw), &todos); err != nil {
		return model.List{}
	}
	if todos == nil {
		// "null" parses fine but is not our shape.
		return model.List{}
	}
	return todos
}
