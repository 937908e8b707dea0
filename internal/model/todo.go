package model

// Todo is the domain model for a single list entry.
// The JSON tags are the persistence contract; do not rename them.
type Todo struct {
	ID        int    `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// List is an insertion-ordered todo collection. Ids are pairwise
// distinct; order matters only for display stability.
type List []Todo

// Clone returns an independent copy of the list.
func (l List) Clone() List {
	if l == nil {
		return nil
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Find returns the index of the todo with the given id, or -1.
func (l List) Find(id int) int {
	for i := range l {
		if l[i].ID == id {
			return i
		}
	}
	return -1
}

// NextID returns 1 + the highest id ever present in the list
// (high-water mark). Deleting items never frees an id for reuse
// because assignment only ever goes through this rule.
func (l List) NextID() int {
	next := 0
	for _, t := range l {
		if t.ID >= next {
			next = t.ID + 1
		}
	}
	return next
}

// ActiveCount counts todos that are not completed, over the whole
// (unfiltered) list.
func (l List) ActiveCount() int {
	n := 0
	for _, t := range l {
		if !t.Completed {
			n++
		}
	}
	return n
}

// CompletedCount counts completed todos.
func (l List) CompletedCount() int {
	n := 0
	for _, t := range l {
		if t.Completed {
			n++
		}
	}
	return n
}

// Equal reports structural equality: same length, same todos in the
// same order.
func (l List) Equal(other List) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if l[i] != other[i] {
			return false
		}
	}
	return true
}
