// Package route maps the navigation fragment onto the view filter.
//
// The recognized fragments are the path-style "#/active" and
// "#/completed" (the fragment is matched whole, marker included, and
// case-sensitively). Everything else resolves to All; there is no
// error case.
package route

// Filter selects which todos the view lists. It is derived from the
// fragment on every navigation, never persisted.
type Filter int

const (
	All Filter = iota
	Active
	Completed
)

const (
	fragmentAll       = "#/"
	fragmentActive    = "#/active"
	fragmentCompleted = "#/completed"
)

// Resolve maps a fragment to a Filter. Unknown, empty, or absent
// fragments select All.
func Resolve(fragment string) Filter {
	switch fragment {
	case fragmentActive:
		return Active
	case fragmentCompleted:
		return Completed
	}
	return All
}

// Fragment is the inverse of Resolve, used to build filter links.
func (f Filter) Fragment() string {
	switch f {
	case Active:
		return fragmentActive
	case Completed:
		return fragmentCompleted
	}
	return fragmentAll
}

func (f Filter) String() string {
	switch f {
	case Active:
		return "active"
	case Completed:
		return "completed"
	}
	return "all"
}

// Match reports whether a todo's completed flag passes the filter.
func (f Filter) Match(completed bool) bool {
	switch f {
	case Active:
		return !completed
	case Completed:
		return completed
	}
	return true
}
