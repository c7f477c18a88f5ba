package todo

import "slices"

// Filter holds the view criteria applied to a todo list.
// Both predicates must pass. An empty Colors set passes every todo.
type Filter struct {
	Status StatusFilter
	Colors []Color
}

// IsZero reports whether the filter lets every todo through.
func (f Filter) IsZero() bool {
	return (f.Status == StatusAll || f.Status == "") && len(f.Colors) == 0
}

// Matches reports whether t passes both the status and the color predicate.
func (f Filter) Matches(t *Todo) bool {
	if !f.Status.Matches(t) {
		return false
	}
	return len(f.Colors) == 0 || slices.Contains(f.Colors, t.Color)
}

// Apply returns the todos that pass the filter, in input order.
func (f Filter) Apply(todos []Todo) []Todo {
	out := make([]Todo, 0, len(todos))
	for i := range todos {
		if f.Matches(&todos[i]) {
			out = append(out, todos[i])
		}
	}
	return out
}
