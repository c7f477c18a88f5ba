package store

import (
	"slices"

	"github.com/hohin728/redux-fundamentals-example-app/internal/domain/todo"
)

// LoadingStatus reports whether a fetch of the todo list is in flight.
type LoadingStatus string

const (
	StatusIdle    LoadingStatus = "idle"
	StatusLoading LoadingStatus = "loading"
)

// String implements fmt.Stringer.
func (s LoadingStatus) String() string {
	return string(s)
}

// RootState is one immutable snapshot of the whole application state.
type RootState struct {
	Todos   *TodosState
	Filters *FiltersState
}

// TodosState is the entity slice of the root state.
type TodosState struct {
	Status   LoadingStatus
	Entities *EntityCollection
}

// FiltersState is the view-filter slice of the root state. Colors is a set:
// it never holds duplicates and its order carries no meaning.
type FiltersState struct {
	Status todo.StatusFilter
	Colors []todo.Color
}

// HasColor reports whether c is in the active color set.
func (f *FiltersState) HasColor(c todo.Color) bool {
	return slices.Contains(f.Colors, c)
}

// Filter returns the todo.Filter described by this state.
func (f *FiltersState) Filter() todo.Filter {
	return todo.Filter{Status: f.Status, Colors: f.Colors}
}

// InitialState returns an empty snapshot: no todos, idle, all statuses, no
// color filter.
func InitialState() *RootState {
	return &RootState{
		Todos: &TodosState{
			Status:   StatusIdle,
			Entities: NewEntityCollection(),
		},
		Filters: &FiltersState{
			Status: todo.StatusAll,
		},
	}
}
