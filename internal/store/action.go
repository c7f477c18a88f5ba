package store

import "github.com/hohin728/redux-fundamentals-example-app/internal/domain/todo"

// Action type strings. They double as the "type" field of a Descriptor.
const (
	TypeTodoAdded             = "todos/todoAdded"
	TypeTodoToggled           = "todos/todoToggled"
	TypeTodoColorSelected     = "todos/todoColorSelected"
	TypeTodoDeleted           = "todos/todoDeleted"
	TypeAllTodosCompleted     = "todos/allTodosCompleted"
	TypeCompletedTodosCleared = "todos/completedTodosCleared"
	TypeTodosLoading          = "todos/todosLoading"
	TypeTodosLoaded           = "todos/todosLoaded"
	TypeStatusFilterChanged   = "filters/statusFilterChanged"
	TypeColorFilterChanged    = "filters/colorFilterChanged"
)

// Action is a state-transition request. The set of actions is closed: only
// the types in this package implement it.
type Action interface {
	Type() string
	isAction()
}

// TodoAdded inserts a todo under its ID.
type TodoAdded struct {
	Todo todo.Todo
}

// TodoToggled flips the completion flag of one todo.
type TodoToggled struct {
	ID string
}

// TodoColorSelected sets the color of one todo. NoColor clears it.
type TodoColorSelected struct {
	ID    string
	Color todo.Color
}

// TodoDeleted removes one todo.
type TodoDeleted struct {
	ID string
}

// AllTodosCompleted marks every todo completed.
type AllTodosCompleted struct{}

// CompletedTodosCleared removes every completed todo.
type CompletedTodosCleared struct{}

// TodosLoading marks a fetch as in flight.
type TodosLoading struct{}

// TodosLoaded replaces the whole collection with Todos and clears the
// loading flag.
type TodosLoaded struct {
	Todos []todo.Todo
}

// StatusFilterChanged replaces the status filter.
type StatusFilterChanged struct {
	Status todo.StatusFilter
}

// ChangeType says whether a color joins or leaves the color filter.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeRemoved ChangeType = "removed"
)

// ColorFilterChanged adds a color to, or removes it from, the color filter.
type ColorFilterChanged struct {
	Color      todo.Color
	ChangeType ChangeType
}

// UnknownAction carries a type string no reducer recognizes. Dispatching it
// leaves the state unchanged.
type UnknownAction struct {
	Kind string
}

func (TodoAdded) Type() string             { return TypeTodoAdded }
func (TodoToggled) Type() string           { return TypeTodoToggled }
func (TodoColorSelected) Type() string     { return TypeTodoColorSelected }
func (TodoDeleted) Type() string           { return TypeTodoDeleted }
func (AllTodosCompleted) Type() string     { return TypeAllTodosCompleted }
func (CompletedTodosCleared) Type() string { return TypeCompletedTodosCleared }
func (TodosLoading) Type() string          { return TypeTodosLoading }
func (TodosLoaded) Type() string           { return TypeTodosLoaded }
func (StatusFilterChanged) Type() string   { return TypeStatusFilterChanged }
func (ColorFilterChanged) Type() string    { return TypeColorFilterChanged }
func (a UnknownAction) Type() string       { return a.Kind }

func (TodoAdded) isAction()             {}
func (TodoToggled) isAction()           {}
func (TodoColorSelected) isAction()     {}
func (TodoDeleted) isAction()           {}
func (AllTodosCompleted) isAction()     {}
func (CompletedTodosCleared) isAction() {}
func (TodosLoading) isAction()          {}
func (TodosLoaded) isAction()           {}
func (StatusFilterChanged) isAction()   {}
func (ColorFilterChanged) isAction()    {}
func (UnknownAction) isAction()         {}
