package store

import "github.com/hohin728/redux-fundamentals-example-app/internal/domain/todo"

// Reducer computes the next root state from the current one and an action.
// It must be pure.
type Reducer func(state *RootState, action Action) *RootState

// Reduce is the root reducer. It delegates each slice to its own reducer and
// returns state itself when neither slice changed.
func Reduce(state *RootState, action Action) *RootState {
	if state == nil {
		state = InitialState()
	}

	todos := reduceTodos(state.Todos, action)
	filters := reduceFilters(state.Filters, action)
	if todos == state.Todos && filters == state.Filters {
		return state
	}
	return &RootState{Todos: todos, Filters: filters}
}

func reduceTodos(state *TodosState, action Action) *TodosState {
	switch a := action.(type) {
	case TodoAdded:
		return withEntities(state, state.Entities.addOne(a.Todo))

	case TodoToggled:
		return withEntities(state, state.Entities.updateOne(a.ID, func(t todo.Todo) todo.Todo {
			return t.WithCompleted(!t.Completed)
		}))

	case TodoColorSelected:
		return withEntities(state, state.Entities.updateOne(a.ID, func(t todo.Todo) todo.Todo {
			return t.WithColor(a.Color)
		}))

	case TodoDeleted:
		return withEntities(state, state.Entities.removeMany(a.ID))

	case AllTodosCompleted:
		return withEntities(state, state.Entities.updateAll(func(t todo.Todo) todo.Todo {
			return t.WithCompleted(true)
		}))

	case CompletedTodosCleared:
		var completed []string
		for _, t := range state.Entities.All() {
			if t.Completed {
				completed = append(completed, t.ID)
			}
		}
		return withEntities(state, state.Entities.removeMany(completed...))

	case TodosLoading:
		if state.Status == StatusLoading {
			return state
		}
		return &TodosState{Status: StatusLoading, Entities: state.Entities}

	case TodosLoaded:
		return &TodosState{Status: StatusIdle, Entities: NewEntityCollection(a.Todos...)}

	default:
		return state
	}
}

func withEntities(state *TodosState, entities *EntityCollection) *TodosState {
	if entities == state.Entities {
		return state
	}
	return &TodosState{Status: state.Status, Entities: entities}
}

func reduceFilters(state *FiltersState, action Action) *FiltersState {
	switch a := action.(type) {
	case StatusFilterChanged:
		if a.Status == state.Status {
			return state
		}
		return &FiltersState{Status: a.Status, Colors: state.Colors}

	case ColorFilterChanged:
		switch a.ChangeType {
		case ChangeAdded:
			if state.HasColor(a.Color) {
				return state
			}
			colors := make([]todo.Color, 0, len(state.Colors)+1)
			colors = append(colors, state.Colors...)
			colors = append(colors, a.Color)
			return &FiltersState{Status: state.Status, Colors: colors}

		case ChangeRemoved:
			if !state.HasColor(a.Color) {
				return state
			}
			colors := make([]todo.Color, 0, len(state.Colors)-1)
			for _, c := range state.Colors {
				if c != a.Color {
					colors = append(colors, c)
				}
			}
			return &FiltersState{Status: state.Status, Colors: colors}
		}
		return state

	default:
		return state
	}
}
