package store

import (
	"github.com/hohin728/redux-fundamentals-example-app/internal/domain/todo"
)

// viewKey identifies the inputs of a filtered view.
type viewKey struct {
	entities *EntityCollection
	filters  *FiltersState
}

// Selectors is a set of memoized derived views. Each consumer should own its
// own Selectors so that caches are not shared between unrelated readers.
//
// Returned slices are shared with the cache and must not be modified.
type Selectors struct {
	AllTodos         *Selector[*EntityCollection, []todo.Todo]
	UncompletedTodos *Selector[*EntityCollection, []todo.Todo]
	RemainingCount   *Selector[*EntityCollection, int]
	FilteredTodos    *Selector[viewKey, []todo.Todo]
	FilteredTodoIDs  *Selector[viewKey, []string]

	match func(f todo.Filter, t *todo.Todo) bool
}

// NewSelectors returns a fresh, empty-cache selector set.
func NewSelectors() *Selectors {
	sel := &Selectors{
		match: todo.Filter.Matches,
	}

	byEntities := func(s *RootState) *EntityCollection { return s.Todos.Entities }
	byView := func(s *RootState) viewKey {
		return viewKey{entities: s.Todos.Entities, filters: s.Filters}
	}

	sel.AllTodos = NewSelector(byEntities, func(s *RootState) []todo.Todo {
		return s.Todos.Entities.All()
	})

	sel.UncompletedTodos = NewSelector(byEntities, func(s *RootState) []todo.Todo {
		all := sel.AllTodos.Select(s)
		out := make([]todo.Todo, 0, len(all))
		for _, t := range all {
			if !t.Completed {
				out = append(out, t)
			}
		}
		return out
	})

	sel.RemainingCount = NewSelector(byEntities, func(s *RootState) int {
		return len(sel.UncompletedTodos.Select(s))
	})

	sel.FilteredTodos = NewSelector(byView, func(s *RootState) []todo.Todo {
		all := sel.AllTodos.Select(s)
		f := s.Filters.Filter()
		if f.IsZero() {
			return all
		}
		out := make([]todo.Todo, 0, len(all))
		for i := range all {
			if sel.match(f, &all[i]) {
				out = append(out, all[i])
			}
		}
		return out
	})

	sel.FilteredTodoIDs = NewSelector(byView, func(s *RootState) []string {
		filtered := sel.FilteredTodos.Select(s)
		ids := make([]string, 0, len(filtered))
		for _, t := range filtered {
			ids = append(ids, t.ID)
		}
		return ids
	})

	return sel
}

// TodoByID looks up a single todo.
func TodoByID(state *RootState, id string) (todo.Todo, bool) {
	return state.Todos.Entities.Get(id)
}

// TodoIDs returns every todo ID in insertion order.
func TodoIDs(state *RootState) []string {
	return state.Todos.Entities.IDs()
}

// Loading returns the fetch status of the entity slice.
func Loading(state *RootState) LoadingStatus {
	return state.Todos.Status
}
