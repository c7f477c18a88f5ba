// Package store is the to-do state container: an immutable root snapshot,
// the pure reducers that produce the next snapshot from an Action, a
// dispatcher that applies actions and notifies subscribers, and memoized
// selectors that derive views from a snapshot.
//
//	s := store.New(store.WithLogger(logger))
//	unsubscribe := s.Subscribe(func(st *store.RootState) { ... })
//	defer unsubscribe()
//
//	s.Dispatch(ctx, store.TodoAdded{Todo: todo.Todo{ID: "1", Text: "Learn Go"}})
//	s.Dispatch(ctx, store.TodoToggled{ID: "1"})
//
//	sel := store.NewSelectors()
//	ids := sel.FilteredTodoIDs.Select(s.State())
//
// Snapshots are shared between readers and must be treated as read-only.
// Reducers copy every level they change and keep the pointer of every level
// they do not, so selectors can memoize on reference equality.
package store
