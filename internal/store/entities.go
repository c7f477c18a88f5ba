package store

import (
	"maps"
	"slices"

	"github.com/hohin728/redux-fundamentals-example-app/internal/domain/todo"
)

// EntityCollection is a normalized, insertion-ordered set of todos keyed by
// ID. It is immutable: every change returns a new collection and leaves the
// receiver untouched. A change that would be a no-op returns the receiver.
type EntityCollection struct {
	ids      []string
	entities map[string]todo.Todo
}

// NewEntityCollection builds a collection from todos in order. When an ID
// repeats, the first occurrence wins.
func NewEntityCollection(todos ...todo.Todo) *EntityCollection {
	c := &EntityCollection{
		ids:      make([]string, 0, len(todos)),
		entities: make(map[string]todo.Todo, len(todos)),
	}
	for _, t := range todos {
		if _, ok := c.entities[t.ID]; ok {
			continue
		}
		c.ids = append(c.ids, t.ID)
		c.entities[t.ID] = t
	}
	return c
}

// Len returns the number of todos.
func (c *EntityCollection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ids)
}

// Get returns the todo stored under id.
func (c *EntityCollection) Get(id string) (todo.Todo, bool) {
	if c == nil {
		return todo.Todo{}, false
	}
	t, ok := c.entities[id]
	return t, ok
}

// Has reports whether id is present.
func (c *EntityCollection) Has(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// IDs returns a copy of the ordered ID list.
func (c *EntityCollection) IDs() []string {
	if c == nil {
		return []string{}
	}
	return slices.Clone(c.ids)
}

// All returns every todo in insertion order as a fresh slice.
func (c *EntityCollection) All() []todo.Todo {
	out := make([]todo.Todo, 0, c.Len())
	if c == nil {
		return out
	}
	for _, id := range c.ids {
		out = append(out, c.entities[id])
	}
	return out
}

func (c *EntityCollection) clone() *EntityCollection {
	return &EntityCollection{
		ids:      slices.Clone(c.ids),
		entities: maps.Clone(c.entities),
	}
}

// addOne inserts t unless its ID is already present.
func (c *EntityCollection) addOne(t todo.Todo) *EntityCollection {
	if c.Has(t.ID) {
		return c
	}
	next := c.clone()
	next.ids = append(next.ids, t.ID)
	next.entities[t.ID] = t
	return next
}

// updateOne replaces the todo at id with fn's result. Absent IDs and
// unchanged results leave the collection as is.
func (c *EntityCollection) updateOne(id string, fn func(todo.Todo) todo.Todo) *EntityCollection {
	cur, ok := c.Get(id)
	if !ok {
		return c
	}
	updated := fn(cur)
	if updated == cur {
		return c
	}
	updated.ID = id
	next := &EntityCollection{
		ids:      c.ids,
		entities: maps.Clone(c.entities),
	}
	next.entities[id] = updated
	return next
}

// updateAll applies fn to every todo. The ID order is shared with the
// receiver since it cannot change.
func (c *EntityCollection) updateAll(fn func(todo.Todo) todo.Todo) *EntityCollection {
	var entities map[string]todo.Todo
	for _, id := range c.ids {
		cur := c.entities[id]
		updated := fn(cur)
		if updated == cur {
			continue
		}
		if entities == nil {
			entities = maps.Clone(c.entities)
		}
		updated.ID = id
		entities[id] = updated
	}
	if entities == nil {
		return c
	}
	return &EntityCollection{ids: c.ids, entities: entities}
}

// removeMany rebuilds the collection without the given IDs. Unknown IDs are
// ignored.
func (c *EntityCollection) removeMany(ids ...string) *EntityCollection {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if c.Has(id) {
			drop[id] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return c
	}

	next := &EntityCollection{
		ids:      make([]string, 0, len(c.ids)-len(drop)),
		entities: make(map[string]todo.Todo, len(c.ids)-len(drop)),
	}
	for _, id := range c.ids {
		if _, gone := drop[id]; gone {
			continue
		}
		next.ids = append(next.ids, id)
		next.entities[id] = c.entities[id]
	}
	return next
}
