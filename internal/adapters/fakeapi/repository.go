// Package fakeapi is an in-memory stand-in for the remote to-do API. It
// serves the same wire contract the ACL client consumes, so the server can
// run end to end without an external dependency.
package fakeapi

import (
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/hohin728/redux-fundamentals-example-app/internal/domain"
	"github.com/hohin728/redux-fundamentals-example-app/internal/domain/todo"
)

// SeedTodos is the starting data when seeding is enabled.
func SeedTodos() []todo.Todo {
	return []todo.Todo{
		{ID: "0", Text: "Learn React", Completed: true},
		{ID: "1", Text: "Learn Redux", Color: todo.ColorPurple},
		{ID: "2", Text: "Build something fun!", Color: todo.ColorBlue},
	}
}

// RepositoryOption configures a Repository.
type RepositoryOption func(*Repository)

// WithSeed preloads todos in order.
func WithSeed(todos ...todo.Todo) RepositoryOption {
	return func(r *Repository) {
		r.todos = append(r.todos, todos...)
	}
}

// WithIDGenerator replaces uuid.NewString.
func WithIDGenerator(fn func() string) RepositoryOption {
	return func(r *Repository) {
		r.newID = fn
	}
}

// Repository is an ordered, concurrency-safe todo list.
type Repository struct {
	mu    sync.RWMutex
	todos []todo.Todo
	newID func() string
}

// NewRepository creates an empty Repository unless WithSeed is given.
func NewRepository(opts ...RepositoryOption) *Repository {
	r := &Repository{newID: uuid.NewString}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List returns a copy of every todo in insertion order.
func (r *Repository) List() []todo.Todo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := slices.Clone(r.todos)
	if out == nil {
		out = []todo.Todo{}
	}
	return out
}

// Create appends a new incomplete, uncolored todo. Blank text is a
// validation error.
func (r *Repository) Create(text string) (todo.Todo, error) {
	if strings.TrimSpace(text) == "" {
		return todo.Todo{}, domain.NewValidationError("todo.text", domain.MsgRequired)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	t := todo.Todo{ID: r.newID(), Text: text}
	r.todos = append(r.todos, t)
	return t, nil
}

// Len reports the number of stored todos.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.todos)
}
