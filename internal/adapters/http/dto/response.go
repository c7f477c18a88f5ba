// Package dto holds the inbound adapter's request and response bodies and
// its RFC 9457 Problem Details errors.
package dto

import (
	"github.com/hohin728/redux-fundamentals-example-app/internal/domain/todo"
	"github.com/hohin728/redux-fundamentals-example-app/internal/ports"
	"github.com/hohin728/redux-fundamentals-example-app/internal/store"
)

// TodoResponse is a single todo.
type TodoResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Color     string `json:"color,omitempty"`
}

// ToTodoResponse converts a domain todo.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:        t.ID,
		Text:      t.Text,
		Completed: t.Completed,
		Color:     t.Color.String(),
	}
}

// ToTodoResponses converts todos, keeping their order. Nil input gives an
// empty slice so the JSON is [] rather than null.
func ToTodoResponses(todos []todo.Todo) []TodoResponse {
	out := make([]TodoResponse, len(todos))
	for i := range todos {
		out[i] = ToTodoResponse(&todos[i])
	}
	return out
}

// TodoListResponse is a list view together with the remaining count.
type TodoListResponse struct {
	View      View           `json:"view"`
	Todos     []TodoResponse `json:"todos"`
	Count     int            `json:"count"`
	Remaining int            `json:"remaining"`
}

// TodoIDsResponse is an ordered list of todo IDs.
type TodoIDsResponse struct {
	View  View     `json:"view"`
	IDs   []string `json:"ids"`
	Count int      `json:"count"`
}

// NewTodoIDsResponse builds the body, keeping an empty list non-null.
func NewTodoIDsResponse(view View, ids []string) TodoIDsResponse {
	if ids == nil {
		ids = []string{}
	}
	return TodoIDsResponse{View: view, IDs: ids, Count: len(ids)}
}

// StateResponse is the full root snapshot.
type StateResponse struct {
	Todos   TodosStateResponse   `json:"todos"`
	Filters FiltersStateResponse `json:"filters"`
}

// TodosStateResponse mirrors the entity slice: status, ordered ids and the
// id-keyed entity map.
type TodosStateResponse struct {
	Status   string                  `json:"status"`
	IDs      []string                `json:"ids"`
	Entities map[string]TodoResponse `json:"entities"`
}

// FiltersStateResponse mirrors the filter slice.
type FiltersStateResponse struct {
	Status string   `json:"status"`
	Colors []string `json:"colors"`
}

// ToStateResponse converts a root snapshot.
func ToStateResponse(s *store.RootState) StateResponse {
	ids := s.Todos.Entities.IDs()
	if ids == nil {
		ids = []string{}
	}
	entities := make(map[string]TodoResponse, len(ids))
	for _, t := range s.Todos.Entities.All() {
		entities[t.ID] = ToTodoResponse(&t)
	}

	colors := make([]string, len(s.Filters.Colors))
	for i, c := range s.Filters.Colors {
		colors[i] = c.String()
	}

	return StateResponse{
		Todos: TodosStateResponse{
			Status:   s.Todos.Status.String(),
			IDs:      ids,
			Entities: entities,
		},
		Filters: FiltersStateResponse{
			Status: s.Filters.Status.String(),
			Colors: colors,
		},
	}
}

// BatchCreateTodosResponse reports a partially successful batch.
type BatchCreateTodosResponse struct {
	Created []TodoResponse     `json:"created"`
	Errors  []BatchItemFailure `json:"errors"`
}

// BatchItemFailure is one text that could not be saved.
type BatchItemFailure struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Error string `json:"error"`
}

// ToBatchCreateTodosResponse converts the service result.
func ToBatchCreateTodosResponse(res *ports.BulkSaveResult) BatchCreateTodosResponse {
	out := BatchCreateTodosResponse{
		Created: ToTodoResponses(res.Created),
		Errors:  make([]BatchItemFailure, len(res.Errors)),
	}
	for i, e := range res.Errors {
		out.Errors[i] = BatchItemFailure{Index: e.Index, Text: e.Text, Error: e.Err.Error()}
	}
	return out
}
