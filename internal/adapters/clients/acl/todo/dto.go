// Package todo implements the Anti-Corruption Layer translators for the
// remote to-do API's todo resources.
package todo

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TodoDTO matches the remote Todo schema.
type TodoDTO struct {
	ID        WireID `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Color     string `json:"color,omitempty"`
}

// TodoListResponseDTO matches GET /fakeApi/todos.
type TodoListResponseDTO struct {
	Todos []TodoDTO `json:"todos"`
}

// NewTodoDTO is the body of a create request: only the text is sent.
type NewTodoDTO struct {
	Text string `json:"text"`
}

// CreateTodoRequestDTO matches the POST /fakeApi/todos request body.
type CreateTodoRequestDTO struct {
	Todo NewTodoDTO `json:"todo"`
}

// CreateTodoResponseDTO matches the POST /fakeApi/todos response body.
type CreateTodoResponseDTO struct {
	Todo TodoDTO `json:"todo"`
}

// WireID is a todo ID as the remote API sends it: a JSON string or a JSON
// number. It is always marshaled back as a string.
type WireID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *WireID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = WireID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("todo id must be a string or a number: %w", err)
	}
	*id = WireID(n.String())
	return nil
}
