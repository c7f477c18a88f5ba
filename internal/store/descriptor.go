package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hohin728/redux-fundamentals-example-app/internal/domain"
	"github.com/hohin728/redux-fundamentals-example-app/internal/domain/todo"
)

// Descriptor is the serialized form of an action: a type string and an
// optional payload whose shape depends on the type.
type Descriptor struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type todoPayload struct {
	ID        payloadID  `json:"id"`
	Text      string     `json:"text"`
	Completed bool       `json:"completed"`
	Color     todo.Color `json:"color,omitempty"`
}

type colorSelectedPayload struct {
	TodoID payloadID  `json:"todoId"`
	Color  todo.Color `json:"color"`
}

type colorFilterPayload struct {
	Color      todo.Color `json:"color"`
	ChangeType ChangeType `json:"changeType"`
}

// payloadID accepts a JSON string or number.
type payloadID string

func (id *payloadID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = payloadID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = payloadID(n.String())
	return nil
}

func (p todoPayload) toDomain() todo.Todo {
	return todo.Todo{ID: string(p.ID), Text: p.Text, Completed: p.Completed, Color: p.Color}
}

func fromDomain(t todo.Todo) todoPayload {
	return todoPayload{ID: payloadID(t.ID), Text: t.Text, Completed: t.Completed, Color: t.Color}
}

// DecodeAction converts a descriptor into an Action. Unrecognized types
// decode to UnknownAction without error. A recognized type with a missing or
// malformed payload yields a *domain.ValidationError.
func DecodeAction(d Descriptor) (Action, error) {
	switch d.Type {
	case TypeTodoAdded:
		var p todoPayload
		if err := decodePayload(d, &p); err != nil {
			return nil, err
		}
		t := p.toDomain()
		if err := t.Validate(); err != nil {
			return nil, err
		}
		return TodoAdded{Todo: t}, nil

	case TypeTodoToggled:
		id, err := decodeID(d)
		if err != nil {
			return nil, err
		}
		return TodoToggled{ID: id}, nil

	case TypeTodoDeleted:
		id, err := decodeID(d)
		if err != nil {
			return nil, err
		}
		return TodoDeleted{ID: id}, nil

	case TypeTodoColorSelected:
		var p colorSelectedPayload
		if err := decodePayload(d, &p); err != nil {
			return nil, err
		}
		fields := map[string]string{}
		if p.TodoID == "" {
			fields["payload.todoId"] = domain.MsgRequired
		}
		if p.Color != todo.NoColor && !p.Color.IsValid() {
			fields["payload.color"] = fmt.Sprintf("invalid: %q", p.Color)
		}
		if len(fields) > 0 {
			return nil, &domain.ValidationError{Fields: fields}
		}
		return TodoColorSelected{ID: string(p.TodoID), Color: p.Color}, nil

	case TypeAllTodosCompleted:
		return AllTodosCompleted{}, nil

	case TypeCompletedTodosCleared:
		return CompletedTodosCleared{}, nil

	case TypeTodosLoading:
		return TodosLoading{}, nil

	case TypeTodosLoaded:
		var p []todoPayload
		if err := decodePayload(d, &p); err != nil {
			return nil, err
		}
		todos := make([]todo.Todo, 0, len(p))
		for i := range p {
			t := p[i].toDomain()
			if err := t.Validate(); err != nil {
				return nil, fmt.Errorf("payload[%d]: %w", i, err)
			}
			todos = append(todos, t)
		}
		return TodosLoaded{Todos: todos}, nil

	case TypeStatusFilterChanged:
		var status todo.StatusFilter
		if err := decodePayload(d, &status); err != nil {
			return nil, err
		}
		if !status.IsValid() {
			return nil, domain.NewValidationError("payload", fmt.Sprintf("invalid status: %q", status))
		}
		return StatusFilterChanged{Status: status}, nil

	case TypeColorFilterChanged:
		var p colorFilterPayload
		if err := decodePayload(d, &p); err != nil {
			return nil, err
		}
		if !p.Color.IsValid() {
			return nil, domain.NewValidationError("payload.color", fmt.Sprintf("invalid: %q", p.Color))
		}
		return ColorFilterChanged{Color: p.Color, ChangeType: p.ChangeType}, nil

	default:
		return UnknownAction{Kind: d.Type}, nil
	}
}

// Describe converts an action into its descriptor form.
func Describe(action Action) (Descriptor, error) {
	var payload any
	switch a := action.(type) {
	case TodoAdded:
		payload = fromDomain(a.Todo)
	case TodoToggled:
		payload = a.ID
	case TodoDeleted:
		payload = a.ID
	case TodoColorSelected:
		payload = map[string]any{"todoId": a.ID, "color": a.Color}
	case TodosLoaded:
		items := make([]todoPayload, 0, len(a.Todos))
		for _, t := range a.Todos {
			items = append(items, fromDomain(t))
		}
		payload = items
	case StatusFilterChanged:
		payload = a.Status
	case ColorFilterChanged:
		payload = colorFilterPayload{Color: a.Color, ChangeType: a.ChangeType}
	case nil:
		return Descriptor{}, fmt.Errorf("describing action: %w", domain.ErrValidation)
	}

	d := Descriptor{Type: action.Type()}
	if payload == nil {
		return d, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Descriptor{}, fmt.Errorf("encoding %s payload: %w", d.Type, err)
	}
	d.Payload = raw
	return d, nil
}

func decodePayload(d Descriptor, v any) error {
	raw := bytes.TrimSpace(d.Payload)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return domain.NewValidationError("payload", domain.MsgRequired)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return domain.NewValidationError("payload", fmt.Sprintf("malformed for %s: %v", d.Type, err))
	}
	return nil
}

func decodeID(d Descriptor) (string, error) {
	var id payloadID
	if err := decodePayload(d, &id); err != nil {
		return "", err
	}
	if id == "" {
		return "", domain.NewValidationError("payload", domain.MsgRequired)
	}
	return string(id), nil
}
