package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hohin728/redux-fundamentals-example-app/internal/domain"
	"github.com/hohin728/redux-fundamentals-example-app/internal/store"
)

const msgRequired = "is required"

// MaxBatchTexts caps the number of texts accepted by one batch request.
const MaxBatchTexts = 100

// CreateTodoRequest is the body of POST /api/v1/todos.
type CreateTodoRequest struct {
	Text string `json:"text"`
}

// Validate rejects blank text.
func (r *CreateTodoRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return &domain.ValidationError{Fields: map[string]string{"text": msgRequired}}
	}
	return nil
}

// BatchCreateTodosRequest is the body of POST /api/v1/todos/batch.
type BatchCreateTodosRequest struct {
	Texts []string `json:"texts"`
}

// Validate requires between 1 and MaxBatchTexts entries. Blank entries are
// left to the service, which reports them per item.
func (r *BatchCreateTodosRequest) Validate() error {
	switch n := len(r.Texts); {
	case n == 0:
		return &domain.ValidationError{Fields: map[string]string{"texts": msgRequired}}
	case n > MaxBatchTexts:
		return &domain.ValidationError{Fields: map[string]string{
			"texts": fmt.Sprintf("must contain at most %d entries, got %d", MaxBatchTexts, n),
		}}
	}
	return nil
}

// ActionRequest is the body of POST /api/v1/actions: an action descriptor
// as a type string plus a raw JSON payload.
type ActionRequest struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Validate requires a type.
func (r *ActionRequest) Validate() error {
	if strings.TrimSpace(r.Type) == "" {
		return &domain.ValidationError{Fields: map[string]string{"type": msgRequired}}
	}
	return nil
}

// Descriptor converts the request for store.DecodeAction.
func (r *ActionRequest) Descriptor() store.Descriptor {
	return store.Descriptor{Type: strings.TrimSpace(r.Type), Payload: r.Payload}
}

// View selects which derived list a read endpoint returns.
type View string

// Views.
const (
	ViewAll         View = "all"
	ViewFiltered    View = "filtered"
	ViewUncompleted View = "uncompleted"
)

// ParseView validates raw against allowed. An empty raw selects fallback.
func ParseView(raw string, fallback View, allowed ...View) (View, error) {
	if raw == "" {
		return fallback, nil
	}
	v := View(strings.ToLower(raw))
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return "", &domain.ValidationError{Fields: map[string]string{
		"view": fmt.Sprintf("invalid: %q (want one of %s)", raw, strings.Join(names, ", ")),
	}}
}
