// Package todo holds the to-do entity, its color tags, and the view filter
// applied by derived selectors.
package todo

import (
	"fmt"
	"strings"

	"github.com/hohin728/redux-fundamentals-example-app/internal/domain"
)

// Todo is a single to-do item. ID is opaque and assigned by the remote API.
// Color is optional; the zero value means no color tag.
type Todo struct {
	ID        string
	Text      string
	Completed bool
	Color     Color
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.ID) == "" {
		fields["id"] = domain.MsgRequired
	}
	if strings.TrimSpace(t.Text) == "" {
		fields["text"] = domain.MsgRequired
	}
	if t.Color != NoColor && !t.Color.IsValid() {
		fields["color"] = fmt.Sprintf("invalid: %q", t.Color)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// WithCompleted returns a copy of t with Completed set.
func (t Todo) WithCompleted(completed bool) Todo {
	t.Completed = completed
	return t
}

// WithColor returns a copy of t with Color set.
func (t Todo) WithColor(c Color) Todo {
	t.Color = c
	return t
}
