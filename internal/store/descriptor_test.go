package store

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/hohin728/redux-fundamentals-example-app/internal/domain"
	"github.com/hohin728/redux-fundamentals-example-app/internal/domain/todo"
)

func TestDecodeAction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		desc    Descriptor
		want    Action
		wantErr bool
	}{
		{
			name: "todo added",
			desc: Descriptor{Type: TypeTodoAdded, Payload: json.RawMessage(`{"id":"1","text":"Learn","completed":false,"color":"red"}`)},
			want: TodoAdded{Todo: todo.Todo{ID: "1", Text: "Learn", Color: todo.ColorRed}},
		},
		{
			name: "todo added with numeric id",
			desc: Descriptor{Type: TypeTodoAdded, Payload: json.RawMessage(`{"id":7,"text":"Learn"}`)},
			want: TodoAdded{Todo: todo.Todo{ID: "7", Text: "Learn"}},
		},
		{
			name:    "todo added without text",
			desc:    Descriptor{Type: TypeTodoAdded, Payload: json.RawMessage(`{"id":"1"}`)},
			wantErr: true,
		},
		{
			name: "todo toggled string id",
			desc: Descriptor{Type: TypeTodoToggled, Payload: json.RawMessage(`"abc"`)},
			want: TodoToggled{ID: "abc"},
		},
		{
			name: "todo toggled numeric id",
			desc: Descriptor{Type: TypeTodoToggled, Payload: json.RawMessage(`3`)},
			want: TodoToggled{ID: "3"},
		},
		{
			name:    "todo toggled missing payload",
			desc:    Descriptor{Type: TypeTodoToggled},
			wantErr: true,
		},
		{
			name:    "todo deleted with object payload",
			desc:    Descriptor{Type: TypeTodoDeleted, Payload: json.RawMessage(`{"id":"1"}`)},
			wantErr: true,
		},
		{
			name: "todo deleted",
			desc: Descriptor{Type: TypeTodoDeleted, Payload: json.RawMessage(`"1"`)},
			want: TodoDeleted{ID: "1"},
		},
		{
			name: "color selected",
			desc: Descriptor{Type: TypeTodoColorSelected, Payload: json.RawMessage(`{"todoId":"1","color":"blue"}`)},
			want: TodoColorSelected{ID: "1", Color: todo.ColorBlue},
		},
		{
			name: "color cleared",
			desc: Descriptor{Type: TypeTodoColorSelected, Payload: json.RawMessage(`{"todoId":"1","color":""}`)},
			want: TodoColorSelected{ID: "1"},
		},
		{
			name:    "color selected invalid color",
			desc:    Descriptor{Type: TypeTodoColorSelected, Payload: json.RawMessage(`{"todoId":"1","color":"teal"}`)},
			wantErr: true,
		},
		{
			name: "all completed",
			desc: Descriptor{Type: TypeAllTodosCompleted},
			want: AllTodosCompleted{},
		},
		{
			name: "completed cleared ignores payload",
			desc: Descriptor{Type: TypeCompletedTodosCleared, Payload: json.RawMessage(`{"x":1}`)},
			want: CompletedTodosCleared{},
		},
		{
			name: "loading",
			desc: Descriptor{Type: TypeTodosLoading},
			want: TodosLoading{},
		},
		{
			name: "loaded",
			desc: Descriptor{Type: TypeTodosLoaded, Payload: json.RawMessage(`[{"id":1,"text":"a","completed":true}]`)},
			want: TodosLoaded{Todos: []todo.Todo{{ID: "1", Text: "a", Completed: true}}},
		},
		{
			name:    "loaded with invalid item",
			desc:    Descriptor{Type: TypeTodosLoaded, Payload: json.RawMessage(`[{"id":"1","text":""}]`)},
			wantErr: true,
		},
		{
			name: "status filter",
			desc: Descriptor{Type: TypeStatusFilterChanged, Payload: json.RawMessage(`"active"`)},
			want: StatusFilterChanged{Status: todo.StatusActive},
		},
		{
			name:    "status filter unknown",
			desc:    Descriptor{Type: TypeStatusFilterChanged, Payload: json.RawMessage(`"done"`)},
			wantErr: true,
		},
		{
			name: "color filter",
			desc: Descriptor{Type: TypeColorFilterChanged, Payload: json.RawMessage(`{"color":"red","changeType":"added"}`)},
			want: ColorFilterChanged{Color: todo.ColorRed, ChangeType: ChangeAdded},
		},
		{
			name:    "color filter malformed",
			desc:    Descriptor{Type: TypeColorFilterChanged, Payload: json.RawMessage(`{"color":`)},
			wantErr: true,
		},
		{
			name: "unknown type",
			desc: Descriptor{Type: "todos/unknown", Payload: json.RawMessage(`{}`)},
			want: UnknownAction{Kind: "todos/unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DecodeAction(tt.desc)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DecodeAction() = %+v, want error", got)
				}
				if !errors.Is(err, domain.ErrValidation) {
					t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeAction() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeAction() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDescribe_DecodeRoundTrip(t *testing.T) {
	t.Parallel()

	actions := []Action{
		TodoAdded{Todo: todo.Todo{ID: "1", Text: "a", Color: todo.ColorGreen}},
		TodoToggled{ID: "1"},
		TodoColorSelected{ID: "1", Color: todo.ColorPurple},
		TodoDeleted{ID: "1"},
		AllTodosCompleted{},
		CompletedTodosCleared{},
		TodosLoading{},
		TodosLoaded{Todos: []todo.Todo{{ID: "1", Text: "a"}, {ID: "2", Text: "b", Completed: true}}},
		StatusFilterChanged{Status: todo.StatusCompleted},
		ColorFilterChanged{Color: todo.ColorOrange, ChangeType: ChangeRemoved},
	}

	for _, a := range actions {
		d, err := Describe(a)
		if err != nil {
			t.Fatalf("Describe(%T) error = %v", a, err)
		}
		if d.Type != a.Type() {
			t.Errorf("Describe(%T).Type = %q, want %q", a, d.Type, a.Type())
		}
		got, err := DecodeAction(d)
		if err != nil {
			t.Fatalf("DecodeAction(Describe(%T)) error = %v", a, err)
		}
		if !reflect.DeepEqual(got, a) {
			t.Errorf("round trip of %T = %#v, want %#v", a, got, a)
		}
	}
}

func TestDescribe_Nil(t *testing.T) {
	t.Parallel()

	if _, err := Describe(nil); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("Describe(nil) error = %v, want ErrValidation", err)
	}
}
