package todo

import (
	domtodo "github.com/hohin728/redux-fundamentals-example-app/internal/domain/todo"
)

// ToDomainTodo converts a remote TodoDTO to a domain Todo. Unknown colors
// are dropped rather than carried into the domain.
func ToDomainTodo(dto *TodoDTO) domtodo.Todo {
	color := domtodo.Color(dto.Color)
	if !color.IsValid() {
		color = domtodo.NoColor
	}
	return domtodo.Todo{
		ID:        string(dto.ID),
		Text:      dto.Text,
		Completed: dto.Completed,
		Color:     color,
	}
}

// ToDomainTodoList converts a remote list response to domain todos, keeping
// the remote order.
func ToDomainTodoList(dto TodoListResponseDTO) []domtodo.Todo {
	todos := make([]domtodo.Todo, len(dto.Todos))
	for i := range dto.Todos {
		todos[i] = ToDomainTodo(&dto.Todos[i])
	}
	return todos
}

// ToCreateTodoRequest builds the remote create request for text.
func ToCreateTodoRequest(text string) CreateTodoRequestDTO {
	return CreateTodoRequestDTO{Todo: NewTodoDTO{Text: text}}
}

// FromDomainTodo converts a domain Todo to its wire form.
func FromDomainTodo(t *domtodo.Todo) TodoDTO {
	return TodoDTO{
		ID:        WireID(t.ID),
		Text:      t.Text,
		Completed: t.Completed,
		Color:     t.Color.String(),
	}
}
