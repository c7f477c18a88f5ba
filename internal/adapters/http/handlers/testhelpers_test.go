package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/hohin728/redux-fundamentals-example-app/internal/domain/todo"
	"github.com/hohin728/redux-fundamentals-example-app/internal/store"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// seedTodos mirrors the fake API's starting data plus one red todo.
func seedTodos() []todo.Todo {
	return []todo.Todo{
		{ID: "0", Text: "Learn React", Completed: true},
		{ID: "1", Text: "Learn Redux", Color: todo.ColorPurple},
		{ID: "2", Text: "Build something fun!", Color: todo.ColorBlue},
		{ID: "3", Text: "Ship it", Completed: true, Color: todo.ColorRed},
	}
}

// seededStore returns a real store holding seedTodos and the given filters.
func seededStore(t *testing.T, filters *store.FiltersState) *store.Store {
	t.Helper()
	state := store.InitialState()
	state.Todos = &store.TodosState{
		Status:   store.StatusIdle,
		Entities: store.NewEntityCollection(seedTodos()...),
	}
	if filters != nil {
		state.Filters = filters
	}
	return store.New(store.WithPreloadedState(state))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
