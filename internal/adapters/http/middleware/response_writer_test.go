package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rw := newResponseWriter(rec)
	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)

	if rw.statusCode != http.StatusCreated || rec.Code != http.StatusCreated {
		t.Errorf("status = %d / recorder %d, want 201", rw.statusCode, rec.Code)
	}
}

func TestResponseWriter_ImplicitOKAndBytes(t *testing.T) {
	t.Parallel()

	rw := newResponseWriter(httptest.NewRecorder())
	_, _ = rw.Write([]byte("hello"))
	_, _ = rw.Write([]byte(" world"))

	if !rw.headerWritten || rw.statusCode != http.StatusOK {
		t.Errorf("headerWritten = %v, status = %d, want true/200", rw.headerWritten, rw.statusCode)
	}
	if rw.written != 11 {
		t.Errorf("written = %d, want 11", rw.written)
	}
}

func TestResponseWriter_ReusesWrapper(t *testing.T) {
	t.Parallel()

	outer := newResponseWriter(httptest.NewRecorder())
	if inner := newResponseWriter(outer); inner != outer {
		t.Error("wrapping a responseWriter allocated a second wrapper")
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	if got := newResponseWriter(rec).Unwrap(); got != rec {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
