package middleware_test

import (
	"net/http"
	"testing"

	"github.com/hohin728/redux-fundamentals-example-app/internal/adapters/http/middleware"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	headers := http.Header{
		"Authorization": {"Bearer abc"},
		"Cookie":        {"session=1"},
		"X-Api-Key":     {"k"},
		"Accept":        {"application/json", "text/plain"},
		"X-Request-Id":  {"req-1"},
	}

	attrs := middleware.RedactHeaders(headers)
	if len(attrs) != len(headers) {
		t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(headers))
	}

	want := map[string]string{
		"Accept":        "application/json,text/plain",
		"Authorization": middleware.Redacted,
		"Cookie":        middleware.Redacted,
		"X-Api-Key":     middleware.Redacted,
		"X-Request-Id":  "req-1",
	}
	for i, a := range attrs {
		if i > 0 && attrs[i-1].Key >= a.Key {
			t.Errorf("attrs not sorted: %q before %q", attrs[i-1].Key, a.Key)
		}
		if got := a.Value.String(); got != want[a.Key] {
			t.Errorf("%s = %q, want %q", a.Key, got, want[a.Key])
		}
	}
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	if attrs := middleware.RedactHeaders(http.Header{}); len(attrs) != 0 {
		t.Errorf("RedactHeaders(empty) = %v, want none", attrs)
	}
}
