package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hohin728/redux-fundamentals-example-app/internal/adapters/http/middleware"
	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/logging"
)

func TestLogging_StartAndCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	h := middleware.Chain(middleware.RequestID(), middleware.CorrelationID(), middleware.Logging(logger))(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"1"}`))
		}),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/todos", http.NoBody)
	req.Header.Set("X-Request-ID", "req-42")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	for _, want := range []string{
		`"msg":"request started"`,
		`"msg":"request completed"`,
		`"request_id":"req-42"`,
		`"correlation_id":"req-42"`,
		`"path":"/api/v1/todos"`,
		`"status":201`,
		`"bytes":10`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s:\n%s", want, out)
		}
	}
}

func TestLogging_StoresRequestLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("info", "json", &buf)

	h := middleware.Chain(middleware.RequestID(), middleware.Logging(logger))(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).Info("inside handler")
		}),
	)
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Request-ID", "req-7")
	h.ServeHTTP(httptest.NewRecorder(), req)

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.Contains(line, "inside handler") && !strings.Contains(line, `"request_id":"req-7"`) {
			t.Errorf("handler log line lacks request_id: %s", line)
		}
	}
}

func TestLogging_DebugHeadersRedacted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.New("debug", "json", &buf)

	h := middleware.Logging(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("Authorization", "Bearer top-secret-value")
	req.Header.Set("Accept", "application/json")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	if !strings.Contains(out, `"msg":"request headers"`) {
		t.Fatalf("no header log at debug:\n%s", out)
	}
	if strings.Contains(out, "top-secret-value") {
		t.Errorf("authorization value leaked:\n%s", out)
	}
	if !strings.Contains(out, `"Accept":"application/json"`) {
		t.Errorf("Accept header missing:\n%s", out)
	}
}

func TestLogging_NoHeadersAtInfo(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(logging.New("info", "json", &buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if strings.Contains(buf.String(), "request headers") {
		t.Errorf("headers logged at info level:\n%s", buf.String())
	}
}
