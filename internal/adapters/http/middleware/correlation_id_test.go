package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hohin728/redux-fundamentals-example-app/internal/adapters/http/middleware"
)

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requestID string
		incoming  string
		want      string
	}{
		{name: "falls back to request id", requestID: "req-1", want: "req-1"},
		{name: "reuses incoming header", requestID: "req-1", incoming: "corr-9", want: "corr-9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var inCtx string
			h := middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				inCtx = middleware.CorrelationIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req = req.WithContext(middleware.WithRequestID(req.Context(), tt.requestID))
			if tt.incoming != "" {
				req.Header.Set("X-Correlation-ID", tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if inCtx != tt.want {
				t.Errorf("context correlation id = %q, want %q", inCtx, tt.want)
			}
			if got := rec.Header().Get("X-Correlation-ID"); got != tt.want {
				t.Errorf("response header = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCorrelationIDFromContext_Empty(t *testing.T) {
	t.Parallel()

	if got := middleware.CorrelationIDFromContext(context.Background()); got != "" {
		t.Errorf("CorrelationIDFromContext(bare) = %q, want empty", got)
	}
}
