package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hohin728/redux-fundamentals-example-app/internal/adapters/http/dto"
	"github.com/hohin728/redux-fundamentals-example-app/internal/domain"
	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies at 1 MB.
const maxJSONBodyBytes = 1 << 20

// writeJSON writes v with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}

// validatable is implemented by request bodies with a Validate method.
type validatable interface {
	Validate() error
}

// decodeAndValidate reads a size-limited JSON body into dst and validates
// it. On failure the problem response is already written and false is
// returned.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
