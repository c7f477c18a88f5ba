package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/logging"
)

// Redacted replaces sensitive header values.
const Redacted = "[REDACTED]"

// RedactHeaders turns headers into log attributes sorted by name. Values of
// logging.SensitiveHeaders are replaced with Redacted; multiple values are
// joined with commas.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := Redacted
		if !logging.SensitiveHeaders[strings.ToLower(name)] {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
