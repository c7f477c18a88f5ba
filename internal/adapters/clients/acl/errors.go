// Package acl implements the Anti-Corruption Layer between the remote to-do
// API and the domain. Wire translators live in acl/todo; the client, the
// request helper and the shared error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hohin728/redux-fundamentals-example-app/internal/domain"
)

// maxErrorBodySize caps how much of a problem body is read.
const maxErrorBodySize = 64 << 10

// problemBody is the subset of an RFC 9457 body the to-do API sends.
type problemBody struct {
	Title  string         `json:"title"`
	Detail string         `json:"detail"`
	Errors []problemField `json:"errors"`
}

// problemField is one field-level problem. Location is "body.<path>" for
// request body fields, e.g. "body.todo.text".
type problemField struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// TranslateHTTPError maps a failed to-do API response to a domain error.
//
// The error names the request ("todo API POST /fakeApi/todos") when resp
// carries one. Field-level problems on 400/422 become a
// *domain.ValidationError keyed by body path ("todo.text"). 429 and 5xx
// map to domain.ErrUnavailable since the API may recover; other statuses
// have no domain meaning and are returned unwrapped.
func TranslateHTTPError(resp *http.Response) error {
	pb := readProblem(resp)
	op := requestLabel(resp)

	reason := pb.Detail
	if reason == "" {
		reason = pb.Title
	}
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}

	var sentinel error
	switch code := resp.StatusCode; {
	case code == http.StatusBadRequest || code == http.StatusUnprocessableEntity:
		if len(pb.Errors) > 0 {
			return fmt.Errorf("%s: %w", op, fieldErrors(pb.Errors))
		}
		sentinel = domain.ErrValidation
	case code == http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case code == http.StatusConflict:
		sentinel = domain.ErrConflict
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		sentinel = domain.ErrForbidden
	case code == http.StatusTooManyRequests || code >= http.StatusInternalServerError:
		sentinel = domain.ErrUnavailable
	default:
		return fmt.Errorf("%s: unexpected status %d: %s", op, code, reason)
	}
	return fmt.Errorf("%s: %s: %w", op, reason, sentinel)
}

func requestLabel(resp *http.Response) string {
	if resp.Request == nil || resp.Request.URL == nil {
		return "todo API"
	}
	return "todo API " + resp.Request.Method + " " + resp.Request.URL.Path
}

// readProblem decodes a problem+json body. Anything else yields a zero
// problemBody.
func readProblem(resp *http.Response) problemBody {
	var pb problemBody
	if resp.Body == nil || !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return pb
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return pb
	}
	if err := json.Unmarshal(raw, &pb); err != nil {
		return problemBody{}
	}
	return pb
}

func fieldErrors(problems []problemField) *domain.ValidationError {
	fields := make(map[string]string, len(problems))
	for _, p := range problems {
		fields[strings.TrimPrefix(p.Location, "body.")] = p.Message
	}
	return &domain.ValidationError{Fields: fields}
}
