package handlers

import (
	"log/slog"
	"net/http"

	"github.com/hohin728/redux-fundamentals-example-app/internal/adapters/http/dto"
	"github.com/hohin728/redux-fundamentals-example-app/internal/platform/logging"
	"github.com/hohin728/redux-fundamentals-example-app/internal/ports"
	"github.com/hohin728/redux-fundamentals-example-app/internal/store"
)

// StateHandler exposes the raw state snapshot and synchronous dispatch.
type StateHandler struct {
	store ports.StateStore
}

// NewStateHandler creates a StateHandler.
func NewStateHandler(st ports.StateStore) *StateHandler {
	return &StateHandler{store: st}
}

// GetState handles GET /api/v1/state.
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToStateResponse(h.store.State()))
}

// DispatchAction handles POST /api/v1/actions. The body is decoded into a
// typed action; unknown types are dispatched and leave the state unchanged.
func (h *StateHandler) DispatchAction(w http.ResponseWriter, r *http.Request) {
	var req dto.ActionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	action, err := store.DecodeAction(req.Descriptor())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	next := h.store.Dispatch(r.Context(), action)
	logging.FromContext(r.Context()).DebugContext(r.Context(), "action dispatched",
		slog.String("action", action.Type()),
	)
	writeJSON(w, r, http.StatusOK, dto.ToStateResponse(next))
}
