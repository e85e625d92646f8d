package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"smm-fulfillment/internal/core/port"
)

type statusResponse struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

// handleEvaluate runs one lifecycle evaluation for the order and returns
// the status it settled on.
func (h *Handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	status, err := h.svc.EvaluateOrder(r.Context(), id)
	if err != nil {
		h.writeLifecycleError(w, id, "evaluate", err)
		return
	}
	h.writeStatus(w, id, string(status))
}

// handleStop pauses delivery for the order by stopping all its bindings.
func (h *Handler) handleStop(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	if err := h.svc.StopAll(r.Context(), id); err != nil {
		h.writeLifecycleError(w, id, "stop", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleResume reactivates the order's stopped bindings.
func (h *Handler) handleResume(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	if err := h.svc.ResumeAll(r.Context(), id); err != nil {
		h.writeLifecycleError(w, id, "resume", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	status, err := h.svc.CurrentStatus(r.Context(), id)
	if err != nil {
		h.writeLifecycleError(w, id, "status", err)
		return
	}
	h.writeStatus(w, id, string(status))
}

func (h *Handler) writeStatus(w http.ResponseWriter, id int64, status string) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(statusResponse{OrderID: id, Status: status}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeLifecycleError(w http.ResponseWriter, id int64, op string, err error) {
	switch {
	case errors.Is(err, port.ErrOrderNotFound):
		http.Error(w, "order not found", http.StatusNotFound)
	case errors.Is(err, port.ErrOrderLocked):
		http.Error(w, "order is being processed", http.StatusConflict)
	default:
		h.logger.Error(op+" error", slog.Int64("order_id", id), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
