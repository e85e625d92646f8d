package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"smm-fulfillment/internal/core/port"
)

type statsResponse struct {
	CampaignIDs string  `json:"campaign_ids"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Cost        float64 `json:"cost"`
	Revenue     float64 `json:"revenue"`
	Status      string  `json:"status"`
}

// handleStats returns the order's aggregated delivery counters across all
// active campaign bindings.
func (h *Handler) handleStats(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	agg, err := h.svc.Aggregate(r.Context(), id)
	if err != nil {
		if errors.Is(err, port.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		h.logger.Error("aggregate error", slog.Int64("order_id", id), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(statsResponse{
		CampaignIDs: agg.CampaignIDs,
		Clicks:      agg.Clicks,
		Conversions: agg.Conversions,
		Cost:        agg.Cost,
		Revenue:     agg.Revenue,
		Status:      string(agg.Status),
	}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
