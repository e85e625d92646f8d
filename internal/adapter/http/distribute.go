package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"smm-fulfillment/internal/core/port"
)

type distributeRequest struct {
	ServiceCategory string `json:"service_category"`
	TargetQuantity  int64  `json:"target_quantity"`
	TargetURL       string `json:"target_url"`
	ClipCreated     bool   `json:"clip_created"`
	GeoKey          string `json:"geo_key"`
}

type distributeResponse struct {
	Status           string  `json:"status"`
	OfferID          string  `json:"offer_id,omitempty"`
	CampaignIDs      []int64 `json:"campaign_ids,omitempty"`
	CampaignsCreated int     `json:"campaigns_created"`
	Message          string  `json:"message"`
}

// handleDistribute runs one distribution for the order. The request body
// carries the targeting fields; the outcome (including FAILURE) is a 200
// with a classified payload, since partial and failed runs are business
// results the caller branches on. A held per-order lock maps to 409.
func (h *Handler) handleDistribute(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}
	var body distributeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if body.TargetQuantity <= 0 || body.TargetURL == "" || body.GeoKey == "" {
		http.Error(w, "target_quantity, target_url and geo_key are required", http.StatusBadRequest)
		return
	}

	res, err := h.svc.Distribute(r.Context(), port.DistributionRequest{
		OrderID:         id,
		ServiceCategory: body.ServiceCategory,
		TargetQuantity:  body.TargetQuantity,
		TargetURL:       body.TargetURL,
		ClipCreated:     body.ClipCreated,
		GeoKey:          body.GeoKey,
	})
	if err != nil {
		if errors.Is(err, port.ErrOrderLocked) {
			http.Error(w, "order is being processed", http.StatusConflict)
			return
		}
		h.logger.Error("distribute error", slog.Int64("order_id", id), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(distributeResponse{
		Status:           string(res.Status),
		OfferID:          res.OfferID,
		CampaignIDs:      res.CampaignIDs,
		CampaignsCreated: res.CampaignsCreated,
		Message:          res.Message,
	}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
