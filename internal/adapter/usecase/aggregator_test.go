package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"smm-fulfillment/internal/core/domain"
	"smm-fulfillment/internal/core/port"
)

func activeBindings(orderID int64, campaignIDs ...int64) []domain.CampaignBinding {
	out := make([]domain.CampaignBinding, len(campaignIDs))
	for i, id := range campaignIDs {
		out[i] = domain.CampaignBinding{
			ID:                 int64(i + 1),
			OrderID:            orderID,
			ExternalCampaignID: id,
			OfferID:            "off-1",
			Active:             true,
			Status:             domain.BindingActive,
		}
	}
	return out
}

func expectOrderExists(deps testDeps, orderID int64) {
	deps.repo.EXPECT().GetOrder(mock.Anything, orderID).
		Return(&domain.Order{ID: orderID, Status: domain.OrderActive}, nil).Once()
}

// TestAggregateAdditivity: per-binding counters sum element-wise and the
// campaign id list preserves binding order.
func TestAggregateAdditivity(t *testing.T) {
	e, deps := newTestEngine(t, Options{})

	expectOrderExists(deps, 7)
	deps.repo.EXPECT().ListActiveBindings(mock.Anything, int64(7)).
		Return(activeBindings(7, 1, 2, 3), nil)
	stats := map[int64]port.CampaignStats{
		1: {Clicks: 100, Conversions: 10, Cost: 1.5, Revenue: 3.0, Status: "ACTIVE"},
		2: {Clicks: 150, Conversions: 20, Cost: 2.5, Revenue: 4.0, Status: "ACTIVE"},
		3: {Clicks: 200, Conversions: 30, Cost: 3.0, Revenue: 5.5, Status: "ACTIVE"},
	}
	for id, s := range stats {
		deps.gateway.EXPECT().GetCampaignStats(mock.Anything, id).Return(s, nil)
	}
	deps.repo.EXPECT().
		UpdateBindingCounters(mock.Anything, mock.Anything, mock.AnythingOfType("port.CampaignStats")).
		Return(nil).
		Times(3)

	agg, err := e.Aggregate(context.Background(), 7)
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if agg.Clicks != 450 || agg.Conversions != 60 {
		t.Fatalf("unexpected sums: %+v", agg)
	}
	if agg.Cost != 7.0 || agg.Revenue != 12.5 {
		t.Fatalf("unexpected money sums: %+v", agg)
	}
	if agg.CampaignIDs != "1,2,3" {
		t.Fatalf("expected campaign ids \"1,2,3\", got %q", agg.CampaignIDs)
	}
	if agg.Status != domain.BindingActive {
		t.Fatalf("expected ACTIVE status, got %s", agg.Status)
	}
}

// TestAggregateEmptyOrder: no active bindings is a normal state for a
// fresh order, not an error.
func TestAggregateEmptyOrder(t *testing.T) {
	e, deps := newTestEngine(t, Options{})

	expectOrderExists(deps, 7)
	deps.repo.EXPECT().ListActiveBindings(mock.Anything, int64(7)).Return(nil, nil)

	agg, err := e.Aggregate(context.Background(), 7)
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if agg.Clicks != 0 || agg.Conversions != 0 || agg.CampaignIDs != "" {
		t.Fatalf("expected zero aggregate, got %+v", agg)
	}
	if agg.Status != domain.StatusUnknown {
		t.Fatalf("expected UNKNOWN status, got %s", agg.Status)
	}
}

// TestAggregateDegradesOnFetchFailure: a failed stats call falls back to
// the binding's stored counters and does not abort the other fetches.
func TestAggregateDegradesOnFetchFailure(t *testing.T) {
	e, deps := newTestEngine(t, Options{})

	bindings := activeBindings(7, 1, 2)
	bindings[1].Clicks = 40
	bindings[1].Conversions = 4
	bindings[1].Cost = 0.5
	bindings[1].Revenue = 1.0
	expectOrderExists(deps, 7)
	deps.repo.EXPECT().ListActiveBindings(mock.Anything, int64(7)).Return(bindings, nil)

	deps.gateway.EXPECT().GetCampaignStats(mock.Anything, int64(1)).
		Return(port.CampaignStats{Clicks: 60, Conversions: 6, Status: "ACTIVE"}, nil)
	deps.gateway.EXPECT().GetCampaignStats(mock.Anything, int64(2)).
		Return(port.CampaignStats{}, &port.GatewayError{Op: "campaign stats", Err: errors.New("timeout")})
	deps.repo.EXPECT().
		UpdateBindingCounters(mock.Anything, int64(1), mock.AnythingOfType("port.CampaignStats")).
		Return(nil)

	agg, err := e.Aggregate(context.Background(), 7)
	if err != nil {
		t.Fatalf("Aggregate error: %v", err)
	}
	if agg.Clicks != 100 || agg.Conversions != 10 {
		t.Fatalf("expected degraded sums 100/10, got %+v", agg)
	}
	if agg.Status != domain.BindingActive {
		t.Fatalf("expected ACTIVE, got %s", agg.Status)
	}
}

func TestAggregateUnknownOrder(t *testing.T) {
	e, deps := newTestEngine(t, Options{})

	deps.repo.EXPECT().GetOrder(mock.Anything, int64(404)).Return(nil, nil)

	_, err := e.Aggregate(context.Background(), 404)
	if !errors.Is(err, port.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestReduceStatus(t *testing.T) {
	cases := []struct {
		name string
		in   []domain.BindingStatus
		want domain.BindingStatus
	}{
		{"empty", nil, domain.StatusUnknown},
		{"all active", []domain.BindingStatus{domain.BindingActive, domain.BindingActive}, domain.BindingActive},
		{"one active wins", []domain.BindingStatus{domain.BindingStopped, domain.BindingActive}, domain.BindingActive},
		{"all stopped", []domain.BindingStatus{domain.BindingStopped, domain.BindingStopped}, domain.BindingStopped},
		{"majority", []domain.BindingStatus{"PAUSED", domain.BindingStopped, domain.BindingStopped}, domain.BindingStopped},
		{"tie first encountered", []domain.BindingStatus{"PAUSED", domain.BindingStopped}, "PAUSED"},
	}
	for _, c := range cases {
		if got := reduceStatus(c.in); got != c.want {
			t.Fatalf("%s: expected %s, got %s", c.name, c.want, got)
		}
	}
}
