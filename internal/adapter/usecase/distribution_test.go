package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"smm-fulfillment/internal/core/domain"
	"smm-fulfillment/internal/core/port"
)

func fixedPool(ids ...int64) []domain.FixedCampaign {
	pool := make([]domain.FixedCampaign, len(ids))
	for i, id := range ids {
		pool[i] = domain.FixedCampaign{ID: int64(i + 1), ExternalID: id, GeoKey: "RU", Active: true}
	}
	return pool
}

// TestDistributeAllAssigned covers the reference scenario: 1000 units with
// a clip (coefficient 3.0) over 3 campaigns gives 3 bindings of 1000
// clicks each and a SUCCESS result.
func TestDistributeAllAssigned(t *testing.T) {
	e, deps := newTestEngine(t, Options{})

	deps.repo.EXPECT().GetCoefficient(mock.Anything, "views").Return(nil, nil)
	deps.repo.EXPECT().ListActiveFixedCampaigns(mock.Anything, "RU").Return(fixedPool(101, 102, 103), nil)
	deps.repo.EXPECT().ListBindings(mock.Anything, int64(7)).Return(nil, nil)
	deps.gateway.EXPECT().CheckOfferExists(mock.Anything, "https://t.me/clip").Return(port.OfferCheck{}, nil)
	deps.gateway.EXPECT().CreateOffer(mock.Anything, "order-7", "https://t.me/clip").Return("off-1", nil)
	for _, id := range []int64{101, 102, 103} {
		deps.gateway.EXPECT().AssignOfferToCampaign(mock.Anything, "off-1", id).Return(nil)
	}
	var quotas []int64
	deps.repo.EXPECT().
		CreateBinding(mock.Anything, mock.AnythingOfType("*domain.CampaignBinding")).
		Run(func(ctx context.Context, b *domain.CampaignBinding) {
			quotas = append(quotas, b.RequiredClicks)
			if b.OfferID != "off-1" || b.Status != domain.BindingActive || !b.Active {
				t.Errorf("unexpected binding: %+v", b)
			}
		}).
		Return(nil).
		Times(3)
	deps.repo.EXPECT().GetOrder(mock.Anything, int64(7)).Return(nil, nil)

	res, err := e.Distribute(context.Background(), port.DistributionRequest{
		OrderID:         7,
		ServiceCategory: "views",
		TargetQuantity:  1000,
		TargetURL:       "https://t.me/clip",
		ClipCreated:     true,
		GeoKey:          "RU",
	})
	if err != nil {
		t.Fatalf("Distribute error: %v", err)
	}
	if res.Status != port.DistributionSuccess {
		t.Fatalf("expected SUCCESS, got %s (%s)", res.Status, res.Message)
	}
	if res.CampaignsCreated != 3 || len(res.CampaignIDs) != 3 {
		t.Fatalf("expected 3 campaigns created, got %+v", res)
	}
	for i, q := range quotas {
		if q != 1000 {
			t.Fatalf("quota %d: expected 1000, got %d", i, q)
		}
	}
}

// TestDistributeRemainder: no clip means coefficient 4.0, so 4000 clicks
// over 3 campaigns and the first campaign carries the remainder.
func TestDistributeRemainder(t *testing.T) {
	e, deps := newTestEngine(t, Options{})

	deps.repo.EXPECT().GetCoefficient(mock.Anything, "views").Return(nil, nil)
	deps.repo.EXPECT().ListActiveFixedCampaigns(mock.Anything, "RU").Return(fixedPool(101, 102, 103), nil)
	deps.repo.EXPECT().ListBindings(mock.Anything, int64(7)).Return(nil, nil)
	deps.gateway.EXPECT().CheckOfferExists(mock.Anything, mock.Anything).Return(port.OfferCheck{Exists: true, OfferID: "off-9"}, nil)
	deps.gateway.EXPECT().AssignOfferToCampaign(mock.Anything, "off-9", mock.Anything).Return(nil).Times(3)

	quotaByCampaign := map[int64]int64{}
	deps.repo.EXPECT().
		CreateBinding(mock.Anything, mock.AnythingOfType("*domain.CampaignBinding")).
		Run(func(ctx context.Context, b *domain.CampaignBinding) {
			quotaByCampaign[b.ExternalCampaignID] = b.RequiredClicks
		}).
		Return(nil).
		Times(3)
	deps.repo.EXPECT().GetOrder(mock.Anything, int64(7)).Return(nil, nil)

	res, err := e.Distribute(context.Background(), port.DistributionRequest{
		OrderID:         7,
		ServiceCategory: "views",
		TargetQuantity:  1000,
		TargetURL:       "https://t.me/clip",
		GeoKey:          "RU",
	})
	if err != nil {
		t.Fatalf("Distribute error: %v", err)
	}
	if res.Status != port.DistributionSuccess {
		t.Fatalf("expected SUCCESS, got %s", res.Status)
	}
	want := map[int64]int64{101: 1334, 102: 1333, 103: 1333}
	for id, q := range want {
		if quotaByCampaign[id] != q {
			t.Fatalf("campaign %d: expected quota %d, got %d", id, q, quotaByCampaign[id])
		}
	}
}

// TestDistributePartialFailure: one failed assignment out of three yields
// two bindings and a PARTIAL_SUCCESS mentioning "2 out of 3".
func TestDistributePartialFailure(t *testing.T) {
	e, deps := newTestEngine(t, Options{})

	deps.repo.EXPECT().GetCoefficient(mock.Anything, "views").Return(nil, nil)
	deps.repo.EXPECT().ListActiveFixedCampaigns(mock.Anything, "RU").Return(fixedPool(101, 102, 103), nil)
	deps.repo.EXPECT().ListBindings(mock.Anything, int64(7)).Return(nil, nil)
	deps.gateway.EXPECT().CheckOfferExists(mock.Anything, mock.Anything).Return(port.OfferCheck{Exists: true, OfferID: "off-1"}, nil)
	deps.gateway.EXPECT().AssignOfferToCampaign(mock.Anything, "off-1", int64(101)).Return(nil)
	deps.gateway.EXPECT().AssignOfferToCampaign(mock.Anything, "off-1", int64(102)).
		Return(&port.GatewayError{Op: "assign offer", Err: errors.New("timeout")})
	deps.gateway.EXPECT().AssignOfferToCampaign(mock.Anything, "off-1", int64(103)).Return(nil)
	deps.repo.EXPECT().
		CreateBinding(mock.Anything, mock.AnythingOfType("*domain.CampaignBinding")).
		Return(nil).
		Times(2)
	deps.repo.EXPECT().GetOrder(mock.Anything, int64(7)).Return(nil, nil)

	res, err := e.Distribute(context.Background(), port.DistributionRequest{
		OrderID: 7, ServiceCategory: "views", TargetQuantity: 300, TargetURL: "u", ClipCreated: true, GeoKey: "RU",
	})
	if err != nil {
		t.Fatalf("Distribute error: %v", err)
	}
	if res.Status != port.DistributionPartialSuccess {
		t.Fatalf("expected PARTIAL_SUCCESS, got %s", res.Status)
	}
	if res.CampaignsCreated != 2 {
		t.Fatalf("expected 2 campaigns created, got %d", res.CampaignsCreated)
	}
	if !strings.Contains(res.Message, "2 out of 3") {
		t.Fatalf("message should mention 2 out of 3, got %q", res.Message)
	}
	if len(res.CampaignIDs) != 2 || res.CampaignIDs[0] != 101 || res.CampaignIDs[1] != 103 {
		t.Fatalf("unexpected campaign ids: %v", res.CampaignIDs)
	}
}

// TestDistributeAllAssignmentsFail: every assignment failing is a FAILURE,
// not an error.
func TestDistributeAllAssignmentsFail(t *testing.T) {
	e, deps := newTestEngine(t, Options{})

	deps.repo.EXPECT().GetCoefficient(mock.Anything, "views").Return(nil, nil)
	deps.repo.EXPECT().ListActiveFixedCampaigns(mock.Anything, "RU").Return(fixedPool(101, 102), nil)
	deps.repo.EXPECT().ListBindings(mock.Anything, int64(7)).Return(nil, nil)
	deps.gateway.EXPECT().CheckOfferExists(mock.Anything, mock.Anything).Return(port.OfferCheck{Exists: true, OfferID: "off-1"}, nil)
	deps.gateway.EXPECT().AssignOfferToCampaign(mock.Anything, "off-1", mock.Anything).
		Return(&port.GatewayError{Op: "assign offer", Err: errors.New("502")}).
		Times(2)
	deps.repo.EXPECT().GetOrder(mock.Anything, int64(7)).Return(nil, nil)

	res, err := e.Distribute(context.Background(), port.DistributionRequest{
		OrderID: 7, ServiceCategory: "views", TargetQuantity: 100, TargetURL: "u", ClipCreated: true, GeoKey: "RU",
	})
	if err != nil {
		t.Fatalf("Distribute error: %v", err)
	}
	if res.Status != port.DistributionFailure || res.CampaignsCreated != 0 {
		t.Fatalf("expected FAILURE with 0 created, got %+v", res)
	}
	if !strings.Contains(res.Message, "0 out of 2") {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}

// TestDistributeNoCampaigns: an empty pool is fatal for the attempt and
// parks the order in HOLDING without touching the tracker.
func TestDistributeNoCampaigns(t *testing.T) {
	e, deps := newTestEngine(t, Options{})

	deps.repo.EXPECT().GetCoefficient(mock.Anything, "views").Return(nil, nil)
	deps.repo.EXPECT().ListActiveFixedCampaigns(mock.Anything, "MARS").Return(nil, nil)
	deps.repo.EXPECT().GetOrder(mock.Anything, int64(7)).
		Return(&domain.Order{ID: 7, Status: domain.OrderPending}, nil)
	deps.repo.EXPECT().UpdateOrderStatus(mock.Anything, int64(7), domain.OrderHolding).Return(nil)

	res, err := e.Distribute(context.Background(), port.DistributionRequest{
		OrderID: 7, ServiceCategory: "views", TargetQuantity: 100, TargetURL: "u", ClipCreated: true, GeoKey: "MARS",
	})
	if err != nil {
		t.Fatalf("Distribute error: %v", err)
	}
	if res.Status != port.DistributionFailure {
		t.Fatalf("expected FAILURE, got %s", res.Status)
	}
	if !strings.Contains(res.Message, "no campaigns available") {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}

// TestDistributeOfferFailure: a gateway error during offer check/create
// aborts the whole run before any assignment.
func TestDistributeOfferFailure(t *testing.T) {
	e, deps := newTestEngine(t, Options{})

	deps.repo.EXPECT().GetCoefficient(mock.Anything, "views").Return(nil, nil)
	deps.repo.EXPECT().ListActiveFixedCampaigns(mock.Anything, "RU").Return(fixedPool(101, 102), nil)
	deps.repo.EXPECT().ListBindings(mock.Anything, int64(7)).Return(nil, nil)
	deps.gateway.EXPECT().CheckOfferExists(mock.Anything, mock.Anything).
		Return(port.OfferCheck{}, &port.GatewayError{Op: "check offer", Err: errors.New("down")})
	deps.repo.EXPECT().GetOrder(mock.Anything, int64(7)).Return(nil, nil)

	res, err := e.Distribute(context.Background(), port.DistributionRequest{
		OrderID: 7, ServiceCategory: "views", TargetQuantity: 100, TargetURL: "u", ClipCreated: true, GeoKey: "RU",
	})
	if err != nil {
		t.Fatalf("Distribute error: %v", err)
	}
	if res.Status != port.DistributionFailure || res.CampaignsCreated != 0 {
		t.Fatalf("expected FAILURE, got %+v", res)
	}
}

// TestDistributeSkipsBoundCampaigns: a re-run skips campaigns that already
// carry a binding, reuses the offer and only spreads the remaining volume.
func TestDistributeSkipsBoundCampaigns(t *testing.T) {
	e, deps := newTestEngine(t, Options{})

	deps.repo.EXPECT().GetCoefficient(mock.Anything, "views").Return(nil, nil)
	deps.repo.EXPECT().ListActiveFixedCampaigns(mock.Anything, "RU").Return(fixedPool(101, 102, 103), nil)
	deps.repo.EXPECT().ListBindings(mock.Anything, int64(7)).Return([]domain.CampaignBinding{
		{ID: 1, OrderID: 7, ExternalCampaignID: 101, OfferID: "off-1", RequiredClicks: 100},
	}, nil)
	deps.gateway.EXPECT().AssignOfferToCampaign(mock.Anything, "off-1", int64(102)).Return(nil)
	deps.gateway.EXPECT().AssignOfferToCampaign(mock.Anything, "off-1", int64(103)).Return(nil)

	var total int64
	deps.repo.EXPECT().
		CreateBinding(mock.Anything, mock.AnythingOfType("*domain.CampaignBinding")).
		Run(func(ctx context.Context, b *domain.CampaignBinding) {
			if b.ExternalCampaignID == 101 {
				t.Errorf("campaign 101 is already bound and must be skipped")
			}
			total += b.RequiredClicks
		}).
		Return(nil).
		Times(2)
	deps.repo.EXPECT().GetOrder(mock.Anything, int64(7)).Return(nil, nil)

	res, err := e.Distribute(context.Background(), port.DistributionRequest{
		OrderID: 7, ServiceCategory: "views", TargetQuantity: 100, TargetURL: "u", ClipCreated: true, GeoKey: "RU",
	})
	if err != nil {
		t.Fatalf("Distribute error: %v", err)
	}
	if res.Status != port.DistributionSuccess || res.CampaignsCreated != 2 {
		t.Fatalf("expected SUCCESS with 2 created, got %+v", res)
	}
	// 100 * 3.0 = 300 total, 100 already bound
	if total != 200 {
		t.Fatalf("expected remaining quota 200, got %d", total)
	}
}

// TestDistributeOutcomeWrites checks the state machine consumes the
// distribution result: a successful run moves PENDING to PROCESSING.
func TestDistributeOutcomeWrites(t *testing.T) {
	e, deps := newTestEngine(t, Options{})

	deps.repo.EXPECT().GetCoefficient(mock.Anything, "views").Return(nil, nil)
	deps.repo.EXPECT().ListActiveFixedCampaigns(mock.Anything, "RU").Return(fixedPool(101), nil)
	deps.repo.EXPECT().ListBindings(mock.Anything, int64(7)).Return(nil, nil)
	deps.gateway.EXPECT().CheckOfferExists(mock.Anything, mock.Anything).Return(port.OfferCheck{Exists: true, OfferID: "off-1"}, nil)
	deps.gateway.EXPECT().AssignOfferToCampaign(mock.Anything, "off-1", int64(101)).Return(nil)
	deps.repo.EXPECT().CreateBinding(mock.Anything, mock.AnythingOfType("*domain.CampaignBinding")).Return(nil)
	deps.repo.EXPECT().GetOrder(mock.Anything, int64(7)).
		Return(&domain.Order{ID: 7, Status: domain.OrderPending}, nil)
	deps.repo.EXPECT().UpdateOrderStatus(mock.Anything, int64(7), domain.OrderProcessing).Return(nil)

	res, err := e.Distribute(context.Background(), port.DistributionRequest{
		OrderID: 7, ServiceCategory: "views", TargetQuantity: 10, TargetURL: "u", ClipCreated: true, GeoKey: "RU",
	})
	if err != nil {
		t.Fatalf("Distribute error: %v", err)
	}
	if res.Status != port.DistributionSuccess {
		t.Fatalf("expected SUCCESS, got %s", res.Status)
	}
}

// TestDistributeLocked surfaces ErrOrderLocked from the locker.
func TestDistributeLocked(t *testing.T) {
	e := newLockedEngine(t)
	_, err := e.Distribute(context.Background(), port.DistributionRequest{OrderID: 7})
	if !errors.Is(err, port.ErrOrderLocked) {
		t.Fatalf("expected ErrOrderLocked, got %v", err)
	}
}
