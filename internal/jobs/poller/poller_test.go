package poller

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"smm-fulfillment/internal/core/domain"
	"smm-fulfillment/internal/core/port"
	"smm-fulfillment/internal/core/port/mocks"
)

func newTestPoller(t *testing.T) (*Poller, *mocks.MockFulfillmentRepository, *mocks.MockFulfillmentUseCase) {
	t.Helper()
	repo := mocks.NewMockFulfillmentRepository(t)
	svc := mocks.NewMockFulfillmentUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(repo, svc, time.Minute, logger), repo, svc
}

// TestTickEvaluatesLiveOrders: one pass evaluates every processing, active
// and holding order.
func TestTickEvaluatesLiveOrders(t *testing.T) {
	p, repo, svc := newTestPoller(t)

	repo.EXPECT().ListOrderIDsByStatus(mock.Anything,
		domain.OrderProcessing, domain.OrderActive, domain.OrderHolding).
		Return([]int64{1, 2, 3}, nil)
	svc.EXPECT().EvaluateOrder(mock.Anything, int64(1)).Return(domain.OrderActive, nil)
	svc.EXPECT().EvaluateOrder(mock.Anything, int64(2)).Return(domain.OrderCompleted, nil)
	svc.EXPECT().EvaluateOrder(mock.Anything, int64(3)).Return(domain.OrderHolding, nil)

	p.Tick(context.Background())
}

// TestTickContinuesPastFailures: a locked order and a failing order do not
// stop the sweep.
func TestTickContinuesPastFailures(t *testing.T) {
	p, repo, svc := newTestPoller(t)

	repo.EXPECT().ListOrderIDsByStatus(mock.Anything,
		domain.OrderProcessing, domain.OrderActive, domain.OrderHolding).
		Return([]int64{1, 2, 3}, nil)
	svc.EXPECT().EvaluateOrder(mock.Anything, int64(1)).Return(domain.OrderStatus(""), port.ErrOrderLocked)
	svc.EXPECT().EvaluateOrder(mock.Anything, int64(2)).Return(domain.OrderStatus(""), errors.New("tracker down"))
	svc.EXPECT().EvaluateOrder(mock.Anything, int64(3)).Return(domain.OrderActive, nil)

	p.Tick(context.Background())
}

// TestTickListFailure: a repository error skips the whole pass.
func TestTickListFailure(t *testing.T) {
	p, repo, _ := newTestPoller(t)

	repo.EXPECT().ListOrderIDsByStatus(mock.Anything,
		domain.OrderProcessing, domain.OrderActive, domain.OrderHolding).
		Return(nil, errors.New("db down"))

	p.Tick(context.Background())
}

// TestRunStopsOnCancel: Run returns promptly once the context is
// cancelled.
func TestRunStopsOnCancel(t *testing.T) {
	p, _, _ := newTestPoller(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop after cancel")
	}
}
