package usecase

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"smm-fulfillment/internal/core/port"
	"smm-fulfillment/internal/core/port/mocks"
)

type testDeps struct {
	repo    *mocks.MockFulfillmentRepository
	gateway *mocks.MockAdTrackerGateway
	locker  *mocks.MockOrderLocker
}

// newTestEngine wires the engine with mocks and a pass-through lock.
func newTestEngine(t *testing.T, opts Options) (*Engine, testDeps) {
	t.Helper()
	deps := testDeps{
		repo:    mocks.NewMockFulfillmentRepository(t),
		gateway: mocks.NewMockAdTrackerGateway(t),
		locker:  mocks.NewMockOrderLocker(t),
	}
	deps.locker.EXPECT().
		Acquire(mock.Anything, mock.Anything).
		Return(func() {}, nil).
		Maybe()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewEngine(deps.repo, deps.gateway, deps.locker, logger, opts), deps
}

// newLockedEngine wires an engine whose locker always reports the order
// as held by another writer.
func newLockedEngine(t *testing.T) *Engine {
	t.Helper()
	repo := mocks.NewMockFulfillmentRepository(t)
	gateway := mocks.NewMockAdTrackerGateway(t)
	locker := mocks.NewMockOrderLocker(t)
	locker.EXPECT().
		Acquire(mock.Anything, mock.Anything).
		Return(nil, port.ErrOrderLocked)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewEngine(repo, gateway, locker, logger, Options{})
}
