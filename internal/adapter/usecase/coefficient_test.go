package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"

	"smm-fulfillment/internal/core/domain"
	"smm-fulfillment/internal/core/port/mocks"
)

func newResolver(t *testing.T) (*CoefficientResolver, *mocks.MockFulfillmentRepository) {
	t.Helper()
	repo := mocks.NewMockFulfillmentRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCoefficientResolver(repo, logger), repo
}

func TestResolveDefaults(t *testing.T) {
	r, repo := newResolver(t)
	repo.EXPECT().GetCoefficient(mock.Anything, "views").Return(nil, nil).Times(2)

	if got := r.Resolve(context.Background(), "views", true); got != 3.0 {
		t.Fatalf("expected default 3.0 with clip, got %v", got)
	}
	if got := r.Resolve(context.Background(), "views", false); got != 4.0 {
		t.Fatalf("expected default 4.0 without clip, got %v", got)
	}
}

func TestResolveConfigured(t *testing.T) {
	r, repo := newResolver(t)
	repo.EXPECT().GetCoefficient(mock.Anything, "likes").
		Return(&domain.Coefficient{ServiceCategory: "likes", WithClip: 2.5, WithoutClip: 3.5}, nil).
		Times(2)

	if got := r.Resolve(context.Background(), "likes", true); got != 2.5 {
		t.Fatalf("expected 2.5, got %v", got)
	}
	if got := r.Resolve(context.Background(), "likes", false); got != 3.5 {
		t.Fatalf("expected 3.5, got %v", got)
	}
}

// TestResolveNeverFails: lookup errors and nonsense values fall back to
// the defaults rather than blocking order processing.
func TestResolveNeverFails(t *testing.T) {
	r, repo := newResolver(t)
	repo.EXPECT().GetCoefficient(mock.Anything, "follows").
		Return(nil, errors.New("connection refused")).
		Once()
	if got := r.Resolve(context.Background(), "follows", true); got != 3.0 {
		t.Fatalf("expected default on error, got %v", got)
	}

	repo.EXPECT().GetCoefficient(mock.Anything, "follows").
		Return(&domain.Coefficient{ServiceCategory: "follows", WithClip: 0.2, WithoutClip: 0.1}, nil).
		Once()
	if got := r.Resolve(context.Background(), "follows", false); got != 4.0 {
		t.Fatalf("expected default on sub-1.0 multiplier, got %v", got)
	}
}
