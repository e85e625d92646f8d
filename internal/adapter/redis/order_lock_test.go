package redis

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

// TestDefaultTTLCoversDistribution: the fallback TTL must outlast a full
// distribution run, which is bounded by the tracker's per-call timeout
// times the campaign pool size plus the two offer setup calls.
func TestDefaultTTLCoversDistribution(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	l := NewOrderLocker(nil, 0, logger)

	const trackerTimeout = 10 * time.Second
	const poolSize = 10
	worstCase := trackerTimeout * (poolSize + 2)
	if l.ttl <= worstCase {
		t.Fatalf("default TTL %s does not cover a worst-case distribution run of %s", l.ttl, worstCase)
	}
}

func TestConfiguredTTLKept(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	l := NewOrderLocker(nil, 10*time.Minute, logger)
	if l.ttl != 10*time.Minute {
		t.Fatalf("expected configured TTL, got %s", l.ttl)
	}
}

func TestLockKeyPerOrder(t *testing.T) {
	if lockKey(7) == lockKey(8) {
		t.Fatal("lock keys must differ per order")
	}
	if lockKey(7) != "fulfillment:order-lock:7" {
		t.Fatalf("unexpected lock key %q", lockKey(7))
	}
}
