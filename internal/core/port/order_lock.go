package port

import (
	"context"
	"errors"
)

// ErrOrderLocked is returned when another writer currently holds the
// per-order lock. Callers retry; the engine never queues behind the lock.
var ErrOrderLocked = errors.New("order is locked by another writer")

// OrderLocker serializes distribution and lifecycle writes for a single
// order. Two concurrent triggers for the same order must not both run, or
// offers and quotas could be double-created.
type OrderLocker interface {
	// Acquire takes the lock for the order and returns a release func.
	// Returns ErrOrderLocked when the lock is already held.
	Acquire(ctx context.Context, orderID int64) (release func(), err error)
}
