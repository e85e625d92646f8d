package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"smm-fulfillment/internal/core/port"
)

const defaultLockTTL = 5 * time.Minute

// releaseScript deletes the lock key only when it still holds our token,
// so an expired-and-retaken lock is never released by the old holder.
var releaseScript = goredis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// OrderLocker implements port.OrderLocker with a redis SET NX lock keyed
// by order id. The TTL bounds how long a crashed holder can block an
// order. It must exceed the longest critical section: a distribution run
// makes up to poolsize+2 tracker calls, each bounded by the per-call
// timeout, so the TTL has to clear timeout * (poolsize + 2) with room to
// spare or the lock expires mid-run and a racing trigger re-enters.
type OrderLocker struct {
	client *goredis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewOrderLocker(client *goredis.Client, ttl time.Duration, logger *slog.Logger) *OrderLocker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &OrderLocker{client: client, ttl: ttl, logger: logger}
}

// Acquire takes the per-order lock, returning port.ErrOrderLocked when
// another writer holds it. The returned release func is safe to call
// after the TTL expired.
func (l *OrderLocker) Acquire(ctx context.Context, orderID int64) (func(), error) {
	key := lockKey(orderID)
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire order lock: %w", err)
	}
	if !ok {
		return nil, port.ErrOrderLocked
	}

	release := func() {
		// release must survive the caller's cancelled context
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil && err != goredis.Nil {
			l.logger.Warn("order lock release failed",
				slog.Int64("order_id", orderID),
				slog.Any("error", err))
		}
	}
	return release, nil
}

func lockKey(orderID int64) string {
	return fmt.Sprintf("fulfillment:order-lock:%d", orderID)
}
