package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

var ErrLockNotReleased = errors.New("lock was not released")

// Locker serialises work on one key across every server sharing the Redis instance.
type Locker struct {
	logger *slog.Logger
	sync   *redsync.Redsync
	expiry time.Duration
}

func NewLocker(logger *slog.Logger, client *redis.Client, expiry time.Duration) *Locker {
	return &Locker{
		logger: logger.With("component", "locker"),
		sync:   redsync.New(goredis.NewPool(client)),
		expiry: expiry,
	}
}

// WithLock runs fn while holding the mutex named key.
func (that *Locker) WithLock(ctx context.Context, key string, fn func() error) error {
	mutex := that.sync.NewMutex(key+":lock", redsync.WithExpiry(that.expiry))

	if err := mutex.LockContext(ctx); err != nil {
		return fmt.Errorf("failed to obtain lock %s: %w", key, err)
	}

	defer func() {
		ok, err := mutex.UnlockContext(ctx)
		if err != nil {
			that.logger.Error("failed to release lock", "key", key, "error", err)
			return
		}

		if !ok {
			that.logger.Error("failed to release lock", "key", key, "error", ErrLockNotReleased)
		}
	}()

	return fn()
}
