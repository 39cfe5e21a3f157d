package repository

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rocketscienceinc/maze-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errFromCallback = errors.New("callback failed")

func TestLocker_WithLock(t *testing.T) {
	t.Run("Returns the callback error and releases the lock", func(t *testing.T) {
		ctx, st := suite.New(t)
		locker := NewLocker(st.Logger, st.Storage, time.Second)

		// When: the callback fails
		err := locker.WithLock(ctx, "game:1", func() error { return errFromCallback })

		// Then: the error is returned unchanged and the lock key is gone
		require.ErrorIs(t, err, errFromCallback)

		exists, err := st.Storage.Exists(ctx, "game:1:lock").Result()
		require.NoError(t, err)
		assert.Zero(t, exists)
	})

	t.Run("Serialises concurrent callers", func(t *testing.T) {
		ctx, st := suite.New(t)
		locker := NewLocker(st.Logger, st.Storage, 5*time.Second)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			inside  int
			maxSeen int
		)

		// When: several goroutines run under the same lock
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				_ = locker.WithLock(ctx, "game:2", func() error {
					mu.Lock()
					inside++
					maxSeen = max(maxSeen, inside)
					mu.Unlock()

					time.Sleep(20 * time.Millisecond)

					mu.Lock()
					inside--
					mu.Unlock()

					return nil
				})
			}()
		}
		wg.Wait()

		// Then: never more than one of them was inside at a time
		assert.Equal(t, 1, maxSeen)
	})
}
