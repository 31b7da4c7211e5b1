// File: utils/lock.go
package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ErrLockBusy is returned when the lock could not be acquired within the
// configured number of attempts.
var ErrLockBusy = errors.New("lock busy")

// releaseScript deletes the lock only if the caller still owns it.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RoomLock serializes the validate-then-write section of the booking path so
// two concurrent reservations for the same room cannot both pass validation.
type RoomLock struct {
	Client *redis.Client
	TTL    time.Duration
}

// Acquire takes the per-room lock and returns an ownership token for Release.
// It retries briefly before giving up with ErrLockBusy.
func (l *RoomLock) Acquire(ctx context.Context, roomID string) (string, error) {
	key := lockKey(roomID)
	token := uuid.New().String()

	for attempt := 0; attempt < 20; attempt++ {
		ok, err := l.Client.SetNX(ctx, key, token, l.TTL).Result()
		if err != nil {
			return "", fmt.Errorf("acquire room lock: %w", err)
		}
		if ok {
			return token, nil
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}
	return "", ErrLockBusy
}

// Release frees the lock if the token still owns it. Expired locks are left
// alone so a later holder is never evicted.
func (l *RoomLock) Release(ctx context.Context, roomID, token string) error {
	if err := releaseScript.Run(ctx, l.Client, []string{lockKey(roomID)}, token).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("release room lock: %w", err)
	}
	return nil
}

func lockKey(roomID string) string {
	return "lock:room:" + roomID
}
