package lock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const retryInterval = 50 * time.Millisecond

// releaseScript deletes the key only while it still holds our token.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisLocker struct {
	rdb  goredis.UniversalClient
	ttl  time.Duration
	wait time.Duration
}

// NewRedisLocker creates a ProfileLocker backed by SET NX PX keys.
func NewRedisLocker(rdb goredis.UniversalClient, ttl, wait time.Duration) service.ProfileLocker {
	return &redisLocker{rdb: rdb, ttl: ttl, wait: wait}
}

func profileKey(profileID uuid.UUID) string {
	return "lock:profile:" + profileID.String()
}

func (l *redisLocker) Lock(ctx context.Context, profileID uuid.UUID) (service.UnlockFunc, error) {
	key := profileKey(profileID)
	token, err := newToken()
	if err != nil {
		return nil, err
	}

	deadline := time.Now().Add(l.wait)
	for {
		ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, errors.Wrap(err, "failed to acquire profile lock")
		}
		if ok {
			break
		}

		if time.Now().After(deadline) {
			return nil, domainerrors.ErrLockNotAcquired.WithDetails(profileID.String())
		}

		select {
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		case <-time.After(retryInterval):
		}
	}

	return func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.rdb, []string{key}, token).Err(); err != nil {
			return errors.Wrap(err, "failed to release profile lock")
		}

		return nil
	}, nil
}

func newToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate lock token")
	}

	return hex.EncodeToString(buf), nil
}
