package lock

import (
	"context"
	"testing"
	"time"

	domainerrors "fitplan/internal/domain/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, goredis.UniversalClient) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return mr, rdb
}

func TestRedisLockerAcquireAndRelease(t *testing.T) {
	mr, rdb := newTestRedis(t)
	locker := NewRedisLocker(rdb, 30*time.Second, 20*time.Millisecond)
	ctx := context.Background()
	profileID := uuid.New()
	key := profileKey(profileID)

	unlock, err := locker.Lock(ctx, profileID)
	require.NoError(t, err)

	assert.True(t, mr.Exists(key))
	assert.Equal(t, 30*time.Second, mr.TTL(key))

	require.NoError(t, unlock(ctx))
	assert.False(t, mr.Exists(key))
}

func TestRedisLockerContention(t *testing.T) {
	_, rdb := newTestRedis(t)
	locker := NewRedisLocker(rdb, 30*time.Second, 20*time.Millisecond)
	ctx := context.Background()
	profileID := uuid.New()

	unlock, err := locker.Lock(ctx, profileID)
	require.NoError(t, err)

	_, err = locker.Lock(ctx, profileID)
	assert.True(t, errors.Is(err, domainerrors.ErrLockNotAcquired))

	// other profiles are independent
	other, err := locker.Lock(ctx, uuid.New())
	require.NoError(t, err)
	require.NoError(t, other(ctx))

	require.NoError(t, unlock(ctx))
}

func TestRedisLockerWaitsForRelease(t *testing.T) {
	_, rdb := newTestRedis(t)
	locker := NewRedisLocker(rdb, 30*time.Second, time.Second)
	ctx := context.Background()
	profileID := uuid.New()

	unlock, err := locker.Lock(ctx, profileID)
	require.NoError(t, err)

	go func() {
		time.Sleep(20 * time.Millisecond)
		_ = unlock(ctx)
	}()

	second, err := locker.Lock(ctx, profileID)
	require.NoError(t, err)
	require.NoError(t, second(ctx))
}

func TestRedisLockerStaleUnlockKeepsNewOwner(t *testing.T) {
	mr, rdb := newTestRedis(t)
	locker := NewRedisLocker(rdb, time.Second, 20*time.Millisecond)
	ctx := context.Background()
	profileID := uuid.New()
	key := profileKey(profileID)

	stale, err := locker.Lock(ctx, profileID)
	require.NoError(t, err)

	// The first holder's key expires and somebody else takes the lock.
	mr.FastForward(2 * time.Second)
	owner, err := locker.Lock(ctx, profileID)
	require.NoError(t, err)
	token, err := mr.Get(key)
	require.NoError(t, err)

	require.NoError(t, stale(ctx))

	got, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, token, got)

	require.NoError(t, owner(ctx))
	assert.False(t, mr.Exists(key))
}

func TestRedisLockerHonoursContext(t *testing.T) {
	_, rdb := newTestRedis(t)
	locker := NewRedisLocker(rdb, 30*time.Second, time.Minute)
	profileID := uuid.New()

	unlock, err := locker.Lock(context.Background(), profileID)
	require.NoError(t, err)
	defer func() { _ = unlock(context.Background()) }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err = locker.Lock(ctx, profileID)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
