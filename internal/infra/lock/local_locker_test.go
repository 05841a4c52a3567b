package lock

import (
	"context"
	"testing"
	"time"

	domainerrors "fitplan/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLockerSerializesProfile(t *testing.T) {
	locker := NewLocalLocker(20 * time.Millisecond)
	ctx := context.Background()
	profileID := uuid.New()

	unlock, err := locker.Lock(ctx, profileID)
	require.NoError(t, err)

	_, err = locker.Lock(ctx, profileID)
	assert.True(t, errors.Is(err, domainerrors.ErrLockNotAcquired))

	// other profiles are independent
	otherUnlock, err := locker.Lock(ctx, uuid.New())
	require.NoError(t, err)
	require.NoError(t, otherUnlock(ctx))

	require.NoError(t, unlock(ctx))
	// double unlock is harmless
	require.NoError(t, unlock(ctx))

	again, err := locker.Lock(ctx, profileID)
	require.NoError(t, err)
	require.NoError(t, again(ctx))
}

func TestLocalLockerWaitsForRelease(t *testing.T) {
	locker := NewLocalLocker(time.Second)
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

func TestLocalLockerHonoursContext(t *testing.T) {
	locker := NewLocalLocker(time.Second)
	profileID := uuid.New()

	unlock, err := locker.Lock(context.Background(), profileID)
	require.NoError(t, err)
	defer func() { _ = unlock(context.Background()) }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = locker.Lock(ctx, profileID)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestProfileKey(t *testing.T) {
	id := uuid.MustParse("0190c4a8-3c1e-7000-8000-000000000001")
	assert.Equal(t, "lock:profile:0190c4a8-3c1e-7000-8000-000000000001", profileKey(id))
}
