package service

import (
	"context"

	"github.com/google/uuid"
)

// UnlockFunc releases a lock obtained from ProfileLocker.
type UnlockFunc func(ctx context.Context) error

// ProfileLocker serialises plan activation per fitness profile.
type ProfileLocker interface {
	// Lock blocks until the lock is held or the wait budget is spent,
	// in which case it returns ErrLockNotAcquired.
	Lock(ctx context.Context, profileID uuid.UUID) (UnlockFunc, error)
}
