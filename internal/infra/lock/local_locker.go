package lock

import (
	"context"
	"sync"
	"time"

	domainerrors "fitplan/internal/domain/errors"
	"fitplan/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// localLocker serialises activation inside a single process.
// Each profile gets a one-slot channel that acts as its mutex.
type localLocker struct {
	mu    sync.Mutex
	slots map[uuid.UUID]chan struct{}
	wait  time.Duration
}

// NewLocalLocker creates an in-process ProfileLocker. wait bounds how long Lock blocks.
func NewLocalLocker(wait time.Duration) service.ProfileLocker {
	return &localLocker{
		slots: make(map[uuid.UUID]chan struct{}),
		wait:  wait,
	}
}

func (l *localLocker) slot(profileID uuid.UUID) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.slots[profileID]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[profileID] = ch
	}

	return ch
}

func (l *localLocker) Lock(ctx context.Context, profileID uuid.UUID) (service.UnlockFunc, error) {
	ch := l.slot(profileID)

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	select {
	case ch <- struct{}{}:
	case <-timer.C:
		return nil, domainerrors.ErrLockNotAcquired.WithDetails(profileID.String())
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	}

	var once sync.Once

	return func(context.Context) error {
		once.Do(func() { <-ch })

		return nil
	}, nil
}
