// Package lock provides the per-profile activation lock.
package lock

import (
	"context"
	"log/slog"
	"time"

	"fitplan/config"
	"fitplan/internal/domain/service"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultLocalWait = 10 * time.Second

// Params holds dependencies for NewProfileLocker, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewProfileLocker uses Redis when redis.addr is set and an in-process lock otherwise.
func NewProfileLocker(params Params) (service.ProfileLocker, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Warn("Redis is not configured, using in-process profile lock")

		return NewLocalLocker(defaultLocalWait), nil
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "redis ping")
			}
			params.Logger.Info("Redis profile lock connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return rdb.Close()
		},
	})

	return NewRedisLocker(rdb, cfg.LockTTL, cfg.LockWait), nil
}

// Module provides the lock FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewProfileLocker),
)
