package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"fitplan/config"
	"fitplan/internal/domain/lifecycle"
	"fitplan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolCheckInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the shared connection pool. Every repository, the transaction
// manager and the workflow run store receive this one *gorm.DB.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres config is required")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-statement writes go through TransactionManager.Execute.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := &poolMonitor{db: sqlDB, logger: params.Logger}
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := prepare(ctx, db, sqlDB, params.Config.Env.AutoMigrate, params.Logger); err != nil {
				return err
			}
			monitor.start(poolCheckInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			monitor.stop()

			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL pool")
		},
	})

	return db, nil
}

// prepare checks connectivity and, with env.autoMigrate, migrates every model.
func prepare(ctx context.Context, db *gorm.DB, sqlDB *sql.DB, autoMigrate bool, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}
	if !autoMigrate {
		return nil
	}

	models := model.All()
	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}
	logger.InfoContext(ctx, "Database schema migrated", slog.Int("tables", len(models)))

	return nil
}

// poolMonitor logs connection waits. Workflow steps hold connections for the
// length of a transaction, so waits show up first when the worker scales out.
type poolMonitor struct {
	db     *sql.DB
	logger *slog.Logger
	cancel context.CancelFunc
	done   chan struct{}
}

func (m *poolMonitor) start(interval time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.done = make(chan struct{})

	go func() {
		defer close(m.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		last := m.db.Stats()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cur := m.db.Stats()
				m.report(ctx, last, cur)
				last = cur
			}
		}
	}()
}

func (m *poolMonitor) stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
}

func (m *poolMonitor) report(ctx context.Context, last, cur sql.DBStats) {
	waits := cur.WaitCount - last.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - last.WaitDuration

	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("max_open", cur.MaxOpenConnections),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
	)
}
