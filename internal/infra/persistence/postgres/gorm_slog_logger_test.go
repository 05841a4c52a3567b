package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	deliverycontext "fitplan/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newBufferedGormLogger(level gormlogger.LogLevel) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return &gormSlogLogger{base: base, level: level}, &buf
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		level   gormlogger.LogLevel
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failure", level: gormlogger.Warn, err: errors.New("deadlock detected"), want: "GORM query failed"},
		{name: "not found is silent", level: gormlogger.Warn, err: gorm.ErrRecordNotFound},
		{name: "slow query", level: gormlogger.Warn, elapsed: time.Second, want: "GORM slow query"},
		{name: "fast query below info", level: gormlogger.Warn},
		{name: "fast query at info", level: gormlogger.Info, want: "GORM query"},
		{name: "silent", level: gormlogger.Silent, err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufferedGormLogger(tt.level)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn("SELECT 1"), tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, _ := newBufferedGormLogger(gormlogger.Info)

	var scoped bytes.Buffer
	reqLogger := slog.New(slog.NewJSONHandler(&scoped, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With(slog.String("request_id", "req-9"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), nil)

	assert.Contains(t, scoped.String(), `"request_id":"req-9"`)
}

func TestGormSlogLogger_TruncatesSQL(t *testing.T) {
	l, buf := newBufferedGormLogger(gormlogger.Info)

	l.Trace(context.Background(), time.Now(), sqlFn("INSERT "+strings.Repeat("x", 3*maxLoggedSQL)), nil)

	assert.Less(t, buf.Len(), 2*maxLoggedSQL)
	assert.Contains(t, buf.String(), "…")
}
