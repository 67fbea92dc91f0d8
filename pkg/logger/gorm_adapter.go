/*
Package logger - GORM to zap log adapter.

Every SQL statement the loading strategies emit flows through Trace, so this
adapter is where a misbehaving loader becomes visible: the collection fetch
pulling a whole graph shows up as a slow query, the naive per-order variant
as a burst of fast ones.
*/
package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shop/infrastructure/persistence"

	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

// GormLoggerConfig tunes the adapter.
type GormLoggerConfig struct {
	// SlowThreshold marks queries as slow. The entity loaders are expected
	// to stay well under it; a fetch-join query tripping this repeatedly is
	// a sign the wrong strategy backs the endpoint.
	SlowThreshold             time.Duration
	IgnoreRecordNotFoundError bool
	AddCaller                 bool
}

// DefaultGormLoggerConfig returns the default tuning.
func DefaultGormLoggerConfig() *GormLoggerConfig {
	return &GormLoggerConfig{
		SlowThreshold:             100 * time.Millisecond,
		IgnoreRecordNotFoundError: false,
		AddCaller:                 true,
	}
}

// GormLoggerAdapter implements gorm's logger.Interface on top of zap.
type GormLoggerAdapter struct {
	logLevel logger.LogLevel
	logger   *zap.Logger
	config   *GormLoggerConfig
}

// NewGormLoggerAdapter creates the adapter with default tuning.
func NewGormLoggerAdapter(logLevel logger.LogLevel) *GormLoggerAdapter {
	return NewGormLoggerAdapterWithConfig(logLevel, DefaultGormLoggerConfig())
}

// NewGormLoggerAdapterWithConfig creates the adapter with explicit tuning.
func NewGormLoggerAdapterWithConfig(logLevel logger.LogLevel, config *GormLoggerConfig) *GormLoggerAdapter {
	if config == nil {
		config = DefaultGormLoggerConfig()
	}
	baseLogger := log
	if baseLogger == nil {
		baseLogger = zap.NewNop()
	}
	return &GormLoggerAdapter{logLevel: logLevel, logger: baseLogger, config: config}
}

// LogMode returns a copy of the adapter at the given level.
func (l *GormLoggerAdapter) LogMode(logLevel logger.LogLevel) logger.Interface {
	return &GormLoggerAdapter{logLevel: logLevel, logger: l.logger, config: l.config}
}

// contextLogger returns the zap logger enriched with whatever the context
// carries - today the request id, placed there by the request id middleware.
func (l *GormLoggerAdapter) contextLogger(ctx context.Context) *zap.Logger {
	zl := l.logger
	if zl == nil {
		zl = zap.NewNop()
	}
	if requestID := persistence.RequestIDFromContext(ctx); requestID != "" {
		zl = zl.With(zap.String("request_id", requestID))
	}
	if l.config.AddCaller {
		zl = zl.WithOptions(zap.AddCaller())
	}
	return zl
}

func (l *GormLoggerAdapter) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.logLevel >= logger.Info {
		l.contextLogger(ctx).Info(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLoggerAdapter) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.logLevel >= logger.Warn {
		l.contextLogger(ctx).Warn(fmt.Sprintf(msg, args...))
	}
}

func (l *GormLoggerAdapter) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.logLevel >= logger.Error {
		l.contextLogger(ctx).Error(fmt.Sprintf(msg, args...))
	}
}

// Trace logs one executed statement: errors at error level, slow queries at
// warn, everything else at info.
func (l *GormLoggerAdapter) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	sql, rows := fc()
	elapsed := time.Since(begin)

	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Duration("elapsed", elapsed),
	}
	// gorm reports -1 when the driver does not know the row count.
	if rows >= 0 {
		fields = append(fields, zap.Int64("rows", rows))
	}
	zl := l.contextLogger(ctx)

	switch {
	case err != nil && l.logLevel >= logger.Error:
		if errors.Is(err, logger.ErrRecordNotFound) && l.config.IgnoreRecordNotFoundError {
			return
		}
		zl.Error("Database operation failed", append(fields, zap.Error(err))...)

	case l.config.SlowThreshold != 0 && elapsed > l.config.SlowThreshold && l.logLevel >= logger.Warn:
		zl.Warn("Slow SQL query", append(fields,
			zap.Duration("threshold", l.config.SlowThreshold),
			zap.String("type", "slow_query"))...)

	case l.logLevel >= logger.Info:
		zl.Info("SQL query executed", fields...)
	}
}
