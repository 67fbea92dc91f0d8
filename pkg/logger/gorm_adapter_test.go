package logger

import (
	"context"
	"testing"
	"time"

	"shop/infrastructure/persistence"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm/logger"
)

func TestGormLoggerAdapter(t *testing.T) {
	originalLogger := log
	defer func() { log = originalLogger }()

	testCases := []struct {
		name          string
		logLevel      logger.LogLevel
		expectTrace   bool
		expectInfoMsg bool
	}{
		{"Warn Level", logger.Warn, false, false},
		{"Info Level", logger.Info, true, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			log = zap.New(core)

			adapter := NewGormLoggerAdapter(tc.logLevel)

			if adapter.LogMode(logger.Info) == nil {
				t.Fatal("LogMode should return a new adapter")
			}

			adapter.Info(context.Background(), "test info message")
			adapter.Warn(context.Background(), "test warn message")
			adapter.Error(context.Background(), "test error message")
			adapter.Trace(context.Background(), time.Now(), func() (string, int64) {
				return "SELECT * FROM orders", 1
			}, nil)

			foundInfo := false
			foundWarn := false
			foundError := false
			foundTrace := false
			for _, entry := range logs.All() {
				switch entry.Message {
				case "test info message":
					foundInfo = true
				case "test warn message":
					foundWarn = true
				case "test error message":
					foundError = true
				case "SQL query executed":
					foundTrace = true
					hasSQL := false
					for _, field := range entry.Context {
						if field.Key == "sql" {
							hasSQL = true
							break
						}
					}
					if !hasSQL {
						t.Error("SQL query not found in trace log fields")
					}
				}
			}

			if foundInfo != tc.expectInfoMsg {
				t.Errorf("info message logged = %v, want %v", foundInfo, tc.expectInfoMsg)
			}
			if !foundWarn {
				t.Error("Warn message not found in logs")
			}
			if !foundError {
				t.Error("Error message not found in logs")
			}
			if foundTrace != tc.expectTrace {
				t.Errorf("trace logged = %v, want %v", foundTrace, tc.expectTrace)
			}
		})
	}
}

func TestGormLoggerAdapterWithConfig(t *testing.T) {
	originalLogger := log
	defer func() { log = originalLogger }()

	core, logs := observer.New(zapcore.DebugLevel)
	log = zap.New(core)

	customConfig := &GormLoggerConfig{
		SlowThreshold:             10 * time.Millisecond,
		IgnoreRecordNotFoundError: true,
		AddCaller:                 true,
	}

	adapter := NewGormLoggerAdapterWithConfig(logger.Info, customConfig)

	ctx := persistence.ContextWithRequestID(context.Background(), "test-request-123")

	adapter.Trace(ctx, time.Now(), func() (string, int64) {
		time.Sleep(15 * time.Millisecond)
		return "SELECT * FROM orders", 1
	}, nil)

	// Record-not-found should be swallowed with this config.
	adapter.Trace(ctx, time.Now(), func() (string, int64) {
		return "SELECT * FROM orders WHERE id = 'missing'", 0
	}, logger.ErrRecordNotFound)

	foundSlowQuery := false
	foundRequestID := false
	for _, entry := range logs.All() {
		if entry.Message == "Slow SQL query" {
			foundSlowQuery = true
			for _, field := range entry.Context {
				if field.Key == "request_id" && field.String == "test-request-123" {
					foundRequestID = true
					break
				}
			}
		}
		if entry.Message == "Database operation failed" {
			t.Error("Record not found error should be ignored with custom config")
		}
	}

	if !foundSlowQuery {
		t.Error("Slow query should be logged with warn level")
	}
	if !foundRequestID {
		t.Error("Request ID should be propagated from context")
	}
}
