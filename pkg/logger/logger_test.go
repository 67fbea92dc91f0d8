package logger

import (
	"testing"

	"shop/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNilLoggerSafety(t *testing.T) {
	originalLogger := log
	defer func() { log = originalLogger }()

	log = nil
	atomLevel = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	Debug("test debug")
	Info("test info")
	Warn("test warn")
	Error("test error")

	if With(zap.String("key", "value")) == nil {
		t.Error("With() returned nil logger")
	}
	if WithRequestID("test-id") == nil {
		t.Error("WithRequestID() returned nil logger")
	}
	if err := Sync(); err != nil {
		t.Errorf("Sync() on nil logger error = %v", err)
	}
}

func TestInitDevelopment(t *testing.T) {
	cfg := &config.LogConfig{
		Level:  "debug",
		Format: "",
		Output: "stdout",
	}

	if err := Init(cfg, "development"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Sync()

	if Get() == nil {
		t.Fatal("Get() returned nil after Init")
	}
	if !atomLevel.Enabled(zapcore.DebugLevel) {
		t.Error("debug level should be enabled")
	}

	Info("development logger initialized", zap.String("env", "development"))
	Debug("debug message should appear")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.level); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestUpdateLevel(t *testing.T) {
	cfg := &config.LogConfig{Level: "info", Output: "stdout"}
	if err := Init(cfg, "production"); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Sync()

	if atomLevel.Enabled(zapcore.DebugLevel) {
		t.Fatal("debug should be disabled at info level")
	}

	UpdateLevel("debug")
	if !atomLevel.Enabled(zapcore.DebugLevel) {
		t.Error("UpdateLevel(debug) did not take effect")
	}
}
