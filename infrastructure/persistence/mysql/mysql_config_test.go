package mysql

import (
	"strings"
	"testing"

	"shop/config"

	gormlogger "gorm.io/gorm/logger"
)

func TestDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "localhost",
		Port:     "3306",
		Username: "root",
		Password: "secret",
		Database: "shop",
	}

	dsn := DSN(cfg)

	if !strings.HasPrefix(dsn, "root:secret@tcp(localhost:3306)/shop?") {
		t.Errorf("DSN() = %q, unexpected prefix", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Error("DSN() must enable parseTime for time.Time scanning")
	}
	if !strings.Contains(dsn, "charset=utf8mb4") {
		t.Error("DSN() must use utf8mb4")
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  gormlogger.LogLevel
	}{
		{"debug", gormlogger.Info},
		{"info", gormlogger.Info},
		{"warn", gormlogger.Warn},
		{"error", gormlogger.Error},
		{"silent", gormlogger.Silent},
		{"", gormlogger.Warn},
		{"bogus", gormlogger.Warn},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.level); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
