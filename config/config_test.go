package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Name != "shop" {
		t.Errorf("App.Name = %q, want shop", cfg.App.Name)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Type != "memory" {
		t.Errorf("Database.Type = %q, want memory", cfg.Database.Type)
	}
	if cfg.Query.BatchSize != 100 {
		t.Errorf("Query.BatchSize = %d, want 100", cfg.Query.BatchSize)
	}
	if !cfg.IsDevelopment() {
		t.Error("default env should be development")
	}
}

func TestEffectiveBatchSize(t *testing.T) {
	tests := []struct {
		name      string
		batchSize int
		want      int
	}{
		{"zero falls back", 0, 100},
		{"negative falls back", -5, 100},
		{"in range", 500, 500},
		{"at ceiling", 1000, 1000},
		{"above ceiling clamps", 5000, 1000},
		{"minimum", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QueryConfig{BatchSize: tt.batchSize}
			if got := q.EffectiveBatchSize(); got != tt.want {
				t.Errorf("EffectiveBatchSize() = %d, want %d", got, tt.want)
			}
		})
	}
}
