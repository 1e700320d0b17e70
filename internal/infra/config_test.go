package infra

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
app:
  name: MoneyPrinter
feed:
  addr: ":8090"
storage:
  namespace: test-storage
simulation:
  tick_interval_ms: 1000
  max_tokens_per_scan: 5
missions:
  daily_reset_spec: "0 0 0 * * *"
logging:
  level: debug
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Storage.Namespace != "test-storage" {
		t.Errorf("namespace = %q, want test-storage", cfg.Storage.Namespace)
	}
	if cfg.Simulation.TickIntervalMS != 1000 {
		t.Errorf("tick interval = %d, want 1000", cfg.Simulation.TickIntervalMS)
	}
	if cfg.Missions.DailyResetSpec != "0 0 0 * * *" {
		t.Errorf("reset spec = %q", cfg.Missions.DailyResetSpec)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("want error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing namespace", func(c *Config) { c.Storage.Namespace = "" }},
		{"zero tick interval", func(c *Config) { c.Simulation.TickIntervalMS = 0 }},
		{"zero scan bound", func(c *Config) { c.Simulation.MaxTokensPerScan = 0 }},
		{"missing reset spec", func(c *Config) { c.Missions.DailyResetSpec = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, validYAML))
			if err != nil {
				t.Fatalf("load failed: %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("want validation error")
			}
		})
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("MONEYPRINTER_FEED_ADDR", ":9999")

	cfg, err := LoadConfig(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Feed.Addr != ":9999" {
		t.Errorf("feed addr = %q, want env override :9999", cfg.Feed.Addr)
	}
}
