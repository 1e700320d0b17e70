package infra

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application settings. No secrets; environment variables
// may still override individual values after load.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	Feed struct {
		Addr string `yaml:"addr"`
	} `yaml:"feed"`

	Storage struct {
		// Namespace is the key the persisted snapshot is stored under.
		Namespace string `yaml:"namespace"`
	} `yaml:"storage"`

	Simulation struct {
		TickIntervalMS int `yaml:"tick_interval_ms"`
		// MaxTokensPerScan bounds the random scan burst per tick.
		MaxTokensPerScan int `yaml:"max_tokens_per_scan"`
	} `yaml:"simulation"`

	Missions struct {
		// DailyResetSpec is a cron expression (with seconds) for the
		// daily mission reset.
		DailyResetSpec string `yaml:"daily_reset_spec"`
	} `yaml:"missions"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// LoadConfig reads and parses the configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	overrideWithEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks configuration validity
func (c *Config) Validate() error {
	if c.Storage.Namespace == "" {
		return fmt.Errorf("storage namespace is required")
	}
	if c.Simulation.TickIntervalMS <= 0 {
		return fmt.Errorf("simulation tick interval must be positive")
	}
	if c.Simulation.MaxTokensPerScan <= 0 {
		return fmt.Errorf("max tokens per scan must be positive")
	}
	if c.Missions.DailyResetSpec == "" {
		return fmt.Errorf("daily reset cron spec is required")
	}
	return nil
}

// overrideWithEnv overrides config values from the environment when present.
func overrideWithEnv(cfg *Config) {
	if addr := os.Getenv("MONEYPRINTER_FEED_ADDR"); addr != "" {
		cfg.Feed.Addr = addr
	}
	if level := os.Getenv("MONEYPRINTER_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}
