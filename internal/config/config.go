package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Monitor  MonitorConfig  `mapstructure:"monitor"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// MonitorConfig holds processing settings for the monitoring pass.
type MonitorConfig struct {
	BatchSize  int    `mapstructure:"batch_size"`
	SampleText string `mapstructure:"sample_text"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	HistoryLimit int `mapstructure:"history_limit"`
}

// defaultSampleText is the demonstration conversation used when no text is
// configured.
const defaultSampleText = `Develop advanced parsing logic to extract subtasks dynamically from deeply nested workflows.
Test semantic scoring capabilities with sentence transformers for task prioritization.
Enable dynamic feedback loops for real-time task refinement.
Ensure scalability with large and complex conversation threads.`

// Load reads configuration from file and env. Env var overrides use prefix
// TASKPULSE_, e.g. TASKPULSE_MONITOR_BATCH_SIZE.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "taskpulse", "taskpulse.db"))
	v.SetDefault("monitor.batch_size", 50)
	v.SetDefault("monitor.sample_text", defaultSampleText)
	v.SetDefault("ui.history_limit", 20)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TASKPULSE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "taskpulse"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TASKPULSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Monitor.BatchSize <= 0 {
		return Config{}, fmt.Errorf("monitor.batch_size must be positive, got %d", c.Monitor.BatchSize)
	}
	return c, nil
}
