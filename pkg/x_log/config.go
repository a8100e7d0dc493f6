package x_log

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

//
// ---------- Defaults ----------

const (
	defaultConfigPath = "./xlog.json"
	EnvConfigPath     = "XLOG_CONFIG"
)

// Config describes where and how log lines are written.
type Config struct {
	Level      string `json:"level"`       // debug, info, warn, error
	Format     string `json:"format"`      // console or json
	Style      string `json:"style"`       // dark or light console theme
	ToConsole  bool   `json:"to_console"`  // write to stderr
	ToFile     bool   `json:"to_file"`     // write to LogFile
	LogFile    string `json:"log_file"`    // rotated by lumberjack
	NoColor    bool   `json:"no_color"`    // force plain console output
	MaxSize    int    `json:"max_size"`    // MB
	MaxBackups int    `json:"max_backups"` // rotated files
	MaxAge     int    `json:"max_age"`     // days
	Compress   bool   `json:"compress"`
}

var defaultConfig = Config{
	Level:      "info",
	Format:     "console",
	Style:      "dark",
	ToConsole:  true,
	ToFile:     false,
	LogFile:    "logs/kvtrie.log",
	MaxSize:    10,
	MaxBackups: 5,
	MaxAge:     7,
	Compress:   true,
}

//
// ---------- LoadConfig ----------

// LoadConfig reads JSON config from file.
// If path is empty, uses XLOG_CONFIG or ./xlog.json. A missing file yields
// the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		if path == "" {
			path = defaultConfigPath
		}
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read log config from %s: %w", path, err)
	}

	cfg := defaultConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse log config from %s: %w", path, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

//
// ---------- Defaults Fill ----------

// applyDefaults fills missing config values from defaultConfig
func applyDefaults(cfg *Config) {
	if cfg.Level == "" {
		cfg.Level = defaultConfig.Level
	}
	if cfg.Format == "" {
		cfg.Format = defaultConfig.Format
	}
	if cfg.LogFile == "" {
		cfg.LogFile = defaultConfig.LogFile
	}
	if cfg.Style == "" {
		cfg.Style = defaultConfig.Style
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = defaultConfig.MaxSize
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = defaultConfig.MaxBackups
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = defaultConfig.MaxAge
	}
}
