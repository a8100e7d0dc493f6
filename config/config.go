// file:kvtrie/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/rskv-p/kvtrie/constant"
)

// Config holds the driver settings shared by every kvtrie subcommand.
type Config struct {
	ArraySize     int    `json:"array_size" mapstructure:"array_size"`
	Probe         string `json:"probe" mapstructure:"probe"`
	HashPrimary   string `json:"hash_primary" mapstructure:"hash_primary"`
	HashSecondary string `json:"hash_secondary" mapstructure:"hash_secondary"`
	UseIntKey     bool   `json:"int_key" mapstructure:"int_key"`
	Iterate       bool   `json:"iterate" mapstructure:"iterate"`
	Print         bool   `json:"print" mapstructure:"print"`
	PrintStyle    string `json:"print_style" mapstructure:"print_style"`
	QueryFile     string `json:"query_file" mapstructure:"query_file"`
	DeleteFile    string `json:"delete_file" mapstructure:"delete_file"`
	OutputFile    string `json:"output_file" mapstructure:"output_file"`
	MetricsFile   string `json:"metrics_file" mapstructure:"metrics_file"`
	Delimiter     string `json:"delimiter" mapstructure:"delimiter"`
	LogLevel      string `json:"log_level" mapstructure:"log_level"`
	LogFormat     string `json:"log_format" mapstructure:"log_format"`
	LogFile       string `json:"log_file" mapstructure:"log_file"`
}

// Default returns a default config.
func Default() *Config {
	return &Config{
		ArraySize:     constant.DefaultArraySize,
		Probe:         constant.DefaultProbe,
		HashPrimary:   constant.DefaultHashPrimary,
		HashSecondary: constant.DefaultHashSecondary,
		PrintStyle:    constant.DefaultPrintStyle,
		Delimiter:     constant.DefaultDelimiter,
		LogLevel:      constant.DefaultLogLevel,
		LogFormat:     constant.DefaultLogFormat,
	}
}

// LoadWithFallback decodes path, then the file named by KVTRIE_CONFIG, then
// KVTRIE_* environment variables, and finally applies overrides in order.
func LoadWithFallback(path string, overrides ...Option) (*Config, error) {
	if path == "" {
		path = os.Getenv(constant.EnvConfigPath)
	}
	src := FromEnv(constant.EnvPrefix)
	if path != "" {
		src = FromJSON(path)
	}
	return New(append([]Option{src}, overrides...)...)
}

// Validate checks config for values the drivers cannot run with.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.ArraySize <= 0 {
		errs = append(errs, fmt.Errorf("%w: %d", constant.ErrBadArraySize, cfg.ArraySize))
	}
	if !slices.Contains(constant.Probes, cfg.Probe) {
		errs = append(errs, fmt.Errorf("%w: %q", constant.ErrUnknownProbe, cfg.Probe))
	}
	if len(cfg.Delimiter) != 1 {
		errs = append(errs, fmt.Errorf("%w: %q", constant.ErrBadDelimiter, cfg.Delimiter))
	}
	if !slices.Contains(constant.LogFormats, cfg.LogFormat) {
		errs = append(errs, fmt.Errorf("%w: %q", constant.ErrUnknownFormat, cfg.LogFormat))
	}
	if !slices.Contains(constant.PrintStyles, cfg.PrintStyle) {
		errs = append(errs, fmt.Errorf("%w: %q", constant.ErrUnknownPrintStyle, cfg.PrintStyle))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (cfg *Config) String() string {
	data, _ := json.MarshalIndent(cfg, "", "  ")
	return string(data)
}

func (cfg *Config) Dump(w io.Writer) {
	data, _ := json.MarshalIndent(cfg, "", "  ")
	_, _ = w.Write(data)
}
