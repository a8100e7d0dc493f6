// file:kvtrie/config/option.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Option is a functional config initializer.
type Option func(*Config) error

// New builds a config from the defaults and the given options, in order.
func New(opts ...Option) (*Config, error) {
	cfg := Default()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// FromMap decodes loosely typed values ("100", "true") onto the config.
// Unknown keys are an error.
func FromMap(values map[string]any) Option {
	return func(c *Config) error {
		return decode(c, values, true)
	}
}

// FromJSON loads config from a JSON file.
func FromJSON(path string) Option {
	return func(c *Config) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config file: %w", err)
		}
		data = ReplaceEnvVars(data)

		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parse config json: %w", err)
		}
		return decode(c, lowerKeys(raw), true)
	}
}

// FromEnv loads config values from environment variables with prefix.
// Empty variables and ones that do not name a config field are ignored.
func FromEnv(prefix string) Option {
	return func(c *Config) error {
		raw := map[string]any{}
		for _, e := range os.Environ() {
			k, v, ok := strings.Cut(e, "=")
			if !ok || !strings.HasPrefix(k, prefix) {
				continue
			}
			if v = strings.TrimSpace(v); v == "" {
				continue
			}
			raw[strings.ToLower(strings.TrimPrefix(k, prefix))] = v
		}
		return decode(c, raw, false)
	}
}

func decode(c *Config, values map[string]any, strict bool) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           c,
		WeaklyTypedInput: true,
		ErrorUnused:      strict,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(values); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

func lowerKeys(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}
