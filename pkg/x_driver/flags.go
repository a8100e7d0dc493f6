// Package x_driver holds what the kvtrie subcommands share: flag binding,
// config resolution, key encoding, line-file loops and phase timing.
package x_driver

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rskv-p/kvtrie/config"
	"github.com/rskv-p/kvtrie/constant"
	"github.com/rskv-p/kvtrie/pkg/x_log"
)

// Flag names shared by the subcommands.
const (
	FlagIntKey     = "int-key"
	FlagIterate    = "iterate"
	FlagPrint      = "print"
	FlagPrintStyle = "print-style"
	FlagSize       = "size"
	FlagHash       = "hash"
	FlagHash2      = "hash2"
	FlagProbe      = "probe"
	FlagQuery      = "query"
	FlagDelete     = "delete"
	FlagOutput     = "output"
	FlagMetrics    = "metrics-file"
	FlagDelimiter  = "delimiter"

	FlagConfig    = "config"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagLogFile   = "log-file"
)

// FlagSet selects the optional flags a subcommand accepts.
type FlagSet struct {
	IntKey  bool
	Iterate bool
}

// BindPersistentFlags registers the root flags.
func BindPersistentFlags(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.String(FlagConfig, "", "JSON config file (default $"+constant.EnvConfigPath+")")
	fs.String(FlagLogLevel, constant.DefaultLogLevel, "log level: debug, info, warn, error")
	fs.String(FlagLogFormat, constant.DefaultLogFormat, "log format: console or json")
	fs.String(FlagLogFile, "", "also write logs to this rotated file")
}

// BindFlags registers the driver flags on cmd.
func BindFlags(cmd *cobra.Command, set FlagSet) {
	d := config.Default()
	fs := cmd.Flags()
	if set.IntKey {
		fs.BoolP(FlagIntKey, "i", false, "store keys made of digits as 4-byte integers")
	}
	if set.Iterate {
		fs.BoolP(FlagIterate, "I", false, "iterate over the contents printing each key")
	}
	fs.BoolP(FlagPrint, "p", false, "print out the table after processing")
	fs.String(FlagPrintStyle, d.PrintStyle, "print renderer: dump or tree")
	fs.IntP(FlagSize, "n", d.ArraySize, "size of table used internally")
	fs.StringP(FlagHash, "H", d.HashPrimary, "primary hash algorithm")
	fs.StringP(FlagHash2, "2", d.HashSecondary, "secondary hash algorithm")
	fs.StringP(FlagProbe, "P", d.Probe, "probe algorithm: lin, quad or dbl")
	fs.StringP(FlagQuery, "q", "", "query every key listed in `FILE` (one per line)")
	fs.StringP(FlagDelete, "d", "", "delete every key listed in `FILE` (one per line)")
	fs.StringP(FlagOutput, "o", "", "write summary and contents to `FILE` instead of stdout")
	fs.String(FlagMetrics, "", "write Prometheus metrics to `FILE` on exit")
	fs.String(FlagDelimiter, d.Delimiter, "key/value separator in data files")
}

// configKeys maps each overriding flag to its config field.
var configKeys = map[string]string{
	FlagIntKey:     "int_key",
	FlagIterate:    "iterate",
	FlagPrint:      "print",
	FlagPrintStyle: "print_style",
	FlagSize:       "array_size",
	FlagHash:       "hash_primary",
	FlagHash2:      "hash_secondary",
	FlagProbe:      "probe",
	FlagQuery:      "query_file",
	FlagDelete:     "delete_file",
	FlagOutput:     "output_file",
	FlagMetrics:    "metrics_file",
	FlagDelimiter:  "delimiter",
	FlagLogLevel:   "log_level",
	FlagLogFormat:  "log_format",
	FlagLogFile:    "log_file",
}

// LoadConfig resolves the config file or environment, applies the flags
// the user set explicitly and validates the result.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	fs := cmd.Flags()
	path, _ := fs.GetString(FlagConfig)

	cfg, err := config.LoadWithFallback(path, config.FromMap(changedFlags(fs)))
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// changedFlags collects the flags set on the command line, keyed by config
// field. Values stay strings; the config decoder converts them.
func changedFlags(fs *pflag.FlagSet) map[string]any {
	values := map[string]any{}
	fs.Visit(func(f *pflag.Flag) {
		if key, ok := configKeys[f.Name]; ok {
			values[key] = f.Value.String()
		}
	})
	return values
}

// InitLogging installs the global logger. Theme and rotation come from the
// x_log config file; level, format and file come from cfg.
func InitLogging(cfg *config.Config) error {
	lc, err := x_log.LoadConfig("")
	if err != nil {
		return err
	}
	lc.Level = cfg.LogLevel
	lc.Format = cfg.LogFormat
	if cfg.LogFile != "" {
		lc.ToFile = true
		lc.LogFile = cfg.LogFile
	}
	return x_log.InitWithConfig(lc, "kvtrie")
}
