// file:kvtrie/pkg/x_log/x_log.go
package x_log

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	closer io.Closer
)

//---------------------
// Init
//---------------------

// InitWithConfig installs the global logger built from cfg. A non-empty
// app name is attached to every line; With adds the module on top.
func InitWithConfig(cfg *Config, app string) error {
	if cfg == nil {
		c := defaultConfig
		cfg = &c
	}
	applyDefaults(cfg)

	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	var (
		writers []io.Writer
		rot     *lumberjack.Logger
	)
	if cfg.ToConsole {
		writers = append(writers, consoleWriter(os.Stderr, cfg))
	}
	if cfg.ToFile {
		rot = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		writers = append(writers, rot)
	}

	var out io.Writer = io.Discard
	switch len(writers) {
	case 0:
	case 1:
		out = writers[0]
	default:
		out = zerolog.MultiLevelWriter(writers...)
	}

	ctx := zerolog.New(out).Level(lvl).With().Timestamp()
	if app != "" {
		ctx = ctx.Str("app", app)
	}

	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	if rot != nil {
		closer = rot
	}
	zerolog.SetGlobalLevel(lvl)
	logger = ctx.Logger()
	return nil
}

// Close flushes and closes the rotating file writer, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

func consoleWriter(out *os.File, cfg *Config) io.Writer {
	if strings.EqualFold(cfg.Format, "json") {
		return out
	}
	noColor := cfg.NoColor || !isatty.IsTerminal(out.Fd())
	return ConsoleWriterWithStyles(out, DefaultStylesByName(cfg.Style), noColor)
}

// ParseLevel accepts the usual names plus "warning".
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(s)
}

//---------------------
// Accessors
//---------------------

// L returns the current global logger.
func L() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// With returns a child logger tagged with module.
func With(module string) zerolog.Logger {
	l := L()
	return l.With().Str("module", module).Logger()
}

func Debug() *zerolog.Event { l := L(); return l.Debug() }
func Info() *zerolog.Event  { l := L(); return l.Info() }
func Warn() *zerolog.Event  { l := L(); return l.Warn() }
func Error() *zerolog.Event { l := L(); return l.Error() }
