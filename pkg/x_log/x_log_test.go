package x_log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithConfig(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prev)
		_ = Close()
	})

	t.Run("FileOutput", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		cfg := &Config{Level: "debug", Format: "json", ToFile: true, LogFile: path}

		require.NoError(t, InitWithConfig(cfg, "test"))
		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

		Info().Str("op", "insert").Msg("hello")
		require.NoError(t, Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var line map[string]any
		require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &line))
		assert.Equal(t, "hello", line["message"])
		assert.Equal(t, "test", line["app"])
		assert.Equal(t, "insert", line["op"])
	})

	t.Run("BadLevel", func(t *testing.T) {
		err := InitWithConfig(&Config{Level: "loud"}, "")
		assert.Error(t, err)
	})

	t.Run("NilConfig", func(t *testing.T) {
		require.NoError(t, InitWithConfig(nil, ""))
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})
}

func TestWith(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prev)
		_ = Close()
	})

	path := filepath.Join(t.TempDir(), "app.log")
	cfg := &Config{Level: "info", Format: "json", ToFile: true, LogFile: path}
	require.NoError(t, InitWithConfig(cfg, "kvtrie"))

	l := With("aa")
	l.Info().Msg("loaded")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, bytes.Count(data, []byte(`"module":`)), "one module key per line")
	assert.Contains(t, string(data), `"app":"kvtrie"`)
	assert.Contains(t, string(data), `"module":"aa"`)
}

func TestConsoleWriterWithStyles(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(ConsoleWriterWithStyles(&buf, DefaultStylesDark(), true))

	l.Info().Str("key", "abc").Msg("lookup")
	assert.Contains(t, buf.String(), "lookup")
	assert.Contains(t, buf.String(), "key=abc")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		" error ": zerolog.ErrorLevel,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestDefaultStylesByName(t *testing.T) {
	assert.Equal(t, DefaultStylesLight().Levels, DefaultStylesByName("LIGHT").Levels)
	assert.Equal(t, DefaultStylesDark().Levels, DefaultStylesByName("unknown").Levels)
}
