package x_driver

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rskv-p/kvtrie/pkg/x_reader"
)

// ForEachDataLine calls fn for each key/value line of path. A malformed
// line or an fn error stops the load.
func ForEachDataLine(path string, delim byte, fn func(key, value string) error) (x_reader.Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return x_reader.Stats{}, fmt.Errorf("failed to open input file '%s': %w", path, err)
	}
	defer f.Close()

	r := x_reader.NewReader(f, x_reader.WithDelimiter(delim))
	for {
		key, value, err := r.ReadData()
		if errors.Is(err, io.EOF) {
			return r.Stats(), nil
		}
		if err != nil {
			return r.Stats(), fmt.Errorf("%s: %w", path, err)
		}
		if err := fn(key, value); err != nil {
			return r.Stats(), fmt.Errorf("%s line %d: %w", path, r.Line(), err)
		}
	}
}

// ForEachPlainLine calls fn for each key listed in path.
func ForEachPlainLine(path string, fn func(key string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open query input file '%s': %w", path, err)
	}
	defer f.Close()

	r := x_reader.NewReader(f)
	for {
		key, err := r.ReadPlain()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := fn(key); err != nil {
			return fmt.Errorf("%s line %d: %w", path, r.Line(), err)
		}
	}
}
