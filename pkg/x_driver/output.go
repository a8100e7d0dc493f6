package x_driver

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/rskv-p/kvtrie/pkg/x_aarray"
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// OpenOutput opens path for the summary, or returns fallback when path is
// empty. Closing the fallback is a no-op.
func OpenOutput(path string, fallback io.Writer) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{fallback}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open requested output file '%s': %w", path, err)
	}
	return f, nil
}

// Phase times one driver step and prints its timing line.
type Phase struct {
	w     io.Writer
	name  string
	start time.Time
}

// StartPhase begins timing the step called name ("Inserts", "Queries").
func StartPhase(w io.Writer, name string) *Phase {
	return &Phase{w: w, name: name, start: time.Now()}
}

// Done prints "<name> took X seconds".
func (p *Phase) Done() {
	fmt.Fprintf(p.w, "%s took %f seconds\n", p.name, time.Since(p.start).Seconds())
}

// DoneWithCost prints the timing line with the trie cost of the step.
func (p *Phase) DoneWithCost(cost int) {
	fmt.Fprintf(p.w, "%s took %f seconds with reported cost %d\n", p.name, time.Since(p.start).Seconds(), cost)
}

// LogStats records the array parameters and final counters.
func LogStats[V any](log zerolog.Logger, aa *x_aarray.AssociativeArray[V]) {
	c := aa.Config()
	log.Info().
		Int("size", c.Size).
		Str("probe", c.Probe).
		Str("hash_primary", c.HashPrimary).
		Str("hash_secondary", c.HashSecondary).
		Fields(aa.ExportStats()).
		Msg("associative array stats")
}

// Metrics bundles a private registry with the facade collectors.
type Metrics struct {
	Registry *prometheus.Registry
	Facade   *x_aarray.Metrics
}

// NewMetrics returns nil when path is empty.
func NewMetrics(path string) *Metrics {
	if path == "" {
		return nil
	}
	reg := prometheus.NewRegistry()
	return &Metrics{Registry: reg, Facade: x_aarray.NewMetrics(reg)}
}

// Options returns the facade options wiring m and log.
func (m *Metrics) Options(log zerolog.Logger) []x_aarray.Option {
	opts := []x_aarray.Option{x_aarray.WithLogger(log)}
	if m != nil {
		opts = append(opts, x_aarray.WithMetrics(m.Facade))
	}
	return opts
}

// Write stores the gathered metrics in path.
func (m *Metrics) Write(path string) error {
	if m == nil {
		return nil
	}
	if err := x_aarray.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("write metrics to '%s': %w", path, err)
	}
	return nil
}
