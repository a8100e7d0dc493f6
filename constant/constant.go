// file:kvtrie/constant/constant.go
package constant

import "errors"

// ----------------------------------------------------
// Standard errors
// ----------------------------------------------------

var (
	ErrNoDataFiles       = errors.New("no data files listed to load")
	ErrBadArraySize      = errors.New("array size must be positive")
	ErrUnknownProbe      = errors.New("unknown probe algorithm")
	ErrBadDelimiter      = errors.New("delimiter must be a single byte")
	ErrUnknownFormat     = errors.New("unknown log format")
	ErrUnknownPrintStyle = errors.New("unknown print style")
)

// ----------------------------------------------------
// Driver defaults
// ----------------------------------------------------

const (
	DefaultArraySize     = 100
	DefaultHashPrimary   = "sum"
	DefaultHashSecondary = "len"
	DefaultProbe         = "lin"
	DefaultDelimiter     = ":"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultPrintStyle    = "dump"
	EnvPrefix            = "KVTRIE_"
	EnvConfigPath        = "KVTRIE_CONFIG"

	// LineMax is the initial line buffer size of the readers.
	LineMax = 128
	// KeyPrintMax bounds a formatted key in iterator output.
	KeyPrintMax = 128
)

// ----------------------------------------------------
// Accepted option values
// ----------------------------------------------------

// Probes lists the probe names accepted for interface parity with the
// hash-table backend, including the long forms from its usage text.
var Probes = []string{"lin", "linear", "quad", "quadratic", "dbl", "doublehash"}

// PrintStyles lists the -p renderers.
var PrintStyles = []string{"dump", "tree"}

// LogFormats lists the --log-format values.
var LogFormats = []string{"console", "json"}
