// Package x_reader reads "key<delim>value" data lines and plain key lines.
//
// Both fields are stripped of leading and trailing blanks and non-printable
// bytes; interior bytes are kept as they are.
package x_reader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/rskv-p/kvtrie/constant"
)

// ErrMissingDelimiter marks a data line without the delimiter byte.
var ErrMissingDelimiter = errors.New("line does not contain delimiter")

// LineError reports a malformed input line.
type LineError struct {
	Line  int
	Text  string
	Delim byte
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v '%c': '%s'", e.Line, e.Err, e.Delim, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }

// Stats counts what a Reader has consumed so far.
type Stats struct {
	Lines   int // physical lines scanned
	Records int // lines returned to the caller
	Blank   int // lines skipped as empty after stripping
	Errors  int // malformed lines
}

// Reader scans one line-oriented input.
type Reader struct {
	sc    *bufio.Scanner
	delim byte
	stats Stats
}

// Option configures a Reader.
type Option func(*Reader)

// WithDelimiter sets the key/value separator (default ':').
func WithDelimiter(d byte) Option {
	return func(r *Reader) { r.delim = d }
}

// NewReader wraps r.
func NewReader(r io.Reader, opts ...Option) *Reader {
	rd := &Reader{
		sc:    bufio.NewScanner(r),
		delim: constant.DefaultDelimiter[0],
	}
	rd.sc.Buffer(make([]byte, 0, constant.LineMax), bufio.MaxScanTokenSize)
	for _, opt := range opts {
		opt(rd)
	}
	return rd
}

// Stats returns the counters accumulated so far.
func (r *Reader) Stats() Stats { return r.stats }

// Line returns the number of the last line scanned.
func (r *Reader) Line() int { return r.stats.Lines }

// next returns the next non-blank line, stripped. The returned slice is
// only valid until the following call.
func (r *Reader) next() ([]byte, error) {
	for r.sc.Scan() {
		r.stats.Lines++
		line := r.sc.Bytes()
		if len(Strip(line)) == 0 {
			r.stats.Blank++
			continue
		}
		return line, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", r.stats.Lines+1, err)
	}
	return nil, io.EOF
}

// ReadData returns the next key/value pair. A line without the delimiter
// yields a *LineError; the caller may keep reading past it.
func (r *Reader) ReadData() (key, value string, err error) {
	line, err := r.next()
	if err != nil {
		return "", "", err
	}

	i := bytes.IndexByte(line, r.delim)
	if i < 0 {
		r.stats.Errors++
		return "", "", &LineError{
			Line:  r.stats.Lines,
			Text:  string(Strip(line)),
			Delim: r.delim,
			Err:   ErrMissingDelimiter,
		}
	}

	r.stats.Records++
	return string(Strip(line[:i])), string(Strip(line[i+1:])), nil
}

// ReadPlain returns the next stripped line.
func (r *Reader) ReadPlain() (string, error) {
	line, err := r.next()
	if err != nil {
		return "", err
	}
	r.stats.Records++
	return string(Strip(line)), nil
}

//---------------------
// Stripping
//---------------------

// dataByte reports whether c is kept at the edges of a field.
func dataByte(c byte) bool {
	return c > ' ' && c <= '~'
}

// Strip trims blanks and non-printable bytes from both ends of s.
func Strip(s []byte) []byte {
	i, j := 0, len(s)
	for i < j && !dataByte(s[i]) {
		i++
	}
	for j > i && !dataByte(s[j-1]) {
		j--
	}
	return s[i:j]
}
