// Package x_fasta parses FASTA flat files into records keyed by a short
// identifier.
package x_fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

const (
	MaxIDLen           = 15
	MaxDescriptionLen  = 1024
	RecommendedLineLen = 80
	MaxSequenceLines   = 1024
	MaxSequenceLen     = MaxSequenceLines * RecommendedLineLen
	descriptionMarker  = '>'
	idSeparator        = '|'
)

var (
	ErrNoDescription      = errors.New("x_fasta: record does not start with '>'")
	ErrDescriptionTooLong = errors.New("x_fasta: description line too long")
	ErrNoID               = errors.New("x_fasta: no |id| in description")
	ErrNoSequence         = errors.New("x_fasta: end of file before sequence data")
	ErrSequenceTooLong    = errors.New("x_fasta: sequence too long")
)

// Record is one FASTA entry.
type Record struct {
	ID          string
	Description string
	Sequence    string
}

// Print writes the record in the block format used by the drivers.
func (rec *Record) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "FASTA Record:\nID   [%s]\nDESC [%s]\nSEQ  [%s]\n",
		rec.ID, rec.Description, rec.Sequence)
	return err
}

// ExtractID returns the text between the first two '|' of desc, clipped
// to MaxIDLen bytes.
func ExtractID(desc string) (string, error) {
	first := strings.IndexByte(desc, idSeparator)
	if first < 0 {
		return "", ErrNoID
	}
	rest := desc[first+1:]
	second := strings.IndexByte(rest, idSeparator)
	if second < 0 {
		return "", ErrNoID
	}
	id := rest[:second]
	if len(id) > MaxIDLen {
		id = id[:MaxIDLen]
	}
	return id, nil
}

//---------------------
// Reader
//---------------------

// Reader pulls records off a FASTA stream.
type Reader struct {
	br       *bufio.Reader
	log      zerolog.Logger
	line     int
	records  int
	warnings int
}

// Option configures a Reader.
type Option func(*Reader)

// WithLogger receives the long-line warnings.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Reader) { r.log = l }
}

func NewReader(r io.Reader, opts ...Option) *Reader {
	rd := &Reader{
		br:  bufio.NewReaderSize(r, MaxDescriptionLen+2),
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(rd)
	}
	return rd
}

// Line is the number of lines consumed.
func (r *Reader) Line() int { return r.line }

// Records is the number of records returned.
func (r *Reader) Records() int { return r.records }

// Warnings is the number of over-long sequence lines seen.
func (r *Reader) Warnings() int { return r.warnings }

// Read returns the next record, or io.EOF after the last one.
func (r *Reader) Read() (*Record, error) {
	desc, err := r.description()
	if err != nil {
		return nil, err
	}

	id, err := ExtractID(desc)
	if err != nil {
		return nil, r.wrap(fmt.Errorf("%w: '%s'", err, desc))
	}

	seq, err := r.sequence()
	if err != nil {
		return nil, err
	}

	r.records++
	return &Record{ID: id, Description: desc, Sequence: seq}, nil
}

func (r *Reader) wrap(err error) error {
	return fmt.Errorf("line %d: %w", r.line, err)
}

// description skips blank lines and returns the next '>' line without
// its marker.
func (r *Reader) description() (string, error) {
	for {
		line, err := r.readLine()
		if err != nil {
			return "", err
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if line[0] != descriptionMarker {
			return "", r.wrap(ErrNoDescription)
		}
		if len(line) > MaxDescriptionLen {
			return "", r.wrap(fmt.Errorf("%w: %d bytes, limit %d", ErrDescriptionTooLong, len(line), MaxDescriptionLen))
		}
		return string(line[1:]), nil
	}
}

// sequence joins lines up to the next description or end of input.
func (r *Reader) sequence() (string, error) {
	var (
		seq   []byte
		lines int
	)
	for {
		next, err := r.br.Peek(1)
		if err == io.EOF || (err == nil && next[0] == descriptionMarker) {
			break
		}
		if err != nil {
			return "", r.wrap(err)
		}

		line, err := r.readLine()
		if err != nil {
			return "", r.wrap(err)
		}
		lines++
		if len(line) >= RecommendedLineLen {
			r.warnings++
			r.log.Warn().
				Int("line", r.line).
				Int("length", len(line)).
				Msgf("sequence line longer than %d character recommendation", RecommendedLineLen)
		}
		if len(seq)+len(line) > MaxSequenceLen {
			return "", r.wrap(ErrSequenceTooLong)
		}
		seq = append(seq, line...)
	}
	if lines == 0 {
		return "", r.wrap(ErrNoSequence)
	}
	return string(seq), nil
}

// readLine returns one line without its line ending. A final line without
// a newline is returned as-is; io.EOF only comes with no data.
func (r *Reader) readLine() ([]byte, error) {
	line, err := r.br.ReadBytes('\n')
	if len(line) == 0 && err != nil {
		return nil, err
	}
	if err != nil && err != io.EOF {
		return nil, err
	}
	r.line++
	line = bytes.TrimRight(line, "\r\n")
	return line, nil
}
