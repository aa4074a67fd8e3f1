// Package csv provides pull-stream adapters for CSV encoding and
// decoding. It enables reading and writing CSV data as stream
// pipelines.
package csv

import (
	"encoding/csv"
	"io"

	"github.com/lguimbarda/min-stream/stream"
)

// ReaderOption configures a CSV record reader.
type ReaderOption func(*Reader)

// WithComma sets the field delimiter (default is ',').
func WithComma(comma rune) ReaderOption {
	return func(r *Reader) {
		r.cr.Comma = comma
	}
}

// WithComment sets the comment character. Lines beginning with this
// character are ignored.
func WithComment(comment rune) ReaderOption {
	return func(r *Reader) {
		r.cr.Comment = comment
	}
}

// WithFieldsPerRecord sets the expected number of fields per record.
// If positive, each record must have exactly that many fields.
// If 0, the number is set to the first record's field count.
// If negative, no check is made and records may have variable fields.
func WithFieldsPerRecord(n int) ReaderOption {
	return func(r *Reader) {
		r.cr.FieldsPerRecord = n
	}
}

// WithLazyQuotes allows lazy quotes in quoted fields.
func WithLazyQuotes(lazy bool) ReaderOption {
	return func(r *Reader) {
		r.cr.LazyQuotes = lazy
	}
}

// WithTrimLeadingSpace trims leading whitespace from fields.
func WithTrimLeadingSpace(trim bool) ReaderOption {
	return func(r *Reader) {
		r.cr.TrimLeadingSpace = trim
	}
}

// WithHeader treats the first row as a header. The header is skipped
// rather than yielded and can be retrieved with Header after the
// first Advance.
func WithHeader() ReaderOption {
	return func(r *Reader) {
		r.skipHeader = true
	}
}

// Records creates an extractor that yields each row of CSV input as a
// string slice. Read failures surface through Err once the extractor
// reports exhaustion.
func Records(r io.Reader, opts ...ReaderOption) *Reader {
	reader := &Reader{cr: csv.NewReader(r)}
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

// Reader walks CSV records one Advance at a time.
type Reader struct {
	cr         *csv.Reader
	skipHeader bool
	header     []string
	current    []string
	started    bool
	done       bool
	err        error
}

func (r *Reader) Advance() bool {
	if r.done {
		return false
	}
	if r.skipHeader {
		r.skipHeader = false
		record, err := r.cr.Read()
		if err != nil {
			r.finish(err)
			return false
		}
		r.header = record
	}
	record, err := r.cr.Read()
	if err != nil {
		r.finish(err)
		return false
	}
	r.current = record
	r.started = true
	return true
}

func (r *Reader) Get() []string {
	if !r.started {
		panic("stream: Get called before a successful Advance")
	}
	return r.current
}

// Clone shares the underlying reader; a CSV walk is single-pass and
// cannot be forked into independent streams.
func (r *Reader) Clone() stream.Extractor[[]string] {
	return r
}

// Err returns the first error encountered while reading. It must be
// checked once Advance has returned false. A clean end of input is
// not an error.
func (r *Reader) Err() error {
	return r.err
}

// Header returns the header row captured by WithHeader. It is nil
// until the first Advance, and nil when WithHeader was not used.
func (r *Reader) Header() []string {
	return r.header
}

func (r *Reader) finish(err error) {
	r.done = true
	if err != io.EOF {
		r.err = err
	}
}

// WriterOption configures a CSV record writer.
type WriterOption func(*csv.Writer)

// WithWriteComma sets the field delimiter for written records.
func WithWriteComma(comma rune) WriterOption {
	return func(w *csv.Writer) {
		w.Comma = comma
	}
}

// WithCRLF terminates written records with \r\n instead of \n.
func WithCRLF(use bool) WriterOption {
	return func(w *csv.Writer) {
		w.UseCRLF = use
	}
}

// Write drains the stream, encoding each record as a CSV row. The
// writer is flushed once the stream is exhausted.
func Write(w io.Writer, s stream.Stream[[]string], opts ...WriterOption) error {
	cw := csv.NewWriter(w)
	for _, opt := range opts {
		opt(cw)
	}
	for record := range s.Values() {
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
