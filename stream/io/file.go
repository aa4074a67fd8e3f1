// Package io provides pull-stream adapters for file and reader I/O.
// It enables reading lines or byte chunks as stream pipelines and
// draining string streams into files and writers.
package io

import (
	"bufio"
	"io"
	"os"

	"github.com/lguimbarda/min-stream/stream"
)

// LineOption configures a line extractor.
type LineOption func(*LineReader)

// WithMaxLineSize raises the maximum line length the extractor will
// accept. Lines longer than the bufio default fail the walk without
// this option.
func WithMaxLineSize(n int) LineOption {
	return func(r *LineReader) {
		r.scanner.Buffer(nil, n)
	}
}

// Lines creates an extractor that yields each line read from r,
// without the trailing newline. Read failures surface through Err
// once the extractor reports exhaustion.
func Lines(r io.Reader, opts ...LineOption) *LineReader {
	lr := &LineReader{scanner: bufio.NewScanner(r)}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// ReadLines creates a line extractor over the file at path. The
// caller owns the returned reader and releases the file with Close.
func ReadLines(path string, opts ...LineOption) (*LineReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	lr := Lines(file, opts...)
	lr.closer = file
	return lr, nil
}

// LineReader walks lines one Advance at a time.
type LineReader struct {
	scanner *bufio.Scanner
	closer  io.Closer
	current string
	started bool
	done    bool
	err     error
}

func (r *LineReader) Advance() bool {
	if r.done {
		return false
	}
	if r.scanner.Scan() {
		r.current = r.scanner.Text()
		r.started = true
		return true
	}
	r.done = true
	r.err = r.scanner.Err()
	return false
}

func (r *LineReader) Get() string {
	if !r.started {
		panic("stream: Get called before a successful Advance")
	}
	return r.current
}

// Clone shares the underlying reader; a line walk is single-pass and
// cannot be forked into independent streams.
func (r *LineReader) Clone() stream.Extractor[string] {
	return r
}

// Err returns the first error encountered while scanning. It must be
// checked once Advance has returned false. A clean end of input is
// not an error.
func (r *LineReader) Err() error {
	return r.err
}

// Close releases the underlying file when the reader was opened with
// ReadLines. Advancing after Close reports exhaustion. Close is safe
// to call more than once, and a no-op for readers over a plain
// io.Reader.
func (r *LineReader) Close() error {
	r.done = true
	if r.closer == nil {
		return nil
	}
	closer := r.closer
	r.closer = nil
	return closer.Close()
}

// DefaultChunkSize is the chunk length used when Chunks is given a
// non-positive size.
const DefaultChunkSize = 32 * 1024

// Chunks creates an extractor that yields successive byte chunks read
// from r. Each chunk is freshly allocated and at most chunkSize bytes
// long. Useful for walking binary or very large inputs without
// loading them entirely into memory.
func Chunks(r io.Reader, chunkSize int) *ChunkReader {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &ChunkReader{r: r, buf: make([]byte, chunkSize)}
}

// ReadChunks creates a chunk extractor over the file at path. The
// caller owns the returned reader and releases the file with Close.
func ReadChunks(path string, chunkSize int) (*ChunkReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	cr := Chunks(file, chunkSize)
	cr.closer = file
	return cr, nil
}

// ChunkReader walks byte chunks one Advance at a time.
type ChunkReader struct {
	r       io.Reader
	buf     []byte
	closer  io.Closer
	pending error
	current []byte
	started bool
	done    bool
	err     error
}

func (c *ChunkReader) Advance() bool {
	if c.done {
		return false
	}
	if c.pending != nil {
		c.finish(c.pending)
		return false
	}
	for {
		n, err := c.r.Read(c.buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, c.buf[:n])
			c.current = chunk
			c.started = true
			if err != nil {
				// A read may return data alongside its error. Yield
				// the chunk now, surface the error on the next call.
				c.pending = err
			}
			return true
		}
		if err != nil {
			c.finish(err)
			return false
		}
		// Zero bytes with a nil error is a permitted no-op read.
	}
}

func (c *ChunkReader) Get() []byte {
	if !c.started {
		panic("stream: Get called before a successful Advance")
	}
	return c.current
}

// Clone shares the underlying reader; a chunk walk is single-pass and
// cannot be forked into independent streams.
func (c *ChunkReader) Clone() stream.Extractor[[]byte] {
	return c
}

// Err returns the first error encountered while reading. It must be
// checked once Advance has returned false. A clean end of input is
// not an error.
func (c *ChunkReader) Err() error {
	return c.err
}

// Close releases the underlying file when the reader was opened with
// ReadChunks. Advancing after Close reports exhaustion. Close is safe
// to call more than once, and a no-op for readers over a plain
// io.Reader.
func (c *ChunkReader) Close() error {
	c.done = true
	if c.closer == nil {
		return nil
	}
	closer := c.closer
	c.closer = nil
	return closer.Close()
}

func (c *ChunkReader) finish(err error) {
	c.done = true
	if err != io.EOF {
		c.err = err
	}
}

// WriteLines drains the stream, writing each string to w followed by
// a newline.
func WriteLines(w io.Writer, s stream.Stream[string]) error {
	bw := bufio.NewWriter(w)
	for line := range s.Values() {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile drains the stream into the file at path, one string per
// line. The file is created if it does not exist, or truncated if it
// does.
func WriteFile(path string, s stream.Stream[string]) error {
	return WriteFileWithOptions(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644, s)
}

// AppendFile drains the stream onto the end of the file at path, one
// string per line.
func AppendFile(path string, s stream.Stream[string]) error {
	return WriteFileWithOptions(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644, s)
}

// WriteFileWithOptions drains the stream into a file opened with the
// given flags and permissions.
func WriteFileWithOptions(path string, flag int, perm os.FileMode, s stream.Stream[string]) error {
	file, err := os.OpenFile(path, flag, perm)
	if err != nil {
		return err
	}
	if err := WriteLines(file, s); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
