// Package json provides pull-stream adapters for JSON encoding and
// decoding. It enables parsing JSON data as stream pipelines.
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lguimbarda/min-stream/stream"
)

// Values creates an extractor that decodes a sequence of JSON
// documents from r, newline-delimited or concatenated. Decode
// failures surface through Err once the extractor reports exhaustion.
func Values[T any](r io.Reader) *Decoder[T] {
	return &Decoder[T]{dec: json.NewDecoder(r)}
}

// Array creates an extractor that reads a single top-level JSON array
// from r and yields each element. Anything other than an array at the
// top level is reported through Err.
func Array[T any](r io.Reader) *Decoder[T] {
	return &Decoder[T]{dec: json.NewDecoder(r), array: true}
}

// Decoder walks JSON values one Advance at a time.
type Decoder[T any] struct {
	dec     *json.Decoder
	array   bool
	opened  bool
	current T
	started bool
	done    bool
	err     error
}

func (d *Decoder[T]) Advance() bool {
	if d.done {
		return false
	}
	if d.array {
		if !d.opened && !d.openArray() {
			return false
		}
		if !d.dec.More() {
			d.done = true
			// Consume the closing bracket.
			if _, err := d.dec.Token(); err != nil && err != io.EOF {
				d.err = err
			}
			return false
		}
	}
	var value T
	if err := d.dec.Decode(&value); err != nil {
		d.done = true
		if err != io.EOF {
			d.err = err
		}
		return false
	}
	d.current = value
	d.started = true
	return true
}

func (d *Decoder[T]) openArray() bool {
	d.opened = true
	token, err := d.dec.Token()
	if err != nil {
		d.done = true
		if err != io.EOF {
			d.err = err
		}
		return false
	}
	if delim, ok := token.(json.Delim); !ok || delim != '[' {
		d.done = true
		d.err = fmt.Errorf("json: expected an array, found %v", token)
		return false
	}
	return true
}

func (d *Decoder[T]) Get() T {
	if !d.started {
		panic("stream: Get called before a successful Advance")
	}
	return d.current
}

// Clone shares the underlying decoder; a JSON walk is single-pass and
// cannot be forked into independent streams.
func (d *Decoder[T]) Clone() stream.Extractor[T] {
	return d
}

// Err returns the first error encountered while decoding. It must be
// checked once Advance has returned false. A clean end of input is
// not an error.
func (d *Decoder[T]) Err() error {
	return d.err
}

// Write drains the stream, encoding each element as one JSON document
// per line.
func Write[T any](w io.Writer, s stream.Stream[T]) error {
	enc := json.NewEncoder(w)
	for v := range s.Values() {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}
