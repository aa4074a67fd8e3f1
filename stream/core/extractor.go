// package core defines the extractor protocol for pull-based stream
// processing. An extractor chain composes adapters into a single flat
// walk over a source: terminal operations call Advance and Get on the
// outermost adapter, the calls recurse down to the root, and elements
// flow back up transformed. No adapter buffers more than the current
// element.
//
// NOTE: this package should have no dependencies outside the standard
// library, including other stream packages.
package core

// Extractor is the minimal pull capability underlying every pipeline
// stage. It answers two questions: "is there another element?" (Advance)
// and "what is the current element?" (Get).
//
// Advance attempts to move to the next logical element and reports
// whether an element is now available. Advance is idempotent on
// exhaustion: once it has returned false, every subsequent call also
// returns false without re-triggering side effects.
//
// Get returns the current element by value. It is valid only after an
// Advance call that returned true and before the next Advance call.
// Calling Get before the first successful Advance is a contract
// violation; root extractors panic. After Advance has returned false,
// Get returns the last yielded element.
//
// Clone returns an extractor positioned at the same element whose
// advancement does not affect the original. Extractors over replayable
// state (slices, ranges, counters) clone independently; extractors over
// single-pass state (generator functions, iter.Seq pulls, external
// readers) share the underlying source, and say so in their docs.
type Extractor[T any] interface {
	Advance() bool
	Get() T
	Clone() Extractor[T]
}
