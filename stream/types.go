// Package stream provides a lazy, composable, pull-based sequence
// processing API. A Stream wraps a chain of extractors that is only
// evaluated element by element when a terminal operation pulls values
// out; building a pipeline does no work and buffers nothing.
//
// This package is the primary user-facing API. Most users should only
// need to import this package. The stream/core subpackage contains the
// extractor protocol that adapters and custom sources implement.
package stream

import (
	"github.com/lguimbarda/min-stream/stream/core"
)

// Extractor is re-exported from core so that custom sources can be
// written without importing core directly.
type Extractor[T any] = core.Extractor[T]
