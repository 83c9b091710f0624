package ndjson

import (
	"errors"
	"io"
	"iter"
)

// FallibleScanner pulls NDJSON records from a FallibleSource. Results
// come out strictly in line order; one call to Next may consume any
// number of chunks before a single line is complete. A scanner is owned
// by one consumption session and must not be pulled concurrently.
type FallibleScanner[T any] struct {
	eng  *Engine[T]
	src  FallibleSource
	done bool
}

// NewFallibleScanner creates a scanner over src decoding records with
// encoding/json.
func NewFallibleScanner[T any](src FallibleSource, cfg Config) *FallibleScanner[T] {
	return &FallibleScanner[T]{eng: NewEngine[T](cfg), src: src}
}

// NewFallibleScannerFunc creates a scanner over src with a
// caller-supplied decoder.
func NewFallibleScannerFunc[T any](src FallibleSource, cfg Config, decode DecodeFunc[T]) *FallibleScanner[T] {
	return &FallibleScanner[T]{eng: NewEngineFunc[T](cfg, decode), src: src}
}

// Next returns the next result in line order. ok is false once the
// source is exhausted and the final line, if any, has been delivered;
// after that every call yields ok=false. A non-nil err reports one
// failed item, either a *DecodeError for a bad line or an *InputError
// for a failed read, and the sequence continues on the following call.
// Lines buffered before a read failure are always delivered before the
// failure is reported.
func (s *FallibleScanner[T]) Next() (rec T, ok bool, err error) {
	for {
		if res, queued := s.eng.Pop(); queued {
			return res.Record, true, res.Err
		}
		if s.done {
			var zero T
			return zero, false, nil
		}
		chunk, err := s.src.Next()
		switch {
		case err == nil:
			s.eng.Feed(chunk)
		case errors.Is(err, io.EOF):
			s.done = true
			s.eng.Finalize()
		default:
			var zero T
			return zero, true, &InputError{Err: err}
		}
	}
}

// All returns the remaining results as a single-use range-over-func
// sequence. An item with a non-nil error does not end the iteration.
func (s *FallibleScanner[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			rec, ok, err := s.Next()
			if !ok {
				return
			}
			if !yield(rec, err) {
				return
			}
		}
	}
}

// Scanner pulls NDJSON records from an infallible Source. It is a thin
// layer over FallibleScanner with a source that cannot fail, so Next
// only ever reports *DecodeError items.
type Scanner[T any] struct {
	inner FallibleScanner[T]
}

// NewScanner creates a scanner over src decoding records with
// encoding/json.
func NewScanner[T any](src Source, cfg Config) *Scanner[T] {
	return &Scanner[T]{inner: FallibleScanner[T]{eng: NewEngine[T](cfg), src: infallible{src}}}
}

// NewScannerFunc creates a scanner over src with a caller-supplied
// decoder.
func NewScannerFunc[T any](src Source, cfg Config, decode DecodeFunc[T]) *Scanner[T] {
	return &Scanner[T]{inner: FallibleScanner[T]{eng: NewEngineFunc[T](cfg, decode), src: infallible{src}}}
}

// Next returns the next result in line order; see FallibleScanner.Next.
func (s *Scanner[T]) Next() (rec T, ok bool, err error) {
	return s.inner.Next()
}

// All returns the remaining results as a single-use range-over-func
// sequence; see FallibleScanner.All.
func (s *Scanner[T]) All() iter.Seq2[T, error] {
	return s.inner.All()
}

// FromSlices parses the given chunks in order.
func FromSlices[T any](chunks [][]byte, cfg Config) *Scanner[T] {
	return NewScanner[T](&sliceSource{chunks: chunks}, cfg)
}

// FromStrings parses the given string chunks in order.
func FromStrings[T any](chunks []string, cfg Config) *Scanner[T] {
	return NewScanner[T](&stringSource{chunks: chunks}, cfg)
}

// FromReader parses r, reading chunks of DefaultChunkSize. Read errors
// surface as *InputError items.
func FromReader[T any](r io.Reader, cfg Config) *FallibleScanner[T] {
	return NewFallibleScanner[T](NewReaderSource(r, 0), cfg)
}
