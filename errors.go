package ndjson

import "fmt"

// DecodeError reports that a single line could not be decoded. It wraps
// the decoder's own error unchanged and records the 1-based number of
// the offending line. The surrounding sequence continues with the next
// line.
type DecodeError struct {
	Line uint64
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// InputError reports that the chunk source failed to produce a chunk.
// The source's error is wrapped unchanged. No buffered data is lost and
// the surrounding sequence continues; the source is asked again on the
// next pull.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("reading input: %v", e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
