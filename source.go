package ndjson

import (
	"context"
	"io"
)

// DefaultChunkSize is the read size used by ReaderSource when none is
// given.
const DefaultChunkSize = 64 * 1024

// Source produces chunks of raw bytes on demand. Chunk boundaries carry
// no meaning; a chunk may end mid-line or mid-character. A returned
// chunk is only valid until the next call.
type Source interface {
	// Next returns the next chunk, or ok=false once the source is
	// exhausted.
	Next() (chunk []byte, ok bool)
}

// FallibleSource is a chunk source whose reads can fail. Next returns
// io.EOF once the source is exhausted; any other error is surfaced by
// FallibleScanner as an *InputError item without ending the sequence,
// and the source is asked again on the following pull.
type FallibleSource interface {
	Next() (chunk []byte, err error)
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc func() ([]byte, bool)

// Next implements Source.
func (f SourceFunc) Next() ([]byte, bool) {
	return f()
}

// FallibleSourceFunc adapts a plain function to the FallibleSource
// interface.
type FallibleSourceFunc func() ([]byte, error)

// Next implements FallibleSource.
func (f FallibleSourceFunc) Next() ([]byte, error) {
	return f()
}

// infallible lifts a Source into the FallibleSource shape so that the
// plain and fallible scanners can share one pull loop.
type infallible struct {
	src Source
}

func (a infallible) Next() ([]byte, error) {
	chunk, ok := a.src.Next()
	if !ok {
		return nil, io.EOF
	}
	return chunk, nil
}

type sliceSource struct {
	chunks [][]byte
}

func (s *sliceSource) Next() ([]byte, bool) {
	if len(s.chunks) == 0 {
		return nil, false
	}
	chunk := s.chunks[0]
	s.chunks = s.chunks[1:]
	return chunk, true
}

type stringSource struct {
	chunks []string
}

func (s *stringSource) Next() ([]byte, bool) {
	if len(s.chunks) == 0 {
		return nil, false
	}
	chunk := s.chunks[0]
	s.chunks = s.chunks[1:]
	return []byte(chunk), true
}

// ReaderSource reads fixed-size chunks from an io.Reader. An error
// returned by a read that also produced data is held back and reported
// on the following call, so no bytes are lost ahead of the error.
type ReaderSource struct {
	r   io.Reader
	buf []byte
	err error
}

// NewReaderSource creates a ReaderSource reading chunks of up to
// chunkSize bytes. chunkSize <= 0 selects DefaultChunkSize.
func NewReaderSource(r io.Reader, chunkSize int) *ReaderSource {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &ReaderSource{r: r, buf: make([]byte, chunkSize)}
}

// Next implements FallibleSource. The returned chunk is only valid
// until the next call.
func (s *ReaderSource) Next() ([]byte, error) {
	if err := s.err; err != nil {
		s.err = nil
		return nil, err
	}
	for {
		n, err := s.r.Read(s.buf)
		if n > 0 {
			s.err = err
			return s.buf[:n], nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// ChanSource receives chunks from a channel, for feeding a scanner from
// a producing goroutine. The channel receive is the single blocking
// point; everything downstream of it runs synchronously. A closed
// channel ends the stream normally. Once ctx is canceled every
// subsequent read fails with the context's error, so a consumer that
// keeps pulling keeps seeing *InputError items until it stops.
type ChanSource struct {
	ctx context.Context
	ch  <-chan []byte
}

// NewChanSource creates a ChanSource reading from ch until it is closed
// or ctx is canceled.
func NewChanSource(ctx context.Context, ch <-chan []byte) *ChanSource {
	return &ChanSource{ctx: ctx, ch: ch}
}

// Next implements FallibleSource.
func (s *ChanSource) Next() ([]byte, error) {
	select {
	case chunk, ok := <-s.ch:
		if !ok {
			return nil, io.EOF
		}
		return chunk, nil
	case <-s.ctx.Done():
		return nil, s.ctx.Err()
	}
}
