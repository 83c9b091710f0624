package ndjson

// Result is one queued engine outcome: either a decoded record or the
// error belonging to its line.
type Result[T any] struct {
	Record T
	Err    error // nil, or a *DecodeError for this line
}

// Engine is the low-level NDJSON parser. Chunks go in through Feed,
// per-line results come out of an internal queue through Pop, and
// Finalize deals with an unterminated final line once input has ended.
//
// An Engine belongs to a single consumption session and must not be
// used from multiple goroutines. Most callers want a Scanner or
// FallibleScanner instead, which drive the engine with a pull loop.
type Engine[T any] struct {
	buf    lineBuffer
	out    []Result[T]
	cfg    Config
	decode DecodeFunc[T]
	lineNo uint64
}

// NewEngine creates an engine decoding records of type T with
// encoding/json.
func NewEngine[T any](cfg Config) *Engine[T] {
	return NewEngineFunc[T](cfg, JSONDecode[T]())
}

// NewEngineFunc creates an engine with a caller-supplied decoder.
func NewEngineFunc[T any](cfg Config, decode DecodeFunc[T]) *Engine[T] {
	return &Engine[T]{cfg: cfg, decode: decode}
}

// Feed parses chunk as NDJSON, queueing one result per complete line.
// Bytes after the last terminator are kept until a later chunk or
// Finalize completes the line. The chunk itself is not retained; the
// caller may reuse it once Feed returns.
func (e *Engine[T]) Feed(chunk []byte) {
	e.buf.feed(chunk, func(line []byte) {
		e.lineNo++
		if e.cfg.admit(line) {
			e.push(line)
		}
	})
}

// Finalize flushes the line buffer after the source is exhausted. A
// non-empty unterminated tail is decoded as one final line, subject to
// the configured empty-line handling and Config.WithParseRest. The
// pending bytes are discarded either way, so Finalize is idempotent.
//
// Calling Feed after Finalize starts the next line from a clean buffer
// and may therefore drop data; drivers call Finalize exactly once.
func (e *Engine[T]) Finalize() {
	rest, ok := e.buf.flush()
	if !ok || e.cfg.skipRest {
		return
	}
	// The rest is only a line by convention, not by terminator, so an
	// empty rest is never decoded even under ParseAlways.
	cfg := e.cfg
	if cfg.emptyLineHandling == ParseAlways {
		cfg.emptyLineHandling = IgnoreEmpty
	}
	e.lineNo++
	if cfg.admit(rest) {
		e.push(rest)
	}
}

// Pop removes and returns the next queued result. ok is false when the
// queue is empty, which only means more input is needed, not that the
// stream is done.
func (e *Engine[T]) Pop() (res Result[T], ok bool) {
	if len(e.out) == 0 {
		return Result[T]{}, false
	}
	res = e.out[0]
	e.out = e.out[1:]
	return res, true
}

func (e *Engine[T]) push(line []byte) {
	v, err := e.decode(line)
	if err != nil {
		err = &DecodeError{Line: e.lineNo, Err: err}
	}
	e.out = append(e.out, Result[T]{Record: v, Err: err})
}
