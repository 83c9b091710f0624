package ndjson

import "bytes"

// lineBuffer assembles complete lines from arbitrarily sized chunks.
// The partial line at the end of one chunk is carried over until a later
// chunk completes it, so chunk boundaries never have to align with line
// boundaries. Lines are terminated by \n or \r\n; a lone \r is ordinary
// line content.
type lineBuffer struct {
	pending []byte
}

// feed appends chunk to the pending bytes and calls emit once per
// complete line found, in order, with the terminator stripped. The slice
// passed to emit is only valid until emit returns. Bytes after the last
// terminator stay pending; consumed bytes are dropped.
func (b *lineBuffer) feed(chunk []byte, emit func(line []byte)) {
	for {
		idx := bytes.IndexByte(chunk, '\n')
		if idx < 0 {
			break
		}
		line := chunk[:idx]
		if len(b.pending) > 0 {
			b.pending = append(b.pending, line...)
			line = b.pending
		}
		emit(trimCR(line))
		b.pending = b.pending[:0]
		chunk = chunk[idx+1:]
	}
	b.pending = append(b.pending, chunk...)
}

// flush hands out the unterminated tail left once the source is
// exhausted. ok is false when there is no tail. The buffer is empty
// afterwards, so a second flush yields nothing.
func (b *lineBuffer) flush() (line []byte, ok bool) {
	if len(b.pending) == 0 {
		return nil, false
	}
	line = trimCR(b.pending)
	b.pending = nil
	return line, true
}

// trimCR strips a single trailing carriage return so that \r\n and \n
// terminators produce identical line content.
func trimCR(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}
