package ndjson

import (
	"unicode"
	"unicode/utf8"
)

// EmptyLineHandling controls what the parser does with lines that carry
// no JSON value.
type EmptyLineHandling int

const (
	// ParseAlways hands every line to the decoder, even an empty one.
	// Empty and blank lines then surface as per-line decode errors.
	// This is the default.
	ParseAlways EmptyLineHandling = iota

	// IgnoreEmpty skips lines which contain no bytes at all (after the
	// terminator, including a \r\n terminator, is stripped). No result
	// is produced for a skipped line.
	IgnoreEmpty

	// IgnoreBlank skips lines which are empty or consist solely of
	// whitespace. No result is produced for a skipped line.
	IgnoreBlank
)

// Config controls parser behavior. The zero value is ready to use:
// every line is decoded (ParseAlways) and an unterminated final line is
// still emitted once the source is exhausted.
//
// Config values are immutable. The With methods return a modified copy,
// so a Config can safely be shared between engine instances.
type Config struct {
	emptyLineHandling EmptyLineHandling
	skipRest          bool
}

// WithEmptyLineHandling returns a copy of the config with the given
// handling for lines that contain no JSON value.
func (c Config) WithEmptyLineHandling(h EmptyLineHandling) Config {
	c.emptyLineHandling = h
	return c
}

// WithParseRest returns a copy of the config which controls whether an
// unterminated final line is decoded once the source is exhausted.
// Enabled by default; when disabled, trailing bytes with no terminator
// are silently discarded.
func (c Config) WithParseRest(parse bool) Config {
	c.skipRest = !parse
	return c
}

// EmptyLineHandling returns the configured empty-line handling.
func (c Config) EmptyLineHandling() EmptyLineHandling {
	return c.emptyLineHandling
}

// ParseRest reports whether an unterminated final line is decoded.
func (c Config) ParseRest() bool {
	return !c.skipRest
}

// admit reports whether a line should be handed to the decoder. The
// terminator must already be stripped. admit has no side effects.
func (c Config) admit(line []byte) bool {
	switch c.emptyLineHandling {
	case IgnoreEmpty:
		return len(line) != 0
	case IgnoreBlank:
		return !isBlank(line)
	default:
		return true
	}
}

// isBlank reports whether line consists solely of whitespace. A line
// that is not valid UTF-8 is never blank.
func isBlank(line []byte) bool {
	for len(line) > 0 {
		r, size := utf8.DecodeRune(line)
		if r == utf8.RuneError && size <= 1 {
			return false
		}
		if !unicode.IsSpace(r) {
			return false
		}
		line = line[size:]
	}
	return true
}
