// Package config holds the command line argument handling for the
// NJStream tools. Flag parsing itself lives in the cmd mains; this
// package owns the Args structure plus normalization and validation.
package config

import (
	"fmt"
	"strings"

	"github.com/njstream/ndjson"
)

// Default values for njcat arguments.
const (
	DefaultLogLevel  = "info"
	DefaultChunkSize = ndjson.DefaultChunkSize
)

// Args holds the command line arguments of njcat.
type Args struct {
	// Files is a comma-separated list of input paths. Empty means
	// stdin. Paths ending in .gz or .zst are decompressed on the fly.
	Files string
	// SkipEmpty drops lines without any content instead of reporting
	// them as decode errors.
	SkipEmpty bool
	// SkipBlank drops whitespace-only lines instead of reporting them
	// as decode errors. Implies SkipEmpty.
	SkipBlank bool
	// KeepRest controls whether an unterminated trailing line is still
	// decoded. Enabled by default.
	KeepRest bool
	// Pretty re-indents each record; the default output is compact.
	Pretty bool
	// Quiet suppresses per-line diagnostics; the error summary is
	// still reported on exit.
	Quiet bool
	// ChunkSize is the read size in bytes.
	ChunkSize int
	// LogLevel selects diagnostic verbosity (error, warn, info, debug).
	LogLevel string
}

// Setup validates and normalizes the parsed arguments.
func Setup(args *Args) error {
	if args.ChunkSize <= 0 {
		return fmt.Errorf("chunk size must be positive, got %d", args.ChunkSize)
	}
	return nil
}

// FileList returns the input paths in order. An empty Files string
// yields one empty path, meaning stdin.
func (a *Args) FileList() []string {
	if a.Files == "" {
		return []string{""}
	}
	var paths []string
	for _, path := range strings.Split(a.Files, ",") {
		path = strings.TrimSpace(path)
		if path != "" {
			paths = append(paths, path)
		}
	}
	if len(paths) == 0 {
		return []string{""}
	}
	return paths
}

// EmptyLineHandling maps the skip flags to the parser option. SkipBlank
// wins over SkipEmpty since blank subsumes empty.
func (a *Args) EmptyLineHandling() ndjson.EmptyLineHandling {
	switch {
	case a.SkipBlank:
		return ndjson.IgnoreBlank
	case a.SkipEmpty:
		return ndjson.IgnoreEmpty
	default:
		return ndjson.ParseAlways
	}
}

// ParserConfig builds the ndjson.Config corresponding to the arguments.
func (a *Args) ParserConfig() ndjson.Config {
	return ndjson.Config{}.
		WithEmptyLineHandling(a.EmptyLineHandling()).
		WithParseRest(a.KeepRest)
}
