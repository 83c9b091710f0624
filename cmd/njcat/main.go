// Package main provides the njcat command line tool. NJCat reads
// NDJSON streams from files or stdin, validates every line, and
// re-emits the records to stdout.
//
// Key features:
// - Transparent decompression of .gz and .zst input files
// - Compact or pretty-printed output
// - Malformed lines are reported and skipped, never abort the run
// - Configurable handling of empty and blank lines
// - CPU profiling support
//
// NJCat is useful for normalizing NDJSON logs before further
// processing, and as a quick validity check: the exit status reports
// whether every line decoded cleanly.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/njstream/ndjson"
	"github.com/njstream/ndjson/internal/config"
	"github.com/njstream/ndjson/internal/dlog"
	"github.com/njstream/ndjson/internal/io/fs"
	"github.com/njstream/ndjson/internal/version"
)

func main() {
	var args config.Args
	var displayVersion bool
	var cpuprofile string

	flag.StringVar(&args.Files, "files", "", "File(s) to read, comma separated (empty: stdin)")
	flag.BoolVar(&args.SkipEmpty, "skipEmpty", false, "Skip empty lines instead of reporting them")
	flag.BoolVar(&args.SkipBlank, "skipBlank", false, "Skip whitespace-only lines instead of reporting them")
	flag.BoolVar(&args.KeepRest, "keepRest", true, "Decode an unterminated trailing line")
	flag.BoolVar(&args.Pretty, "pretty", false, "Indent each record")
	flag.BoolVar(&args.Quiet, "quiet", false, "Suppress per-line diagnostics")
	flag.IntVar(&args.ChunkSize, "chunkSize", config.DefaultChunkSize, "Read chunk size in bytes")
	flag.StringVar(&args.LogLevel, "logLevel", config.DefaultLogLevel, "Log level (error, warn, info, debug)")
	flag.BoolVar(&displayVersion, "version", false, "Display version")
	flag.StringVar(&cpuprofile, "cpuprofile", "", "Write CPU profile to file")

	flag.Parse()

	if displayVersion {
		version.PrintAndExit()
	}

	if err := dlog.SetLevel(args.LogLevel); err != nil {
		dlog.Error(err)
		os.Exit(2)
	}
	if err := config.Setup(&args); err != nil {
		dlog.Error(err)
		os.Exit(2)
	}

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer pprof.StopCPUProfile()
	}

	os.Exit(run(&args))
}

// run processes all input files and returns the exit code: 0 when every
// line decoded, 1 when any line failed to decode, 2 on I/O errors.
func run(args *config.Args) int {
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	exitCode := 0
	var total, failed uint64

	for _, path := range args.FileList() {
		fileTotal, fileFailed, err := catFile(args, path, out)
		total += fileTotal
		failed += fileFailed
		if err != nil {
			dlog.Error(displayPath(path), err)
			exitCode = 2
		}
	}

	dlog.Info("processed", fmt.Sprintf("records=%d failed=%d", total, failed))

	if exitCode == 0 && failed > 0 {
		exitCode = 1
	}
	return exitCode
}

// catFile streams one input file. Decode failures are counted and
// skipped; a read failure aborts the file since the source would keep
// failing on every retry.
func catFile(args *config.Args, path string, out *bufio.Writer) (total, failed uint64, err error) {
	in, err := fs.OpenRead(path)
	if err != nil {
		return 0, 0, err
	}
	defer in.Close()

	src := ndjson.NewReaderSource(in, args.ChunkSize)
	sc := ndjson.NewFallibleScanner[json.RawMessage](src, args.ParserConfig())

	for rec, itemErr := range sc.All() {
		if itemErr != nil {
			var inputErr *ndjson.InputError
			if errors.As(itemErr, &inputErr) {
				return total, failed, inputErr.Err
			}
			total++
			failed++
			if !args.Quiet {
				dlog.Warn(displayPath(path), itemErr)
			}
			continue
		}
		total++
		if err := writeRecord(out, rec, args.Pretty); err != nil {
			return total, failed, err
		}
	}

	return total, failed, nil
}

// writeRecord re-emits one record, compact by default.
func writeRecord(out io.Writer, rec json.RawMessage, pretty bool) error {
	var buf bytes.Buffer

	if pretty {
		if err := json.Indent(&buf, rec, "", "  "); err != nil {
			return err
		}
	} else {
		if err := json.Compact(&buf, rec); err != nil {
			return err
		}
	}
	buf.WriteByte('\n')

	_, err := out.Write(buf.Bytes())
	return err
}

func displayPath(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}
