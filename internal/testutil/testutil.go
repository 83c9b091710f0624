// Package testutil provides shared helpers for NJStream tests:
// lightweight assertions, temporary fixture files, and NDJSON test data
// generation in plain, gzip, and zstd form.
package testutil

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/DataDog/zstd"
)

// AssertNoError checks that an error is nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
}

// AssertError checks that an error is not nil and contains the expected
// substring.
func AssertError(t *testing.T, err error, contains string) {
	t.Helper()

	if err == nil {
		t.Errorf("expected error containing %q, got nil", contains)
		return
	}

	if !strings.Contains(err.Error(), contains) {
		t.Errorf("expected error containing %q, got %q", contains, err.Error())
	}
}

// AssertEqual checks that two comparable values are equal.
func AssertEqual[V comparable](t *testing.T, expected, actual V) {
	t.Helper()

	if expected != actual {
		t.Errorf("expected %v, got %v", expected, actual)
	}
}

// TempFile creates a temporary file with the given content and returns
// its path. The file is cleaned up when the test ends.
func TempFile(t *testing.T, suffix, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "njstream-test-*"+suffix)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		t.Fatalf("failed to write to temp file: %v", err)
	}

	if err := tmpfile.Close(); err != nil {
		os.Remove(tmpfile.Name())
		t.Fatalf("failed to close temp file: %v", err)
	}

	t.Cleanup(func() {
		os.Remove(tmpfile.Name())
	})

	return tmpfile.Name()
}

// TempFileGz is like TempFile but gzip-compresses the content. The
// returned path ends in .gz.
func TempFileGz(t *testing.T, content string) string {
	t.Helper()

	return tempFileCompressed(t, ".gz", content, func(w io.Writer) io.WriteCloser {
		return gzip.NewWriter(w)
	})
}

// TempFileZst is like TempFile but zstd-compresses the content. The
// returned path ends in .zst.
func TempFileZst(t *testing.T, content string) string {
	t.Helper()

	return tempFileCompressed(t, ".zst", content, func(w io.Writer) io.WriteCloser {
		return zstd.NewWriterLevel(w, zstd.DefaultCompression)
	})
}

func tempFileCompressed(t *testing.T, suffix, content string,
	newWriter func(io.Writer) io.WriteCloser) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "njstream-test-*"+suffix)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	w := newWriter(tmpfile)
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("failed to write compressed temp file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close compression writer: %v", err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatalf("failed to close temp file: %v", err)
	}

	t.Cleanup(func() {
		os.Remove(tmpfile.Name())
	})

	return tmpfile.Name()
}

// GenerateNDJSON generates count NDJSON records of the form
// {"key":i,"value":i*2}, one per line, newline-terminated.
func GenerateNDJSON(count int) string {
	var builder strings.Builder

	for i := 0; i < count; i++ {
		builder.WriteString(fmt.Sprintf("{\"key\":%d,\"value\":%d}\n", i, i*2))
	}

	return builder.String()
}
