// Package fs provides file access for the NJStream command line tools,
// with transparent decompression of gzip and zstd compressed NDJSON
// files based on their extension.
package fs

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/DataDog/zstd"
)

// OpenRead opens path for reading. Files ending in .gz or .zst are
// decompressed on the fly. An empty path means stdin; closing the
// returned reader then leaves stdin itself open.
func OpenRead(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, err
		}
		return &compositeCloser{r: gz, c: file}, nil
	case ".zst":
		return &compositeCloser{r: zstd.NewReader(file), c: file}, nil
	default:
		return file, nil
	}
}

// compositeCloser closes the decompressor first, then the underlying
// file.
type compositeCloser struct {
	r io.ReadCloser
	c io.Closer
}

func (cc *compositeCloser) Read(p []byte) (int, error) {
	return cc.r.Read(p)
}

func (cc *compositeCloser) Close() error {
	err := cc.r.Close()
	if cerr := cc.c.Close(); err == nil {
		err = cerr
	}
	return err
}
