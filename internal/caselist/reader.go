// Package caselist reads, sorts and formats dEQP caselist files. A caselist
// is a plain text file with one test case per line; compressed caselists
// (.zst) are transparently decompressed.
package caselist

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/DataDog/zstd"

	"github.com/deqp-tools/dsim/internal/constants"
	"github.com/deqp-tools/dsim/internal/errors"
	"github.com/deqp-tools/dsim/internal/io/pool"
)

// File is an open caselist, wrapping the underlying file handle and, for
// compressed caselists, the decompressor on top of it.
type File struct {
	reader  io.Reader
	closers []io.Closer
	path    string
}

// Open opens a caselist file for reading. Files ending in .zst are
// decompressed on the fly. Any open failure maps to errors.ErrFileAccess
// so that callers can treat "missing", "unreadable" and "is a directory"
// uniformly.
func Open(path string) (*File, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrFileAccess, "%s: %v", path, err)
	}

	if info, err := fd.Stat(); err == nil && info.IsDir() {
		fd.Close()
		return nil, errors.Wrapf(errors.ErrFileAccess, "%s: is a directory", path)
	}

	f := &File{reader: fd, closers: []io.Closer{fd}, path: path}
	if strings.HasSuffix(path, ".zst") {
		z := zstd.NewReader(fd)
		f.reader = z
		f.closers = append([]io.Closer{z}, f.closers...)
	}
	return f, nil
}

// Path returns the path the caselist was opened from.
func (f *File) Path() string {
	return f.path
}

// Close releases the file handle and decompressor.
func (f *File) Close() error {
	merr := errors.NewMultiError()
	for _, c := range f.closers {
		merr.Add(c.Close())
	}
	return merr.ErrorOrNil()
}

// ReadLines reads all lines of the caselist into memory. Line endings are
// stripped; a trailing newline does not produce an empty final line. The
// whole file is materialized before sorting, so a read failure can never
// leave partial output behind.
func (f *File) ReadLines() ([]string, error) {
	return readLines(f.reader, f.path)
}

func readLines(r io.Reader, path string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	buf := pool.GetScannerBuffer()
	defer pool.PutScannerBuffer(buf)
	scanner.Buffer(*buf, constants.MaxLineLength)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(errors.ErrReadFailed, "%s: %v", path, err)
	}
	return lines, nil
}
