// Package loader reads an input file into an exactly-sized in-memory buffer.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
)

// DefaultMaxFileSize caps the buffer allocation at 64 MiB.
const DefaultMaxFileSize int64 = 64 << 20

var (
	ErrFileNotFound   = errors.New("file not found")
	ErrFileUnreadable = errors.New("file unreadable")
	ErrAllocation     = errors.New("allocation failure")
	ErrShortRead      = errors.New("short read")
)

// Buffer holds the complete contents of one file.
type Buffer struct {
	Path string
	Data []byte
}

// Len returns the number of bytes held, which equals the file size at read time.
func (b Buffer) Len() int {
	return len(b.Data)
}

type Loader struct {
	maxFileSize int64
	log         *slog.Logger
}

// New returns a Loader that refuses files larger than maxFileSize bytes.
// A non-positive maxFileSize selects DefaultMaxFileSize.
func New(maxFileSize int64, log *slog.Logger) *Loader {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}

	return &Loader{
		maxFileSize: maxFileSize,
		log:         log,
	}
}

// Load opens path, measures it by seeking to its end and reads it whole.
func (l *Loader) Load(ctx context.Context, path string) (Buffer, error) {
	select {
	case <-ctx.Done():
		return Buffer{}, ctx.Err()
	default:
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Buffer{}, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return Buffer{}, fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}
	defer func() {
		if err = f.Close(); err != nil {
			l.log.ErrorContext(ctx, "Failed to close input file",
				"error", err,
				"path", path)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return Buffer{}, fmt.Errorf("%w: stat: %w", ErrFileUnreadable, err)
	}
	if !info.Mode().IsRegular() {
		return Buffer{}, fmt.Errorf("%w: %s is not a regular file", ErrFileUnreadable, path)
	}

	data, err := readExact(f, l.maxFileSize)
	if err != nil {
		return Buffer{}, err
	}

	l.log.DebugContext(ctx, "Input file is loaded",
		"path", path,
		"size", len(data))

	return Buffer{Path: path, Data: data}, nil
}

// readExact measures rs with an end-of-stream seek, rewinds it and fills a buffer of exactly
// that size.
func readExact(rs io.ReadSeeker, maxFileSize int64) ([]byte, error) {
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: seek end: %w", ErrFileUnreadable, err)
	}

	if _, err = rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: seek start: %w", ErrFileUnreadable, err)
	}

	if size < 0 || size > maxFileSize {
		return nil, fmt.Errorf("%w: size %d exceeds limit %d", ErrAllocation, size, maxFileSize)
	}

	data := make([]byte, size)

	n, err := io.ReadFull(rs, data)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: read %d of %d bytes", ErrShortRead, n, size)
		}
		return nil, fmt.Errorf("%w: read: %w", ErrFileUnreadable, err)
	}

	return data, nil
}
