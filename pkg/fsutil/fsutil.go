// Package fsutil provides the file system helpers razorlex needs: reading
// sources with metadata, reading stdin, and atomic writes.
package fsutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// StdinPath is the path argument that selects standard input.
const StdinPath = "-"

// binarySniffLen is how many leading bytes are checked for NUL.
const binarySniffLen = 8000

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrBinary indicates the content is not text.
	ErrBinary = errors.New("binary content")
)

// FileInfo captures the state of a file when it was read.
type FileInfo struct {
	// Path is the path the file was read from, or "-" for stdin.
	Path string

	// Mode is the file's permission and mode bits.
	Mode os.FileMode

	// ModTime is the file's modification time.
	ModTime time.Time

	// Size is the content size in bytes.
	Size int64
}

// ReadFile reads a text file and returns its content along with metadata.
// Files that look binary fail with ErrBinary.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classify(path, "stat", err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, classify(path, "read", err)
	}
	if IsBinary(content) {
		return nil, nil, fmt.Errorf("%w: %s", ErrBinary, path)
	}

	return content, &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
	}, nil
}

// ReadInput reads path, or stdin when path is "-".
func ReadInput(ctx context.Context, path string, stdin io.Reader) ([]byte, *FileInfo, error) {
	if path != StdinPath {
		return ReadFile(ctx, path)
	}

	content, err := io.ReadAll(stdin)
	if err != nil {
		return nil, nil, fmt.Errorf("read stdin: %w", err)
	}
	if IsBinary(content) {
		return nil, nil, fmt.Errorf("%w: stdin", ErrBinary)
	}
	return content, &FileInfo{Path: StdinPath, Size: int64(len(content))}, nil
}

// IsBinary reports whether content has a NUL byte near its start.
func IsBinary(content []byte) bool {
	return bytes.IndexByte(content[:min(len(content), binarySniffLen)], 0) >= 0
}

func classify(path, op string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
}
