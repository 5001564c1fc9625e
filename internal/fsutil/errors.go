package fsutil

import (
	"errors"
	"fmt"
)

// Op identifies the filesystem operation that failed.
type Op string

// Operation kinds carried by FileError.
const (
	OpFileOpen   Op = "open file"
	OpFileCreate Op = "create file"
	OpFileRead   Op = "read file"
	OpFileWrite  Op = "write file"
	OpFileRemove Op = "remove file"
	OpFileCopy   Op = "copy file"
	OpDirRead    Op = "read directory"
	OpDirCreate  Op = "create directory"
	OpDirRemove  Op = "remove directory"
	OpRename     Op = "rename"
	OpTempFile   Op = "create temporary file"
	OpLock       Op = "lock path"
	OpWrite      Op = "write"
)

// Sentinels for failures that are not plain OS errors. Callers match these
// with errors.Is to render precise diagnostics instead of opaque I/O errors.
var (
	// ErrNoFileName reports a source path with no file name component,
	// such as a filesystem root.
	ErrNoFileName = errors.New("path has no file name component")

	// ErrUnexpectedFile reports a file found where a directory was required.
	ErrUnexpectedFile = errors.New("expected a directory, found a file")

	// ErrUnsupportedEntry reports a symlink or other special entry in a
	// copy source. These are not dereferenced or skipped silently.
	ErrUnsupportedEntry = errors.New("unsupported directory entry")
)

// FileError is the structured failure returned by every fallible operation
// in this package. It carries the operation kind, the path (and destination
// path for two-path operations) and the underlying error.
type FileError struct {
	Op   Op
	Path string
	// Dest is the destination path for copy and rename operations.
	Dest string
	Err  error
}

func (e *FileError) Error() string {
	if e.Dest != "" {
		return fmt.Sprintf("failed to %s %s -> %s: %v", e.Op, e.Path, e.Dest, e.Err)
	}
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// wrap builds a single-path FileError.
func wrap(op Op, path string, err error) *FileError {
	return &FileError{Op: op, Path: path, Err: err}
}

// wrapPair builds a two-path FileError for copy and rename failures.
func wrapPair(op Op, from, to string, err error) *FileError {
	return &FileError{Op: op, Path: from, Dest: to, Err: err}
}
