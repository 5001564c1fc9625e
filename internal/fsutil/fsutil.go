// Package fsutil wraps the standard library's filesystem operations with a
// structured error taxonomy and provides the recursive copy engine used to
// apply exercise template updates.
package fsutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// OpenFile opens the file at path for reading.
func OpenFile(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, wrap(OpFileOpen, path, err)
	}
	return file, nil
}

// ReadFile reads the entire file at path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(OpFileRead, path, err)
	}
	return data, nil
}

// ReadFileString reads the entire file at path as a string.
func ReadFileString(path string) (string, error) {
	data, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// CreateFile creates or truncates the file at path, creating all missing
// parent directories first.
func CreateFile(path string) (*os.File, error) {
	if parent := filepath.Dir(path); parent != "" {
		if _, err := os.Stat(parent); os.IsNotExist(err) {
			if err := CreateDirAll(parent); err != nil {
				return nil, err
			}
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, wrap(OpFileCreate, path, err)
	}
	return file, nil
}

// WriteFile writes data to a new file at target, creating parent
// directories as needed.
func WriteFile(target string, data []byte) error {
	file, err := CreateFile(target)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(data); err != nil {
		return wrap(OpFileWrite, target, err)
	}
	return nil
}

// WriteTo writes data into the given writer.
func WriteTo(data []byte, target io.Writer) error {
	if _, err := target.Write(data); err != nil {
		return &FileError{Op: OpWrite, Err: err}
	}
	return nil
}

// ReadTo reads all of source and writes it into a new file at target.
func ReadTo(source io.Reader, target string) error {
	file, err := CreateFile(target)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := io.Copy(file, source); err != nil {
		return wrap(OpFileWrite, target, err)
	}
	return nil
}

// RemoveFile removes the file at path.
func RemoveFile(path string) error {
	if err := os.Remove(path); err != nil {
		return wrap(OpFileRemove, path, err)
	}
	return nil
}

// ReadDir reads the directory at path and returns its entries.
func ReadDir(path string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, wrap(OpDirRead, path, err)
	}
	return entries, nil
}

// CreateDir creates the directory at path. The parent must exist.
func CreateDir(path string) error {
	if err := os.Mkdir(path, 0o755); err != nil {
		return wrap(OpDirCreate, path, err)
	}
	return nil
}

// CreateDirAll creates the directory at path along with any missing parents.
func CreateDirAll(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return wrap(OpDirCreate, path, err)
	}
	return nil
}

// RemoveDirEmpty removes the directory at path, which must be empty.
func RemoveDirEmpty(path string) error {
	if err := os.Remove(path); err != nil {
		return wrap(OpDirRemove, path, err)
	}
	return nil
}

// RemoveDirAll removes the directory at path and everything under it.
func RemoveDirAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return wrap(OpDirRemove, path, err)
	}
	return nil
}

// Rename renames from to to.
func Rename(from, to string) error {
	if err := os.Rename(from, to); err != nil {
		return wrapPair(OpRename, from, to, err)
	}
	return nil
}

// TempFile creates a new temporary file in the default temp directory.
func TempFile() (*os.File, error) {
	file, err := os.CreateTemp("", "tmc-langs-*")
	if err != nil {
		return nil, &FileError{Op: OpTempFile, Err: err}
	}
	slog.Debug("created temporary file", "path", file.Name())
	return file, nil
}

// TempDir creates a new temporary directory in the default temp directory.
// Callers typically stage a full update tree here and rename it into place.
func TempDir() (string, error) {
	dir, err := os.MkdirTemp("", "tmc-langs-*")
	if err != nil {
		return "", &FileError{Op: OpTempFile, Err: err}
	}
	slog.Debug("created temporary directory", "path", dir)
	return dir, nil
}
