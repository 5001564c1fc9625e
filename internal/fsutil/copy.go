package fsutil

import (
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Copy copies the file or directory at source into the target path.
//
// If source is a file and target is an existing directory, source is copied
// into target under its own file name. If source is a file and target is
// anything else, source is copied to exactly the target path, creating
// missing parent directories first. If source is a directory and target is
// not an existing file, the directory and everything under it are copied
// recursively, with each entry's path computed relative to source's parent:
// with source=dir1 and target=dir2, dir1/file ends up at dir2/dir1/file.
// Empty directories are created at the corresponding target location. If
// source is a directory and target is an existing file, Copy fails with
// ErrUnexpectedFile.
//
// Symlinks and other special entries fail with ErrUnsupportedEntry rather
// than being dereferenced. The operation is not transactional: a failure
// partway leaves a partially copied tree. Callers that need atomicity
// should copy into a temporary directory and Rename it into place.
func Copy(source, target string) error {
	sourceInfo, err := os.Lstat(source)
	if err != nil {
		return wrap(OpFileOpen, source, err)
	}

	switch {
	case sourceInfo.Mode().IsRegular():
		targetInfo, statErr := os.Stat(target)
		if statErr == nil && targetInfo.IsDir() {
			slog.Debug("copying into directory", "from", source, "to", target)
			name := filepath.Base(filepath.Clean(source))
			if name == "." || name == ".." || name == string(filepath.Separator) {
				return wrapPair(OpFileCopy, source, target, ErrNoFileName)
			}
			return copyFile(source, filepath.Join(target, name))
		}
		slog.Debug("copying file", "from", source, "to", target)
		if parent := filepath.Dir(target); parent != "" {
			if _, statErr := os.Stat(parent); os.IsNotExist(statErr) {
				if err := CreateDirAll(parent); err != nil {
					return err
				}
			}
		}
		return copyFile(source, target)

	case sourceInfo.IsDir():
		slog.Debug("recursively copying", "from", source, "to", target)
		targetInfo, statErr := os.Stat(target)
		if statErr == nil && targetInfo.Mode().IsRegular() {
			return wrapPair(OpFileCopy, source, target, ErrUnexpectedFile)
		}
		return copyTree(source, target)

	default:
		return wrapPair(OpFileCopy, source, target, ErrUnsupportedEntry)
	}
}

// copyTree copies every entry under source to target, keeping each entry's
// path relative to source's parent directory.
func copyTree(source, target string) error {
	prefix := filepath.Dir(filepath.Clean(source))
	return filepath.WalkDir(source, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return wrap(OpDirRead, path, walkErr)
		}
		rel, err := filepath.Rel(prefix, path)
		if err != nil {
			return wrap(OpDirRead, path, err)
		}
		dest := filepath.Join(target, rel)
		switch {
		case entry.IsDir():
			return CreateDirAll(dest)
		case entry.Type().IsRegular():
			if err := CreateDirAll(filepath.Dir(dest)); err != nil {
				return err
			}
			return copyFile(path, dest)
		default:
			return wrapPair(OpFileCopy, path, dest, ErrUnsupportedEntry)
		}
	})
}

// copyFile copies a single regular file, preserving its permission bits.
// Both paths must already have existing parents.
func copyFile(from, to string) error {
	in, err := os.Open(from)
	if err != nil {
		return wrapPair(OpFileCopy, from, to, err)
	}
	defer func() {
		_ = in.Close()
	}()

	info, err := in.Stat()
	if err != nil {
		return wrapPair(OpFileCopy, from, to, err)
	}
	out, err := os.OpenFile(to, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return wrapPair(OpFileCopy, from, to, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return wrapPair(OpFileCopy, from, to, err)
	}
	if err := out.Close(); err != nil {
		return wrapPair(OpFileCopy, from, to, err)
	}
	return nil
}
