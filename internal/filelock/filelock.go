// Package filelock provides an exclusive, blocking lock scoped to a
// filesystem path, used to serialize independent process invocations that
// share one exercise workspace on disk.
//
// Platform semantics differ underneath a single contract: on POSIX systems
// the lock is an advisory whole-file flock, respected only by cooperating
// code using this same primitive; on Windows it is the OS's mandatory
// LockFileEx, which blocks conflicting access even from uncooperative
// writers. Code must not assume mandatory enforcement everywhere. Whole
// directories cannot be locked on Windows, so to protect a subtree, lock a
// sentinel file representing it rather than the directory itself.
package filelock

import (
	"log/slog"
	"os"

	"github.com/gofrs/flock"

	"github.com/Robustic/tmc-langs-go/internal/fsutil"
)

// Lock is an exclusive, currently-held claim on exactly one filesystem
// path. It is not safe to share between goroutines.
type Lock struct {
	path string
	fl   *flock.Flock
}

// Acquire takes an exclusive lock on path, creating the file if it does
// not exist. It blocks indefinitely until any existing holder releases; a
// caller needing bounded waiting must run the acquisition on a goroutine
// it abandons.
func Acquire(path string) (*Lock, error) {
	slog.Debug("locking path", "path", path)
	fl := flock.New(path)
	if err := fl.Lock(); err != nil {
		return nil, &fsutil.FileError{Op: fsutil.OpLock, Path: path, Err: err}
	}
	return &Lock{path: path, fl: fl}, nil
}

// AcquireExisting takes an exclusive lock on path, which must already
// exist. It fails with a FileOpen error when the file is absent.
func AcquireExisting(path string) (*Lock, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &fsutil.FileError{Op: fsutil.OpFileOpen, Path: path, Err: err}
	}
	return Acquire(path)
}

// AcquireForReplace truncates or creates the file at path and returns a
// held lock covering the new content. When a file already exists at path,
// the lock is first acquired on that existing file, blocking until every
// previously granted holder has released; only then is the file truncated.
// Replacement is therefore totally ordered after all prior locks on the
// path: no holder ever has content truncated out from under it.
func AcquireForReplace(path string) (*Lock, error) {
	if _, err := os.Stat(path); err == nil {
		lock, err := Acquire(path)
		if err != nil {
			return nil, err
		}
		// Truncation happens in place, so the held lock stays valid for
		// the replacement content.
		file, err := fsutil.CreateFile(path)
		if err != nil {
			lock.release()
			return nil, err
		}
		if closeErr := file.Close(); closeErr != nil {
			lock.release()
			return nil, &fsutil.FileError{Op: fsutil.OpFileCreate, Path: path, Err: closeErr}
		}
		return lock, nil
	}

	file, err := fsutil.CreateFile(path)
	if err != nil {
		return nil, err
	}
	if err := file.Close(); err != nil {
		return nil, &fsutil.FileError{Op: fsutil.OpFileCreate, Path: path, Err: err}
	}
	return Acquire(path)
}

// Path returns the locked path.
func (l *Lock) Path() string {
	return l.path
}

// Release gives up the claim and closes the underlying file handle.
// Releasing an already released lock is a no-op.
func (l *Lock) Release() error {
	slog.Debug("unlocking path", "path", l.path)
	return l.fl.Unlock()
}

// release is the deferred finalizer form of Release. Its diagnostic
// logging never fails and never masks the caller's original error.
func (l *Lock) release() {
	if err := l.Release(); err != nil {
		slog.Debug("failed to unlock path", "path", l.path, "error", err)
	}
}

// WithLock acquires a lock on path, runs fn, and releases the lock on
// every exit from fn, including panics.
func WithLock(path string, fn func() error) error {
	lock, err := Acquire(path)
	if err != nil {
		return err
	}
	defer lock.release()
	return fn()
}

// WithLocks acquires locks on each path in order, runs fn, and releases
// them in reverse acquisition order when fn returns. A failed acquisition
// releases everything taken so far and aborts without running fn.
func WithLocks(paths []string, fn func() error) error {
	for _, path := range paths {
		lock, err := Acquire(path)
		if err != nil {
			return err
		}
		defer lock.release()
	}
	return fn()
}
