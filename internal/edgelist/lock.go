package edgelist

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked indicates another process holds the output directory.
var ErrLocked = errors.New("edgelist: output directory is locked by another run")

const lockFileName = ".simnet.lock"

// DirLock is an exclusive advisory lock on an output directory.
type DirLock struct {
	lock *flock.Flock
	path string
}

// Lock takes the output-directory lock without blocking.
func Lock(dir string) (*DirLock, error) {
	path := filepath.Join(dir, lockFileName)
	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	return &DirLock{lock: lock, path: path}, nil
}

// Path returns the lock file location.
func (l *DirLock) Path() string {
	return l.path
}

// Unlock releases the lock. The lock file itself is left in place.
func (l *DirLock) Unlock() error {
	if l == nil || l.lock == nil {
		return nil
	}
	return l.lock.Unlock()
}
