package flock

import (
	"errors"
	"fmt"
	"os"
)

// LockFileName is the lock file created inside a key directory.
const LockFileName = ".seal.lock"

// lockFileMode matches the permissions of the key files it guards.
const lockFileMode = 0o600

// ErrLocked is returned when another process already holds the lock.
var ErrLocked = errors.New("lock is held by another process")

// Lock is a held exclusive lock on a file.
type Lock struct {
	file *os.File
}

// Acquire opens (creating if needed) the file at path and takes an exclusive
// lock on it without blocking.
func Acquire(path string) (*Lock, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, lockFileMode) // #nosec G304 -- path is built from the key output directory
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file %s: %w", path, err)
	}

	if err := exclusive(f.Fd()); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrLocked, path, err)
	}
	return &Lock{file: f}, nil
}

// Release unlocks and closes the lock file. The file itself is left in place
// so a waiting process never races on its creation.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	unlockErr := unlock(l.file.Fd())
	closeErr := l.file.Close()
	l.file = nil
	return errors.Join(unlockErr, closeErr)
}
