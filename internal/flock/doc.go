// Package flock guards a directory of key files with an exclusive,
// non-blocking lock so two concurrent key generations into the same
// directory cannot interleave their writes.
//
// Usage:
//
//	lock, err := flock.Acquire(filepath.Join(dir, flock.LockFileName))
//	if err != nil {
//	    return err // errors.Is(err, flock.ErrLocked) when another run holds it
//	}
//	defer lock.Release()
package flock
