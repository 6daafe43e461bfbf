//go:build unix

package mem

import "golang.org/x/sys/unix"

// Lock pins the pages backing b into RAM so key material cannot be
// paged out to swap. Best effort: mlock is subject to RLIMIT_MEMLOCK,
// and callers treat failure as advisory.
func Lock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Mlock(b)
}

// Unlock releases pages pinned by Lock.
func Unlock(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Munlock(b)
}
