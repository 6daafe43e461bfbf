//go:build !unix

package mem

// Lock is a no-op where mlock is unavailable.
func Lock(b []byte) error {
	return nil
}

// Unlock is a no-op where munlock is unavailable.
func Unlock(b []byte) error {
	return nil
}
