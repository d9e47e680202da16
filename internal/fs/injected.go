package fs

import (
	"errors"
	"os"
)

// InjectedError marks an error as intentionally injected by [Injected].
// It wraps the underlying error so errors.Is/As continue to work.
type InjectedError struct {
	Err error
}

// Error returns the underlying error's message.
func (e *InjectedError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *InjectedError) Unwrap() error {
	return e.Err
}

// IsInjected reports whether err (or any wrapped error) was injected.
// Returns false if err is nil.
func IsInjected(err error) bool {
	if err == nil {
		return false
	}

	var injected *InjectedError

	return errors.As(err, &injected)
}

// Injected wraps an [FS] and fails selected operations. It exists to
// exercise error paths that are hard to produce on a real filesystem,
// such as a write failure after the in-memory document was mutated.
type Injected struct {
	// FS handles all operations whose error field below is nil.
	FS FS

	ReadErr  error // returned by ReadFile when non-nil
	WriteErr error // returned by WriteFileAtomic when non-nil
}

func (i *Injected) ReadFile(path string) ([]byte, error) {
	if i.ReadErr != nil {
		return nil, &InjectedError{Err: i.ReadErr}
	}

	return i.FS.ReadFile(path)
}

func (i *Injected) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if i.WriteErr != nil {
		return &InjectedError{Err: i.WriteErr}
	}

	return i.FS.WriteFileAtomic(path, data, perm)
}

// Compile-time interface check.
var _ FS = (*Injected)(nil)
