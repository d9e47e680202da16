package fs

import (
	"bytes"
	"os"

	"github.com/natefinch/atomic"
)

// Real implements [FS] using the real filesystem.
//
// ReadFile is a pure passthrough to the [os] package.
// WriteFileAtomic writes through a temp file in the target directory and
// renames it into place, then applies perm to the final file.
type Real struct{}

// NewReal returns a new [Real] filesystem.
func NewReal() *Real {
	return &Real{}
}

// A passthrough wrapper for [os.ReadFile].
func (r *Real) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
}

// WriteFileAtomic writes data atomically and sets perm on the result.
// atomic.WriteFile does not set permissions for newly created files.
func (r *Real) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	writeErr := atomic.WriteFile(path, bytes.NewReader(data))
	if writeErr != nil {
		return writeErr
	}

	return os.Chmod(path, perm)
}

// Compile-time interface check.
var _ FS = (*Real)(nil)
