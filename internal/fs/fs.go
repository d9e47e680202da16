// Package fs is the filesystem seam between the tree store and disk.
//
// Two implementations are provided:
//   - [Real]: production use, wraps the [os] package and atomic writes
//   - [Injected]: testing use, fails selected operations on demand
package fs

import "os"

// FS defines the filesystem operations the tree store needs.
type FS interface {
	// ReadFile reads an entire file into memory. See [os.ReadFile].
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic writes data to a file atomically.
	// Uses a temp file + rename so a crash mid-write cannot leave a
	// partial or truncated file behind.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error
}
