// Package host is the port through which the trap handlers reach the
// host filesystem.
//
// There are two implementations: OS, which performs real system calls
// via golang.org/x/sys/unix, and MemFS, an in-memory filesystem which
// returns the same errno values and is used for testing.
//
// Errors are always *fs.PathError values wrapping a unix.Errno, so that
// they can be translated into File Manager result codes.
package host

import (
	"time"
)

// FS is the set of filesystem operations the File Manager traps need.
type FS interface {
	// Create creates an empty file, failing with EEXIST if the
	// path already exists.  No handle is retained.
	Create(path string) error

	// Remove unlinks the given file.
	Remove(path string) error

	// Stat returns details of the given path.
	Stat(path string) (Info, error)

	// Fstat returns details of an already-open descriptor.
	Fstat(fd int) (Info, error)

	// Getxattr reads the named extended attribute into buf, returning
	// the number of bytes read.
	Getxattr(path string, name string, buf []byte) (int, error)

	// Setxattr creates, or replaces, the named extended attribute.
	Setxattr(path string, name string, data []byte) error
}

// Info is the subset of stat(2) output we care about.
type Info struct {
	// Size is the size of the file, in bytes.
	Size int64

	// Birth is the creation time of the file.
	//
	// Where the host filesystem doesn't record this it is the same
	// as Modify.
	Birth time.Time

	// Modify is the last modification time of the file.
	Modify time.Time

	// Dir is true if the path is a directory.
	Dir bool
}
