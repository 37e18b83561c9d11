package host

import (
	"io/fs"
	"strconv"

	"golang.org/x/sys/unix"
)

// OS implements FS against the real filesystem.
type OS struct {
}

// NewOS returns a new OS filesystem.
func NewOS() *OS {
	return &OS{}
}

// pathError wraps err with the operation and path, unless it is nil.
func pathError(op string, path string, err error) error {
	if err == nil {
		return nil
	}
	return &fs.PathError{Op: op, Path: path, Err: err}
}

// Create creates an empty file, which must not already exist.
func (o *OS) Create(path string) error {
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_CREAT|unix.O_EXCL|unix.O_CLOEXEC, 0666)
	if err != nil {
		return pathError("create", path, err)
	}
	return pathError("close", path, unix.Close(fd))
}

// Remove unlinks the given path.
func (o *OS) Remove(path string) error {
	return pathError("unlink", path, unix.Unlink(path))
}

// Stat returns details of the given path.
func (o *OS) Stat(path string) (Info, error) {
	info, err := stat(path)
	return info, pathError("stat", path, err)
}

// Fstat returns details of the given open descriptor.
func (o *OS) Fstat(fd int) (Info, error) {
	info, err := fstat(fd)
	return info, pathError("fstat", "fd "+strconv.Itoa(fd), err)
}

// Getxattr reads an extended attribute.
func (o *OS) Getxattr(path string, name string, buf []byte) (int, error) {
	n, err := unix.Getxattr(path, name, buf)
	return n, pathError("getxattr", path, err)
}

// Setxattr writes an extended attribute.
func (o *OS) Setxattr(path string, name string, data []byte) error {
	return pathError("setxattr", path, unix.Setxattr(path, name, data, 0))
}

// Open opens an existing file for reading, returning the descriptor.
func (o *OS) Open(path string) (int, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return -1, pathError("open", path, err)
	}
	return fd, nil
}

// Close closes a descriptor returned by Open.
func (o *OS) Close(fd int) error {
	return pathError("close", "fd "+strconv.Itoa(fd), unix.Close(fd))
}
