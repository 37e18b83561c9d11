package host

import (
	"path"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// memFile is a single entry within a MemFS.
type memFile struct {
	size   int64
	dir    bool
	birth  time.Time
	modify time.Time
	xattrs map[string][]byte
}

// MemFS is an in-memory implementation of FS.
//
// It reports the same errno values a Unix host would, which makes it
// useful for testing the trap handlers deterministically.
type MemFS struct {
	mu sync.Mutex

	// files holds our entries, by cleaned path.
	files map[string]*memFile

	// fds maps open descriptors to the entry they refer to.  As with
	// Unix a descriptor remains valid after the path is removed.
	fds    map[int]*memFile
	nextFD int

	// fail holds errors to be returned by the named operation.
	fail map[string]error

	// Now returns the current time, used for timestamps.
	Now func() time.Time
}

// NewMemFS returns an empty in-memory filesystem, containing only "/".
func NewMemFS() *MemFS {
	m := &MemFS{
		files:  make(map[string]*memFile),
		fds:    make(map[int]*memFile),
		nextFD: 3,
		fail:   make(map[string]error),
		Now:    time.Now,
	}
	m.files["/"] = &memFile{dir: true}
	return m
}

// clean normalizes a path, treating relative paths as relative to "/".
func clean(p string) string {
	return path.Clean("/" + p)
}

// FailOn causes the named operation ("create", "remove", "stat",
// "fstat", "getxattr", "setxattr") to fail with the given errno.
//
// Passing zero removes the failure.
func (m *MemFS) FailOn(op string, errno unix.Errno) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if errno == 0 {
		delete(m.fail, op)
		return
	}
	m.fail[op] = errno
}

// lookup finds the entry for p, checking each parent is a directory.
//
// The caller must hold the lock.
func (m *MemFS) lookup(p string) (*memFile, error) {
	p = clean(p)

	// Every parent must exist, and be a directory.
	parts := strings.Split(p, "/")
	cur := ""
	for _, part := range parts[1 : len(parts)-1] {
		cur += "/" + part
		ent, ok := m.files[cur]
		if !ok {
			return nil, unix.ENOENT
		}
		if !ent.dir {
			return nil, unix.ENOTDIR
		}
	}

	ent, ok := m.files[p]
	if !ok {
		return nil, unix.ENOENT
	}
	return ent, nil
}

// check returns any failure registered for op.
func (m *MemFS) check(op string) error {
	return m.fail[op]
}

// Create creates an empty file.
func (m *MemFS) Create(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check("create"); err != nil {
		return pathError("create", p, err)
	}

	_, err := m.lookup(p)
	if err == nil {
		return pathError("create", p, unix.EEXIST)
	}
	if err != unix.ENOENT {
		return pathError("create", p, err)
	}

	// The parent must exist.
	if parent, err := m.lookup(path.Dir(clean(p))); err != nil || !parent.dir {
		if err == nil {
			err = unix.ENOTDIR
		}
		return pathError("create", p, err)
	}

	now := m.Now()
	m.files[clean(p)] = &memFile{birth: now, modify: now}
	return nil
}

// Remove unlinks a file.
func (m *MemFS) Remove(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check("remove"); err != nil {
		return pathError("unlink", p, err)
	}

	ent, err := m.lookup(p)
	if err != nil {
		return pathError("unlink", p, err)
	}
	if ent.dir {
		return pathError("unlink", p, unix.EISDIR)
	}
	delete(m.files, clean(p))
	return nil
}

func (f *memFile) info() Info {
	return Info{
		Size:   f.size,
		Birth:  f.birth,
		Modify: f.modify,
		Dir:    f.dir,
	}
}

// Stat returns details of the given path.
func (m *MemFS) Stat(p string) (Info, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check("stat"); err != nil {
		return Info{}, pathError("stat", p, err)
	}

	ent, err := m.lookup(p)
	if err != nil {
		return Info{}, pathError("stat", p, err)
	}
	return ent.info(), nil
}

// Fstat returns details of the given open descriptor.
func (m *MemFS) Fstat(fd int) (Info, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := "fd " + strconv.Itoa(fd)
	if err := m.check("fstat"); err != nil {
		return Info{}, pathError("fstat", name, err)
	}

	ent, ok := m.fds[fd]
	if !ok {
		return Info{}, pathError("fstat", name, unix.EBADF)
	}
	return ent.info(), nil
}

// Getxattr reads an extended attribute.
//
// As on Linux a buffer which is too small fails with ERANGE.
func (m *MemFS) Getxattr(p string, name string, buf []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check("getxattr"); err != nil {
		return 0, pathError("getxattr", p, err)
	}

	ent, err := m.lookup(p)
	if err != nil {
		return 0, pathError("getxattr", p, err)
	}
	val, ok := ent.xattrs[name]
	if !ok {
		return 0, pathError("getxattr", p, errNoAttr)
	}
	if len(buf) < len(val) {
		return 0, pathError("getxattr", p, unix.ERANGE)
	}
	return copy(buf, val), nil
}

// Setxattr creates, or replaces, an extended attribute.
func (m *MemFS) Setxattr(p string, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check("setxattr"); err != nil {
		return pathError("setxattr", p, err)
	}

	ent, err := m.lookup(p)
	if err != nil {
		return pathError("setxattr", p, err)
	}
	if ent.xattrs == nil {
		ent.xattrs = make(map[string][]byte)
	}
	ent.xattrs[name] = append([]byte(nil), data...)
	return nil
}

// Open returns a descriptor for the given file.
func (m *MemFS) Open(p string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ent, err := m.lookup(p)
	if err != nil {
		return -1, pathError("open", p, err)
	}

	fd := m.nextFD
	m.nextFD++
	m.fds[fd] = ent
	return fd, nil
}

// Close releases a descriptor.
func (m *MemFS) Close(fd int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.fds[fd]; !ok {
		return pathError("close", "fd "+strconv.Itoa(fd), unix.EBADF)
	}
	delete(m.fds, fd)
	return nil
}

// WriteFile creates, or replaces, a file of the given size.
//
// Only the size is recorded; MemFS never stores file contents.
func (m *MemFS) WriteFile(p string, size int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.Now()
	ent, err := m.lookup(p)
	if err == unix.ENOENT {
		if parent, perr := m.lookup(path.Dir(clean(p))); perr != nil || !parent.dir {
			return pathError("open", p, unix.ENOENT)
		}
		ent = &memFile{birth: now}
		m.files[clean(p)] = ent
	} else if err != nil {
		return pathError("open", p, err)
	}
	if ent.dir {
		return pathError("open", p, unix.EISDIR)
	}
	ent.size = size
	ent.modify = now
	return nil
}

// Mkdir creates a directory.
func (m *MemFS) Mkdir(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.lookup(p); err == nil {
		return pathError("mkdir", p, unix.EEXIST)
	}
	if parent, err := m.lookup(path.Dir(clean(p))); err != nil || !parent.dir {
		return pathError("mkdir", p, unix.ENOENT)
	}

	now := m.Now()
	m.files[clean(p)] = &memFile{dir: true, birth: now, modify: now}
	return nil
}

// ensure we implement the interface.
var _ FS = (*MemFS)(nil)
var _ FS = (*OS)(nil)
