package host

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"
)

// TestOS exercises the real filesystem, within a temporary directory.
func TestOS(t *testing.T) {
	o := NewOS()
	dir := t.TempDir()
	name := filepath.Join(dir, "TEST.C")

	err := o.Create(name)
	if err != nil {
		t.Fatalf("failed to create: %s", err)
	}

	err = o.Create(name)
	if !errors.Is(err, unix.EEXIST) {
		t.Fatalf("expected EEXIST, got %v", err)
	}

	if err = os.WriteFile(name, []byte("Steve"), 0644); err != nil {
		t.Fatalf("failed to write: %s", err)
	}

	info, err := o.Stat(name)
	if err != nil {
		t.Fatalf("failed to stat: %s", err)
	}
	if info.Size != 5 || info.Dir {
		t.Fatalf("wrong info %v", info)
	}
	if info.Modify.IsZero() || info.Birth.IsZero() {
		t.Fatalf("missing times %v", info)
	}

	fd, err := o.Open(name)
	if err != nil {
		t.Fatalf("failed to open: %s", err)
	}
	info, err = o.Fstat(fd)
	if err != nil || info.Size != 5 {
		t.Fatalf("fstat failed %v %v", info, err)
	}
	if err = o.Close(fd); err != nil {
		t.Fatalf("failed to close: %s", err)
	}
	if _, err = o.Fstat(fd); !errors.Is(err, unix.EBADF) {
		t.Fatalf("expected EBADF, got %v", err)
	}

	info, err = o.Stat(dir)
	if err != nil || !info.Dir {
		t.Fatalf("directory not reported %v %v", info, err)
	}

	err = o.Remove(name)
	if err != nil {
		t.Fatalf("failed to remove: %s", err)
	}
	_, err = o.Stat(name)
	if !errors.Is(err, unix.ENOENT) {
		t.Fatalf("expected ENOENT, got %v", err)
	}
	_, err = o.Open(name)
	if !errors.Is(err, unix.ENOENT) {
		t.Fatalf("expected ENOENT, got %v", err)
	}
}

// TestOSXattr exercises extended attributes, where the temporary
// filesystem supports them.
func TestOSXattr(t *testing.T) {
	o := NewOS()
	name := filepath.Join(t.TempDir(), "attr")

	if err := o.Create(name); err != nil {
		t.Fatalf("failed to create: %s", err)
	}

	buf := make([]byte, 32)
	_, err := o.Getxattr(name, FinderInfoAttr, buf)
	if err == nil {
		t.Fatalf("expected an error reading a missing attribute")
	}

	err = o.Setxattr(name, FinderInfoAttr, []byte("TEXTMPS "))
	if errors.Is(err, unix.ENOTSUP) || errors.Is(err, unix.EOPNOTSUPP) {
		t.Skip("extended attributes not supported here")
	}
	if err != nil {
		t.Fatalf("failed to set attribute: %s", err)
	}

	n, err := o.Getxattr(name, FinderInfoAttr, buf)
	if err != nil || string(buf[:n]) != "TEXTMPS " {
		t.Fatalf("wrong attribute %q %v", buf[:n], err)
	}
}
