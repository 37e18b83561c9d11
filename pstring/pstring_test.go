package pstring

import (
	"errors"
	"strings"
	"testing"

	"github.com/skx/mpwfs/memory"
)

// TestReadWrite ensures we can store and fetch Pascal strings.
func TestReadWrite(t *testing.T) {
	mem := memory.New(0x1000)

	err := Write(mem, 0x100, "Steve.c")
	if err != nil {
		t.Fatalf("failed to write: %s", err)
	}

	l, _ := mem.Get(0x100)
	if l != 7 {
		t.Fatalf("wrong length byte %d", l)
	}

	str, err := Read(mem, 0x100)
	if err != nil {
		t.Fatalf("failed to read: %s", err)
	}
	if str != "Steve.c" {
		t.Fatalf("wrong string '%s'", str)
	}

	// The null pointer is the empty string
	str, err = Read(mem, 0)
	if err != nil || str != "" {
		t.Fatalf("null pointer should be empty")
	}

	// As is a zero length
	_ = mem.Set(0x200, 0)
	str, err = Read(mem, 0x200)
	if err != nil || str != "" {
		t.Fatalf("zero length should be empty")
	}

	// Long strings are truncated
	long := strings.Repeat("x", 300)
	err = Write(mem, 0x300, long)
	if err != nil {
		t.Fatalf("failed to write: %s", err)
	}
	str, _ = Read(mem, 0x300)
	if len(str) != MaxLength {
		t.Fatalf("string was not truncated: %d", len(str))
	}
}

// TestFault ensures strings running off the end of RAM fault.
func TestFault(t *testing.T) {
	mem := memory.New(0x10)
	_ = mem.Set(0x0C, 10)

	_, err := Read(mem, 0x0C)
	if !errors.Is(err, memory.ErrMemoryFault) {
		t.Fatalf("expected fault, got %v", err)
	}
	_, err = Read(mem, 0x20)
	if !errors.Is(err, memory.ErrMemoryFault) {
		t.Fatalf("expected fault, got %v", err)
	}
	err = Write(mem, 0x0C, "steve")
	if !errors.Is(err, memory.ErrMemoryFault) {
		t.Fatalf("expected fault, got %v", err)
	}
}

// TestMacToUnix tests path conversion.
func TestMacToUnix(t *testing.T) {

	tests := []struct {
		in  string
		out string
	}{
		{"foo.c", "foo.c"},
		{"/tmp/foo.c", "/tmp/foo.c"},
		{"dir/a:b", "dir/a:b"},
		{"MacOS:foo.c", "/MacOS/foo.c"},
		{"Vol:Dir:File", "/Vol/Dir/File"},
		{"Vol:", "/Vol"},
		{":File", "File"},
		{":Dir:File", "Dir/File"},
		{"::File", "../File"},
		{":::File", "../../File"},
		{":Dir:", "Dir"},
		{":", "."},
	}

	for _, test := range tests {
		got := MacToUnix(test.in)
		if got != test.out {
			t.Fatalf("MacToUnix(%q) = %q, expected %q", test.in, got, test.out)
		}
	}
}
