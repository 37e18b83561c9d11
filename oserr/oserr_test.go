package oserr

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

// TestFromErrno checks the errno table.
func TestFromErrno(t *testing.T) {

	tests := []struct {
		errno unix.Errno
		want  ResultCode
	}{
		{0, NoErr},
		{unix.EBADF, RfNumErr},
		{unix.EIO, IOErr},
		{unix.EACCES, PermErr},
		{unix.ENOENT, FnfErr},
		{unix.ENOTDIR, DirNFErr},
		{unix.EISDIR, NotAFileErr},
		{unix.ENOTSUP, ExtFSErr},
		{unix.EOPNOTSUPP, ExtFSErr},
		{unix.EROFS, WPrErr},
		{unix.EEXIST, DupFNErr},
		{unix.EBUSY, FBsyErr},
		{unix.EDQUOT, DskFulErr},
		{unix.ENOSPC, DskFulErr},

		// unmapped
		{unix.EINVAL, IOErr},
		{unix.ELOOP, IOErr},
		{unix.EPERM, IOErr},
	}

	for _, test := range tests {
		got := FromErrno(test.errno)
		if got != test.want {
			t.Fatalf("errno %d (%s): got %s, expected %s", int(test.errno), test.errno, got, test.want)
		}
	}
}

// TestFromError ensures wrapped errors are unwrapped.
func TestFromError(t *testing.T) {

	if FromError(nil) != NoErr {
		t.Fatalf("nil error should be noErr")
	}

	pe := &fs.PathError{Op: "open", Path: "/x", Err: unix.EEXIST}
	if FromError(pe) != DupFNErr {
		t.Fatalf("wrapped EEXIST should be dupFNErr")
	}

	// A real error from the OS
	_, err := os.Stat("/this/does/not/exist")
	if FromError(err) != FnfErr {
		t.Fatalf("missing file should be fnfErr, got %s", FromError(err))
	}

	// Errors without an errno
	if FromError(errors.New("something")) != IOErr {
		t.Fatalf("plain error should be ioErr")
	}
	if FromError(unix.Errno(0)) != IOErr {
		t.Fatalf("zero errno as an error should be ioErr")
	}
}

// TestEncoding checks the guest representation of codes.
func TestEncoding(t *testing.T) {

	if BdNamErr.Word() != 0xFFDB {
		t.Fatalf("wrong word %04X", BdNamErr.Word())
	}
	if BdNamErr.Long() != 0xFFFFFFDB {
		t.Fatalf("wrong long %08X", BdNamErr.Long())
	}
	if NoErr.Long() != 0 {
		t.Fatalf("noErr should be zero")
	}

	if DupFNErr.String() != "dupFNErr" {
		t.Fatalf("wrong name %s", DupFNErr.String())
	}
	if ResultCode(-999).String() != "OSErr(-999)" {
		t.Fatalf("wrong name %s", ResultCode(-999).String())
	}
}
