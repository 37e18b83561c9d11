// Package oserr contains the result codes returned by the Mac OS
// File Manager, and the translation of host errors into them.
package oserr

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// ResultCode is a File Manager result code.
//
// It is stored in the ioResult field of a parameter block, and in D0,
// as a signed 16-bit value.
type ResultCode int16

// The result codes we produce.
const (
	NoErr       ResultCode = 0
	UnimpErr    ResultCode = -4
	DskFulErr   ResultCode = -34
	IOErr       ResultCode = -36
	BdNamErr    ResultCode = -37
	FnfErr      ResultCode = -43
	WPrErr      ResultCode = -44
	FBsyErr     ResultCode = -47
	DupFNErr    ResultCode = -48
	RfNumErr    ResultCode = -51
	PermErr     ResultCode = -54
	ExtFSErr    ResultCode = -58
	DirNFErr    ResultCode = -120
	NotAFileErr ResultCode = -1302
)

var names = map[ResultCode]string{
	NoErr:       "noErr",
	UnimpErr:    "unimpErr",
	DskFulErr:   "dskFulErr",
	IOErr:       "ioErr",
	BdNamErr:    "bdNamErr",
	FnfErr:      "fnfErr",
	WPrErr:      "wPrErr",
	FBsyErr:     "fBsyErr",
	DupFNErr:    "dupFNErr",
	RfNumErr:    "rfNumErr",
	PermErr:     "permErr",
	ExtFSErr:    "extFSErr",
	DirNFErr:    "dirNFErr",
	NotAFileErr: "notAFileErr",
}

// String returns the mnemonic for the code, as used in Inside Macintosh.
func (r ResultCode) String() string {
	if n, ok := names[r]; ok {
		return n
	}
	return fmt.Sprintf("OSErr(%d)", int16(r))
}

// Word returns the code as it is stored in guest memory.
func (r ResultCode) Word() uint16 {
	return uint16(r)
}

// Long returns the code sign-extended, as it is stored in D0.
func (r ResultCode) Long() uint32 {
	return uint32(int32(r))
}

// FromErrno converts a host errno into a result code.
//
// Anything we don't recognize becomes ioErr.
func FromErrno(errno unix.Errno) ResultCode {

	// ENOTSUP and EOPNOTSUPP share a value on Linux, but not on
	// Darwin, so they cannot both be switch cases.
	if errno == unix.ENOTSUP || errno == unix.EOPNOTSUPP {
		return ExtFSErr
	}

	switch errno {
	case 0:
		return NoErr
	case unix.EBADF:
		return RfNumErr
	case unix.EIO:
		return IOErr
	case unix.EACCES:
		return PermErr
	case unix.ENOENT:
		return FnfErr
	case unix.ENOTDIR:
		return DirNFErr
	case unix.EISDIR:
		return NotAFileErr
	case unix.EROFS:
		return WPrErr
	case unix.EEXIST:
		return DupFNErr
	case unix.EBUSY:
		return FBsyErr
	case unix.EDQUOT, unix.ENOSPC:
		return DskFulErr
	default:
		return IOErr
	}
}

// FromError converts the error returned by a host filesystem operation
// into a result code.
//
// The errno is found through any wrapping, such as *fs.PathError.  An
// error which carries no errno at all is reported as ioErr.
func FromError(err error) ResultCode {
	if err == nil {
		return NoErr
	}

	var errno unix.Errno
	if errors.As(err, &errno) {
		if errno == 0 {
			return IOErr
		}
		return FromErrno(errno)
	}
	return IOErr
}
