package host

import (
	"time"

	"golang.org/x/sys/unix"
)

// FinderInfoAttr is the extended attribute which holds Finder info.
//
// Linux only allows unprivileged attributes in the "user." namespace.
const FinderInfoAttr = "user.com.apple.FinderInfo"

// ResourceForkSuffix is appended to a path to find its resource fork,
// which is a sidecar file on Linux.
const ResourceForkSuffix = ".rsrc"

// errNoAttr is the errno for a missing extended attribute.
const errNoAttr = unix.ENODATA

func statxInfo(stx *unix.Statx_t) Info {
	info := Info{
		Size:   int64(stx.Size),
		Modify: time.Unix(stx.Mtime.Sec, int64(stx.Mtime.Nsec)),
		Dir:    stx.Mode&unix.S_IFMT == unix.S_IFDIR,
	}

	// Not every filesystem records the birth time.
	info.Birth = info.Modify
	if stx.Mask&unix.STATX_BTIME != 0 {
		info.Birth = time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec))
	}
	return info
}

func stat(path string) (Info, error) {
	var stx unix.Statx_t

	err := unix.Statx(unix.AT_FDCWD, path, 0, unix.STATX_BASIC_STATS|unix.STATX_BTIME, &stx)
	if err != nil {
		return Info{}, err
	}
	return statxInfo(&stx), nil
}

func fstat(fd int) (Info, error) {
	var stx unix.Statx_t

	err := unix.Statx(fd, "", unix.AT_EMPTY_PATH, unix.STATX_BASIC_STATS|unix.STATX_BTIME, &stx)
	if err != nil {
		return Info{}, err
	}
	return statxInfo(&stx), nil
}
