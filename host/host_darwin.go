package host

import (
	"time"

	"golang.org/x/sys/unix"
)

// FinderInfoAttr is the extended attribute which holds Finder info.
const FinderInfoAttr = "com.apple.FinderInfo"

// ResourceForkSuffix is appended to a path to reach its resource fork.
const ResourceForkSuffix = "/..namedfork/rsrc"

// errNoAttr is the errno for a missing extended attribute.
const errNoAttr = unix.ENOATTR

func statInfo(st *unix.Stat_t) Info {
	return Info{
		Size:   st.Size,
		Birth:  time.Unix(st.Btim.Unix()),
		Modify: time.Unix(st.Mtim.Unix()),
		Dir:    st.Mode&unix.S_IFMT == unix.S_IFDIR,
	}
}

func stat(path string) (Info, error) {
	var st unix.Stat_t

	if err := unix.Stat(path, &st); err != nil {
		return Info{}, err
	}
	return statInfo(&st), nil
}

func fstat(fd int) (Info, error) {
	var st unix.Stat_t

	if err := unix.Fstat(fd, &st); err != nil {
		return Info{}, err
	}
	return statInfo(&st), nil
}
