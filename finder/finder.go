// Package finder emulates the parts of the Macintosh file model which
// a Unix host lacks.
//
// Finder info is a 32-byte block of metadata, holding the type and
// creator of a file, amongst other things.  We store it in an extended
// attribute on the host file, of which only the first 16 bytes are
// ever seen by the guest.
//
// The resource fork is a second stream of data, which is found by
// appending a host-specific suffix to the path of the file.
package finder

import (
	"log/slog"

	"github.com/skx/mpwfs/host"
)

// InfoSize is the size of the Finder info attribute.
const InfoSize = 32

// GuestInfoSize is the number of bytes of Finder info exchanged
// with the guest.
const GuestInfoSize = 16

// TextTag is the type and creator reported for text files: type
// TEXT, created by MPS, the MPW shell.
var TextTag = [8]uint8{'T', 'E', 'X', 'T', 'M', 'P', 'S', ' '}

// Finder reads and writes file metadata through a host filesystem.
type Finder struct {
	// fs is the filesystem we work with.
	fs host.FS

	// logger is used for diagnostics.
	logger *slog.Logger
}

// New returns a new Finder.
//
// If logger is nil the default logger is used.
func New(fs host.FS, logger *slog.Logger) *Finder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Finder{fs: fs, logger: logger}
}

// readAttr returns the 32-byte Finder info of path, which is all
// zeros if the attribute cannot be read.
func (f *Finder) readAttr(path string) [InfoSize]uint8 {
	var buf [InfoSize]uint8

	_, err := f.fs.Getxattr(path, host.FinderInfoAttr, buf[:])
	if err != nil {
		f.logger.Debug("no finder info",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return [InfoSize]uint8{}
	}
	return buf
}

// ReadFinderInfo returns the 16 bytes of Finder info the guest sees.
//
// Text files always report TextTag as their type and creator, whatever
// the attribute holds.
func (f *Finder) ReadFinderInfo(path string) [GuestInfoSize]uint8 {
	buf := f.readAttr(path)

	if IsTextFile(path) {
		copy(buf[:], TextTag[:])
	}

	var ret [GuestInfoSize]uint8
	copy(ret[:], buf[:])
	return ret
}

// WriteFinderInfo replaces the first 16 bytes of the Finder info of
// path, preserving the remainder.
func (f *Finder) WriteFinderInfo(path string, info [GuestInfoSize]uint8) error {
	buf := f.readAttr(path)
	copy(buf[:], info[:])

	return f.fs.Setxattr(path, host.FinderInfoAttr, buf[:])
}

// ForkSizes returns the size of the data and resource forks of path.
//
// A missing resource fork has size zero.
func (f *Finder) ForkSizes(path string) (int64, int64, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		return 0, 0, err
	}

	var rsrc int64
	ri, err := f.fs.Stat(path + host.ResourceForkSuffix)
	if err == nil {
		rsrc = ri.Size
	}
	return info.Size, rsrc, nil
}

// FileType returns the four-character type of path.
func (f *Finder) FileType(path string) string {
	info := f.ReadFinderInfo(path)
	return string(info[0:4])
}

// Creator returns the four-character creator of path.
func (f *Finder) Creator(path string) string {
	info := f.ReadFinderInfo(path)
	return string(info[4:8])
}
