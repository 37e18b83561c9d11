// This file implements the File Manager traps.
//
// These are documented in Inside Macintosh, Volume II, chapter 4.  The
// offsets below are those of the ParamBlockRec and FileParam structures.

package toolbox

import (
	"log/slog"

	"github.com/skx/mpwfs/finder"
	"github.com/skx/mpwfs/mactime"
	"github.com/skx/mpwfs/oserr"
	"github.com/skx/mpwfs/pblock"
	"github.com/skx/mpwfs/pstring"
)

// Offsets common to every parameter block.
const (
	offResult  = 16 // ioResult, word
	offNamePtr = 18 // ioNamePtr, long
	offVRefNum = 22 // ioVRefNum, word
)

// Offsets of the ioParam variant, used by GetEOF.
const (
	offRefNum = 24 // ioRefNum, word
	offMisc   = 28 // ioMisc, long: the logical EOF
)

// Offsets of the fileParam variant, used by Get/SetFileInfo.
const (
	offFRefNum   = 24 // ioFRefNum, word
	offFDirIndex = 28 // ioFDirIndex, word
	offFlAttrib  = 30 // ioFlAttrib, byte
	offFlVersNum = 31 // ioFlVersNum, byte
	offFlFndr    = 32 // ioFlFndrInfo, 16 bytes
	offFlNum     = 48 // ioFlNum, long
	offFlStBlk   = 52 // ioFlStBlk, word
	offFlLgLen   = 54 // ioFlLgLen, long
	offFlPyLen   = 58 // ioFlPyLen, long
	offFlRStBlk  = 62 // ioFlRStBlk, word
	offFlRLgLen  = 64 // ioFlRLgLen, long
	offFlRPyLen  = 68 // ioFlRPyLen, long
	offFlCrDat   = 72 // ioFlCrDat, long
	offFlMdDat   = 76 // ioFlMdDat, long
)

// The size of each kind of parameter block.
const (
	createSpan   = 28
	eofSpan      = 32
	volSpan      = 24
	fileInfoSpan = 80
)

// result stores code in the ioResult field of b, and returns it.
func result(b *pblock.Block, code oserr.ResultCode) (oserr.ResultCode, error) {
	if err := b.SetWord(offResult, code.Word()); err != nil {
		return code, err
	}
	return code, nil
}

// readName returns the host path named by the ioNamePtr field of b.
func (tb *Toolbox) readName(b *pblock.Block) (string, error) {
	ptr, err := b.Long(offNamePtr)
	if err != nil {
		return "", err
	}
	name, err := pstring.Read(tb.Memory, ptr)
	if err != nil {
		return "", err
	}
	return pstring.MacToUnix(name), nil
}

// Create creates a new, empty, file.
//
// The file is not left open.
func Create(tb *Toolbox, trap uint16) (oserr.ResultCode, error) {
	b := tb.paramBlock(createSpan)

	name, err := tb.readName(b)
	if err != nil {
		return 0, err
	}
	if name == "" {
		return result(b, oserr.BdNamErr)
	}

	d0 := oserr.FromError(tb.FS.Create(name))

	tb.Logger.Debug("Create",
		slog.String("name", name),
		slog.String("result", d0.String()))

	return result(b, d0)
}

// Delete removes a file.
func Delete(tb *Toolbox, trap uint16) (oserr.ResultCode, error) {
	b := tb.paramBlock(createSpan)

	name, err := tb.readName(b)
	if err != nil {
		return 0, err
	}
	if name == "" {
		return result(b, oserr.BdNamErr)
	}

	d0 := oserr.FromError(tb.FS.Remove(name))

	tb.Logger.Debug("Delete",
		slog.String("name", name),
		slog.String("result", d0.String()))

	return result(b, d0)
}

// GetEOF returns the size of an open file.
//
// The reference number is a host descriptor, and the size is stored
// even when the call fails.
func GetEOF(tb *Toolbox, trap uint16) (oserr.ResultCode, error) {
	b := tb.paramBlock(eofSpan)

	ref, err := b.Word(offRefNum)
	if err != nil {
		return 0, err
	}

	var size uint32
	info, err := tb.FS.Fstat(int(ref))
	d0 := oserr.FromError(err)
	if err == nil {
		size = uint32(info.Size)
	}

	tb.Logger.Debug("GetEOF",
		slog.Int("refnum", int(ref)),
		slog.Int64("size", int64(size)),
		slog.String("result", d0.String()))

	if err = b.SetLong(offMisc, size); err != nil {
		return 0, err
	}
	return result(b, d0)
}

// GetVol returns the name and reference number of the default volume.
//
// We only have the one volume, and this never fails.
func GetVol(tb *Toolbox, trap uint16) (oserr.ResultCode, error) {
	b := tb.paramBlock(volSpan)

	ptr, err := b.Long(offNamePtr)
	if err != nil {
		return 0, err
	}

	if _, err = result(b, oserr.NoErr); err != nil {
		return 0, err
	}
	if err = b.SetWord(offVRefNum, 0); err != nil {
		return 0, err
	}

	if ptr != 0 {
		if err = pstring.Write(tb.Memory, ptr, tb.volumeName); err != nil {
			return 0, err
		}
	}

	tb.Logger.Debug("GetVol",
		slog.String("volume", tb.volumeName))

	return oserr.NoErr, nil
}

// GetFileInfo returns information about a named file.
//
// Only lookup by name is supported; indexing through a directory
// returns unimpErr.
func GetFileInfo(tb *Toolbox, trap uint16) (oserr.ResultCode, error) {
	b := tb.paramBlock(fileInfoSpan)

	idx, err := b.Word(offFDirIndex)
	if err != nil {
		return 0, err
	}

	if int16(idx) > 0 {
		tb.Logger.Error("GetFileInfo: ioFDirIndex is not supported",
			slog.Int("index", int(int16(idx))))
		return result(b, oserr.UnimpErr)
	}

	name, err := tb.readName(b)
	if err != nil {
		return 0, err
	}
	if name == "" {
		return result(b, oserr.BdNamErr)
	}

	l := tb.Logger.With(
		slog.String("function", "GetFileInfo"),
		slog.String("name", name))

	info, err := tb.FS.Stat(name)
	if err != nil {
		d0 := oserr.FromError(err)
		l.Debug("stat failed",
			slog.String("error", err.Error()),
			slog.String("result", d0.String()))
		return result(b, d0)
	}

	fndr := tb.Finder.ReadFinderInfo(name)

	_, rsrc, err := tb.Finder.ForkSizes(name)
	if err != nil {
		// The file has gone away since we looked at it.
		return result(b, oserr.FromError(err))
	}

	// The fields we fill in, in the order the Mac would.
	longs := []struct {
		off uint32
		val uint32
	}{
		{offFlNum, 0},
		{offFlLgLen, uint32(info.Size)},
		{offFlPyLen, uint32(info.Size)},
		{offFlCrDat, mactime.UnixToMac(info.Birth)},
		{offFlMdDat, mactime.UnixToMac(info.Modify)},
		{offFlRLgLen, uint32(rsrc)},
		{offFlRPyLen, uint32(rsrc)},
	}

	if err = b.SetBytes(offFlFndr, fndr[:finder.GuestInfoSize]); err != nil {
		return 0, err
	}
	for _, off := range []uint32{offFRefNum, offFlStBlk, offFlRStBlk} {
		if err = b.SetWord(off, 0); err != nil {
			return 0, err
		}
	}
	for _, off := range []uint32{offFlAttrib, offFlVersNum} {
		if err = b.SetByte(off, 0); err != nil {
			return 0, err
		}
	}
	for _, f := range longs {
		if err = b.SetLong(f.off, f.val); err != nil {
			return 0, err
		}
	}

	l.Debug("result:OK",
		slog.Int64("size", info.Size),
		slog.Int64("rsrc_size", rsrc),
		slog.String("type", string(fndr[0:4])),
		slog.String("creator", string(fndr[4:8])))

	return result(b, oserr.NoErr)
}

// SetFileInfo updates the Finder info of a named file.
//
// The creation and modification dates in the block are ignored.
func SetFileInfo(tb *Toolbox, trap uint16) (oserr.ResultCode, error) {
	b := tb.paramBlock(fileInfoSpan)

	name, err := tb.readName(b)
	if err != nil {
		return 0, err
	}
	if name == "" {
		return result(b, oserr.BdNamErr)
	}

	l := tb.Logger.With(
		slog.String("function", "SetFileInfo"),
		slog.String("name", name))

	// check if the file actually exists
	if _, err = tb.FS.Stat(name); err != nil {
		d0 := oserr.FromError(err)
		l.Debug("stat failed",
			slog.String("error", err.Error()),
			slog.String("result", d0.String()))
		return result(b, d0)
	}

	data, err := b.Bytes(offFlFndr, finder.GuestInfoSize)
	if err != nil {
		return 0, err
	}

	var fndr [finder.GuestInfoSize]uint8
	copy(fndr[:], data)

	if err = tb.Finder.WriteFinderInfo(name, fndr); err != nil {
		d0 := oserr.FromError(err)
		l.Debug("failed to store finder info",
			slog.String("error", err.Error()),
			slog.String("result", d0.String()))
		return result(b, d0)
	}

	l.Debug("result:OK",
		slog.String("type", string(fndr[0:4])),
		slog.String("creator", string(fndr[4:8])))

	return result(b, oserr.NoErr)
}
