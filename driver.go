package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/skx/mpwfs/host"
	"github.com/skx/mpwfs/memory"
	"github.com/skx/mpwfs/oserr"
	"github.com/skx/mpwfs/pblock"
	"github.com/skx/mpwfs/pstring"
	"github.com/skx/mpwfs/toolbox"
)

// Where things live in guest memory.
const (
	guestSize = 0x30000
	pbAddr    = 0x1000
	nameAddr  = 0x1100
	aAddr     = 0x10000
	bAddr     = 0x20000

	// The largest parameter block we use, GetFileInfo.
	pbSize = 80
)

// Offsets of the fields we fill in, or report.
const (
	offNamePtr  = 18
	offVRefNum  = 22
	offRefNum   = 24
	offMisc     = 28
	offFlFndr   = 32
	offFlLgLen  = 54
	offFlRLgLen = 64
	offFlCrDat  = 72
	offFlMdDat  = 76
)

// driver plays the part of the guest: it owns the memory and registers,
// lays out parameter blocks, and raises traps.
type driver struct {
	tb  *toolbox.Toolbox
	mem *memory.Memory
	cpu *toolbox.CPU
	fs  *host.OS
	out io.Writer
}

// newDriver returns a driver with a toolbox attached to the real filesystem.
func newDriver(volume string, logger *slog.Logger, out io.Writer) (*driver, error) {
	d := &driver{
		mem: memory.New(guestSize),
		cpu: new(toolbox.CPU),
		fs:  host.NewOS(),
		out: out,
	}

	tb, err := toolbox.New(
		toolbox.WithMemory(d.mem),
		toolbox.WithRegisters(d.cpu),
		toolbox.WithFS(d.fs),
		toolbox.WithLogger(logger),
		toolbox.WithVolumeName(volume),
	)
	if err != nil {
		return nil, err
	}
	d.tb = tb
	return d, nil
}

// block returns a fresh, zeroed, parameter block.
func (d *driver) block() (*pblock.Block, error) {
	if err := d.mem.FillRange(pbAddr, pbSize, 0); err != nil {
		return nil, err
	}
	return pblock.New(d.mem, pbAddr, pbSize), nil
}

// setName stores name as the ioNamePtr of b.
func (d *driver) setName(b *pblock.Block, name string) error {
	if len(name) > pstring.MaxLength {
		return fmt.Errorf("name too long, %d bytes, maximum is %d", len(name), pstring.MaxLength)
	}
	if err := pstring.Write(d.mem, nameAddr, name); err != nil {
		return err
	}
	return b.SetLong(offNamePtr, nameAddr)
}

// trap raises the given trap with A0 pointing at our parameter block,
// returning the result left in D0.
func (d *driver) trap(trap uint16) (oserr.ResultCode, error) {
	d.cpu.SetAReg(0, pbAddr)

	if err := d.tb.Dispatch(trap); err != nil {
		return 0, err
	}
	return oserr.ResultCode(int16(d.cpu.DReg(0))), nil
}

// check converts a failing result into an error, mentioning the path.
func check(name string, path string, code oserr.ResultCode) error {
	if code == oserr.NoErr {
		return nil
	}
	return fmt.Errorf("%s %s: %s (%d)", name, path, code, int16(code))
}
