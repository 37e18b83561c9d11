package main

import (
	"errors"
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/skx/mpwfs/mactime"
	"github.com/skx/mpwfs/pstring"
	"github.com/skx/mpwfs/toolbox"
)

// errDifferent is returned by cmp when the strings are not equal.
var errDifferent = errors.New("strings differ")

// commandFunc runs a single command, with the arguments which follow it.
type commandFunc func(d *driver, args []string) error

var commands = map[string]commandFunc{
	"create":  runCreate,
	"delete":  runDelete,
	"info":    runInfo,
	"settype": runSetType,
	"eof":     runEOF,
	"vol":     runVol,
	"cmp":     runCmp,
}

// commandNames returns the names of our commands, for usage messages.
func commandNames() string {
	var names []string
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// usage returns an error describing the arguments a command takes.
func usage(args string) error {
	return fmt.Errorf("usage: mpwfs %s", args)
}

// named runs a trap which takes nothing but a name.
func named(d *driver, name string, trap uint16, path string) error {
	b, err := d.block()
	if err != nil {
		return err
	}
	if err = d.setName(b, path); err != nil {
		return err
	}

	code, err := d.trap(trap)
	if err != nil {
		return err
	}
	if err = check(name, path, code); err != nil {
		return err
	}

	fmt.Fprintf(d.out, "%s %s: %s\n", name, path, code)
	return nil
}

func runCreate(d *driver, args []string) error {
	if len(args) != 1 {
		return usage("create <path>")
	}
	return named(d, "create", toolbox.TrapCreate, args[0])
}

func runDelete(d *driver, args []string) error {
	if len(args) != 1 {
		return usage("delete <path>")
	}
	return named(d, "delete", toolbox.TrapDelete, args[0])
}

func runInfo(d *driver, args []string) error {
	if len(args) != 1 {
		return usage("info <path>")
	}
	path := args[0]

	b, err := d.block()
	if err != nil {
		return err
	}
	if err = d.setName(b, path); err != nil {
		return err
	}

	code, err := d.trap(toolbox.TrapGetFileInfo)
	if err != nil {
		return err
	}
	if err = check("info", path, code); err != nil {
		return err
	}

	fndr, err := b.Bytes(offFlFndr, 16)
	if err != nil {
		return err
	}
	flags, err := b.Word(offFlFndr + 8)
	if err != nil {
		return err
	}

	longs := make(map[uint32]uint32)
	for _, off := range []uint32{offFlLgLen, offFlRLgLen, offFlCrDat, offFlMdDat} {
		longs[off], err = b.Long(off)
		if err != nil {
			return err
		}
	}

	const stamp = "2006-01-02 15:04:05"

	fmt.Fprintf(d.out, "name:     %s\n", path)
	fmt.Fprintf(d.out, "type:     %q\n", fndr[0:4])
	fmt.Fprintf(d.out, "creator:  %q\n", fndr[4:8])
	fmt.Fprintf(d.out, "flags:    0x%04X\n", flags)
	fmt.Fprintf(d.out, "data:     %d\n", longs[offFlLgLen])
	fmt.Fprintf(d.out, "rsrc:     %d\n", longs[offFlRLgLen])
	fmt.Fprintf(d.out, "created:  %s\n", mactime.MacToUnix(longs[offFlCrDat]).Format(stamp))
	fmt.Fprintf(d.out, "modified: %s\n", mactime.MacToUnix(longs[offFlMdDat]).Format(stamp))
	return nil
}

// fourCC pads s to a four-character code.
func fourCC(s string) ([]uint8, error) {
	if len(s) < 1 || len(s) > 4 {
		return nil, fmt.Errorf("%q is not a valid four-character code", s)
	}
	return []uint8(s + strings.Repeat(" ", 4-len(s))), nil
}

func runSetType(d *driver, args []string) error {
	if len(args) != 3 {
		return usage("settype <path> <type> <creator>")
	}
	path := args[0]

	fileType, err := fourCC(args[1])
	if err != nil {
		return err
	}
	creator, err := fourCC(args[2])
	if err != nil {
		return err
	}

	b, err := d.block()
	if err != nil {
		return err
	}
	if err = d.setName(b, path); err != nil {
		return err
	}

	// Fetch the current info, so the flags are preserved.
	code, err := d.trap(toolbox.TrapGetFileInfo)
	if err != nil {
		return err
	}
	if err = check("settype", path, code); err != nil {
		return err
	}

	if err = b.SetBytes(offFlFndr, fileType); err != nil {
		return err
	}
	if err = b.SetBytes(offFlFndr+4, creator); err != nil {
		return err
	}

	code, err = d.trap(toolbox.TrapSetFileInfo)
	if err != nil {
		return err
	}
	if err = check("settype", path, code); err != nil {
		return err
	}

	fmt.Fprintf(d.out, "settype %s: %s\n", path, code)
	return nil
}

func runEOF(d *driver, args []string) error {
	if len(args) != 1 {
		return usage("eof <path>")
	}
	path := args[0]

	fd, err := d.fs.Open(path)
	if err != nil {
		return err
	}
	defer d.fs.Close(fd)

	if fd > 0x7FFF {
		return fmt.Errorf("descriptor %d cannot be used as a reference number", fd)
	}

	b, err := d.block()
	if err != nil {
		return err
	}
	if err = b.SetWord(offRefNum, uint16(fd)); err != nil {
		return err
	}

	code, err := d.trap(toolbox.TrapGetEOF)
	if err != nil {
		return err
	}
	if err = check("eof", path, code); err != nil {
		return err
	}

	size, err := b.Long(offMisc)
	if err != nil {
		return err
	}
	fmt.Fprintf(d.out, "%d\n", size)
	return nil
}

func runVol(d *driver, args []string) error {
	if len(args) != 0 {
		return usage("vol")
	}

	b, err := d.block()
	if err != nil {
		return err
	}
	if err = b.SetLong(offNamePtr, nameAddr); err != nil {
		return err
	}

	code, err := d.trap(toolbox.TrapGetVol)
	if err != nil {
		return err
	}
	if err = check("vol", "", code); err != nil {
		return err
	}

	name, err := pstring.Read(d.mem, nameAddr)
	if err != nil {
		return err
	}
	ref, err := b.Word(offVRefNum)
	if err != nil {
		return err
	}

	fmt.Fprintf(d.out, "volume:  %s\n", name)
	fmt.Fprintf(d.out, "vRefNum: %d\n", int16(ref))
	return nil
}

func runCmp(d *driver, args []string) error {
	fs := flag.NewFlagSet("cmp", flag.ContinueOnError)
	caseSensitive := fs.Bool("case", false, "compare case-sensitively")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return usage("cmp [-case] <a> <b>")
	}

	a := fs.Arg(0)
	b := fs.Arg(1)
	if len(a) > 0xFFFF || len(b) > 0xFFFF {
		return fmt.Errorf("strings must be shorter than 64K")
	}

	if err := d.mem.SetRange(aAddr, []uint8(a)...); err != nil {
		return err
	}
	if err := d.mem.SetRange(bAddr, []uint8(b)...); err != nil {
		return err
	}

	trap := toolbox.TrapCmpString
	if *caseSensitive {
		trap |= 0x0200
	}

	d.cpu.SetAReg(0, aAddr)
	d.cpu.SetAReg(1, bAddr)
	d.cpu.SetDReg(0, uint32(len(a))<<16|uint32(len(b)))

	if err := d.tb.Dispatch(trap); err != nil {
		return err
	}

	if d.cpu.DReg(0) != 0 {
		fmt.Fprintf(d.out, "different\n")
		return errDifferent
	}
	fmt.Fprintf(d.out, "equal\n")
	return nil
}
