// Package toolbox implements the Mac OS File Manager traps we emulate,
// translating them into operations upon the host filesystem.
//
// Each trap receives its arguments in a parameter block, the address of
// which is held in A0.  The handler reads the block, performs the work
// against the host, and writes the results back into the block, along
// with a result code which is also returned to the caller in D0.
package toolbox

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/skx/mpwfs/finder"
	"github.com/skx/mpwfs/host"
	"github.com/skx/mpwfs/memory"
	"github.com/skx/mpwfs/oserr"
	"github.com/skx/mpwfs/pblock"
)

var (
	// ErrUnimplemented is returned when a trap we don't know is dispatched.
	//
	// It should be handled and expected by callers.
	ErrUnimplemented = errors.New("UNIMPLEMENTED")

	// ErrBadVolumeName is returned by WithVolumeName for names a Mac
	// couldn't use.
	ErrBadVolumeName = errors.New("volume names must be 1-27 characters, without ':'")
)

// DefaultVolumeName is the name of the only volume we report.
const DefaultVolumeName = "MacOS"

// Memory is the guest memory the handlers work with.
//
// It is implemented by *memory.Memory.
type Memory interface {
	GetRange(addr uint32, size int) ([]uint8, error)
	SetRange(addr uint32, data ...uint8) error
}

// TrapHandlerType contains the signature of a trap handler.
//
// The returned code is stored in D0 by Dispatch.  An error is returned
// only for faults which prevent the handler from completing at all,
// such as a parameter block which lies outside of guest memory.
type TrapHandlerType func(tb *Toolbox, trap uint16) (oserr.ResultCode, error)

// TrapHandler contains details of a specific trap we implement.
//
// While we mostly need a "number to handler" mapping, having a name
// is useful for the logs we produce.
type TrapHandler struct {
	// Desc contains the human-readable name of the trap.
	Desc string

	// Handler contains the function which should be invoked for this trap.
	Handler TrapHandlerType
}

// Toolbox holds the state our handlers need.
type Toolbox struct {
	// mu serializes all trap handling.  None of the handlers are
	// safe to run concurrently, as they share guest memory and
	// registers.
	mu sync.Mutex

	// volumeName is the name reported by GetVol.
	volumeName string

	// Traps contains the traps we know how to emulate, indexed by
	// their trap number with the flag bits removed.
	Traps map[uint16]TrapHandler

	// Memory contains the guest memory.
	Memory Memory

	// CPU gives us access to the registers of the guest.
	CPU Registers

	// FS is the host filesystem we operate upon.
	FS host.FS

	// Finder handles Finder info and resource forks.
	Finder *finder.Finder

	// Logger holds a logger which we use for debugging and diagnostics.
	Logger *slog.Logger
}

// Option is a function which configures a Toolbox.
type Option func(tb *Toolbox) error

// WithMemory sets the guest memory.
func WithMemory(mem Memory) Option {
	return func(tb *Toolbox) error {
		tb.Memory = mem
		return nil
	}
}

// WithRegisters sets the CPU registers we read arguments from.
func WithRegisters(cpu Registers) Option {
	return func(tb *Toolbox) error {
		tb.CPU = cpu
		return nil
	}
}

// WithFS sets the host filesystem.
func WithFS(fs host.FS) Option {
	return func(tb *Toolbox) error {
		tb.FS = fs
		return nil
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(tb *Toolbox) error {
		tb.Logger = logger
		return nil
	}
}

// WithVolumeName sets the name reported for the default volume.
func WithVolumeName(name string) Option {
	return func(tb *Toolbox) error {
		if len(name) < 1 || len(name) > 27 {
			return ErrBadVolumeName
		}
		for _, c := range name {
			if c == ':' {
				return ErrBadVolumeName
			}
		}
		tb.volumeName = name
		return nil
	}
}

// Trap numbers, without flag bits.
const (
	TrapCreate      uint16 = 0xA008
	TrapDelete      uint16 = 0xA009
	TrapGetFileInfo uint16 = 0xA00C
	TrapSetFileInfo uint16 = 0xA00D
	TrapGetEOF      uint16 = 0xA011
	TrapGetVol      uint16 = 0xA014
	TrapCmpString   uint16 = 0xA03C
)

// flagBits are the modifier bits of an OS trap word.
const flagBits uint16 = 0x0600

// TrapNumber returns the trap word with its flag bits removed.
func TrapNumber(trap uint16) uint16 {
	return trap &^ flagBits
}

// New returns a new Toolbox, configured by the given options.
//
// Anything not configured gets a default: 16Mb of memory, a fresh
// register file, the real host filesystem, and the default logger.
func New(options ...Option) (*Toolbox, error) {

	//
	// Create and populate our trap table
	//
	traps := make(map[uint16]TrapHandler)
	traps[TrapCreate] = TrapHandler{
		Desc:    "Create",
		Handler: Create,
	}
	traps[TrapDelete] = TrapHandler{
		Desc:    "Delete",
		Handler: Delete,
	}
	traps[TrapGetFileInfo] = TrapHandler{
		Desc:    "GetFileInfo",
		Handler: GetFileInfo,
	}
	traps[TrapSetFileInfo] = TrapHandler{
		Desc:    "SetFileInfo",
		Handler: SetFileInfo,
	}
	traps[TrapGetEOF] = TrapHandler{
		Desc:    "GetEOF",
		Handler: GetEOF,
	}
	traps[TrapGetVol] = TrapHandler{
		Desc:    "GetVol",
		Handler: GetVol,
	}
	traps[TrapCmpString] = TrapHandler{
		Desc:    "CmpString",
		Handler: CmpString,
	}

	tb := &Toolbox{
		Traps:      traps,
		volumeName: DefaultVolumeName,
	}

	for _, opt := range options {
		if err := opt(tb); err != nil {
			return nil, err
		}
	}

	if tb.Memory == nil {
		tb.Memory = memory.New(0)
	}
	if tb.CPU == nil {
		tb.CPU = new(CPU)
	}
	if tb.FS == nil {
		tb.FS = host.NewOS()
	}
	if tb.Logger == nil {
		tb.Logger = slog.Default()
	}
	tb.Finder = finder.New(tb.FS, tb.Logger)

	return tb, nil
}

// VolumeName returns the name of our only volume.
func (tb *Toolbox) VolumeName() string {
	return tb.volumeName
}

// Dispatch runs the handler for the given trap, storing its result in D0.
//
// Traps are handled one at a time, even if Dispatch is called from
// several goroutines.
func (tb *Toolbox) Dispatch(trap uint16) error {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	handler, exists := tb.Traps[TrapNumber(trap)]
	if !exists {
		tb.Logger.Error("Unimplemented trap",
			slog.String("trap", fmt.Sprintf("0x%04X", trap)))
		return ErrUnimplemented
	}

	tb.Logger.Info("Trap",
		slog.String("name", handler.Desc),
		slog.String("trap", fmt.Sprintf("0x%04X", trap)))

	d0, err := handler.Handler(tb, trap)
	if err != nil {
		return fmt.Errorf("%s: %w", handler.Desc, err)
	}

	tb.CPU.SetDReg(0, d0.Long())
	return nil
}

// paramBlock returns the parameter block pointed to by A0.
func (tb *Toolbox) paramBlock(span uint32) *pblock.Block {
	return pblock.New(tb.Memory, tb.CPU.AReg(0), span)
}
