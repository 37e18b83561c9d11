// Package pblock provides access to the parameter blocks which
// File Manager traps use to pass their arguments and results.
//
// A parameter block lives in guest memory, at the address held in A0
// when the trap is raised.  Each trap has its own layout, so a Block
// is created with the documented size of the call it belongs to and
// refuses any field access which would fall outside of that size.
package pblock

import (
	"encoding/binary"
	"fmt"

	"github.com/skx/mpwfs/memory"
)

// Memory is the subset of guest memory a Block needs.
//
// It is implemented by *memory.Memory.
type Memory interface {
	// GetRange returns a copy of size bytes starting at addr.
	GetRange(addr uint32, size int) ([]uint8, error)

	// SetRange stores the given bytes starting at addr.
	SetRange(addr uint32, data ...uint8) error
}

// Block is a single parameter block.
type Block struct {
	// mem is the guest memory the block lives within.
	mem Memory

	// Base is the guest address of the first byte of the block.
	Base uint32

	// Span is the number of bytes the block is documented to occupy.
	Span uint32
}

// New returns a Block of the given span at base.
func New(mem Memory, base uint32, span uint32) *Block {
	return &Block{mem: mem, Base: base, Span: span}
}

// addr validates the field at off, of the given width, and returns
// the guest address of it.
func (b *Block) addr(off uint32, width int) (uint32, error) {
	end := uint64(off) + uint64(width)
	if width < 0 || end > uint64(b.Span) {
		return 0, fmt.Errorf("%w: field at +%d (%d bytes) outside %d byte block at 0x%08X",
			memory.ErrMemoryFault, off, width, b.Span, b.Base)
	}
	if uint64(b.Base)+end > 0xFFFFFFFF+1 {
		return 0, fmt.Errorf("%w: block at 0x%08X wraps the address space",
			memory.ErrMemoryFault, b.Base)
	}
	return b.Base + off, nil
}

// Bytes returns a copy of n raw bytes at off.
func (b *Block) Bytes(off uint32, n int) ([]uint8, error) {
	a, err := b.addr(off, n)
	if err != nil {
		return nil, err
	}
	return b.mem.GetRange(a, n)
}

// SetBytes copies data into the block at off.
func (b *Block) SetBytes(off uint32, data []uint8) error {
	a, err := b.addr(off, len(data))
	if err != nil {
		return err
	}
	return b.mem.SetRange(a, data...)
}

// Byte reads the byte at off.
func (b *Block) Byte(off uint32) (uint8, error) {
	d, err := b.Bytes(off, 1)
	if err != nil {
		return 0, err
	}
	return d[0], nil
}

// Word reads the big-endian word at off.
func (b *Block) Word(off uint32) (uint16, error) {
	d, err := b.Bytes(off, 2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(d), nil
}

// Long reads the big-endian long at off.
func (b *Block) Long(off uint32) (uint32, error) {
	d, err := b.Bytes(off, 4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(d), nil
}

// SetByte stores a byte at off.
func (b *Block) SetByte(off uint32, v uint8) error {
	return b.SetBytes(off, []uint8{v})
}

// SetWord stores a big-endian word at off.
func (b *Block) SetWord(off uint32, v uint16) error {
	return b.SetBytes(off, binary.BigEndian.AppendUint16(nil, v))
}

// SetLong stores a big-endian long at off.
func (b *Block) SetLong(off uint32, v uint32) error {
	return b.SetBytes(off, binary.BigEndian.AppendUint32(nil, v))
}
