// Package memory provides the guest RAM within which the emulated
// 68k programs live, and from which our trap handlers read their
// parameter blocks.
//
// The 68k is big-endian, so multi-byte values are stored with the
// most significant byte first.  Unlike real hardware every access is
// bounds-checked, and a read or write outside the allocated RAM fails
// with ErrMemoryFault rather than touching adjacent memory.
package memory

import (
	"errors"
	"fmt"
	"os"
)

// DefaultSize is the amount of RAM we allocate if no size is given, 16Mb
// which is the whole of the 24-bit address space.
const DefaultSize = 16 * 1024 * 1024

// ErrMemoryFault is returned when an access falls outside of RAM.
var ErrMemoryFault = errors.New("MEMORY FAULT")

// Memory provides a byte array of guest memory.
type Memory struct {
	buf []uint8
}

// New returns a new memory of the given size, which is zero-filled.
//
// A size of zero means DefaultSize.
func New(size int) *Memory {
	if size <= 0 {
		size = DefaultSize
	}
	return &Memory{buf: make([]uint8, size)}
}

// Size returns the number of bytes of RAM we have.
func (m *Memory) Size() int {
	return len(m.buf)
}

// check ensures that size bytes from addr are all within RAM.
func (m *Memory) check(addr uint32, size int) error {
	if size < 0 || uint64(addr)+uint64(size) > uint64(len(m.buf)) {
		return fmt.Errorf("%w: access of %d bytes at 0x%08X", ErrMemoryFault, size, addr)
	}
	return nil
}

// Set sets a byte at addr of memory.
func (m *Memory) Set(addr uint32, value uint8) error {
	if err := m.check(addr, 1); err != nil {
		return err
	}
	m.buf[addr] = value
	return nil
}

// Get returns a byte at addr of memory.
func (m *Memory) Get(addr uint32) (uint8, error) {
	if err := m.check(addr, 1); err != nil {
		return 0, err
	}
	return m.buf[addr], nil
}

// GetU16 returns a big-endian word from the given address of memory.
func (m *Memory) GetU16(addr uint32) (uint16, error) {
	if err := m.check(addr, 2); err != nil {
		return 0, err
	}
	return uint16(m.buf[addr])<<8 | uint16(m.buf[addr+1]), nil
}

// SetU16 stores a big-endian word at the given address.
func (m *Memory) SetU16(addr uint32, value uint16) error {
	if err := m.check(addr, 2); err != nil {
		return err
	}
	m.buf[addr] = uint8(value >> 8)
	m.buf[addr+1] = uint8(value)
	return nil
}

// GetU32 returns a big-endian long from the given address of memory.
func (m *Memory) GetU32(addr uint32) (uint32, error) {
	if err := m.check(addr, 4); err != nil {
		return 0, err
	}
	return uint32(m.buf[addr])<<24 |
		uint32(m.buf[addr+1])<<16 |
		uint32(m.buf[addr+2])<<8 |
		uint32(m.buf[addr+3]), nil
}

// SetU32 stores a big-endian long at the given address.
func (m *Memory) SetU32(addr uint32, value uint32) error {
	if err := m.check(addr, 4); err != nil {
		return err
	}
	m.buf[addr] = uint8(value >> 24)
	m.buf[addr+1] = uint8(value >> 16)
	m.buf[addr+2] = uint8(value >> 8)
	m.buf[addr+3] = uint8(value)
	return nil
}

// SetRange copies bytes from the given data to the specified
// starting address in RAM.
func (m *Memory) SetRange(addr uint32, data ...uint8) error {
	if err := m.check(addr, len(data)); err != nil {
		return err
	}
	copy(m.buf[addr:], data)
	return nil
}

// FillRange fills an area of memory with the given byte
func (m *Memory) FillRange(addr uint32, size int, char uint8) error {
	if err := m.check(addr, size); err != nil {
		return err
	}
	for i := 0; i < size; i++ {
		m.buf[int(addr)+i] = char
	}
	return nil
}

// GetRange returns a copy of the contents of a given range
func (m *Memory) GetRange(addr uint32, size int) ([]uint8, error) {
	if err := m.check(addr, size); err != nil {
		return nil, err
	}
	ret := make([]uint8, size)
	copy(ret, m.buf[addr:])
	return ret, nil
}

// LoadFile loads the contents of the named file at the given address.
func (m *Memory) LoadFile(addr uint32, name string) error {

	// Load the binary
	prog, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	return m.SetRange(addr, prog...)
}
