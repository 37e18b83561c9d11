package toolbox

// Registers is the view of the 68k register file our handlers need.
type Registers interface {
	// AReg returns the value of address register An.
	AReg(n int) uint32

	// DReg returns the value of data register Dn.
	DReg(n int) uint32

	// SetDReg updates data register Dn.
	SetDReg(n int, v uint32)
}

// CPU is a bare register file, which implements Registers.
//
// It is used when no CPU core is attached, by the command-line
// driver and in tests.
type CPU struct {
	// D holds the data registers.
	D [8]uint32

	// A holds the address registers.
	A [8]uint32
}

// AReg returns the value of An.
func (c *CPU) AReg(n int) uint32 {
	return c.A[n&7]
}

// DReg returns the value of Dn.
func (c *CPU) DReg(n int) uint32 {
	return c.D[n&7]
}

// SetDReg updates Dn.
func (c *CPU) SetDReg(n int, v uint32) {
	c.D[n&7] = v
}

// SetAReg updates An.
func (c *CPU) SetAReg(n int, v uint32) {
	c.A[n&7] = v
}
