package chip8

import "fmt"

const (
	// MemorySize is the total amount of addressable memory in bytes.
	MemorySize = 4096
	// ProgramStart is the default address ROM images are loaded to.
	ProgramStart = 0x200
	// RegisterCount is the number of general purpose V registers.
	RegisterCount = 16
	// FlagRegister is the index of VF.
	FlagRegister = 0xF
)

// Memory is the 4K byte store of the machine.
//
//	+---------------+= 0xFFF (4095) End of Chip-8 RAM
//	|               |
//	| 0x200 to 0xFFF|
//	|     Chip-8    |
//	| Program / Data|
//	|     Space     |
//	|               |
//	+---------------+= 0x200 (512) Start of most Chip-8 programs
//	| 0x000 to 0x1FF|
//	| Reserved for  |
//	|  interpreter  |
//	+---------------+= 0x000 (0) Start of Chip-8 RAM, glyph table
type Memory struct {
	ram [MemorySize]byte
}

// Read returns the byte at addr.
func (m *Memory) Read(addr uint16) (byte, error) {
	if int(addr) >= MemorySize {
		return 0, fmt.Errorf("%w: read of address 0x%04X", ErrOutOfBounds, addr)
	}
	return m.ram[addr], nil
}

// Write stores value at addr.
func (m *Memory) Write(addr uint16, value byte) error {
	if int(addr) >= MemorySize {
		return fmt.Errorf("%w: write of address 0x%04X", ErrOutOfBounds, addr)
	}
	m.ram[addr] = value
	return nil
}

// Slice returns a writable view of n bytes starting at addr.
// The whole range has to be addressable, nothing is returned partially.
func (m *Memory) Slice(addr uint16, n int) ([]byte, error) {
	end := int(addr) + n
	if n < 0 || end > MemorySize {
		return nil, fmt.Errorf("%w: range 0x%04X-0x%04X", ErrOutOfBounds, addr, end-1)
	}
	return m.ram[addr:end], nil
}

// Load copies data into memory starting at offset.
func (m *Memory) Load(offset uint16, data []byte) error {
	dst, err := m.Slice(offset, len(data))
	if err != nil {
		return err
	}
	copy(dst, data)
	return nil
}

// Registers is the register file: V0 to VF and the address register I.
// VF doubles as the flag register and is overwritten by every opcode that defines a flag.
type Registers struct {
	v [RegisterCount]byte
	i uint16
}

// Get returns the value of register Vx.
func (r *Registers) Get(x uint8) (byte, error) {
	if x >= RegisterCount {
		return 0, fmt.Errorf("%w: register V%d", ErrOutOfBounds, x)
	}
	return r.v[x], nil
}

// Set stores value in register Vx.
func (r *Registers) Set(x uint8, value byte) error {
	if x >= RegisterCount {
		return fmt.Errorf("%w: register V%d", ErrOutOfBounds, x)
	}
	r.v[x] = value
	return nil
}

// SetFlag sets VF to 1 or 0.
func (r *Registers) SetFlag(set bool) {
	if set {
		r.v[FlagRegister] = 1
	} else {
		r.v[FlagRegister] = 0
	}
}

// Index returns the address register I.
func (r *Registers) Index() uint16 {
	return r.i
}

// SetIndex sets the address register I.
func (r *Registers) SetIndex(value uint16) {
	r.i = value
}
