// Package chip8 implements the CHIP-8 virtual machine: memory, registers,
// call stack, timers, keypad, framebuffer and the instruction cycle.
//
// Reference: http://devernay.free.fr/hacks/chip8/C8TECH10.HTM
package chip8

import (
	cryptorand "crypto/rand"
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"os"
	"time"
)

// Tracer is called with the address and the decoded form of every
// instruction before it executes.
type Tracer func(pc uint16, in Instruction)

// Option configures a VM.
type Option func(*VM)

// WithLoadOffset sets the address ROM images are loaded to and execution starts at.
func WithLoadOffset(offset uint16) Option {
	return func(vm *VM) {
		vm.loadOffset = offset
		vm.pc = offset
	}
}

// WithSeed seeds the random number source used by the RND instruction.
func WithSeed(seed int64) Option {
	return func(vm *VM) {
		vm.random = newRandom(seed)
	}
}

// WithRandom replaces the random byte source used by the RND instruction.
func WithRandom(random func() byte) Option {
	return func(vm *VM) {
		vm.random = random
	}
}

// WithTracer installs an instruction tracer.
func WithTracer(tracer Tracer) Option {
	return func(vm *VM) {
		vm.tracer = tracer
	}
}

// VM is one CHIP-8 machine running one program. It is not safe for
// concurrent use. There is no reset, load a new program into a new VM.
type VM struct {
	mem     Memory
	reg     Registers
	stack   Stack
	display Display
	timers  Timers
	keypad  Keypad

	// program counter, the address of the next instruction
	pc         uint16
	loadOffset uint16

	halted     bool
	haltReason HaltReason
	err        error

	// FX0A blocks execution until a key gets pressed,
	// the key is stored in keyRegister.
	awaitingKey bool
	keyRegister uint8

	random func() byte
	tracer Tracer
}

// New returns a VM with the glyph table loaded at address 0.
func New(options ...Option) *VM {
	vm := &VM{
		pc:         ProgramStart,
		loadOffset: ProgramStart,
	}
	copy(vm.mem.ram[:], glyphs[:])
	for _, option := range options {
		option(vm)
	}
	if vm.random == nil {
		vm.random = newRandom(NewSeed())
	}
	return vm
}

func (vm *VM) String() string {
	return fmt.Sprintf("[PC: 0x%03X, I: 0x%03X, SP: %d]", vm.pc, vm.reg.i, vm.stack.Depth())
}

// LoadROM copies a program image to the load offset.
func (vm *VM) LoadROM(rom []byte) error {
	if int(vm.loadOffset)+len(rom) > MemorySize {
		return fmt.Errorf("%w: %d bytes at 0x%03X", ErrROMTooLarge, len(rom), vm.loadOffset)
	}
	return vm.mem.Load(vm.loadOffset, rom)
}

// ReadROMFile loads the program image stored at path.
func (vm *VM) ReadROMFile(path string) error {
	rom, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading rom file: %w", err)
	}
	return vm.LoadROM(rom)
}

// Step fetches, decodes and executes one instruction. Faults halt the VM
// and are returned; stepping a halted VM or one waiting for a key does nothing.
func (vm *VM) Step() error {
	if vm.halted || vm.awaitingKey {
		return nil
	}

	pc := vm.pc
	opcode, err := vm.fetchOpCode()
	if err != nil {
		return vm.fault(HaltOutOfBounds, fmt.Errorf("fetching opcode at 0x%03X: %w", pc, err))
	}
	vm.pc += 2

	in := Decode(opcode)
	if vm.tracer != nil {
		vm.tracer(pc, in)
	}
	if err := vm.execute(in); err != nil {
		return vm.fault(haltReasonOf(err), fmt.Errorf("executing %s (0x%04X) at 0x%03X: %w", in, opcode, pc, err))
	}
	return nil
}

// fetchOpCode reads the big-endian instruction word at pc.
//
//	memory[pc]     == 0xA2
//	memory[pc + 1] == 0xF0
//	0xA2 << 8 | 0xF0 == 0xA2F0
func (vm *VM) fetchOpCode() (uint16, error) {
	b, err := vm.mem.Slice(vm.pc, 2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

func (vm *VM) fault(reason HaltReason, err error) error {
	vm.halted = true
	vm.haltReason = reason
	vm.err = err
	return err
}

// TickTimers decrements the delay and sound timers once.
// A halted VM keeps its timers frozen.
func (vm *VM) TickTimers() {
	if vm.halted {
		return
	}
	vm.timers.Tick()
}

// SetKeys replaces the keypad snapshot. A pending key wait completes with
// the first key that went down since the previous snapshot.
func (vm *VM) SetKeys(keys [KeyCount]bool) {
	vm.keypad.Update(keys)
	if !vm.awaitingKey {
		return
	}
	if key, ok := vm.keypad.JustPressed(); ok {
		vm.reg.v[vm.keyRegister] = key
		vm.awaitingKey = false
	}
}

// Halted reports whether the VM stopped executing permanently.
func (vm *VM) Halted() bool { return vm.halted }

// HaltReason returns why the VM halted.
func (vm *VM) HaltReason() HaltReason { return vm.haltReason }

// Err returns the fault that halted the VM, nil for a deliberate halt.
func (vm *VM) Err() error { return vm.err }

// AwaitingKey reports whether execution is blocked on a key press.
func (vm *VM) AwaitingKey() bool { return vm.awaitingKey }

// PC returns the program counter.
func (vm *VM) PC() uint16 { return vm.pc }

// Registers returns the register file.
func (vm *VM) Registers() *Registers { return &vm.reg }

// Memory returns the memory of the VM.
func (vm *VM) Memory() *Memory { return &vm.mem }

// Display returns the framebuffer.
func (vm *VM) Display() *Display { return &vm.display }

// StackDepth returns the number of active subroutine calls.
func (vm *VM) StackDepth() int { return vm.stack.Depth() }

// DelayTimer returns the delay timer value.
func (vm *VM) DelayTimer() byte { return vm.timers.Delay }

// SoundTimer returns the sound timer value.
func (vm *VM) SoundTimer() byte { return vm.timers.Sound }

// NewSeed returns a random seed. It tries to use a crypto seed before
// falling back to time.
func NewSeed() int64 {
	cryptoseed, err := cryptorand.Int(cryptorand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		// This should not happen, but worst-case fallback to time-based seed.
		return time.Now().UnixNano()
	}
	return cryptoseed.Int64()
}

func newRandom(seed int64) func() byte {
	r := rand.New(rand.NewSource(seed))
	return func() byte {
		return byte(r.Intn(256))
	}
}
