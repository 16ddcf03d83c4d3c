package chip8

import "fmt"

// VX == vm.reg.v[x]
// VY == vm.reg.v[y]
// VF == vm.reg.v[0xF]
func (vm *VM) execute(in Instruction) error {
	switch in.Op {
	case OpHalt:
		vm.halted = true
		vm.haltReason = HaltDeliberate
	case OpInvalid:
		return fmt.Errorf("%w: 0x%04X", ErrInvalidOpcode, in.Word)
	case OpClear:
		vm.display.Clear()
	case OpReturn:
		return vm.ret()
	case OpJump:
		vm.pc = in.NNN
	case OpCall:
		vm.call(in.NNN)
	case OpSkipEqualImm:
		vm.skipIf(vm.reg.v[in.X] == in.NN)
	case OpSkipNotEqualImm:
		vm.skipIf(vm.reg.v[in.X] != in.NN)
	case OpSkipEqualReg:
		vm.skipIf(vm.reg.v[in.X] == vm.reg.v[in.Y])
	case OpLoadImm:
		vm.reg.v[in.X] = in.NN
	case OpAddImm:
		// carry flag is not changed
		vm.reg.v[in.X] += in.NN
	case OpLoadReg:
		vm.reg.v[in.X] = vm.reg.v[in.Y]
	case OpOr:
		vm.reg.v[in.X] |= vm.reg.v[in.Y]
	case OpAnd:
		vm.reg.v[in.X] &= vm.reg.v[in.Y]
	case OpXor:
		vm.reg.v[in.X] ^= vm.reg.v[in.Y]
	case OpAdd:
		vm.add(in.X, in.Y)
	case OpSub:
		vm.sub(in.X, in.Y)
	case OpShiftRight:
		vm.shiftr(in.X)
	case OpSubReverse:
		vm.subYX(in.X, in.Y)
	case OpShiftLeft:
		vm.shiftl(in.X)
	case OpSkipNotEqualReg:
		vm.skipIf(vm.reg.v[in.X] != vm.reg.v[in.Y])
	case OpLoadIndex:
		vm.reg.i = in.NNN
	case OpJumpV0:
		vm.pc = in.NNN + uint16(vm.reg.v[0])
	case OpRandom:
		vm.reg.v[in.X] = vm.random() & in.NN
	case OpDraw:
		return vm.draw(in.X, in.Y, in.N)
	case OpSkipKeyPressed:
		vm.skipIf(vm.keypad.Pressed(vm.reg.v[in.X]))
	case OpSkipKeyNotPressed:
		vm.skipIf(!vm.keypad.Pressed(vm.reg.v[in.X]))
	case OpLoadDelay:
		vm.reg.v[in.X] = vm.timers.Delay
	case OpWaitKey:
		vm.awaitingKey = true
		vm.keyRegister = in.X
	case OpSetDelay:
		vm.timers.Delay = vm.reg.v[in.X]
	case OpSetSound:
		vm.timers.Sound = vm.reg.v[in.X]
	case OpAddIndex:
		vm.reg.i += uint16(vm.reg.v[in.X])
	case OpLoadGlyph:
		vm.reg.i = GlyphAddress(vm.reg.v[in.X])
	case OpStoreBCD:
		return vm.bcd(in.X)
	case OpStoreRegisters:
		return vm.regDump(in.X)
	case OpLoadRegisters:
		return vm.regLoad(in.X)
	default:
		return fmt.Errorf("%w: unhandled operation %s", ErrInvalidOpcode, in.Op)
	}
	return nil
}

// ret returns from a subroutine.
func (vm *VM) ret() error {
	addr, err := vm.stack.Pop()
	if err != nil {
		return err
	}
	vm.pc = addr
	return nil
}

// call calls a subroutine at address, pc already points past the call.
func (vm *VM) call(addr uint16) {
	vm.stack.Push(vm.pc)
	vm.pc = addr
}

// skipIf skips the next instruction if cond holds.
// (Usually the next instruction is a jump to skip a code block)
func (vm *VM) skipIf(cond bool) {
	if cond {
		vm.pc += 2
	}
}

// add adds VY to VX. VF is set to 1 when there's a carry, and to 0 when there isn't.
func (vm *VM) add(x, y uint8) {
	sum := uint16(vm.reg.v[x]) + uint16(vm.reg.v[y])
	vm.reg.v[x] = byte(sum)
	vm.reg.SetFlag(sum > 0xFF)
}

// sub subtracts VY from VX. VF is set to 0 when there's a borrow, and 1 when there isn't.
func (vm *VM) sub(x, y uint8) {
	noBorrow := vm.reg.v[x] > vm.reg.v[y]
	vm.reg.v[x] -= vm.reg.v[y]
	vm.reg.SetFlag(noBorrow)
}

// subYX sets VX to VY minus VX. VF is set to 0 when there's a borrow, and 1 when there isn't.
func (vm *VM) subYX(x, y uint8) {
	noBorrow := vm.reg.v[y] > vm.reg.v[x]
	vm.reg.v[x] = vm.reg.v[y] - vm.reg.v[x]
	vm.reg.SetFlag(noBorrow)
}

// shiftr stores the least significant bit of VX in VF and then shifts VX to the right by 1.
func (vm *VM) shiftr(x uint8) {
	lsb := vm.reg.v[x] & 0x01
	vm.reg.v[x] >>= 1
	vm.reg.v[FlagRegister] = lsb
}

// shiftl stores the most significant bit of VX in VF and then shifts VX to the left by 1.
func (vm *VM) shiftl(x uint8) {
	msb := vm.reg.v[x] >> 7
	vm.reg.v[x] <<= 1
	vm.reg.v[FlagRegister] = msb
}

// draw draws a sprite at coordinate (VX, VY) that has a width of 8 pixels and a height of N pixels.
// Each row of 8 pixels is read as bit-coded starting from memory location I;
// I value doesn't change after the execution of this instruction. VF is set
// to 1 if any screen pixels are flipped from set to unset when the sprite is drawn, and
// to 0 if that doesn't happen.
func (vm *VM) draw(x, y, height uint8) error {
	rows, err := vm.mem.Slice(vm.reg.i, int(height))
	if err != nil {
		return err
	}
	collided := vm.display.DrawSprite(vm.reg.v[x], vm.reg.v[y], rows)
	vm.reg.SetFlag(collided)
	return nil
}

// bcd stores the binary-coded decimal representation of VX, with the hundreds digit
// at the address in I, the tens digit at I plus 1, and the ones digit at I plus 2.
func (vm *VM) bcd(x uint8) error {
	dst, err := vm.mem.Slice(vm.reg.i, 3)
	if err != nil {
		return err
	}
	value := vm.reg.v[x]
	dst[0] = value / 100
	dst[1] = (value / 10) % 10
	dst[2] = value % 10
	return nil
}

// regDump stores V0 to VX (including VX) in memory starting at address I.
// I itself is left unmodified.
func (vm *VM) regDump(x uint8) error {
	dst, err := vm.mem.Slice(vm.reg.i, int(x)+1)
	if err != nil {
		return err
	}
	copy(dst, vm.reg.v[:int(x)+1])
	return nil
}

// regLoad fills V0 to VX (including VX) with values from memory starting at address I.
// I itself is left unmodified.
func (vm *VM) regLoad(x uint8) error {
	src, err := vm.mem.Slice(vm.reg.i, int(x)+1)
	if err != nil {
		return err
	}
	copy(vm.reg.v[:int(x)+1], src)
	return nil
}
