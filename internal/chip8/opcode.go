package chip8

import (
	"fmt"
	"strings"

	cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Op identifies the operation of a decoded instruction.
type Op int

// The names follow the instruction layout: X and Y are register nibbles,
// N a 4 bit, NN an 8 bit and NNN a 12 bit immediate.
const (
	OpInvalid        Op = iota
	OpHalt              // 0000
	OpClear             // 00E0
	OpReturn            // 00EE
	OpJump              // 1NNN
	OpCall              // 2NNN
	OpSkipEqualImm      // 3XNN
	OpSkipNotEqualImm   // 4XNN
	OpSkipEqualReg      // 5XY0
	OpLoadImm           // 6XNN
	OpAddImm            // 7XNN
	OpLoadReg           // 8XY0
	OpOr                // 8XY1
	OpAnd               // 8XY2
	OpXor               // 8XY3
	OpAdd               // 8XY4
	OpSub               // 8XY5
	OpShiftRight        // 8XY6
	OpSubReverse        // 8XY7
	OpShiftLeft         // 8XYE
	OpSkipNotEqualReg   // 9XY0
	OpLoadIndex         // ANNN
	OpJumpV0            // BNNN
	OpRandom            // CXNN
	OpDraw              // DXYN
	OpSkipKeyPressed    // EX9E
	OpSkipKeyNotPressed // EXA1
	OpLoadDelay         // FX07
	OpWaitKey           // FX0A
	OpSetDelay          // FX15
	OpSetSound          // FX18
	OpAddIndex          // FX1E
	OpLoadGlyph         // FX29
	OpStoreBCD          // FX33
	OpStoreRegisters    // FX55
	OpLoadRegisters     // FX65
)

var opNames = [...]string{
	OpInvalid:           "invalid",
	OpHalt:              "halt",
	OpClear:             "cls",
	OpReturn:            "ret",
	OpJump:              "jp",
	OpCall:              "call",
	OpSkipEqualImm:      "se",
	OpSkipNotEqualImm:   "sne",
	OpSkipEqualReg:      "se",
	OpLoadImm:           "ld",
	OpAddImm:            "add",
	OpLoadReg:           "ld",
	OpOr:                "or",
	OpAnd:               "and",
	OpXor:               "xor",
	OpAdd:               "add",
	OpSub:               "sub",
	OpShiftRight:        "shr",
	OpSubReverse:        "subn",
	OpShiftLeft:         "shl",
	OpSkipNotEqualReg:   "sne",
	OpLoadIndex:         "ld",
	OpJumpV0:            "jp",
	OpRandom:            "rnd",
	OpDraw:              "drw",
	OpSkipKeyPressed:    "skp",
	OpSkipKeyNotPressed: "sknp",
	OpLoadDelay:         "ld",
	OpWaitKey:           "ld",
	OpSetDelay:          "ld",
	OpSetSound:          "ld",
	OpAddIndex:          "add",
	OpLoadGlyph:         "ld",
	OpStoreBCD:          "ld",
	OpStoreRegisters:    "ld",
	OpLoadRegisters:     "ld",
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// Instruction is a decoded 16 bit instruction word.
type Instruction struct {
	Op   Op
	Word uint16
	X    uint8
	Y    uint8
	N    uint8
	NN   uint8
	NNN  uint16
}

// Decode splits an instruction word into its operation and operand fields.
// It has no side effects; unknown words decode to OpInvalid.
func Decode(word uint16) Instruction {
	in := Instruction{
		Word: word,
		X:    uint8(word>>8) & 0x0F,
		Y:    uint8(word>>4) & 0x0F,
		N:    uint8(word) & 0x0F,
		NN:   uint8(word),
		NNN:  word & 0x0FFF,
	}
	in.Op = decodeOp(word, in.N, in.NN)
	return in
}

func decodeOp(word uint16, n, nn uint8) Op {
	switch word & 0xF000 {
	case 0x0000:
		switch word {
		case 0x0000:
			return OpHalt
		case 0x00E0:
			return OpClear
		case 0x00EE:
			return OpReturn
		}
	case 0x1000:
		return OpJump
	case 0x2000:
		return OpCall
	case 0x3000:
		return OpSkipEqualImm
	case 0x4000:
		return OpSkipNotEqualImm
	case 0x5000:
		if n == 0 {
			return OpSkipEqualReg
		}
	case 0x6000:
		return OpLoadImm
	case 0x7000:
		return OpAddImm
	case 0x8000:
		switch n {
		case 0x0:
			return OpLoadReg
		case 0x1:
			return OpOr
		case 0x2:
			return OpAnd
		case 0x3:
			return OpXor
		case 0x4:
			return OpAdd
		case 0x5:
			return OpSub
		case 0x6:
			return OpShiftRight
		case 0x7:
			return OpSubReverse
		case 0xE:
			return OpShiftLeft
		}
	case 0x9000:
		if n == 0 {
			return OpSkipNotEqualReg
		}
	case 0xA000:
		return OpLoadIndex
	case 0xB000:
		return OpJumpV0
	case 0xC000:
		return OpRandom
	case 0xD000:
		return OpDraw
	case 0xE000:
		switch nn {
		case 0x9E:
			return OpSkipKeyPressed
		case 0xA1:
			return OpSkipKeyNotPressed
		}
	case 0xF000:
		switch nn {
		case 0x07:
			return OpLoadDelay
		case 0x0A:
			return OpWaitKey
		case 0x15:
			return OpSetDelay
		case 0x18:
			return OpSetSound
		case 0x1E:
			return OpAddIndex
		case 0x29:
			return OpLoadGlyph
		case 0x33:
			return OpStoreBCD
		case 0x55:
			return OpStoreRegisters
		case 0x65:
			return OpLoadRegisters
		}
	}
	return OpInvalid
}

// Mnemonic returns the assembler name of the instruction, as listed in the
// CHIP-8 opcode table of retrogolib, falling back to the local name.
func (in Instruction) Mnemonic() string {
	for _, op := range cpu.Opcodes[int(in.Word>>12)] {
		if op.Instruction != nil && op.Info.Mask&in.Word == op.Info.Value {
			return strings.ToLower(op.Instruction.Name)
		}
	}
	return in.Op.String()
}

// String formats the instruction in assembler syntax, for example "drw V1, V2, $5".
func (in Instruction) String() string {
	name := in.Mnemonic()
	switch in.Op {
	case OpInvalid:
		return fmt.Sprintf("invalid $%04X", in.Word)
	case OpHalt:
		return "halt"
	case OpClear, OpReturn:
		return name
	case OpJump, OpCall:
		return fmt.Sprintf("%s $%03X", name, in.NNN)
	case OpJumpV0:
		return fmt.Sprintf("%s V0, $%03X", name, in.NNN)
	case OpLoadIndex:
		return fmt.Sprintf("%s I, $%03X", name, in.NNN)
	case OpSkipEqualImm, OpSkipNotEqualImm, OpLoadImm, OpAddImm, OpRandom:
		return fmt.Sprintf("%s V%X, $%02X", name, in.X, in.NN)
	case OpSkipEqualReg, OpSkipNotEqualReg, OpLoadReg, OpOr, OpAnd, OpXor,
		OpAdd, OpSub, OpSubReverse:
		return fmt.Sprintf("%s V%X, V%X", name, in.X, in.Y)
	case OpShiftRight, OpShiftLeft, OpSkipKeyPressed, OpSkipKeyNotPressed:
		return fmt.Sprintf("%s V%X", name, in.X)
	case OpDraw:
		return fmt.Sprintf("%s V%X, V%X, $%X", name, in.X, in.Y, in.N)
	case OpLoadDelay:
		return fmt.Sprintf("%s V%X, DT", name, in.X)
	case OpWaitKey:
		return fmt.Sprintf("%s V%X, K", name, in.X)
	case OpSetDelay:
		return fmt.Sprintf("%s DT, V%X", name, in.X)
	case OpSetSound:
		return fmt.Sprintf("%s ST, V%X", name, in.X)
	case OpAddIndex:
		return fmt.Sprintf("%s I, V%X", name, in.X)
	case OpLoadGlyph:
		return fmt.Sprintf("%s F, V%X", name, in.X)
	case OpStoreBCD:
		return fmt.Sprintf("%s B, V%X", name, in.X)
	case OpStoreRegisters:
		return fmt.Sprintf("%s [I], V%X", name, in.X)
	case OpLoadRegisters:
		return fmt.Sprintf("%s V%X, [I]", name, in.X)
	}
	return name
}
