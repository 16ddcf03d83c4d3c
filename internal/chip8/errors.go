package chip8

import "errors"

var (
	// ErrInvalidOpcode is returned for an instruction word that matches no opcode.
	ErrInvalidOpcode = errors.New("invalid opcode")
	// ErrStackUnderflow is returned when a subroutine returns without a matching call.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrOutOfBounds is returned for a memory address or register index outside its range.
	ErrOutOfBounds = errors.New("out of bounds access")
	// ErrROMTooLarge is returned when a ROM does not fit between the load offset and the end of memory.
	ErrROMTooLarge = errors.New("rom is larger than program / data space")
)

// HaltReason describes why the interpreter stopped executing instructions.
type HaltReason int

const (
	HaltNone HaltReason = iota
	HaltDeliberate
	HaltInvalidOpcode
	HaltStackUnderflow
	HaltOutOfBounds
)

func (r HaltReason) String() string {
	switch r {
	case HaltNone:
		return "running"
	case HaltDeliberate:
		return "deliberate halt"
	case HaltInvalidOpcode:
		return ErrInvalidOpcode.Error()
	case HaltStackUnderflow:
		return ErrStackUnderflow.Error()
	case HaltOutOfBounds:
		return ErrOutOfBounds.Error()
	default:
		return "unknown"
	}
}

// haltReasonOf maps a fault returned by an instruction handler to its halt reason.
func haltReasonOf(err error) HaltReason {
	switch {
	case errors.Is(err, ErrStackUnderflow):
		return HaltStackUnderflow
	case errors.Is(err, ErrOutOfBounds):
		return HaltOutOfBounds
	default:
		return HaltInvalidOpcode
	}
}
