package chip8

// Stack holds the return addresses of nested subroutine calls.
// Unlike the original hardware it is not limited to 16 levels.
type Stack struct {
	entries []uint16
}

// Push saves a return address.
func (s *Stack) Push(addr uint16) {
	s.entries = append(s.entries, addr)
}

// Pop removes and returns the most recently pushed address.
func (s *Stack) Pop() (uint16, error) {
	n := len(s.entries)
	if n == 0 {
		return 0, ErrStackUnderflow
	}
	addr := s.entries[n-1]
	s.entries = s.entries[:n-1]
	return addr, nil
}

// Depth returns the number of saved return addresses.
func (s *Stack) Depth() int {
	return len(s.entries)
}
