package chip8

// Timers are the two countdown registers. When set above zero they count
// down to zero at the rate of the external timing tick, usually 60 Hz.
// The buzzer sounds whenever the sound timer is non-zero.
type Timers struct {
	Delay byte
	Sound byte
}

// Tick decrements each non-zero timer by one.
func (t *Timers) Tick() {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		t.Sound--
	}
}
