package chip8

// KeyCount is the number of keys on the hex keypad.
const KeyCount = 16

// Keypad holds the latest snapshot of the 16 key hexadecimal keypad:
//
//	|1|2|3|C|
//	|4|5|6|D|
//	|7|8|9|E|
//	|A|0|B|F|
//
// together with the previous snapshot, to detect presses.
type Keypad struct {
	current  [KeyCount]bool
	previous [KeyCount]bool
}

// Update replaces the current snapshot.
func (k *Keypad) Update(keys [KeyCount]bool) {
	k.previous = k.current
	k.current = keys
}

// Pressed reports whether the key with the low nibble of key is held down.
func (k *Keypad) Pressed(key byte) bool {
	return k.current[key&0x0F]
}

// JustPressed returns the lowest key that is down in the current snapshot
// but was up in the previous one.
func (k *Keypad) JustPressed() (byte, bool) {
	for i := range k.current {
		if k.current[i] && !k.previous[i] {
			return byte(i), true
		}
	}
	return 0, false
}
