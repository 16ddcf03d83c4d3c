// Package termui presents a VM in a terminal: the framebuffer is drawn with
// half block characters and the keypad is read from raw stdin.
package termui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/Code-Hex/chip8vm/internal/chip8"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// holdDuration is how long a key counts as pressed after its byte arrived.
// Terminals report key presses only, never releases.
const holdDuration = 150 * time.Millisecond

const (
	ansiHome       = "\x1b[H"
	ansiClear      = "\x1b[2J"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
)

// keymap maps input bytes to hex keypad keys, using the same physical
// layout as the window backend: 1234/QWER/ASDF/ZXCV.
var keymap = map[byte]byte{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

const ctrlC = 0x03

// Terminal is a terminal backed keyboard provider and renderer.
type Terminal struct {
	logger *log.Logger
	in     *os.File
	out    *bufio.Writer

	mu        sync.Mutex
	pressedAt [chip8.KeyCount]time.Time
	now       func() time.Time

	interrupt func()
	oldState  *term.State
}

// New returns a terminal backend reading keys from in and drawing to out.
func New(logger *log.Logger, in *os.File, out io.Writer) *Terminal {
	return &Terminal{
		logger: logger,
		in:     in,
		out:    bufio.NewWriter(out),
		now:    time.Now,
	}
}

// OnInterrupt registers fn to be called when Ctrl+C is read in raw mode.
func (t *Terminal) OnInterrupt(fn func()) {
	t.interrupt = fn
}

// Start switches the input terminal to raw mode and starts reading keys.
// Input that is not a terminal is not read.
func (t *Terminal) Start() error {
	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		t.logger.Warn("Input is not a terminal, keypad is disabled")
		return t.clearScreen()
	}

	if width, height, err := term.GetSize(fd); err == nil {
		if width < chip8.DisplayWidth || height < chip8.DisplayHeight/2+1 {
			t.logger.Warn("Terminal is smaller than the display",
				log.Int("width", width),
				log.Int("height", height))
		}
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("setting raw mode: %w", err)
	}
	t.oldState = oldState

	go t.readKeys()
	return t.clearScreen()
}

// Stop restores the terminal state.
func (t *Terminal) Stop() error {
	_, _ = t.out.WriteString(ansiShowCursor)
	if err := t.out.Flush(); err != nil {
		return err
	}
	if t.oldState == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.oldState)
	t.oldState = nil
	return err
}

func (t *Terminal) clearScreen() error {
	_, _ = t.out.WriteString(ansiClear + ansiHideCursor)
	return t.out.Flush()
}

// readKeys runs until stdin is closed. The blocking read is left behind
// when the emulation stops, the process exits right after.
func (t *Terminal) readKeys() {
	buf := make([]byte, 16)
	for {
		n, err := t.in.Read(buf)
		for _, b := range buf[:n] {
			t.handleByte(b)
		}
		if err != nil {
			return
		}
	}
}

func (t *Terminal) handleByte(b byte) {
	if b == ctrlC {
		if t.interrupt != nil {
			t.interrupt()
		}
		return
	}
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	key, ok := keymap[b]
	if !ok {
		return
	}
	t.mu.Lock()
	t.pressedAt[key] = t.now()
	t.mu.Unlock()
}

// Keys returns the keys whose last press is more recent than the hold duration.
func (t *Terminal) Keys() [chip8.KeyCount]bool {
	var keys [chip8.KeyCount]bool
	now := t.now()

	t.mu.Lock()
	defer t.mu.Unlock()
	for i, at := range t.pressedAt {
		keys[i] = !at.IsZero() && now.Sub(at) < holdDuration
	}
	return keys
}

// Render draws the framebuffer, two pixel rows per text line.
func (t *Terminal) Render(display *chip8.Display) error {
	_, _ = t.out.WriteString(ansiHome)
	for y := 0; y < chip8.DisplayHeight; y += 2 {
		for x := 0; x < chip8.DisplayWidth; x++ {
			_, _ = t.out.WriteString(halfBlock(display.Pixel(x, y), display.Pixel(x, y+1)))
		}
		_, _ = t.out.WriteString("\r\n")
	}
	return t.out.Flush()
}

func halfBlock(upper, lower bool) string {
	switch {
	case upper && lower:
		return "█"
	case upper:
		return "▀"
	case lower:
		return "▄"
	default:
		return " "
	}
}
