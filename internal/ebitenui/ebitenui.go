// Package ebitenui presents a VM in an ebiten window: it renders the
// framebuffer, maps the physical keyboard onto the hex keypad and shows
// the emulation status.
package ebitenui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/Code-Hex/chip8vm/internal/chip8"
	"github.com/Code-Hex/chip8vm/internal/config"
	"github.com/Code-Hex/chip8vm/internal/driver"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	"golang.org/x/image/font/basicfont"
)

// ErrQuit is returned by Run when the user closed the emulation with Escape.
var ErrQuit = errors.New("quit requested")

// Window is an ebiten backed keyboard provider and renderer.
type Window struct {
	title string
	scale int
	debug bool

	foreground color.RGBA
	background color.RGBA

	// RGBA pixels of the last rendered frame
	pixels []byte
	frame  *ebiten.Image
}

// New returns a window configured by cfg.
func New(cfg config.Config) (*Window, error) {
	fg, err := config.ParseColor(cfg.Foreground)
	if err != nil {
		return nil, fmt.Errorf("parsing foreground color: %w", err)
	}
	bg, err := config.ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("parsing background color: %w", err)
	}

	w := &Window{
		title:      "chip8vm - " + cfg.ROM,
		scale:      cfg.Scale,
		debug:      cfg.Debug,
		foreground: fg,
		background: bg,
		pixels:     make([]byte, 4*chip8.DisplayWidth*chip8.DisplayHeight),
	}
	fillRGBA(w.pixels, make([]bool, chip8.DisplayWidth*chip8.DisplayHeight), fg, bg)
	return w, nil
}

// Keys returns the logical keys whose physical keys are held down.
func (w *Window) Keys() [chip8.KeyCount]bool {
	var keys [chip8.KeyCount]bool
	for i, key := range keymap {
		keys[i] = ebiten.IsKeyPressed(key)
	}
	return keys
}

// Render converts the framebuffer to the pixels shown by the next draw.
func (w *Window) Render(display *chip8.Display) error {
	fillRGBA(w.pixels, display.Pixels(), w.foreground, w.background)
	return nil
}

// Run opens the window and drives d from the ebiten update loop at the
// tick rate until the window is closed.
func (w *Window) Run(d *driver.Driver, tickRate int) error {
	frame, err := ebiten.NewImage(chip8.DisplayWidth, chip8.DisplayHeight, ebiten.FilterNearest)
	if err != nil {
		return fmt.Errorf("creating frame image: %w", err)
	}
	w.frame = frame

	ebiten.SetMaxTPS(tickRate)
	update := func(screen *ebiten.Image) error {
		return w.update(screen, d)
	}
	return ebiten.Run(update, chip8.DisplayWidth*w.scale, chip8.DisplayHeight*w.scale, 1, w.title)
}

// update is called by ebiten once per tick.
// Escape quits, P toggles pause and N advances a single tick while paused.
func (w *Window) update(screen *ebiten.Image, d *driver.Driver) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		d.TogglePause()
	}

	var err error
	if d.Paused() && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		err = d.Advance()
	} else {
		err = d.Tick()
	}
	if err != nil {
		return err
	}
	if d.Done() {
		return ErrQuit
	}

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	return w.draw(screen, d)
}

func (w *Window) draw(screen *ebiten.Image, d *driver.Driver) error {
	if err := w.frame.ReplacePixels(w.pixels); err != nil {
		return err
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.scale), float64(w.scale))
	if err := screen.DrawImage(w.frame, op); err != nil {
		return err
	}

	if status := statusLine(d); status != "" {
		text.Draw(screen, status, basicfont.Face7x13, 4, chip8.DisplayHeight*w.scale-6, w.foreground)
	}
	if w.debug {
		vm := d.VM()
		return ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f %s DT: %d ST: %d",
			ebiten.CurrentTPS(), vm, vm.DelayTimer(), vm.SoundTimer()))
	}
	return nil
}

func statusLine(d *driver.Driver) string {
	vm := d.VM()
	switch {
	case vm.Halted():
		return fmt.Sprintf("HALTED: %s at 0x%03X", vm.HaltReason(), vm.PC())
	case d.Paused():
		return "PAUSED (P: resume, N: step)"
	default:
		return ""
	}
}
