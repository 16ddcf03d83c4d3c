package ebitenui

import (
	"image/color"
	"testing"

	"github.com/Code-Hex/chip8vm/internal/chip8"
	"github.com/Code-Hex/chip8vm/internal/config"
	"github.com/google/go-cmp/cmp"
	"github.com/hajimehoshi/ebiten"
)

func Test_keymap(t *testing.T) {
	seen := map[ebiten.Key]int{}
	for logical, key := range keymap {
		if prev, ok := seen[key]; ok {
			t.Errorf("keys %X and %X share one physical key", prev, logical)
		}
		seen[key] = logical
	}
}

func Test_fillRGBA(t *testing.T) {
	fg := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	bg := color.RGBA{R: 5, G: 6, B: 7, A: 8}
	dst := make([]byte, 8)
	fillRGBA(dst, []bool{true, false}, fg, bg)

	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("pixels: (-want, +got)\n%s", diff)
	}
}

func TestWindow_Render(t *testing.T) {
	cfg := config.Defaults()
	cfg.Foreground = "#FF0000"
	cfg.Background = "#0000FF"
	w, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	var display chip8.Display
	display.DrawSprite(1, 0, []byte{0x80})
	if err := w.Render(&display); err != nil {
		t.Fatal(err)
	}

	want := []byte{0x00, 0x00, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0xFF}
	if diff := cmp.Diff(want, w.pixels[:8]); diff != "" {
		t.Errorf("pixels: (-want, +got)\n%s", diff)
	}
}

func TestNew_InvalidColor(t *testing.T) {
	cfg := config.Defaults()
	cfg.Background = "blue"
	if _, err := New(cfg); err == nil {
		t.Error("expected an error for an invalid color")
	}
}
