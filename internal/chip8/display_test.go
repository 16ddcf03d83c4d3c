package chip8

import (
	"strings"
	"testing"
)

func TestDisplay_DrawSprite(t *testing.T) {
	tests := []struct {
		name  string
		x, y  byte
		rows  []byte
		lit   [][2]int
		unlit [][2]int
	}{
		{
			name:  "single pixel",
			x:     3,
			y:     4,
			rows:  []byte{0x80},
			lit:   [][2]int{{3, 4}},
			unlit: [][2]int{{4, 4}, {3, 5}},
		},
		{
			name:  "wraps horizontally",
			x:     63,
			y:     0,
			rows:  []byte{0xC0},
			lit:   [][2]int{{63, 0}, {0, 0}},
			unlit: [][2]int{{1, 0}},
		},
		{
			name:  "wraps vertically",
			x:     0,
			y:     31,
			rows:  []byte{0x80, 0x80},
			lit:   [][2]int{{0, 31}, {0, 0}},
			unlit: [][2]int{{0, 1}},
		},
		{
			name:  "coordinates beyond the screen wrap",
			x:     64 + 2,
			y:     32 + 1,
			rows:  []byte{0x80},
			lit:   [][2]int{{2, 1}},
			unlit: [][2]int{{0, 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Display
			if d.DrawSprite(tt.x, tt.y, tt.rows) {
				t.Error("drawing on a blank display reported a collision")
			}
			for _, p := range tt.lit {
				if !d.Pixel(p[0], p[1]) {
					t.Errorf("pixel %v is not lit", p)
				}
			}
			for _, p := range tt.unlit {
				if d.Pixel(p[0], p[1]) {
					t.Errorf("pixel %v is lit", p)
				}
			}
		})
	}
}

func TestDisplay_DrawSprite_WrapFromLastColumn(t *testing.T) {
	var d Display
	d.DrawSprite(63, 0, []byte{0x40})
	if !d.Pixel(0, 0) {
		t.Fatal("pixel (0, 0) is not lit after wraparound")
	}
	lit := 0
	for _, p := range d.Pixels() {
		if p {
			lit++
		}
	}
	if lit != 1 {
		t.Errorf("got %d lit pixels, want 1", lit)
	}
}

func TestDisplay_Collision(t *testing.T) {
	var d Display
	sprite := []byte{0xF0, 0x90, 0xF0}
	if d.DrawSprite(10, 10, sprite) {
		t.Error("first draw reported a collision")
	}
	if !d.DrawSprite(10, 10, sprite) {
		t.Error("second draw did not report a collision")
	}
	for i, p := range d.Pixels() {
		if p {
			t.Fatalf("pixel %d still lit after redraw", i)
		}
	}

	// overlap on a single pixel, the rest of the sprite is still drawn
	d.DrawSprite(0, 0, []byte{0x80})
	if !d.DrawSprite(0, 0, []byte{0xFF}) {
		t.Error("overlapping draw did not report a collision")
	}
	if d.Pixel(0, 0) || !d.Pixel(7, 0) {
		t.Error("overlapping draw did not toggle every pixel")
	}
}

func TestDisplay_ClearAndString(t *testing.T) {
	var d Display
	d.DrawSprite(0, 0, []byte{0x80})
	lines := strings.Split(d.String(), "\n")
	if len(lines) != DisplayHeight+1 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "#.") || len(lines[0]) != DisplayWidth {
		t.Errorf("unexpected first line %q", lines[0])
	}

	d.Clear()
	if strings.Contains(d.String(), "#") {
		t.Error("clear left lit pixels")
	}
}
