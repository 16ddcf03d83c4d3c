package chip8

import "strings"

const (
	// DisplayWidth is the horizontal resolution in pixels.
	DisplayWidth = 64
	// DisplayHeight is the vertical resolution in pixels.
	DisplayHeight = 32
)

// Display is the monochrome 64x32 framebuffer, stored row-major.
//
//	-------------------
//	|(0,0)      (63,0)|
//	|                 |
//	|(0,31)    (63,31)|
//	-------------------
type Display struct {
	pixels [DisplayWidth * DisplayHeight]bool
}

// Width returns the number of pixel columns.
func (d *Display) Width() int { return DisplayWidth }

// Height returns the number of pixel rows.
func (d *Display) Height() int { return DisplayHeight }

// Clear turns every pixel off.
func (d *Display) Clear() {
	d.pixels = [DisplayWidth * DisplayHeight]bool{}
}

// Pixel reports whether the pixel at (x, y) is lit. Coordinates wrap.
func (d *Display) Pixel(x, y int) bool {
	return d.pixels[index(x, y)]
}

// Pixels returns a copy of the framebuffer in row-major order.
func (d *Display) Pixels() []bool {
	out := make([]bool, len(d.pixels))
	copy(out, d.pixels[:])
	return out
}

// DrawSprite XORs the sprite rows onto the framebuffer with its top left
// corner at (x, y). Each row is 8 pixels wide, most significant bit first.
// Pixels that fall off an edge wrap around to the opposite one.
// It reports whether any lit pixel was turned off by the whole sprite.
func (d *Display) DrawSprite(x, y byte, rows []byte) bool {
	collided := false
	for row, bits := range rows {
		for bit := 0; bit < 8; bit++ {
			if bits&(0x80>>bit) == 0 {
				continue
			}
			idx := index(int(x)+bit, int(y)+row)
			if d.pixels[idx] {
				collided = true
			}
			d.pixels[idx] = !d.pixels[idx]
		}
	}
	return collided
}

// String renders the framebuffer as text, '#' for lit and '.' for dark pixels.
func (d *Display) String() string {
	var sb strings.Builder
	sb.Grow((DisplayWidth + 1) * DisplayHeight)
	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			if d.pixels[y*DisplayWidth+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func index(x, y int) int {
	x %= DisplayWidth
	if x < 0 {
		x += DisplayWidth
	}
	y %= DisplayHeight
	if y < 0 {
		y += DisplayHeight
	}
	return y*DisplayWidth + x
}
