package surface

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Discard is a display with no output, for headless rendering.
type Discard struct {
	W, H int16
}

func (d Discard) Size() (x, y int16) { return d.W, d.H }

func (Discard) SetPixel(int16, int16, color.RGBA) {}

func (Discard) Display() error { return nil }

var _ drivers.Displayer = Discard{}
