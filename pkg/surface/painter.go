package surface

import "github.com/willbeason/zoombrot/pkg/palette"

// A Painter plots palette indices onto a Surface, leaving NoPaint pixels as
// they are.
type Painter struct {
	Surface *Surface
	Palette palette.Palette
}

func (p Painter) Plot(x, y int, idx palette.Index) {
	if !p.Palette.Paints(idx) {
		return
	}
	p.Surface.Set(x, y, p.Palette.Color(idx))
}

func (p Painter) Present() error {
	return p.Surface.Present()
}
