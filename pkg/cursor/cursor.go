// Package cursor previews the next zoom region as a rectangle outline drawn
// over the rendered image, saving the pixels underneath so that moving the
// rectangle leaves the image exactly as it was.
package cursor

import (
	"image/color"

	"github.com/willbeason/zoombrot/pkg/surface"
	"github.com/willbeason/zoombrot/pkg/viewport"
)

// Highlight is the default outline color.
var Highlight = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Derive turns three normalized knob readings into a rectangle inside a w x h
// surface. zoom sets the size, from a single pixel at 0 to the whole surface
// at 1. The y knob is inverted: turning it up moves the rectangle up.
func Derive(x, y, zoom float64, w, h int) viewport.Rect {
	x, y, zoom = clamp01(x), clamp01(y), clamp01(zoom)

	spanX := int(zoom * float64(w-1))
	spanY := int(zoom * float64(h-1))

	cx := int(x * float64(w))
	cy := int(float64(h) - y*float64(h))

	left := clampInt(cx-spanX/2, 0, w-1-spanX)
	top := clampInt(cy-spanY/2, 0, h-1-spanY)

	return viewport.Rect{Left: left, Right: left + spanX, Top: top, Bottom: top + spanY}
}

// An Overlay draws one rectangle outline at a time onto a surface.
type Overlay struct {
	surface   *surface.Surface
	highlight color.RGBA

	// Saved edges of the rectangle currently drawn. top and bottom own the
	// four corners; left and right hold only the pixels between them.
	top, bottom []color.RGBA
	left, right []color.RGBA

	prev    viewport.Rect
	hasPrev bool
}

// New returns an overlay drawing in highlight onto s.
func New(s *surface.Surface, highlight color.RGBA) *Overlay {
	n := max(s.Width(), s.Height())
	return &Overlay{
		surface:   s,
		highlight: highlight,
		top:       make([]color.RGBA, n),
		bottom:    make([]color.RGBA, n),
		left:      make([]color.RGBA, n),
		right:     make([]color.RGBA, n),
	}
}

// Reset forgets the drawn rectangle without restoring it. Call it whenever
// the surface is cleared, since the saved edges no longer match anything.
func (o *Overlay) Reset() {
	o.hasPrev = false
	o.prev = viewport.Rect{}
}

// Region returns the rectangle currently drawn, if any.
func (o *Overlay) Region() (viewport.Rect, bool) {
	return o.prev, o.hasPrev
}

// Track derives a rectangle from knob readings and moves the outline to it.
func (o *Overlay) Track(x, y, zoom float64) (bool, error) {
	return o.MoveTo(Derive(x, y, zoom, o.surface.Width(), o.surface.Height()))
}

// MoveTo restores the pixels under the previous outline, if there is one,
// and draws r. Nothing is read or written when r equals the drawn rectangle.
// It reports whether the surface changed.
func (o *Overlay) MoveTo(r viewport.Rect) (bool, error) {
	if o.hasPrev && r == o.prev {
		return false, nil
	}

	if o.hasPrev {
		o.restore(o.prev)
		if err := o.surface.Present(); err != nil {
			return false, err
		}
	}

	// Save before drawing, or the outline itself would be saved.
	o.save(r)
	o.draw(r)
	o.prev, o.hasPrev = r, true

	return true, o.surface.Present()
}

func (o *Overlay) save(r viewport.Rect) {
	s := o.surface
	for i := 0; i < r.Dx(); i++ {
		o.top[i] = s.Pixel(r.Left+i, r.Top)
		o.bottom[i] = s.Pixel(r.Left+i, r.Bottom)
	}
	for i := 0; i < r.Dy()-2; i++ {
		o.left[i] = s.Pixel(r.Left, r.Top+1+i)
		o.right[i] = s.Pixel(r.Right, r.Top+1+i)
	}
}

func (o *Overlay) restore(r viewport.Rect) {
	s := o.surface
	for i := 0; i < r.Dx(); i++ {
		s.Set(r.Left+i, r.Top, o.top[i])
		if r.Bottom != r.Top {
			s.Set(r.Left+i, r.Bottom, o.bottom[i])
		}
	}
	for i := 0; i < r.Dy()-2; i++ {
		s.Set(r.Left, r.Top+1+i, o.left[i])
		if r.Right != r.Left {
			s.Set(r.Right, r.Top+1+i, o.right[i])
		}
	}
}

func (o *Overlay) draw(r viewport.Rect) {
	s := o.surface
	s.HLine(r.Left, r.Right, r.Top, o.highlight)
	s.HLine(r.Left, r.Right, r.Bottom, o.highlight)
	s.VLine(r.Left, r.Top, r.Bottom, o.highlight)
	s.VLine(r.Right, r.Top, r.Bottom, o.highlight)
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
