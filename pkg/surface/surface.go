// Package surface holds the authoritative copy of every pixel shown on the
// display. Displays are write-only sinks; anything that needs to read pixels
// back reads them here.
package surface

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

// Background is the color a surface starts with.
var Background = color.RGBA{A: 255}

// A Surface is a Width x Height grid of colors mirroring what has been
// presented. It is not safe for concurrent use; one goroutine owns it.
type Surface struct {
	width, height int
	pix           []color.RGBA

	// dirty marks pixels changed since the last Present.
	dirty  []bool
	queued []int

	sink drivers.Displayer
}

// New returns a w x h surface filled with Background. sink may be nil, in
// which case Present only forgets the dirty set.
func New(w, h int, sink drivers.Displayer) *Surface {
	s := &Surface{
		width:  w,
		height: h,
		pix:    make([]color.RGBA, w*h),
		dirty:  make([]bool, w*h),
		sink:   sink,
	}
	for i := range s.pix {
		s.pix[i] = Background
	}
	return s
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

// Pixel returns the color at (x, y). Out of range reads return Background.
func (s *Surface) Pixel(x, y int) color.RGBA {
	if !s.in(x, y) {
		return Background
	}
	return s.pix[x+y*s.width]
}

// Set changes the color at (x, y). Out of range writes are dropped.
func (s *Surface) Set(x, y int, c color.RGBA) {
	if !s.in(x, y) {
		return
	}
	i := x + y*s.width
	if s.pix[i] == c {
		return
	}
	s.pix[i] = c
	s.mark(i)
}

// HLine draws the row y from x0 to x1 inclusive.
func (s *Surface) HLine(x0, x1, y int, c color.RGBA) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		s.Set(x, y, c)
	}
}

// VLine draws the column x from y0 to y1 inclusive.
func (s *Surface) VLine(x, y0, y1 int, c color.RGBA) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		s.Set(x, y, c)
	}
}

// Clear fills the whole surface with c.
func (s *Surface) Clear(c color.RGBA) {
	for i := range s.pix {
		if s.pix[i] != c {
			s.pix[i] = c
			s.mark(i)
		}
	}
	if s.sink != nil {
		// The sink's own buffer may hold anything; resend every pixel.
		for i := range s.pix {
			s.mark(i)
		}
	}
}

// Present pushes every pixel changed since the last call to the sink and
// flushes it.
func (s *Surface) Present() error {
	if s.sink != nil {
		for _, i := range s.queued {
			s.sink.SetPixel(int16(i%s.width), int16(i/s.width), s.pix[i])
		}
	}
	for _, i := range s.queued {
		s.dirty[i] = false
	}
	s.queued = s.queued[:0]

	if s.sink == nil {
		return nil
	}
	return s.sink.Display()
}

// Pending is the number of pixels waiting for the next Present.
func (s *Surface) Pending() int {
	return len(s.queued)
}

func (s *Surface) ColorModel() color.Model { return color.RGBAModel }

func (s *Surface) Bounds() image.Rectangle { return image.Rect(0, 0, s.width, s.height) }

func (s *Surface) At(x, y int) color.Color { return s.Pixel(x, y) }

var _ image.Image = (*Surface)(nil)

func (s *Surface) in(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

func (s *Surface) mark(i int) {
	if s.dirty[i] {
		return
	}
	s.dirty[i] = true
	s.queued = append(s.queued, i)
}
