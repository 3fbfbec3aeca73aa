package viewport

import "fmt"

const (
	// DefaultRealStart and DefaultRealEnd frame the main cardioid; the right
	// end looks boring past 0.55.
	DefaultRealStart = -2.05
	DefaultRealEnd   = 0.55

	DefaultImagStart = -1.2
	DefaultImagEnd   = 1.2
)

// A Viewport is the region of the complex plane mapped onto a Width x Height
// pixel surface.
//
// Viewports are values. Every transform returns a new Viewport with all four
// bounds replaced together.
type Viewport struct {
	RealStart, RealEnd float64
	ImagStart, ImagEnd float64

	Width, Height int
}

// Default returns the startup region for a w x h surface.
func Default(w, h int) Viewport {
	return Viewport{
		RealStart: DefaultRealStart,
		RealEnd:   DefaultRealEnd,
		ImagStart: DefaultImagStart,
		ImagEnd:   DefaultImagEnd,
		Width:     w,
		Height:    h,
	}
}

// Span returns the extent of the viewport along each axis in plane units.
func (v Viewport) Span() (re, im float64) {
	return v.RealEnd - v.RealStart, v.ImagEnd - v.ImagStart
}

// Center returns the plane point at the middle of the viewport.
func (v Viewport) Center() complex128 {
	return complex((v.RealStart+v.RealEnd)*0.5, (v.ImagStart+v.ImagEnd)*0.5)
}

// SampleAt maps pixel (px, py) to the complex point it samples.
func (v Viewport) SampleAt(px, py int) complex128 {
	return v.Point(float64(px), float64(py))
}

// Point is SampleAt for fractional pixel coordinates.
func (v Viewport) Point(px, py float64) complex128 {
	re, im := v.Span()
	return complex(
		v.RealStart+px/float64(v.Width)*re,
		v.ImagStart+py/float64(v.Height)*im,
	)
}

// ZoomTo returns the viewport covering r under the current sampling map.
//
// The rectangle is inclusive, so its far edges are Right+1 and Bottom+1. The
// full-surface rectangle maps to the same viewport.
func (v Viewport) ZoomTo(r Rect) Viewport {
	start := v.Point(float64(r.Left), float64(r.Top))
	end := v.Point(float64(r.Right+1), float64(r.Bottom+1))

	return Viewport{
		RealStart: real(start),
		RealEnd:   real(end),
		ImagStart: imag(start),
		ImagEnd:   imag(end),
		Width:     v.Width,
		Height:    v.Height,
	}
}

// ZoomOutBy multiplies the span on each axis by factor, keeping the center.
// A factor of 2 shows twice the width and twice the height.
func (v Viewport) ZoomOutBy(factor float64) Viewport {
	re, im := v.Span()
	dRe := re * (factor - 1) * 0.5
	dIm := im * (factor - 1) * 0.5

	return Viewport{
		RealStart: v.RealStart - dRe,
		RealEnd:   v.RealEnd + dRe,
		ImagStart: v.ImagStart - dIm,
		ImagEnd:   v.ImagEnd + dIm,
		Width:     v.Width,
		Height:    v.Height,
	}
}

// RecenterOn translates the viewport so that pixel (cx, cy) becomes the
// middle of the surface. The span is unchanged.
func (v Viewport) RecenterOn(cx, cy float64) Viewport {
	re, im := v.Span()
	dRe := re * (cx - float64(v.Width)*0.5) / float64(v.Width)
	dIm := im * (cy - float64(v.Height)*0.5) / float64(v.Height)

	return Viewport{
		RealStart: v.RealStart + dRe,
		RealEnd:   v.RealEnd + dRe,
		ImagStart: v.ImagStart + dIm,
		ImagEnd:   v.ImagEnd + dIm,
		Width:     v.Width,
		Height:    v.Height,
	}
}

// Valid reports whether both spans are positive and the pixel size is set.
func (v Viewport) Valid() bool {
	return v.RealEnd > v.RealStart && v.ImagEnd > v.ImagStart && v.Width > 0 && v.Height > 0
}

func (v Viewport) String() string {
	return fmt.Sprintf("re[%g, %g] im[%g, %g]", v.RealStart, v.RealEnd, v.ImagStart, v.ImagEnd)
}
