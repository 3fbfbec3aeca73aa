package viewport

import (
	"math"
	"math/cmplx"
	"testing"
)

const tolerance = 1e-12

func near(a, b complex128) bool {
	return cmplx.Abs(a-b) <= tolerance
}

func TestSampleAt(t *testing.T) {
	v := Viewport{RealStart: -2, RealEnd: 2, ImagStart: -1, ImagEnd: 1, Width: 8, Height: 4}

	tcs := []struct {
		name   string
		px, py int
		want   complex128
	}{
		{name: "origin pixel", px: 0, py: 0, want: complex(-2, -1)},
		{name: "middle", px: 4, py: 2, want: complex(0, 0)},
		{name: "last pixel", px: 7, py: 3, want: complex(1.5, 0.5)},
		{name: "far edge", px: 8, py: 4, want: complex(2, 1)},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := v.SampleAt(tc.px, tc.py)
			if !near(got, tc.want) {
				t.Errorf("SampleAt(%d, %d) = %v, want %v", tc.px, tc.py, got, tc.want)
			}
		})
	}
}

func TestZoomTo_FullSurfaceIsIdentity(t *testing.T) {
	v := Default(8, 8)

	got := v.ZoomTo(Full(8, 8))
	if !sameBounds(got, v) {
		t.Errorf("ZoomTo(full) = %v, want %v", got, v)
	}
}

func sameBounds(a, b Viewport) bool {
	return math.Abs(a.RealStart-b.RealStart) <= tolerance &&
		math.Abs(a.RealEnd-b.RealEnd) <= tolerance &&
		math.Abs(a.ImagStart-b.ImagStart) <= tolerance &&
		math.Abs(a.ImagEnd-b.ImagEnd) <= tolerance &&
		a.Width == b.Width && a.Height == b.Height
}

func TestZoomTo_RoundTrip(t *testing.T) {
	v := Default(240, 240)

	rects := []Rect{
		{Left: 0, Right: 0, Top: 0, Bottom: 0},
		{Left: 10, Right: 90, Top: 20, Bottom: 100},
		{Left: 100, Right: 239, Top: 5, Bottom: 239},
		{Left: 60, Right: 180, Top: 60, Bottom: 180},
	}

	for _, r := range rects {
		t.Run(r.String(), func(t *testing.T) {
			z := v.ZoomTo(r)

			if got, want := z.SampleAt(0, 0), v.SampleAt(r.Left, r.Top); !near(got, want) {
				t.Errorf("near corner: got %v, want %v", got, want)
			}
			if got, want := z.SampleAt(z.Width, z.Height), v.SampleAt(r.Right+1, r.Bottom+1); !near(got, want) {
				t.Errorf("far corner: got %v, want %v", got, want)
			}
			if !z.Valid() {
				t.Errorf("zoomed viewport %v is not valid", z)
			}
		})
	}
}

func TestZoomOutAfterZoomIn(t *testing.T) {
	v := Default(240, 240)
	// A centered rectangle covering half of each axis.
	r := Rect{Left: 60, Right: 179, Top: 60, Bottom: 179}

	in := v.ZoomTo(r)
	out := in.ZoomOutBy(2)

	if !near(out.Center(), v.Center()) {
		t.Errorf("center after zoom out = %v, want %v", out.Center(), v.Center())
	}
	if out.RealStart > v.RealStart+tolerance || out.RealEnd < v.RealEnd-tolerance ||
		out.ImagStart > v.ImagStart+tolerance || out.ImagEnd < v.ImagEnd-tolerance {
		t.Errorf("zoom out %v does not cover original %v", out, v)
	}
}

func TestZoomOutBy(t *testing.T) {
	v := Viewport{RealStart: -1, RealEnd: 1, ImagStart: 0, ImagEnd: 1, Width: 10, Height: 10}

	got := v.ZoomOutBy(2)
	want := Viewport{RealStart: -2, RealEnd: 2, ImagStart: -0.5, ImagEnd: 1.5, Width: 10, Height: 10}
	if !sameBounds(got, want) {
		t.Errorf("ZoomOutBy(2) = %v, want %v", got, want)
	}

	re, im := got.Span()
	if math.Abs(re-4) > tolerance || math.Abs(im-2) > tolerance {
		t.Errorf("span = (%g, %g), want (4, 2)", re, im)
	}
}

func TestRecenterOn(t *testing.T) {
	v := Viewport{RealStart: 0, RealEnd: 10, ImagStart: 0, ImagEnd: 10, Width: 10, Height: 10}

	tcs := []struct {
		name   string
		cx, cy float64
		want   complex128
	}{
		{name: "center is a no-op", cx: 5, cy: 5, want: complex(5, 5)},
		{name: "right and down", cx: 8, cy: 6, want: complex(8, 6)},
		{name: "top left corner", cx: 0, cy: 0, want: complex(0, 0)},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := v.RecenterOn(tc.cx, tc.cy)
			if !near(got.Center(), tc.want) {
				t.Errorf("center = %v, want %v", got.Center(), tc.want)
			}
			re, im := got.Span()
			if re != 10 || im != 10 {
				t.Errorf("span changed to (%g, %g)", re, im)
			}
		})
	}
}

func TestRect(t *testing.T) {
	r := Rect{Left: 2, Right: 5, Top: 1, Bottom: 4}

	if r.Dx() != 4 || r.Dy() != 4 {
		t.Errorf("Dx, Dy = %d, %d, want 4, 4", r.Dx(), r.Dy())
	}
	if x, y := r.Center(); x != 4 || y != 3 {
		t.Errorf("Center = (%g, %g), want (4, 3)", x, y)
	}
	if !r.OnBorder(2, 3) || !r.OnBorder(4, 1) || r.OnBorder(3, 3) || r.OnBorder(6, 1) {
		t.Error("OnBorder misclassifies pixels")
	}
	if !r.Within(8, 8) || r.Within(5, 8) {
		t.Error("Within misclassifies bounds")
	}
}
