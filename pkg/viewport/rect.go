package viewport

import "fmt"

// A Rect is an inclusive pixel rectangle: Left and Right are both columns of
// the rectangle, Top and Bottom both rows.
type Rect struct {
	Left, Right int
	Top, Bottom int
}

// Full returns the rectangle covering a whole w x h surface.
func Full(w, h int) Rect {
	return Rect{Left: 0, Right: w - 1, Top: 0, Bottom: h - 1}
}

// Dx is the number of columns in r.
func (r Rect) Dx() int {
	return r.Right - r.Left + 1
}

// Dy is the number of rows in r.
func (r Rect) Dy() int {
	return r.Bottom - r.Top + 1
}

// Center is the middle of the pixel span r covers, in fractional pixels.
func (r Rect) Center() (x, y float64) {
	return float64(r.Left+r.Right+1) * 0.5, float64(r.Top+r.Bottom+1) * 0.5
}

// Contains reports whether pixel (x, y) lies inside r or on its border.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// OnBorder reports whether pixel (x, y) is part of r's outline.
func (r Rect) OnBorder(x, y int) bool {
	if !r.Contains(x, y) {
		return false
	}
	return x == r.Left || x == r.Right || y == r.Top || y == r.Bottom
}

// Within reports whether r is well formed and fits inside a w x h surface.
func (r Rect) Within(w, h int) bool {
	return 0 <= r.Left && r.Left <= r.Right && r.Right < w &&
		0 <= r.Top && r.Top <= r.Bottom && r.Bottom < h
}

func (r Rect) String() string {
	return fmt.Sprintf("{left:%d right:%d top:%d bottom:%d}", r.Left, r.Right, r.Top, r.Bottom)
}
