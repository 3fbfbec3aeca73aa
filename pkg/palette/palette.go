// Package palette maps escape counts onto a small fixed table of colors.
//
// Index 0 of every palette is reserved: it is the NoPaint sentinel, meaning the
// pixel keeps the background and is never drawn.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/bytedance/sonic"
)

// MinColors is the smallest usable palette: the reserved entry plus one color.
const MinColors = 2

// DefaultColors is how many entries of Pens the default palette uses before
// repeating. Adjacent entries contrast rather than forming a gradient.
const DefaultColors = 10

var ErrTooFewColors = errors.New("palette needs at least 2 colors")

// An Index selects a color from a Palette.
type Index int

// NoPaint is the reserved index for pixels left as background.
const NoPaint Index = 0

// Pens is the full color table. Entry 0 is black and is never painted.
var Pens = []color.RGBA{
	{0, 0, 0, 255},
	{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255},
	{255, 255, 0, 255}, {255, 0, 255, 255}, {0, 255, 255, 255}, {255, 255, 255, 255},
	{128, 0, 0, 255}, {0, 128, 0, 255}, {0, 0, 128, 255},
	{128, 128, 0, 255}, {128, 0, 128, 255}, {0, 128, 128, 255}, {128, 128, 128, 255},
}

// A Palette is an immutable ordered table of colors.
type Palette struct {
	colors []color.RGBA
}

// New copies colors into a Palette.
func New(colors []color.RGBA) (Palette, error) {
	if len(colors) < MinColors {
		return Palette{}, fmt.Errorf("%w: got %d", ErrTooFewColors, len(colors))
	}
	c := make([]color.RGBA, len(colors))
	copy(c, colors)
	return Palette{colors: c}, nil
}

// Default returns the first DefaultColors entries of Pens.
func Default() Palette {
	p, _ := New(Pens[:DefaultColors])
	return p
}

// Len is the number of entries, including the reserved one.
func (p Palette) Len() int {
	return len(p.colors)
}

// IndexFor maps an escape count to a palette entry: (iterations-1) mod Len.
func (p Palette) IndexFor(iterations int) Index {
	n := len(p.colors)
	if n == 0 {
		return NoPaint
	}
	i := (iterations - 1) % n
	if i < 0 {
		i += n
	}
	return Index(i)
}

// Paints reports whether idx should be drawn at all.
func (p Palette) Paints(idx Index) bool {
	return idx != NoPaint && int(idx) < len(p.colors)
}

// Color returns the color for idx. The reserved entry is returned for
// NoPaint so callers can still show it, e.g. as the background.
func (p Palette) Color(idx Index) color.RGBA {
	if idx < 0 || int(idx) >= len(p.colors) {
		return p.colors[NoPaint]
	}
	return p.colors[idx]
}

// Load decodes a palette written as a JSON array of [r, g, b] triples.
func Load(r io.Reader) (Palette, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Palette{}, err
	}

	var triples [][3]uint8
	if err := sonic.Unmarshal(data, &triples); err != nil {
		return Palette{}, fmt.Errorf("decoding palette: %w", err)
	}

	colors := make([]color.RGBA, len(triples))
	for i, t := range triples {
		colors[i] = color.RGBA{R: t[0], G: t[1], B: t[2], A: 255}
	}
	return New(colors)
}
