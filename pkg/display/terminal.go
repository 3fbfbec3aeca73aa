// Package display shows a pixel surface in a terminal.
package display

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"tinygo.org/x/drivers"
)

// upperHalf draws the top pixel of a cell in the foreground color and the
// bottom pixel in the background color.
const upperHalf = '▀'

// A Terminal is a display made of terminal cells, two pixels per cell
// stacked vertically. Pixels beyond the screen are kept but not shown.
type Terminal struct {
	screen tcell.Screen
	w, h   int

	pix   []color.RGBA
	dirty map[int]struct{}

	status string
}

// NewTerminal returns a w x h pixel display drawn onto screen. The screen
// must already be initialized.
func NewTerminal(screen tcell.Screen, w, h int) *Terminal {
	return &Terminal{
		screen: screen,
		w:      w,
		h:      h,
		pix:    make([]color.RGBA, w*h),
		dirty:  make(map[int]struct{}),
	}
}

func (t *Terminal) Size() (x, y int16) {
	return int16(t.w), int16(t.h)
}

func (t *Terminal) SetPixel(x, y int16, c color.RGBA) {
	px, py := int(x), int(y)
	if px < 0 || px >= t.w || py < 0 || py >= t.h {
		return
	}
	t.pix[px+py*t.w] = c
	t.dirty[px+(py/2)*t.w] = struct{}{}
}

// Display redraws the cells whose pixels changed and shows the screen.
func (t *Terminal) Display() error {
	for cell := range t.dirty {
		x, row := cell%t.w, cell/t.w
		top := t.pix[x+2*row*t.w]
		bottom := color.RGBA{A: 255}
		if 2*row+1 < t.h {
			bottom = t.pix[x+(2*row+1)*t.w]
		}
		style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
		t.screen.SetContent(x, row, upperHalf, nil, style)
	}
	clear(t.dirty)

	t.drawStatus()
	t.screen.Show()
	return nil
}

// Rows is the number of terminal rows the image occupies.
func (t *Terminal) Rows() int {
	return (t.h + 1) / 2
}

// SetStatus replaces the line of text shown under the image. It appears on
// the next Display.
func (t *Terminal) SetStatus(s string) {
	t.status = s
}

func (t *Terminal) drawStatus() {
	row := t.Rows()
	width, _ := t.screen.Size()
	col := 0
	for _, r := range t.status {
		if col >= width {
			break
		}
		t.screen.SetContent(col, row, r, nil, tcell.StyleDefault)
		col++
	}
	for ; col < width; col++ {
		t.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var _ drivers.Displayer = (*Terminal)(nil)
