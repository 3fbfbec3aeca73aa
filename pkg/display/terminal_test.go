package display

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func simulationScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestTerminal_TwoPixelsPerCell(t *testing.T) {
	screen := simulationScreen(t, 10, 10)
	term := NewTerminal(screen, 4, 3)

	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	term.SetPixel(1, 0, red)
	term.SetPixel(1, 1, blue)
	term.SetPixel(2, 2, red)
	term.SetPixel(9, 9, red)

	if err := term.Display(); err != nil {
		t.Fatal(err)
	}

	r, _, style, _ := screen.GetContent(1, 0)
	fg, bg, _ := style.Decompose()
	if r != upperHalf || fg != rgb(red) || bg != rgb(blue) {
		t.Errorf("cell (1, 0) = %q fg %v bg %v", r, fg, bg)
	}

	// Odd heights leave the lower half of the last row black.
	r, _, style, _ = screen.GetContent(2, 1)
	fg, bg, _ = style.Decompose()
	if r != upperHalf || fg != rgb(red) || bg != rgb(color.RGBA{A: 255}) {
		t.Errorf("cell (2, 1) = %q fg %v bg %v", r, fg, bg)
	}
}

func TestTerminal_Status(t *testing.T) {
	screen := simulationScreen(t, 12, 6)
	term := NewTerminal(screen, 4, 4)

	term.SetStatus("iter 15")
	if err := term.Display(); err != nil {
		t.Fatal(err)
	}

	row := term.Rows()
	got := make([]rune, 0, 7)
	for x := 0; x < 7; x++ {
		r, _, _, _ := screen.GetContent(x, row)
		got = append(got, r)
	}
	if string(got) != "iter 15" {
		t.Errorf("status row = %q, want %q", string(got), "iter 15")
	}

	if x, y := term.Size(); x != 4 || y != 4 {
		t.Errorf("Size() = %d, %d", x, y)
	}
}
