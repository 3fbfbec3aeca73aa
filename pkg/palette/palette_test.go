package palette

import (
	"errors"
	"image/color"
	"strings"
	"testing"
)

func TestNew_TooFewColors(t *testing.T) {
	for _, colors := range [][]color.RGBA{nil, {{0, 0, 0, 255}}} {
		if _, err := New(colors); !errors.Is(err, ErrTooFewColors) {
			t.Errorf("New(%d colors) err = %v, want ErrTooFewColors", len(colors), err)
		}
	}
}

func TestIndexFor(t *testing.T) {
	p := Default()
	if p.Len() != DefaultColors {
		t.Fatalf("Len() = %d, want %d", p.Len(), DefaultColors)
	}

	tcs := []struct {
		iterations int
		want       Index
	}{
		{iterations: 1, want: NoPaint},
		{iterations: 2, want: 1},
		{iterations: 10, want: 9},
		{iterations: 11, want: NoPaint},
		{iterations: 16, want: 5},
		{iterations: 0, want: 9},
	}

	for _, tc := range tcs {
		if got := p.IndexFor(tc.iterations); got != tc.want {
			t.Errorf("IndexFor(%d) = %d, want %d", tc.iterations, got, tc.want)
		}
	}
}

func TestPaints(t *testing.T) {
	p := Default()

	if p.Paints(NoPaint) {
		t.Error("NoPaint must never be painted")
	}
	if !p.Paints(3) {
		t.Error("index 3 should be painted")
	}
	if p.Paints(Index(p.Len())) {
		t.Error("out of range index should not be painted")
	}
}

func TestNew_Copies(t *testing.T) {
	colors := []color.RGBA{{0, 0, 0, 255}, {1, 2, 3, 255}}
	p, err := New(colors)
	if err != nil {
		t.Fatal(err)
	}
	colors[1] = color.RGBA{9, 9, 9, 255}

	if got := p.Color(1); got != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("palette changed with its source slice: %v", got)
	}
}

func TestLoad(t *testing.T) {
	p, err := Load(strings.NewReader(`[[0,0,0],[255,0,0],[0,255,0]]`))
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", p.Len())
	}
	if got := p.Color(2); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("Color(2) = %v", got)
	}

	if _, err := Load(strings.NewReader(`[[0,0,0]]`)); !errors.Is(err, ErrTooFewColors) {
		t.Errorf("single color palette err = %v, want ErrTooFewColors", err)
	}
	if _, err := Load(strings.NewReader(`not json`)); err == nil {
		t.Error("expected a decode error")
	}
}
