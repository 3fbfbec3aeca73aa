package transforms

import "testing"

func TestMandelbrot_Next(t *testing.T) {
	m := Mandelbrot{}

	tcs := []struct {
		name string
		z, c complex128
		want complex128
	}{
		{name: "first step is c", z: 0, c: complex(0.25, -0.5), want: complex(0.25, -0.5)},
		{name: "i squared", z: complex(0, 1), c: 0, want: -1},
		{name: "real", z: 2, c: 1, want: 5},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.Next(tc.z, tc.c); got != tc.want {
				t.Errorf("Next(%v, %v) = %v, want %v", tc.z, tc.c, got, tc.want)
			}
		})
	}
}

func TestMandelbrot_Escaped(t *testing.T) {
	m := Mandelbrot{}

	if m.Escaped(2) {
		t.Error("|z| = 2 is still bounded")
	}
	if m.Escaped(complex(0, -2)) {
		t.Error("|z| = 2 on the imaginary axis is still bounded")
	}
	if !m.Escaped(complex(2, 0.001)) {
		t.Error("|z| > 2 should have escaped")
	}
}
