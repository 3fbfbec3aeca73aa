package transforms

// Mandelbrot is the quadratic map z -> z^2 + c iterated from z = 0.
type Mandelbrot struct{}

// Next advances z by one step of the map for the sample point c.
func (Mandelbrot) Next(z complex128, c complex128) complex128 {
	return z*z + c
}

// Escaped reports whether z has left the disc of radius 2, after which the
// orbit is known to diverge.
func (Mandelbrot) Escaped(z complex128) bool {
	return real(z)*real(z)+imag(z)*imag(z) > 4
}
