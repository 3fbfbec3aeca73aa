// Package escape counts how many steps of the Mandelbrot map a point takes to
// leave the disc of radius 2.
package escape

import "github.com/willbeason/zoombrot/pkg/transforms"

var mandelbrot = transforms.Mandelbrot{}

// Iterate runs z -> z^2 + c from z = 0 while |z| <= 2 and the step count has
// not passed maxIter. Points that never escape return maxIter + 1.
//
// For a fixed c the result never decreases as maxIter grows, and once the
// point has escaped below the bound a larger bound returns the same count.
func Iterate(c complex128, maxIter int) int {
	var z complex128
	n := 0
	for !mandelbrot.Escaped(z) && n <= maxIter {
		z = mandelbrot.Next(z, c)
		n++
	}
	return n
}

// Escaped reports whether a count returned by Iterate with the same bound
// means the orbit left the disc, rather than running out of steps.
func Escaped(n, maxIter int) bool {
	return n <= maxIter
}
