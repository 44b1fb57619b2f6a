// Package domain provides pure generators of an initial sample-point
// sequence whose triangles are approximately equilateral. These are
// convenience helpers, not part of the GRPF core engine - callers may
// build origcoords any way they like.
package domain

import "math"

// Rectangular returns a point sequence covering the axis-aligned rectangle
// [zLo, zHi] with approximately equilateral triangles of edge length step,
// via a triangular (hex-packed) lattice.
func Rectangular(zLo, zHi complex128, step float64) []complex128 {
	if step <= 0 {
		return nil
	}
	xLo, xHi := real(zLo), real(zHi)
	yLo, yHi := imag(zLo), imag(zHi)
	if xHi < xLo {
		xLo, xHi = xHi, xLo
	}
	if yHi < yLo {
		yLo, yHi = yHi, yLo
	}

	rowHeight := step * math.Sqrt(3) / 2
	var pts []complex128
	row := 0
	for y := yLo; y <= yHi+1e-9; y += rowHeight {
		xOffset := 0.0
		if row%2 == 1 {
			xOffset = step / 2
		}
		for x := xLo + xOffset; x <= xHi+1e-9; x += step {
			pts = append(pts, complex(x, y))
		}
		row++
	}
	return pts
}

// Disk returns a point sequence covering the disk of the given center and
// radius, as concentric rings spaced by step with approximately step-sized
// arc length between adjacent points on each ring.
func Disk(center complex128, radius, step float64) []complex128 {
	if step <= 0 || radius <= 0 {
		return nil
	}
	pts := []complex128{center}
	nRings := int(radius/step + 0.5)
	if nRings < 1 {
		nRings = 1
	}
	for ring := 1; ring <= nRings; ring++ {
		r := radius * float64(ring) / float64(nRings)
		circumference := 2 * math.Pi * r
		n := int(circumference/step + 0.5)
		if n < 6 {
			n = 6
		}
		for i := 0; i < n; i++ {
			theta := 2 * math.Pi * float64(i) / float64(n)
			pts = append(pts, center+complex(r*math.Cos(theta), r*math.Sin(theta)))
		}
	}
	return pts
}
