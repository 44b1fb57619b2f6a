package triangulate

import (
	"gonum.org/v1/gonum/mat"
)

// circumcircle solves for the center and squared radius of the circle
// through three non-collinear points, via the 2x2 linear system formed by
// the perpendicular bisectors of (a,b) and (a,c).
func circumcircle(a, b, c complex128) (center complex128, radiusSq float64, ok bool) {
	ax, ay := real(a), imag(a)
	bx, by := real(b), imag(b)
	cx, cy := real(c), imag(c)

	// Perpendicular bisector of (a,b): 2(bx-ax)x + 2(by-ay)y = bx^2+by^2-ax^2-ay^2
	// Perpendicular bisector of (a,c): 2(cx-ax)x + 2(cy-ay)y = cx^2+cy^2-ax^2-ay^2
	A := mat.NewDense(2, 2, []float64{
		2 * (bx - ax), 2 * (by - ay),
		2 * (cx - ax), 2 * (cy - ay),
	})
	rhs := mat.NewVecDense(2, []float64{
		bx*bx + by*by - ax*ax - ay*ay,
		cx*cx + cy*cy - ax*ax - ay*ay,
	})

	det := mat.Det(A)
	if det == 0 || isNaN(det) {
		return 0, 0, false
	}

	var x mat.VecDense
	if err := x.SolveVec(A, rhs); err != nil {
		return 0, 0, false
	}

	ctr := complex(x.AtVec(0), x.AtVec(1))
	dx, dy := real(ctr)-ax, imag(ctr)-ay
	return ctr, dx*dx + dy*dy, true
}

func isNaN(f float64) bool { return f != f }

// inCircumcircle reports whether p lies strictly inside the circumcircle
// of (a,b,c), to within a relative epsilon - the Bowyer-Watson insertion
// predicate.
func inCircumcircle(a, b, c, p complex128) bool {
	center, rSq, ok := circumcircle(a, b, c)
	if !ok {
		return false
	}
	dx, dy := real(p)-real(center), imag(p)-imag(center)
	distSq := dx*dx + dy*dy
	const relEps = 1e-12
	return distSq < rSq*(1-relEps)
}
