package geom

import "math/cmplx"

// Quadrant is the discrete phase label of a nonzero complex value, per the
// four-way partition of the plane used by the discrete argument principle.
// Q0 is reserved for "node" points: f(z) is zero or non-finite there, and
// a node never participates in phase-difference arithmetic.
type Quadrant int

const (
	QNode Quadrant = iota // f(z) == 0, or non-finite
	Q1                    // Re >= 0, Im >  0
	Q2                    // Re <  0, Im >= 0
	Q3                    // Re <= 0, Im <  0
	Q4                    // Re >  0, Im <= 0
)

// Classify assigns a Quadrant to f(z). A zero or non-finite value is a node
// (QNode); every other value falls in exactly one of Q1..Q4.
func Classify(fz complex128) Quadrant {
	if fz == 0 || cmplx.IsNaN(fz) || cmplx.IsInf(fz) {
		return QNode
	}
	re, im := real(fz), imag(fz)
	switch {
	case re >= 0 && im > 0:
		return Q1
	case re < 0 && im >= 0:
		return Q2
	case re <= 0 && im < 0:
		return Q3
	default: // re > 0 && im <= 0
		return Q4
	}
}

// DQ is the signed, quantized phase jump crossing an edge from a to b, per
// the discrete argument principle: ((Qb - Qa + 1) mod 4) - 1, giving a
// value in {-1,0,1,2} (a reversal always comes out as +2, see below). Callers must only call DQ when both endpoints are
// non-node quadrants; a node edge carries no phase information.
//
// DQ is antisymmetric under swapping a and b for every case except a
// reversal (|Qb-Qa| spans two quadrants): there, going two quadrant-steps
// forward and two quadrant-steps backward land on the same residue mod 4,
// so DQ(a,b) == DQ(b,a) == +2 regardless of which way the edge is actually
// walked. The quadrant labels alone cannot break that tie; DirectedDQ
// below resolves it using the actual function values.
func DQ(a, b Quadrant) int {
	d := (int(b) - int(a) + 1) % 4
	if d < 0 {
		d += 4
	}
	return d - 1
}

// IsReversal reports whether dq, as returned by DQ, marks a phase reversal
// (a candidate edge bounding a root or a pole).
func IsReversal(dq int) bool {
	return dq == 2 || dq == -2
}

// DirectedDQ is DQ resolved for a specific traversal direction: from the
// vertex with quadrant qFrom and function value vFrom, to the vertex with
// quadrant qTo and value vTo. For a smooth edge (|DQ|<2) the quadrant
// arithmetic already determines the sign unambiguously and vFrom/vTo are
// unused. For a reversal edge (|DQ|==2), the sign is resolved from the
// actual rotation sense of f between the two points: the sign of the cross
// product of vFrom and vTo as vectors from the origin, i.e. whether vTo
// sits counter-clockwise (+2) or clockwise (-2) of vFrom. This is what lets
// a directed loop walk accumulate a true +/-4 winding instead of the
// magnitude-only +2 that raw quadrant labels always produce for a
// reversal, in either direction.
func DirectedDQ(qFrom, qTo Quadrant, vFrom, vTo complex128) int {
	dq := DQ(qFrom, qTo)
	if dq != 2 {
		return dq
	}
	if cross(vFrom, vTo) < 0 {
		return -2
	}
	return 2
}

// cross is the z-component of the 2D cross product of a and b, treated as
// vectors from the origin: positive when b is counter-clockwise of a.
func cross(a, b complex128) float64 {
	return real(a)*imag(b) - imag(a)*real(b)
}
