// Package mapper implements the Coordinate Mapper of the GRPF engine: the
// affine bijection between a user-supplied rectangle and the admissible
// open square that the Delaunay triangulator requires its input points to
// lie strictly within. Mapper is a small immutable value holding the
// transform, with Map/Unmap as its two operations.
package mapper

import "fmt"

// admissibleLo and admissibleHi bound the open square (admissibleLo,
// admissibleHi) x (admissibleLo, admissibleHi) that the triangulator
// accepts coordinates in - the same (1, 2) square convention used by
// incremental-Delaunay implementations that require strictly positive,
// bounded input.
const (
	admissibleLo = 1.0
	admissibleHi = 2.0
	// marginFrac shrinks the usable admissible square on each side, so
	// that refinement points generated strictly inside existing triangles
	// (midpoints) can never round onto the triangulator's open boundary.
	marginFrac = 0.02
)

// Mapper is the affine bijection user_rect -> admissible_square. It is
// immutable once built: scale is constant, so edge-length ratios (and
// therefore "skinniness") are preserved by Map/Unmap, while absolute
// lengths are not - callers that need a user-coordinate length must Unmap
// first.
type Mapper struct {
	// user-space origin and scale such that Map(z) = (z-origin)*scale + admissibleLo + margin
	origin complex128
	scale  float64
	// inverse parameters
	lo, span float64 // usable span of the admissible square, per axis
}

// New builds a Mapper from the axis-aligned bounding rectangle [lo, hi] in
// user coordinates (lo.Re <= hi.Re, lo.Im <= hi.Im). The rectangle must be
// non-degenerate (positive width and height); a degenerate rectangle is an
// InvalidDomain condition the caller must detect before constructing a
// Mapper (see grpf.ErrInvalidDomain).
func New(lo, hi complex128) (*Mapper, error) {
	width := real(hi) - real(lo)
	height := imag(hi) - imag(lo)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("mapper: degenerate bounding rectangle %v..%v", lo, hi)
	}

	usableLo := admissibleLo + marginFrac*(admissibleHi-admissibleLo)
	usableHi := admissibleHi - marginFrac*(admissibleHi-admissibleLo)
	usableSpan := usableHi - usableLo

	// A single uniform scale (not one per axis) keeps the map conformal up
	// to translation, so triangle shape - and therefore skinny_ratio - is
	// preserved exactly, not just approximately.
	longest := width
	if height > longest {
		longest = height
	}
	scale := usableSpan / longest

	return &Mapper{
		origin: lo,
		scale:  scale,
		lo:     usableLo,
		span:   usableSpan,
	}, nil
}

// Map sends a user-coordinate point into the admissible square.
func (m *Mapper) Map(z complex128) complex128 {
	d := z - m.origin
	re := m.lo + real(d)*m.scale
	im := m.lo + imag(d)*m.scale
	return complex(re, im)
}

// Unmap is the exact inverse of Map, up to double-precision round-off.
func (m *Mapper) Unmap(w complex128) complex128 {
	re := (real(w)-m.lo)/m.scale + real(m.origin)
	im := (imag(w)-m.lo)/m.scale + imag(m.origin)
	return complex(re, im)
}

// Scale returns the constant Jacobian factor used by Map (mapped-length /
// user-length).
func (m *Mapper) Scale() float64 {
	return m.scale
}

// Admissible reports the admissible square's usable bounds in mapped
// coordinates, [lo, lo+span] on each axis.
func (m *Mapper) Admissible() (lo, hi float64) {
	return m.lo, m.lo + m.span
}
