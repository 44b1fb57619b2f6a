// Package grpf locates the zeros and poles of a user-supplied complex
// function inside a bounded planar region, via Kowalczyk's GRPF method:
// Delaunay triangulation plus a discrete form of the Cauchy argument
// principle. Grpf is the single entry point; everything else in this
// module (mapper, mesh, triangulate, evaluate, selector, refine, contour,
// domain, plot) is an internal collaborator it wires together.
package grpf

import (
	"log"
	"math"

	"github.com/deadsy/grpf/contour"
	"github.com/deadsy/grpf/evaluate"
	"github.com/deadsy/grpf/geom"
	"github.com/deadsy/grpf/mapper"
	"github.com/deadsy/grpf/mesh"
	"github.com/deadsy/grpf/refine"
	"github.com/deadsy/grpf/selector"
	"github.com/deadsy/grpf/triangulate"
)

// Func is the user-supplied f: C -> C. It may return a non-finite value or
// panic; both are treated as f(z) being undefined at z.
type Func = evaluate.Func

// RootPole is one classified zero or pole, in user coordinates.
type RootPole struct {
	Location     complex128
	Multiplicity int
}

// Diagnostics is the extended, optional-looking return data: a per-vertex
// quadrant list, a per-edge signed phase-difference list, the mesh
// handle, and the unmap function. Diagnostics are views over side tables
// the engine already computed, so populating them costs nothing extra;
// Result.Diagnostics is therefore always populated - a caller that does
// not want it simply does not read it.
type Diagnostics struct {
	Quadrants  map[geom.VertexID]geom.Quadrant
	PhaseDiffs []selector.EdgeInfo
	Mesh       *mesh.Store
	Unmap      func(complex128) complex128
}

// Result is everything Grpf returns.
type Result struct {
	Roots       []RootPole
	Poles       []RootPole
	Iterations  int
	Diagnostics Diagnostics
}

// Grpf is the engine entry point. origcoords seeds the initial mesh; its
// axis-aligned bounding box (with a safety margin) determines the
// Coordinate Mapper. params may be the zero value only if the caller
// means to override every field directly - callers should normally start
// from DefaultParams(). logger receives LimitExceeded diagnostics as
// Printf warnings (a non-fatal recovery policy); a nil logger discards
// them.
//
// Grpf returns ErrInvalidDomain or ErrTriangulatorFailure as a fatal error
// with a nil Result. ErrLimitExceeded is never returned as an error: it is
// a diagnostic logged via logger while Result still carries the
// best-effort roots/poles found so far.
func Grpf(f Func, origcoords []complex128, params Params, logger *log.Logger) (*Result, error) {
	return grpfWith(f, origcoords, params, logger, nil)
}

// GrpfWithTriangulator is Grpf with an explicit Triangulator, for callers
// that want to swap in a different implementation of the mesh.Triangulator
// contract instead of this module's default Bowyer-Watson triangulate.Delaunay.
func GrpfWithTriangulator(f Func, origcoords []complex128, params Params, logger *log.Logger, tri mesh.Triangulator) (*Result, error) {
	return grpfWith(f, origcoords, params, logger, tri)
}

func grpfWith(f Func, origcoords []complex128, params Params, logger *log.Logger, tri mesh.Triangulator) (*Result, error) {
	if logger == nil {
		logger = log.New(discard{}, "", 0)
	}

	lo, hi, err := boundingBox(origcoords)
	if err != nil {
		return nil, err
	}

	if err := params.validate(len(origcoords)); err != nil {
		return nil, err
	}

	mp, err := mapper.New(lo, hi)
	if err != nil {
		return nil, errWrap(ErrInvalidDomain, "%v", err)
	}

	if tri == nil {
		admLo, admHi := mp.Admissible()
		tri = triangulate.New(params.TessSizeHint, admLo, admHi)
	}
	store := mesh.New(tri, mp)

	if _, err := store.InsertUser(origcoords); err != nil {
		return nil, errWrap(ErrTriangulatorFailure, "%v", err)
	}

	evaluateNew(store, f, params.Multithreading)

	outcome, err := refine.RunSafe(store, f, params.Tolerance, params.SkinnyRatio, params.MaxIterations, params.MaxNodes, params.Multithreading)
	if err != nil {
		return nil, errWrap(ErrTriangulatorFailure, "%v", err)
	}
	if outcome.LimitExceeded {
		logger.Printf("%v: iteration %d, %d vertices", ErrLimitExceeded, outcome.Iterations, store.VertexCount())
	}

	classifications := contour.Trace(outcome.Selection.Edges, func(v geom.VertexID) contour.VertexData {
		attr, _ := store.VertexAttr(v)
		return contour.VertexData{Quad: attr.Quad, Value: attr.Value, User: attr.User}
	})

	result := &Result{Iterations: outcome.Iterations}
	for _, c := range classifications {
		rp := RootPole{Location: c.Location, Multiplicity: c.Multiplicity}
		switch c.Kind {
		case contour.Root:
			result.Roots = append(result.Roots, rp)
		case contour.Pole:
			result.Poles = append(result.Poles, rp)
		}
	}

	quadrants := make(map[geom.VertexID]geom.Quadrant)
	for _, v := range store.AllVertices() {
		quadrants[v.ID] = v.Quad
	}
	result.Diagnostics = Diagnostics{
		Quadrants:  quadrants,
		PhaseDiffs: outcome.Selection.Edges,
		Mesh:       store,
		Unmap:      mp.Unmap,
	}

	return result, nil
}

// evaluateNew evaluates f at every vertex the store does not yet have a
// value for, and records the results - the initial-mesh counterpart of
// what refine.Run does for each refinement batch.
func evaluateNew(store *mesh.Store, f Func, parallel bool) {
	unevaluated := store.Unevaluated()
	zUser := make([]complex128, len(unevaluated))
	for i, id := range unevaluated {
		v, _ := store.VertexAttr(id)
		zUser[i] = v.User
	}
	results := evaluate.Batch(f, unevaluated, zUser, parallel)
	for _, r := range results {
		store.SetEvaluated(r.ID, r.Value, r.Quad)
	}
}

// boundingBox computes the axis-aligned bounding rectangle of origcoords
// and rejects the invalid-domain conditions: empty, or all collinear.
func boundingBox(origcoords []complex128) (lo, hi complex128, err error) {
	if len(origcoords) == 0 {
		return 0, 0, errWrap(ErrInvalidDomain, "origcoords is empty")
	}

	xLo, xHi := real(origcoords[0]), real(origcoords[0])
	yLo, yHi := imag(origcoords[0]), imag(origcoords[0])
	for _, z := range origcoords[1:] {
		if re := real(z); re < xLo {
			xLo = re
		} else if re > xHi {
			xHi = re
		}
		if im := imag(z); im < yLo {
			yLo = im
		} else if im > yHi {
			yHi = im
		}
	}

	if collinear(origcoords) {
		return 0, 0, errWrap(ErrInvalidDomain, "origcoords are degenerate (all collinear)")
	}

	return complex(xLo, yLo), complex(xHi, yHi), nil
}

// collinear reports whether every point in zs lies on a single line,
// within a small relative tolerance. A single point or two points are
// trivially collinear and therefore degenerate (no area to triangulate).
func collinear(zs []complex128) bool {
	if len(zs) < 3 {
		return true
	}
	a := zs[0]
	// find a second point distinct from a to define the reference line
	var b complex128
	haveB := false
	for _, z := range zs[1:] {
		if z != a {
			b = z
			haveB = true
			break
		}
	}
	if !haveB {
		return true
	}
	dir := b - a
	scale := math.Hypot(real(dir), imag(dir))
	const tol = 1e-9
	for _, z := range zs {
		d := z - a
		cross := real(dir)*imag(d) - imag(dir)*real(d)
		if math.Abs(cross) > tol*scale*scale {
			return false
		}
	}
	return true
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
