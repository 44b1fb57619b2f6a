// Package refine repeatedly subdivides candidate triangles (and skinny
// triangles adjacent to them) until no candidate triangle's longest
// user-coordinate edge exceeds the tolerance, or a safety cap is hit.
package refine

import (
	"math"

	"github.com/deadsy/grpf/evaluate"
	"github.com/deadsy/grpf/geom"
	"github.com/deadsy/grpf/mapper"
	"github.com/deadsy/grpf/mesh"
	"github.com/deadsy/grpf/selector"
	"gonum.org/v1/gonum/floats"
)

// Outcome summarizes why the loop stopped.
type Outcome struct {
	Iterations int
	Converged  bool
	// LimitExceeded is true when MaxIterations or MaxNodes stopped the
	// loop before Converged; the caller still gets the current selection.
	LimitExceeded bool
	Selection     selector.Result
}

// Run drives the candidate-selection/subdivision/re-evaluation loop to
// completion.
func Run(store *mesh.Store, fn evaluate.Func, tolerance, skinnyRatio float64, maxIterations, maxNodes int, parallel bool) Outcome {
	sel := selector.Select(store)

	for iter := 0; ; iter++ {
		if len(sel.CandidateTriangles) == 0 {
			return Outcome{Iterations: iter, Converged: true, Selection: sel}
		}
		if iter >= maxIterations || store.VertexCount() >= maxNodes {
			return Outcome{Iterations: iter, Converged: false, LimitExceeded: true, Selection: sel}
		}

		toSplit := triangleSet(store, sel, tolerance, skinnyRatio)
		if len(toSplit) == 0 {
			// No triangle actually needs splitting: every candidate
			// triangle's longest edge is already within tolerance and no
			// neighbouring triangle is skinny.
			return Outcome{Iterations: iter, Converged: true, Selection: sel}
		}

		newPoints := midpoints(store, toSplit)
		if _, err := store.InsertUser(newPoints); err != nil {
			// TriangulatorFailure: surfaced by the orchestrator, which
			// wraps it into grpf.ErrTriangulatorFailure.
			panic(refineError{err})
		}

		unevaluated := store.Unevaluated()
		zUser := make([]complex128, len(unevaluated))
		for i, id := range unevaluated {
			v, _ := store.VertexAttr(id)
			zUser[i] = v.User
		}
		results := evaluate.Batch(fn, unevaluated, zUser, parallel)
		for _, r := range results {
			store.SetEvaluated(r.ID, r.Value, r.Quad)
		}

		sel = selector.Select(store)
	}
}

// refineError lets Run signal a triangulator failure through panic/recover
// without forcing every caller of Run to plumb a second error return
// through the hot loop; RunSafe below is the only place that recovers it.
type refineError struct{ err error }

// RunSafe wraps Run and converts a triangulator-failure panic into a
// regular error return, the boundary the grpf package actually calls.
func RunSafe(store *mesh.Store, fn evaluate.Func, tolerance, skinnyRatio float64, maxIterations, maxNodes int, parallel bool) (out Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			if re, ok := r.(refineError); ok {
				err = re.err
				return
			}
			panic(r)
		}
	}()
	out = Run(store, fn, tolerance, skinnyRatio, maxIterations, maxNodes, parallel)
	return out, nil
}

// triangleSet builds the set of triangles to subdivide this iteration:
// candidate triangles over tolerance, plus skinny triangles sharing an
// edge with a candidate triangle.
func triangleSet(store *mesh.Store, sel selector.Result, tolerance, skinnyRatio float64) map[geom.Triangle]bool {
	out := make(map[geom.Triangle]bool)
	mp := store.Mapper()

	for _, t := range sel.CandidateTriangles {
		if longestUserEdge(store, mp, t) > tolerance {
			out[t] = true
		}
	}

	for _, t := range sel.CandidateTriangles {
		for _, e := range t.Edges() {
			for _, n := range store.Neighbors(e) {
				if n == t {
					continue
				}
				if isSkinny(store, n, skinnyRatio) {
					out[n] = true
				}
			}
		}
	}

	return out
}

func longestUserEdge(store *mesh.Store, mp *mapper.Mapper, t geom.Triangle) float64 {
	lenSq := make([]float64, 0, 3)
	for _, e := range t.Edges() {
		a := mp.Unmap(store.Position(e.A))
		b := mp.Unmap(store.Position(e.B))
		d := a - b
		lenSq = append(lenSq, real(d)*real(d)+imag(d)*imag(d))
	}
	return sqrt(floats.Max(lenSq))
}

func isSkinny(store *mesh.Store, t geom.Triangle, ratio float64) bool {
	lenSq := make([]float64, 0, 3)
	for _, e := range t.Edges() {
		a := store.Position(e.A)
		b := store.Position(e.B)
		d := a - b
		lenSq = append(lenSq, real(d)*real(d)+imag(d)*imag(d))
	}
	shortest := floats.Min(lenSq)
	if shortest <= 0 {
		return false
	}
	return sqrt(floats.Max(lenSq)/shortest) > ratio
}

// midpoints computes, for each triangle to split, the mapped-coordinate
// midpoints of its three edges, translated back to user coordinates
// (mesh.Store.InsertUser expects user coordinates and re-maps them - this
// keeps InsertUser the single place that knows about the mapper).
func midpoints(store *mesh.Store, tris map[geom.Triangle]bool) []complex128 {
	mp := store.Mapper()
	seen := make(map[geom.EdgeKey]bool)
	var out []complex128
	for t := range tris {
		for _, e := range t.Edges() {
			if seen[e] {
				continue
			}
			seen[e] = true
			a := store.Position(e.A)
			b := store.Position(e.B)
			mid := (a + b) / 2
			out = append(out, mp.Unmap(mid))
		}
	}
	return out
}

func sqrt(f float64) float64 {
	if f <= 0 {
		return 0
	}
	return math.Sqrt(f)
}
