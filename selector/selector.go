// Package selector walks mesh edges, computes each edge's signed quadrant
// jump dq, and flags the edges and triangles that bound a phase reversal.
package selector

import (
	"github.com/deadsy/grpf/geom"
	"github.com/deadsy/grpf/mesh"
)

// EdgeInfo is one edge's endpoints and phase-jump classification, as
// needed later by the contour tracer. DQ is computed in the edge's
// canonical (low-ID-to-high-ID) direction and is informational/diagnostic
// only - it is accurate for candidacy (|DQ|==2 iff Candidate) and for a
// smooth edge's sign, but for a reversal edge DQ is always +2 regardless of
// which way the edge is walked (see geom.DQ's doc comment), so the contour
// tracer does not consume this field's sign directly: it re-derives each
// reversal edge's direction-correct contribution from the actual vertex
// values via geom.DirectedDQ while walking the traced loop.
type EdgeInfo struct {
	Edge      geom.EdgeKey
	DQ        int
	Candidate bool
}

// Result is the outcome of one selection pass.
type Result struct {
	// Edges holds every mesh edge whose endpoints are both evaluated to a
	// non-node quadrant, with its signed dq.
	Edges []EdgeInfo
	// CandidateEdges is the subset of Edges with |dq| == 2.
	CandidateEdges []geom.EdgeKey
	// CandidateTriangles is every triangle with at least one candidate
	// edge.
	CandidateTriangles []geom.Triangle
}

// Select runs one selection pass over the store's current mesh.
func Select(store *mesh.Store) Result {
	var res Result
	candidateSet := make(map[geom.EdgeKey]bool)

	for _, e := range store.Edges() {
		va, okA := store.VertexAttr(e.A)
		vb, okB := store.VertexAttr(e.B)
		if !okA || !okB || !va.Evaluated || !vb.Evaluated {
			continue
		}
		if va.Quad == geom.QNode || vb.Quad == geom.QNode {
			continue // node edges never become candidates
		}
		dq := geom.DQ(va.Quad, vb.Quad)
		info := EdgeInfo{Edge: e, DQ: dq, Candidate: geom.IsReversal(dq)}
		res.Edges = append(res.Edges, info)
		if info.Candidate {
			res.CandidateEdges = append(res.CandidateEdges, e)
			candidateSet[e] = true
		}
	}

	seenTri := make(map[geom.Triangle]bool)
	for _, t := range store.Triangles() {
		isCandidate := false
		for _, e := range t.Edges() {
			if candidateSet[e] {
				isCandidate = true
				break
			}
		}
		if isCandidate && !seenTri[t] {
			seenTri[t] = true
			res.CandidateTriangles = append(res.CandidateTriangles, t)
		}
	}

	return res
}
