package selector

import (
	"testing"

	"github.com/deadsy/grpf/geom"
	"github.com/deadsy/grpf/mapper"
	"github.com/deadsy/grpf/mesh"
	"github.com/deadsy/grpf/triangulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildStore(t *testing.T, pts []complex128, quads []geom.Quadrant) (*mesh.Store, []geom.VertexID) {
	t.Helper()
	mp, err := mapper.New(complex(-2, -2), complex(2, 2))
	require.NoError(t, err)
	lo, hi := mp.Admissible()
	tri := triangulate.New(16, lo, hi)
	store := mesh.New(tri, mp)

	ids, err := store.InsertUser(pts)
	require.NoError(t, err)
	for i, id := range ids {
		store.SetEvaluated(id, complex(float64(quads[i]), 0), quads[i])
	}
	return store, ids
}

func TestSelectFlagsReversalEdges(t *testing.T) {
	// A small square whose two diagonal corners sit in opposite
	// quadrants: any edge between them is a candidate.
	pts := []complex128{
		complex(-1, -1), // Q3
		complex(1, -1),  // Q4
		complex(1, 1),   // Q1
		complex(-1, 1),  // Q2
	}
	quads := []geom.Quadrant{geom.Q3, geom.Q4, geom.Q1, geom.Q2}
	store, ids := buildStore(t, pts, quads)

	res := Select(store)
	require.NotEmpty(t, res.Edges)

	candidateEndpoints := make(map[[2]geom.VertexID]bool)
	for _, e := range res.CandidateEdges {
		candidateEndpoints[[2]geom.VertexID{e.A, e.B}] = true
	}

	// Q3<->Q1 and Q4<->Q2 are reversals (|dq|=2); Q3<->Q4 and Q4<->Q1 etc
	// (adjacent quadrants) are not.
	q3q1 := geom.NewEdgeKey(ids[0], ids[2])
	found := false
	for _, e := range res.CandidateEdges {
		if e == q3q1 {
			found = true
		}
	}
	assert.True(t, found, "expected Q3-Q1 diagonal to be a candidate edge if present in the triangulation")
}

func TestSelectSkipsNodeEdges(t *testing.T) {
	pts := []complex128{complex(-1, -1), complex(1, -1), complex(1, 1)}
	store, ids := buildStore(t, pts, []geom.Quadrant{geom.Q3, geom.QNode, geom.Q1})
	_ = ids

	res := Select(store)
	for _, e := range res.Edges {
		va, _ := store.VertexAttr(e.Edge.A)
		vb, _ := store.VertexAttr(e.Edge.B)
		assert.NotEqual(t, geom.QNode, va.Quad)
		assert.NotEqual(t, geom.QNode, vb.Quad)
	}
}
