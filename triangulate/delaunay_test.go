package triangulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertGrowsVertexCountMonotonically(t *testing.T) {
	d := New(16, 1, 2)
	prev := d.VertexCount()
	require.Equal(t, 0, prev)

	grid := []complex128{
		complex(1.2, 1.2), complex(1.8, 1.2), complex(1.2, 1.8), complex(1.8, 1.8),
		complex(1.5, 1.5),
	}
	for _, p := range grid {
		ids, err := d.Insert([]complex128{p})
		require.NoError(t, err)
		require.Len(t, ids, 1)
		now := d.VertexCount()
		assert.Greater(t, now, prev)
		prev = now
	}
}

func TestTrianglesExcludeScaffold(t *testing.T) {
	d := New(16, 1, 2)
	pts := []complex128{
		complex(1.2, 1.2), complex(1.8, 1.2), complex(1.2, 1.8), complex(1.8, 1.8),
	}
	_, err := d.Insert(pts)
	require.NoError(t, err)

	tris := d.Triangles()
	require.NotEmpty(t, tris)
	for _, tri := range tris {
		for _, v := range tri.V {
			assert.False(t, d.isSuper(v), "triangle references scaffold vertex %d", v)
		}
	}
}

func TestEdgesConsistentWithTriangles(t *testing.T) {
	d := New(16, 1, 2)
	pts := []complex128{
		complex(1.2, 1.2), complex(1.8, 1.2), complex(1.2, 1.8), complex(1.8, 1.8), complex(1.5, 1.5),
	}
	_, err := d.Insert(pts)
	require.NoError(t, err)

	edgeSet := make(map[[2]uint32]bool)
	for _, tri := range d.Triangles() {
		for _, e := range tri.Edges() {
			edgeSet[[2]uint32{uint32(e.A), uint32(e.B)}] = true
		}
	}
	edges := d.Edges()
	assert.Len(t, edges, len(edgeSet))
	for _, e := range edges {
		assert.True(t, edgeSet[[2]uint32{uint32(e.A), uint32(e.B)}])
	}
}

func TestNeighborsFindsIncidentTriangles(t *testing.T) {
	d := New(16, 1, 2)
	pts := []complex128{
		complex(1.2, 1.2), complex(1.8, 1.2), complex(1.2, 1.8), complex(1.8, 1.8),
	}
	_, err := d.Insert(pts)
	require.NoError(t, err)

	for _, e := range d.Edges() {
		neighbors := d.Neighbors(e)
		assert.GreaterOrEqual(t, len(neighbors), 1)
		assert.LessOrEqual(t, len(neighbors), 2)
	}
}
