package evaluate

import (
	"math/cmplx"
	"testing"

	"github.com/deadsy/grpf/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(n int) []geom.VertexID {
	out := make([]geom.VertexID, n)
	for i := range out {
		out[i] = geom.VertexID(i)
	}
	return out
}

func TestBatchSequential(t *testing.T) {
	zs := []complex128{complex(1, 1), complex(-1, 1), complex(-1, -1), complex(1, -1)}
	results := Batch(func(z complex128) complex128 { return z }, ids(len(zs)), zs, false)
	require.Len(t, results, len(zs))
	for i, r := range results {
		assert.Equal(t, zs[i], r.Value)
		assert.Equal(t, geom.Classify(zs[i]), r.Quad)
	}
}

func TestBatchParallelMatchesSequential(t *testing.T) {
	n := 500
	zs := make([]complex128, n)
	for i := range zs {
		zs[i] = complex(float64(i%7)-3, float64(i%5)-2)
	}
	fn := func(z complex128) complex128 { return z*z + 1 }

	seq := Batch(fn, ids(n), zs, false)
	par := Batch(fn, ids(n), zs, true)
	require.Len(t, par, n)
	for i := range seq {
		assert.Equal(t, seq[i].Value, par[i].Value)
		assert.Equal(t, seq[i].Quad, par[i].Quad)
		assert.Equal(t, seq[i].ID, par[i].ID)
	}
}

func TestBatchNonFiniteBecomesNode(t *testing.T) {
	zs := []complex128{complex(1, 0)}
	fn := func(complex128) complex128 { return cmplx.Inf() }
	results := Batch(fn, ids(1), zs, false)
	require.Len(t, results, 1)
	assert.Equal(t, geom.QNode, results[0].Quad)
}

func TestBatchPanicBecomesNode(t *testing.T) {
	zs := []complex128{complex(1, 0)}
	fn := func(complex128) complex128 { panic("boom") }
	results := Batch(fn, ids(1), zs, false)
	require.Len(t, results, 1)
	assert.Equal(t, geom.QNode, results[0].Quad)
}
