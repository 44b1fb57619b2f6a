package mesh

import (
	"testing"

	"github.com/deadsy/grpf/mapper"
	"github.com/deadsy/grpf/triangulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	mp, err := mapper.New(complex(-1, -1), complex(1, 1))
	require.NoError(t, err)
	lo, hi := mp.Admissible()
	tri := triangulate.New(16, lo, hi)
	return New(tri, mp)
}

func TestInsertUserAssignsStableIdentities(t *testing.T) {
	s := newTestStore(t)
	pts := []complex128{complex(-0.5, -0.5), complex(0.5, -0.5), complex(-0.5, 0.5), complex(0.5, 0.5)}
	ids, err := s.InsertUser(pts)
	require.NoError(t, err)
	require.Len(t, ids, 4)
	assert.Equal(t, 4, s.VertexCount())

	for i, id := range ids {
		v, ok := s.VertexAttr(id)
		require.True(t, ok)
		assert.Equal(t, pts[i], v.User)
		assert.False(t, v.Evaluated)
	}
}

func TestInsertUserDeduplicates(t *testing.T) {
	s := newTestStore(t)
	p := complex(0.1, 0.2)
	ids1, err := s.InsertUser([]complex128{p})
	require.NoError(t, err)
	ids2, err := s.InsertUser([]complex128{p})
	require.NoError(t, err)
	assert.Equal(t, ids1[0], ids2[0])
	assert.Equal(t, 1, s.VertexCount())
}

func TestInsertUserDeduplicatesWithinBatch(t *testing.T) {
	s := newTestStore(t)
	p := complex(0.3, -0.4)
	ids, err := s.InsertUser([]complex128{p, p, p})
	require.NoError(t, err)
	assert.Equal(t, ids[0], ids[1])
	assert.Equal(t, ids[1], ids[2])
	assert.Equal(t, 1, s.VertexCount())
}

func TestSetEvaluatedAndUnevaluated(t *testing.T) {
	s := newTestStore(t)
	ids, err := s.InsertUser([]complex128{complex(0, 0), complex(0.5, 0.5)})
	require.NoError(t, err)

	assert.Len(t, s.Unevaluated(), 2)
	s.SetEvaluated(ids[0], complex(1, 0), 1)
	remaining := s.Unevaluated()
	require.Len(t, remaining, 1)
	assert.Equal(t, ids[1], remaining[0])

	v, ok := s.VertexAttr(ids[0])
	require.True(t, ok)
	assert.True(t, v.Evaluated)
	assert.Equal(t, complex128(1), v.Value)
}
