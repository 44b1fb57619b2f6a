package mesh

import (
	"fmt"
	"sync"

	"github.com/deadsy/grpf/geom"
	"github.com/deadsy/grpf/mapper"
)

// dedupEpsFrac is the fraction of the admissible square's usable span
// treated as "the same point" during deduplication - small enough to never
// merge two genuinely distinct mesh points, large enough to absorb the
// double-precision jitter of repeated midpoint construction.
const dedupEpsFrac = 1e-9

// Store owns the only shared mutable state of the engine: the side tables
// mapping vertex identity to user-z, f-value and quadrant. Vertex
// identities are monotonically increasing and never reused or deleted.
type Store struct {
	mu    sync.Mutex // protects attrs/order during concurrent evaluator writes
	tri   Triangulator
	mp    *mapper.Mapper
	index *dedupIndex
	attrs map[geom.VertexID]*geom.Vertex
	order []geom.VertexID // insertion order, for stable diagnostic output
}

// New builds a Store around a Triangulator and a Mapper.
func New(tri Triangulator, mp *mapper.Mapper) *Store {
	lo, hi := mp.Admissible()
	eps := dedupEpsFrac * (hi - lo)
	return &Store{
		tri:   tri,
		mp:    mp,
		index: newDedupIndex(eps),
		attrs: make(map[geom.VertexID]*geom.Vertex),
	}
}

// InsertUser maps each user-coordinate point into the admissible square,
// deduplicates it against existing vertices, and inserts genuinely new
// points into the triangulator. It returns the vertex identities for all
// of zUser, in order - pre-existing IDs for duplicates, new IDs otherwise.
func (s *Store) InsertUser(zUser []complex128) ([]geom.VertexID, error) {
	if len(zUser) == 0 {
		return nil, nil
	}

	ids := make([]geom.VertexID, len(zUser))
	resolved := make([]bool, len(zUser))

	// batchGroup collapses points within the same call that land in the
	// same eps-sized bucket (for example the same point passed more than
	// once).
	type group struct {
		zm      complex128
		zu      complex128
		members []int
	}
	batch := make(map[complex128]*group, len(zUser))
	var groups []*group

	for i, zu := range zUser {
		zm := s.mp.Map(zu)
		if existing, ok := s.index.find(zm); ok {
			ids[i] = existing
			resolved[i] = true
			continue
		}
		key := roundKey(zm, s.index.eps)
		g, ok := batch[key]
		if !ok {
			g = &group{zm: zm, zu: zu}
			batch[key] = g
			groups = append(groups, g)
		}
		g.members = append(g.members, i)
	}

	if len(groups) == 0 {
		return ids, nil
	}

	fresh := make([]complex128, len(groups))
	for i, g := range groups {
		fresh[i] = g.zm
	}

	newIDs, err := s.tri.Insert(fresh)
	if err != nil {
		return nil, fmt.Errorf("mesh: triangulator insert failed: %w", err)
	}
	if len(newIDs) != len(fresh) {
		return nil, fmt.Errorf("mesh: triangulator returned %d ids for %d points", len(newIDs), len(fresh))
	}

	s.mu.Lock()
	for gi, g := range groups {
		id := newIDs[gi]
		s.attrs[id] = &geom.Vertex{ID: id, User: g.zu, Mapped: g.zm}
		s.order = append(s.order, id)
		s.index.add(id, g.zm)
		for _, i := range g.members {
			ids[i] = id
			resolved[i] = true
		}
	}
	s.mu.Unlock()

	for i, ok := range resolved {
		if !ok {
			return nil, fmt.Errorf("mesh: internal error, point %d unresolved", i)
		}
	}

	return ids, nil
}

// roundKey buckets a mapped point to an eps-sized grid cell, so that
// points in the same insertion batch that fall in the same cell collapse
// to one lookup key. Two points within eps of each other that lie on
// opposite sides of a cell boundary get different keys.
func roundKey(z complex128, eps float64) complex128 {
	if eps <= 0 {
		return z
	}
	rr := float64(int64(real(z)/eps)) * eps
	ri := float64(int64(imag(z)/eps)) * eps
	return complex(rr, ri)
}

// Triangles delegates to the underlying Triangulator.
func (s *Store) Triangles() []geom.Triangle { return s.tri.Triangles() }

// Edges delegates to the underlying Triangulator.
func (s *Store) Edges() []geom.EdgeKey { return s.tri.Edges() }

// Neighbors delegates to the underlying Triangulator.
func (s *Store) Neighbors(e geom.EdgeKey) []geom.Triangle { return s.tri.Neighbors(e) }

// VertexCount returns the number of vertices in the side table.
func (s *Store) VertexCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.attrs)
}

// VertexAttr is the O(1) lookup of a vertex's attributes.
func (s *Store) VertexAttr(v geom.VertexID) (geom.Vertex, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.attrs[v]
	if !ok {
		return geom.Vertex{}, false
	}
	return *a, true
}

// SetEvaluated records the result of evaluating f at v. The engine and the
// refinement loop call it one vertex at a time after evaluate.Batch has
// returned; the parallel evaluation workers never touch the Store. The
// mutex makes concurrent calls safe all the same.
func (s *Store) SetEvaluated(v geom.VertexID, value complex128, q geom.Quadrant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.attrs[v]
	a.Value = value
	a.Quad = q
	a.Evaluated = true
}

// Unevaluated returns the vertices that have not yet had f evaluated at
// them, in insertion order.
func (s *Store) Unevaluated() []geom.VertexID {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []geom.VertexID
	for _, id := range s.order {
		if !s.attrs[id].Evaluated {
			out = append(out, id)
		}
	}
	return out
}

// Position returns a vertex's mapped coordinate, by delegating to the
// triangulator (the authoritative source of mapped positions).
func (s *Store) Position(v geom.VertexID) complex128 { return s.tri.Position(v) }

// Mapper exposes the Store's Coordinate Mapper, so downstream components
// (refinement, plot) can translate between user and mapped coordinates
// without threading the Mapper through separately.
func (s *Store) Mapper() *mapper.Mapper { return s.mp }

// AllVertices returns every vertex attribute, in insertion order. Used by
// diagnostics and the plot adapter.
func (s *Store) AllVertices() []geom.Vertex {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]geom.Vertex, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.attrs[id])
	}
	return out
}
