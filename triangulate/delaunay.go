// Package triangulate provides the default implementation of the
// mesh.Triangulator contract: an incremental Bowyer-Watson Delaunay
// triangulation over points confined to the mapper's admissible square.
// It is deliberately a replaceable module - grpf.GrpfWithTriangulator
// accepts any mesh.Triangulator - but this is the one the engine uses unless the
// caller supplies another.
package triangulate

import (
	"fmt"
	"sync"

	"github.com/deadsy/grpf/geom"
)

// superScale controls how far outside the admissible square the scaffold
// "super-triangle" extends. It must comfortably enclose the admissible
// square so that every legitimately-admissible point is inside it; the
// scaffold's own vertices are bookkeeping only and are never exposed by
// Triangles, Edges, Neighbors or VertexCount.
const superScale = 50

// Delaunay is an incremental Bowyer-Watson Delaunay triangulation.
type Delaunay struct {
	mu        sync.Mutex
	points    map[geom.VertexID]complex128
	nextID    geom.VertexID
	super     [3]geom.VertexID
	triangles []geom.Triangle
}

// New builds an empty Delaunay triangulation whose scaffold encloses the
// admissible square [lo, hi] x [lo, hi]. sizeHint preallocates the point
// table.
func New(sizeHint int, lo, hi float64) *Delaunay {
	if sizeHint < 1 {
		sizeHint = 1
	}
	d := &Delaunay{
		points: make(map[geom.VertexID]complex128, sizeHint),
	}

	mid := (lo + hi) / 2
	span := (hi - lo) * superScale
	p0 := complex(mid-span, mid-span)
	p1 := complex(mid+2*span, mid-span)
	p2 := complex(mid-span, mid+2*span)

	d.super[0] = d.allocID(p0)
	d.super[1] = d.allocID(p1)
	d.super[2] = d.allocID(p2)
	d.triangles = []geom.Triangle{{V: d.super}}

	return d
}

func (d *Delaunay) allocID(p complex128) geom.VertexID {
	id := d.nextID
	d.nextID++
	d.points[id] = p
	return id
}

func (d *Delaunay) isSuper(v geom.VertexID) bool {
	return v == d.super[0] || v == d.super[1] || v == d.super[2]
}

// Insert implements mesh.Triangulator.
func (d *Delaunay) Insert(pts []complex128) ([]geom.VertexID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ids := make([]geom.VertexID, len(pts))
	for i, p := range pts {
		id, err := d.insertOne(p)
		if err != nil {
			return nil, fmt.Errorf("triangulate: insert point %d: %w", i, err)
		}
		ids[i] = id
	}
	return ids, nil
}

func (d *Delaunay) insertOne(p complex128) (geom.VertexID, error) {
	id := d.allocID(p)

	var badIdx []int
	for i, t := range d.triangles {
		a, b, c := d.points[t.V[0]], d.points[t.V[1]], d.points[t.V[2]]
		if inCircumcircle(a, b, c, p) {
			badIdx = append(badIdx, i)
		}
	}
	if len(badIdx) == 0 {
		return 0, fmt.Errorf("point %v falls outside every circumcircle (scaffold too small or point outside admissible square)", p)
	}

	badSet := make(map[int]bool, len(badIdx))
	for _, i := range badIdx {
		badSet[i] = true
	}

	edgeCount := make(map[geom.EdgeKey]int)
	edgeDirected := make(map[geom.EdgeKey][2]geom.VertexID)
	for _, i := range badIdx {
		t := d.triangles[i]
		corners := [3][2]geom.VertexID{
			{t.V[0], t.V[1]},
			{t.V[1], t.V[2]},
			{t.V[2], t.V[0]},
		}
		for _, pair := range corners {
			k := geom.NewEdgeKey(pair[0], pair[1])
			edgeCount[k]++
			edgeDirected[k] = pair
		}
	}

	kept := make([]geom.Triangle, 0, len(d.triangles)-len(badIdx)+len(edgeCount))
	for i, t := range d.triangles {
		if !badSet[i] {
			kept = append(kept, t)
		}
	}

	for k, count := range edgeCount {
		if count != 1 {
			continue // interior edge of the cavity, not on its boundary
		}
		pair := edgeDirected[k]
		kept = append(kept, geom.Triangle{V: [3]geom.VertexID{pair[0], pair[1], id}})
	}

	d.triangles = kept
	return id, nil
}

// Triangles implements mesh.Triangulator, excluding any triangle touching
// the scaffold.
func (d *Delaunay) Triangles() []geom.Triangle {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]geom.Triangle, 0, len(d.triangles))
	for _, t := range d.triangles {
		if d.isSuper(t.V[0]) || d.isSuper(t.V[1]) || d.isSuper(t.V[2]) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Edges implements mesh.Triangulator.
func (d *Delaunay) Edges() []geom.EdgeKey {
	seen := make(map[geom.EdgeKey]bool)
	for _, t := range d.Triangles() {
		for _, e := range t.Edges() {
			seen[e] = true
		}
	}
	out := make([]geom.EdgeKey, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	return out
}

// Neighbors implements mesh.Triangulator.
func (d *Delaunay) Neighbors(e geom.EdgeKey) []geom.Triangle {
	var out []geom.Triangle
	for _, t := range d.Triangles() {
		if t.HasVertex(e.A) && t.HasVertex(e.B) {
			out = append(out, t)
		}
	}
	return out
}

// Position implements mesh.Triangulator.
func (d *Delaunay) Position(v geom.VertexID) complex128 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.points[v]
}

// VertexCount implements mesh.Triangulator, excluding the scaffold.
func (d *Delaunay) VertexCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.points) - 3
}
