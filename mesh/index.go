package mesh

import (
	"github.com/deadsy/grpf/geom"
	"github.com/dhconnelly/rtreego"
)

// dedupIndex is a thin rtreego wrapper used to deduplicate newly generated
// refinement points against points already in the mesh, to within a small
// epsilon. An R-tree turns what would otherwise be an O(n) scan per
// candidate point into an O(log n) range query.
type dedupIndex struct {
	tree *rtreego.Rtree
	eps  float64
}

// indexedPoint adapts a mesh vertex to rtreego.Spatial: a degenerate,
// epsilon-sized box centered on the vertex's mapped position.
type indexedPoint struct {
	id geom.VertexID
	z  complex128
	bb *rtreego.Rect
}

func (p *indexedPoint) Bounds() *rtreego.Rect {
	return p.bb
}

func newDedupIndex(eps float64) *dedupIndex {
	const minChildren, maxChildren = 3, 8
	return &dedupIndex{
		tree: rtreego.NewTree(2, minChildren, maxChildren),
		eps:  eps,
	}
}

func pointRect(z complex128, halfWidth float64) (*rtreego.Rect, error) {
	w := 2 * halfWidth
	if w <= 0 {
		w = 1e-12
	}
	origin := rtreego.Point{real(z) - halfWidth, imag(z) - halfWidth}
	return rtreego.NewRect(origin, []float64{w, w})
}

// find returns the identity of an already-indexed vertex within eps of z,
// if any.
func (idx *dedupIndex) find(z complex128) (geom.VertexID, bool) {
	bb, err := pointRect(z, idx.eps)
	if err != nil {
		return 0, false
	}
	for _, obj := range idx.tree.SearchIntersect(bb) {
		ip := obj.(*indexedPoint)
		d := ip.z - z
		if real(d)*real(d)+imag(d)*imag(d) <= idx.eps*idx.eps {
			return ip.id, true
		}
	}
	return 0, false
}

// add indexes a newly inserted vertex.
func (idx *dedupIndex) add(id geom.VertexID, z complex128) {
	bb, err := pointRect(z, idx.eps/2)
	if err != nil {
		return
	}
	idx.tree.Insert(&indexedPoint{id: id, z: z, bb: bb})
}
