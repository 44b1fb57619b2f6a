// Package plot projects the Mesh Store's internal state back to user
// coordinates so a caller (or one of this package's own SVG/PNG/DXF
// exporters) can visualize it. The GRPF engine itself never renders an
// image; this package is the boundary between solved mesh/contour state
// and a presentation format.
package plot

import (
	"sort"

	"github.com/deadsy/grpf/geom"
	"github.com/deadsy/grpf/mesh"
	"github.com/deadsy/grpf/selector"
)

// VertexPoint is one mesh vertex, projected to user coordinates.
type VertexPoint struct {
	User complex128
	Quad geom.Quadrant
}

// EdgeSeg is one mesh edge, with both endpoints in user coordinates.
type EdgeSeg struct {
	A, B      complex128
	DQ        int
	Candidate bool
}

// RootPole is one classified location to annotate on a plot.
type RootPole struct {
	Location     complex128
	Multiplicity int
	IsRoot       bool
}

// Data is the projected, render-ready view of one Grpf call's outcome.
type Data struct {
	Vertices []VertexPoint
	Edges    []EdgeSeg
	Roots    []RootPole
	Poles    []RootPole
}

// Extract builds a Data from a mesh.Store and the selector edge list that
// produced a Grpf result, plus the classified roots/poles (already
// user-coordinate RootPole values - callers convert grpf.RootPole to
// plot.RootPole themselves, which keeps this package free of a dependency
// on the root grpf package).
func Extract(store *mesh.Store, edgeInfo []selector.EdgeInfo, roots, poles []RootPole) Data {
	verts := store.AllVertices()
	d := Data{
		Vertices: make([]VertexPoint, 0, len(verts)),
		Edges:    make([]EdgeSeg, 0, len(edgeInfo)),
		Roots:    roots,
		Poles:    poles,
	}
	for _, v := range verts {
		d.Vertices = append(d.Vertices, VertexPoint{User: v.User, Quad: v.Quad})
	}
	for _, ei := range edgeInfo {
		a, okA := store.VertexAttr(ei.Edge.A)
		b, okB := store.VertexAttr(ei.Edge.B)
		if !okA || !okB {
			continue
		}
		d.Edges = append(d.Edges, EdgeSeg{A: a.User, B: b.User, DQ: ei.DQ, Candidate: ei.Candidate})
	}
	// Stable order makes SVG/PNG/DXF output deterministic across runs of
	// the same mesh, which matters for diffing exported plots in review.
	sort.Slice(d.Edges, func(i, j int) bool {
		if real(d.Edges[i].A) != real(d.Edges[j].A) {
			return real(d.Edges[i].A) < real(d.Edges[j].A)
		}
		if imag(d.Edges[i].A) != imag(d.Edges[j].A) {
			return imag(d.Edges[i].A) < imag(d.Edges[j].A)
		}
		if real(d.Edges[i].B) != real(d.Edges[j].B) {
			return real(d.Edges[i].B) < real(d.Edges[j].B)
		}
		return imag(d.Edges[i].B) < imag(d.Edges[j].B)
	})
	return d
}

// Bounds returns the axis-aligned bounding box of every vertex in d, used
// by the exporters to scale user coordinates into pixel/drawing space.
func (d Data) Bounds() (lo, hi complex128) {
	if len(d.Vertices) == 0 {
		return 0, 0
	}
	lo, hi = d.Vertices[0].User, d.Vertices[0].User
	for _, v := range d.Vertices[1:] {
		if re := real(v.User); re < real(lo) {
			lo = complex(re, imag(lo))
		} else if re > real(hi) {
			hi = complex(re, imag(hi))
		}
		if im := imag(v.User); im < imag(lo) {
			lo = complex(real(lo), im)
		} else if im > imag(hi) {
			hi = complex(real(hi), im)
		}
	}
	return lo, hi
}
