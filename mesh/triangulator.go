// Package mesh wraps a replaceable Delaunay Triangulator and adds the side
// tables - keyed by vertex identity, not by the triangulator's own node
// payload - that carry each vertex's user coordinate, f-value and
// quadrant.
package mesh

import "github.com/deadsy/grpf/geom"

// Triangulator is the contract for the underlying Delaunay triangulator:
// incremental point insertion, triangle/edge iteration, and neighbour
// queries. Any implementation satisfying this interface - not just the
// one this module ships in package triangulate - may be used to build a
// Store.
//
// All coordinates passed to Insert and returned by Position are in the
// triangulator's own admissible coordinate system (i.e. already mapped by
// the Coordinate Mapper); Triangulator has no notion of user coordinates.
type Triangulator interface {
	// Insert extends the triangulation with the given points, preserving
	// the Delaunay property, and returns their newly assigned vertex
	// identities in the same order as points.
	Insert(points []complex128) ([]geom.VertexID, error)

	// Triangles enumerates the current triangles. The enumeration is
	// restartable and finite: each call returns an independent snapshot.
	Triangles() []geom.Triangle

	// Edges enumerates the current edges, each exactly once.
	Edges() []geom.EdgeKey

	// Neighbors returns the 1 or 2 triangles incident to edge e.
	Neighbors(e geom.EdgeKey) []geom.Triangle

	// Position returns the mapped coordinate of vertex v.
	Position(v geom.VertexID) complex128

	// VertexCount returns the number of real (non-scaffold) vertices
	// currently in the triangulation.
	VertexCount() int
}
