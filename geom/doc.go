// Package geom holds the vocabulary shared by every GRPF component: the
// quadrant classification of a complex value, and the vertex/edge/triangle
// identities that the mesh, selector, refinement and contour packages all
// operate on. Nothing in this package touches the triangulator or the
// user's function; it is pure data and the arithmetic on it.
package geom
