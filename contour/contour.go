// Package contour groups candidate edges into connected components, orders
// each component into a directed closed loop, sums the quantized phase
// jump around the loop, and classifies the result as a root, a pole, or a
// false positive.
//
// Connected-component discovery is delegated to
// gonum.org/v1/gonum/graph/simple + graph/topo rather than a hand-rolled
// union-find. Ordering a component's edges into a walk (cycle.go) and
// resolving each reversal edge's true rotation sign (geom.DirectedDQ) are
// this package's own responsibility: quadrant labels alone cannot
// disambiguate a +2 rotation from a -2 rotation, and an unordered edge set
// cannot be summed in a geometrically consistent direction.
package contour

import (
	"github.com/deadsy/grpf/geom"
	"github.com/deadsy/grpf/selector"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Kind classifies a traced contour.
type Kind int

const (
	FalsePositive Kind = iota
	Root
	Pole
)

// Classification is one emitted root or pole.
type Classification struct {
	Kind         Kind
	Location     complex128 // user coordinates
	Multiplicity int        // |q|; a multiplicity-k root/pole is emitted once, not k times
}

// VertexData is what the tracer needs about a candidate-edge endpoint: its
// quadrant and function value, to resolve a reversal edge's true rotation
// sign (geom.DirectedDQ), and its user-coordinate position, to orient the
// traced loop and locate its centroid.
type VertexData struct {
	Quad  geom.Quadrant
	Value complex128
	User  complex128
}

// VertexLookup supplies a vertex's data by identity, abstracted so this
// package does not need to import mesh.Store directly.
type VertexLookup func(geom.VertexID) VertexData

// Trace builds the candidate-edge graph, finds its connected components,
// orders each component into a directed closed loop, and classifies the
// loop by its quantized winding number. edgeInfo is the Edges list from a
// selector.Result; only entries with Candidate set participate.
func Trace(edgeInfo []selector.EdgeInfo, lookup VertexLookup) []Classification {
	var candidateEdges []geom.EdgeKey
	for _, ei := range edgeInfo {
		if ei.Candidate {
			candidateEdges = append(candidateEdges, ei.Edge)
		}
	}
	if len(candidateEdges) == 0 {
		return nil
	}

	g := simple.NewUndirectedGraph()
	for _, e := range candidateEdges {
		g.SetEdge(g.NewEdge(node(e.A), node(e.B)))
	}

	// componentOf maps each contour vertex to its connected-component
	// index, so edges can be bucketed per component in one linear sweep.
	components := topo.ConnectedComponents(g)
	componentOf := make(map[geom.VertexID]int, g.Nodes().Len())
	for ci, comp := range components {
		for _, n := range comp {
			componentOf[geom.VertexID(n.ID())] = ci
		}
	}
	edgesByComponent := make([][]geom.EdgeKey, len(components))
	for _, e := range candidateEdges {
		ci := componentOf[e.A]
		edgesByComponent[ci] = append(edgesByComponent[ci], e)
	}

	pos := func(v geom.VertexID) complex128 { return lookup(v).User }

	out := make([]Classification, 0, len(components))
	for _, compEdges := range edgesByComponent {
		if len(compEdges) == 0 {
			continue
		}

		loop := orientCCW(eulerianCircuit(compEdges), pos)

		sum := 0
		var centroid complex128
		seen := make(map[geom.VertexID]bool, len(loop))
		for i := 0; i+1 < len(loop); i++ {
			from, to := lookup(loop[i]), lookup(loop[i+1])
			sum += geom.DirectedDQ(from.Quad, to.Quad, from.Value, to.Value)
			if !seen[loop[i]] {
				seen[loop[i]] = true
				centroid += from.User
			}
		}
		if len(seen) == 0 {
			continue
		}
		centroid /= complex(float64(len(seen)), 0)
		q := sum / 4

		switch {
		case q == 0:
			continue // zero net winding: false positive, discarded
		case q > 0:
			out = append(out, Classification{Kind: Root, Location: centroid, Multiplicity: q})
		default:
			out = append(out, Classification{Kind: Pole, Location: centroid, Multiplicity: -q})
		}
	}

	return out
}

func node(v geom.VertexID) graph.Node {
	return simple.Node(int64(v))
}
