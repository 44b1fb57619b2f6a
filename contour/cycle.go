package contour

import "github.com/deadsy/grpf/geom"

// eulerianCircuit returns a closed walk visiting every edge in edges
// exactly once, as an ordered vertex sequence with walk[0] == walk[len-1].
// edges must belong to a single connected component of an Eulerian graph
// (every vertex has even degree), which holds for a converged GRPF
// candidate-edge loop.
//
// Grounded on the half-edge Hierholzer construction used for Eulerian
// circuits in general graph-algorithm packages (e.g. a TSP solver's
// Christofides post-processing step): two half-edges per undirected edge,
// a stack-based walk that backtracks onto the output circuit only once a
// vertex has no unused half-edge left. The half-edge form makes "has this
// edge been consumed" an O(1) check instead of a linear scan, and it
// naturally splices in branches at touching/self-intersecting regions
// without a separate multi-pass stitching step.
func eulerianCircuit(edges []geom.EdgeKey) []geom.VertexID {
	if len(edges) == 0 {
		return nil
	}

	type halfEdge struct {
		to   geom.VertexID
		twin int
		used bool
	}

	adj := make(map[geom.VertexID][]int, len(edges)*2)
	halves := make([]halfEdge, 0, len(edges)*2)
	addHalf := func(from, to geom.VertexID) int {
		id := len(halves)
		halves = append(halves, halfEdge{to: to, twin: -1})
		adj[from] = append(adj[from], id)
		return id
	}
	for _, e := range edges {
		ha := addHalf(e.A, e.B)
		hb := addHalf(e.B, e.A)
		halves[ha].twin = hb
		halves[hb].twin = ha
	}

	cursor := make(map[geom.VertexID]int, len(adj))
	stack := []geom.VertexID{edges[0].A}
	circuit := make([]geom.VertexID, 0, len(halves)+1)

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		ids := adj[u]
		for cursor[u] < len(ids) && halves[ids[cursor[u]]].used {
			cursor[u]++
		}
		if cursor[u] == len(ids) {
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}
		h := ids[cursor[u]]
		halves[h].used = true
		halves[halves[h].twin].used = true
		stack = append(stack, halves[h].to)
	}

	// circuit is emitted in reverse of the traversal order, but it is
	// already a valid closed walk from edges[0].A back to itself; reverse
	// it so the caller can read it start-to-finish.
	for i, j := 0, len(circuit)-1; i < j; i, j = i+1, j-1 {
		circuit[i], circuit[j] = circuit[j], circuit[i]
	}
	return circuit
}

// orientCCW returns loop reordered to run counter-clockwise in the z-plane
// (positive shoelace signed area), reversing it if the walk that
// eulerianCircuit happened to produce runs clockwise. The quantized-winding
// sum in Trace only comes out with the correct root/pole sign when the loop
// is walked in a single, geometrically consistent sense; which way
// eulerianCircuit's stack-based walk happens to go is an accident of
// adjacency-list order, not a choice this package can rely on.
func orientCCW(loop []geom.VertexID, pos func(geom.VertexID) complex128) []geom.VertexID {
	if signedArea(loop, pos) >= 0 {
		return loop
	}
	reversed := make([]geom.VertexID, len(loop))
	for i, v := range loop {
		reversed[len(loop)-1-i] = v
	}
	return reversed
}

// signedArea is the shoelace-formula signed area of the closed polygon
// visiting pos(loop[0])..pos(loop[n-1]); positive for a counter-clockwise
// walk, negative for clockwise.
func signedArea(loop []geom.VertexID, pos func(geom.VertexID) complex128) float64 {
	var area float64
	for i := 0; i+1 < len(loop); i++ {
		a, b := pos(loop[i]), pos(loop[i+1])
		area += real(a)*imag(b) - real(b)*imag(a)
	}
	return area / 2
}
