package graphmodel

import "strconv"

// Cycle builds an n-node directed simple cycle 0 -> 1 -> ... -> (n-1) -> 0,
// every edge carrying label. Grounded on the "two-cycles" fixture used
// throughout the reference CFPQ test suite (see TwoCycles below).
// Returns ErrInvalidGraph if n < 1.
func Cycle(n int, label string) (*MultiDiGraph, error) {
	if n < 1 {
		return nil, ErrInvalidGraph
	}
	g := New(WithCapacity(n, n))
	for i := 0; i < n; i++ {
		g.AddNode(strconv.Itoa(i))
	}
	for i := 0; i < n; i++ {
		if err := g.AddEdgeIdx(i, label, (i+1)%n); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Chain builds an n-node directed simple path 0 -> 1 -> ... -> (n-1),
// every edge carrying label. Returns ErrInvalidGraph if n < 1.
func Chain(n int, label string) (*MultiDiGraph, error) {
	if n < 1 {
		return nil, ErrInvalidGraph
	}
	g := New(WithCapacity(n, n))
	for i := 0; i < n; i++ {
		g.AddNode(strconv.Itoa(i))
	}
	for i := 0; i < n-1; i++ {
		if err := g.AddEdgeIdx(i, label, i+1); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// TwoCycles builds two simple cycles sharing a single common node 0:
// a first cycle through firstCount further nodes (firstCount+1 edges)
// labeled labels[0], and a second cycle through secondCount further
// nodes (secondCount+1 edges) labeled labels[1], both starting and
// ending at node 0. This mirrors the cfpq_data `labeled_two_cycles_graph` fixture used
// throughout the reachability test suites.
//
// Node layout: 0 is the shared hub; 1..firstCount are the first cycle;
// firstCount+1..firstCount+secondCount are the second cycle.
func TwoCycles(firstCount, secondCount int, labels [2]string) (*MultiDiGraph, error) {
	if firstCount < 1 || secondCount < 1 {
		return nil, ErrInvalidGraph
	}
	total := firstCount + secondCount + 1
	g := New(WithCapacity(total, total))
	for i := 0; i < total; i++ {
		g.AddNode(strconv.Itoa(i))
	}

	// First cycle: 0 -> 1 -> ... -> firstCount -> 0.
	prev := 0
	for i := 1; i <= firstCount; i++ {
		if err := g.AddEdgeIdx(prev, labels[0], i); err != nil {
			return nil, err
		}
		prev = i
	}
	if err := g.AddEdgeIdx(prev, labels[0], 0); err != nil {
		return nil, err
	}

	// Second cycle: 0 -> firstCount+1 -> ... -> firstCount+secondCount -> 0.
	prev = 0
	for i := 1; i <= secondCount; i++ {
		node := firstCount + i
		if err := g.AddEdgeIdx(prev, labels[1], node); err != nil {
			return nil, err
		}
		prev = node
	}
	if err := g.AddEdgeIdx(prev, labels[1], 0); err != nil {
		return nil, err
	}

	return g, nil
}
