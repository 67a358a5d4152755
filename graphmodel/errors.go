package graphmodel

import "errors"

// Sentinel errors for graphmodel operations.
var (
	// ErrInvalidGraph indicates a referenced node is absent from the graph
	// (an AddEdgeIdx endpoint outside [0, n)) or a canned builder was asked
	// for fewer than one node. Start/final node sets are checked by the bma
	// package, which reports bma.ErrInvalidGraph.
	ErrInvalidGraph = errors.New("graphmodel: invalid graph reference")

	// ErrEmptyLabel indicates an edge was added with an empty label.
	ErrEmptyLabel = errors.New("graphmodel: edge label must not be empty")
)
