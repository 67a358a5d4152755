// Package rpq implements the Regular Path Query engine: given a graph
// and a regex, Run builds a boolean-matrix automaton for each side,
// intersects them via Kronecker product, and extracts reachable node
// pairs from the composite automaton's transitive closure.
package rpq
