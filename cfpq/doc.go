// Package cfpq implements Context-Free Path Querying: three
// independent algorithms over a WCNF grammar and a graph (Hellings'
// worklist closure, a per-nonterminal boolean-matrix fixed point, and
// an RSM/Tensor Kronecker fixed point), a thin algorithm-agnostic
// Query surface, and the CYK membership bonus. All three algorithms
// are expected to agree on every (graph, grammar) pair; Query exists
// so callers don't have to care which one ran.
package cfpq
