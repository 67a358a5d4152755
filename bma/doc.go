// Package bma implements the Boolean-Matrix Automaton: a dense state
// index plus one sparse boolean matrix per label, used to drive RPQ
// and the Tensor CFPQ engine via Kronecker-product intersection and
// transitive closure. BMA values never mutate their inputs; FromNFA
// and FromGraph copy what they need into a fresh index.
package bma
