// Package grammar implements the context-free grammar value type and
// the CFG → WCNF normalization pipeline: remove useless symbols,
// eliminate unit productions, remove useless symbols again, then
// decompose bodies so every production is one of the three Weak
// Chomsky Normal Form shapes (A → BC, A → a, A → ε). Unlike strict
// CNF, reachable ε-productions are preserved rather than eliminated.
//
// CFG values are immutable from the caller's point of view: every
// transformation (WithStartSymbol, ToWCNF, RemoveUseless, ...) returns
// a new value and never mutates its receiver's caller-visible state.
package grammar
