// Package automaton implements a single NFA/DFA value type: an
// Automaton whose states are dense integers,
// whose transition relation δ: State × Symbol → 2^State is stored
// explicitly, and for which "determinism is a property, not a type
// constraint": the same struct represents both an NFA and a DFA.
// IsDeterministic reports which one a given value currently is.
//
// Supported operations: Thompson-style construction from a Regex AST,
// a minimal token-level regex parser, subset-construction
// determinization, partition-refinement minimization, union,
// concatenation, Kleene star, and complement (determinize, totalize,
// flip final set). Language equivalence is never checked by comparing
// automata structurally; it is always
// determinize-minimize-then-compare (Equivalent).
package automaton
