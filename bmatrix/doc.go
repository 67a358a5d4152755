// Package bmatrix implements a sparse-semantics boolean matrix kernel:
// set/get, elementwise OR, boolean matrix multiply, Kronecker product,
// and iterated-squaring transitive closure.
//
// Storage is a flat row-major []bool with an incrementally maintained
// population count (Nnz). This is "sparse" in the sense the rest of the
// system cares about: nnz tracking drives fixed-point termination in
// the CFPQ engines, without pulling in a third-party sparse-matrix
// dependency that nothing else in this module's ancestry ships.
//
// Every operation here is a pure function of its inputs: Matrix values
// are never mutated by MatMul or Kron, only by Set and OrInto.
//
// Complexity: Set/Get/Nnz are O(1). OrInto and MatMul are O(r*c) and
// O(r*k*c) respectively. Kron is O(r1*c1*r2*c2). TransitiveClosure
// performs O(log n) squarings of an n×n matrix.
package bmatrix
