// Package graphmodel defines MultiDiGraph, the directed edge-labeled
// multigraph value type the rest of this module queries.
//
// Nodes are dense non-negative integers [0, n). External callers (graph
// loaders live outside this module) may address nodes by any string
// identifier; MultiDiGraph establishes the bijection to a dense range
// lazily, the first time each identifier is seen: if the input
// numbering is sparse, a bijection to a dense range is established at
// entry.
//
// MultiDiGraph also ships a handful of canned builders (Cycle,
// TwoCycles, Chain) grounded on the original Python test suite's
// cfpq_data-backed fixtures, so CFPQ/RPQ scenarios are directly
// expressible without a real graph-loader dependency.
package graphmodel
