// Package ecg implements the EdgeContractionGraph: a base graph of dense
// integer node and edge ids, plus the union-find-backed live view produced
// by contracting its edges one at a time.
//
// The base Graph is immutable once built. ContractionGraph owns the
// mutable state (representative union-find, alive/dead edge flags, and
// per-representative adjacency) and drives every contraction through the
// seven-step sequence described by its ContractEdge method, invoking a
// Policy's callbacks in a fixed order with no interleaving.
package ecg
