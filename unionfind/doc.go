// Package unionfind implements a disjoint-set forest over a dense integer
// id space [0, n), with union-by-rank and path compression.
//
// It backs the edge-contraction graph, the agglomerative cluster policies,
// and the mutex-watershed family: anywhere a "current representative" of a
// merged set needs to be found in amortized O(α(n)).
//
// There is no shrink or delete: once two ids are linked they stay linked
// for the lifetime of the structure.
package unionfind
