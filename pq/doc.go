// Package pq implements an indexed binary heap over a fixed id space
// [0, capacity): each id is either absent or present with a float64
// priority, and priorities can be changed in place in O(log n) without
// leaving stale duplicates behind.
//
// This is the priority queue the agglomerative cluster policies use to
// pick "the next edge to contract": unlike the lazy decrease-key trick
// used by simple Dijkstra implementations (push a duplicate, ignore
// stale pops), every id occupies exactly one heap slot, tracked by a
// parallel position index, so Contains and Delete are well-defined.
package pq
