// Package seggraph is a graph-based image segmentation toolkit: generic
// agglomerative clustering over a contractible graph, a set of cluster
// policies (edge-weighted, GASP, lifted, mutex watershed), standalone
// mutex watershed segmentation, and a stacked region-adjacency-graph
// builder for labeled volumes.
//
// Subpackages:
//
//	unionfind/      — union-find with path compression and union by rank
//	pq/             — indexed priority queue used by the policies
//	histogram/      — binned value distributions with quantile extraction
//	mergerule/      — edge/node statistic merge rules (sum, mean, max, min,
//	                  generalized mean, smooth max, mutex-watershed abs-max)
//	ecg/            — the contractible graph and its contraction primitives
//	mutexset/       — per-representative mutex constraint bookkeeping
//	policy/         — cluster policies driving the agglomerative loop
//	agglo/          — the generic agglomerative clustering loop
//	mutexwatershed/ — standalone mutex watershed segmentation entry points
//	stackedrag/     — stacked region-adjacency-graph builder for volumes
//	volume/         — the builder's labeled-volume storage contract
//	solver/         — the pluggable multicut-solver contract
package seggraph
