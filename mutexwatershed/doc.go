// Package mutexwatershed implements the standalone mutex watershed
// segmentation entry points: a general-graph Kruskal clustering function
// and three grid-specialized variants (Kruskal, divisive MSF, Prim), all
// grounded directly on mutex_watershed.hxx. They share unionfind.UnionFind
// and mutexset.Store with policy.MutexWatershedPolicy but are free
// functions rather than a reusable ecg.Policy, matching the original's
// split between a standalone segmentation routine and a cluster-policy
// class meant to be driven by the generic agglomerative loop.
package mutexwatershed
