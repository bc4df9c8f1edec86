// Package mergerule implements the pairwise combiners cluster policies use
// to fold one edge's (or node's) statistic into another's on contraction:
// given (valueA, sizeA, valueB, sizeB) it returns the combined (value,
// size), with size = sizeA + sizeB always.
//
// RankOrder is the one rule in spec.md's table that does not fit this
// scalar (value, size) shape — it combines whole distributions, not
// single numbers — and is realized separately as a Histogram-backed
// accumulator in the policy package rather than as a Rule here; see
// DESIGN.md.
package mergerule
