// Package histogram implements a fixed-range, fixed-bin-count binned
// distribution with linear bin interpolation on insert and linear
// interpolation between bins on quantile extraction.
//
// It backs the rank-order (quantile) priority of the lifted-edge-weighted
// cluster policy, which needs a running distribution of per-edge
// observations that can be merged cheaply on contraction.
package histogram
