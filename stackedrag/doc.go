// Package stackedrag builds a 2D-stacked region-adjacency graph over a 3D
// label volume: within-slice adjacency from a 4-neighborhood scan, plus
// between-slice adjacency from matching columns of consecutive slices.
// Direct port of compute_grid_rag_stacked.hxx's six-phase builder.
package stackedrag
