package stackedrag

import "errors"

// ErrNonMonotonicSlice is returned when a slice's node ids are not dense
// and monotonically increasing relative to the previous slice's, i.e.
// maxNode(z)+1 != minNode(z+1). Supervoxel labels feeding the stacked RAG
// builder must satisfy this precondition.
var ErrNonMonotonicSlice = errors.New("stackedrag: non-monotonic slice boundaries")

// ErrEmptyVolume is returned when shape has a non-positive extent.
var ErrEmptyVolume = errors.New("stackedrag: shape must have positive extents")

// ErrNoSlices is returned when a slice has no labeled nodes at all (every
// pixel in it was the ignore label), leaving MinNode undefined.
var ErrNoSlices = errors.New("stackedrag: slice has no non-ignored labels")

// Options configures Build.
type Options struct {
	// NumWorkers bounds how many slices are processed concurrently in the
	// parallel phases (1, 3, 4, 6). Zero or negative means unbounded
	// (one goroutine per slice).
	NumWorkers int
	// IgnoreLabel, when non-nil, names a label value skipped during every
	// scan: pixels carrying it never start or end an edge.
	IgnoreLabel *int
	// Logger, when non-nil, receives progress/diagnostic messages; no
	// logging library is pulled in for a library with no I/O surface of
	// its own (see DESIGN.md's ambient-stack note).
	Logger func(format string, args ...interface{})
}

// SliceMeta records one slice's node range and edge-id partitioning
// within the flat edge list Rag.Edges.
type SliceMeta struct {
	MinNode                  int
	MaxNode                  int
	InSliceOffset             int
	NumberOfInSliceEdges      int
	BetweenSliceOffset        int
	NumberOfBetweenSliceEdges int
}

// Rag is a stacked region-adjacency graph: a flat edge list partitioned
// [in-slice | between-slice], with per-slice metadata locating each
// slice's share of that partition.
type Rag struct {
	Shape     [3]int
	NumLabels int

	NumberOfInSliceEdges        int
	NumberOfInBetweenSliceEdges int

	Edges       [][2]int
	EdgeLengths []int

	SliceMeta []SliceMeta

	ignoreLabel *int
}
