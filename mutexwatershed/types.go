package mutexwatershed

import "errors"

var (
	// ErrLengthMismatch is returned when a weights slice's length doesn't
	// match its paired edge-list or indicator slice.
	ErrLengthMismatch = errors.New("mutexwatershed: length mismatch between edges and weights")
	// ErrNodeOutOfRange is returned when an edge endpoint falls outside
	// [0, n) for the declared node count.
	ErrNodeOutOfRange = errors.New("mutexwatershed: node id out of range")
	// ErrEmptyOffsets is returned when no offset vectors are supplied.
	ErrEmptyOffsets = errors.New("mutexwatershed: offsets must be non-empty")
	// ErrOffsetDimMismatch is returned when an offset's dimensionality
	// doesn't match the shape's.
	ErrOffsetDimMismatch = errors.New("mutexwatershed: offset dimensionality does not match shape")
	// ErrEdgeIDOutOfRange is returned when a flat edge id falls outside
	// the valid-edges indicator's range.
	ErrEdgeIDOutOfRange = errors.New("mutexwatershed: edge id out of range")
)
