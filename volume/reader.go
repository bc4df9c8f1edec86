package volume

// Reader is the only contract stackedrag needs against a label volume:
// read a rectangular subarray into out, in row-major (z, y, x) order.
// Implementations may be in-memory or backed by a chunked store.
type Reader interface {
	ReadSubarray(begin, end [3]int, out []int) error
}
