package volume

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a requested subarray falls outside the
// volume's shape.
var ErrOutOfBounds = errors.New("volume: subarray request out of bounds")

// ErrBufferTooSmall is returned when out cannot hold the requested
// subarray's element count.
var ErrBufferTooSmall = errors.New("volume: output buffer too small for requested subarray")

// Dense is an in-memory Reader over a flat label volume, grounded on
// gridgraph.GridGraph's Width/Height/CellValues convention extended to
// three dimensions: Shape is (Z, Y, X), Data is row-major flat storage.
type Dense struct {
	Shape [3]int
	Data  []int
}

// NewDense builds a Dense volume of the given shape, validating that data
// has exactly the right length.
func NewDense(shape [3]int, data []int) (*Dense, error) {
	want := shape[0] * shape[1] * shape[2]
	if len(data) != want {
		return nil, fmt.Errorf("volume: data has %d elements, shape %v wants %d", len(data), shape, want)
	}

	return &Dense{Shape: shape, Data: data}, nil
}

// ReadSubarray copies the rectangular region [begin, end) into out,
// row-major (z, y, x) order.
func (d *Dense) ReadSubarray(begin, end [3]int, out []int) error {
	for i := 0; i < 3; i++ {
		if begin[i] < 0 || end[i] > d.Shape[i] || begin[i] > end[i] {
			return ErrOutOfBounds
		}
	}

	zLen, yLen, xLen := end[0]-begin[0], end[1]-begin[1], end[2]-begin[2]
	if len(out) < zLen*yLen*xLen {
		return ErrBufferTooSmall
	}

	yStride, xStride := d.Shape[2], d.Shape[1]*d.Shape[2]
	i := 0
	for z := begin[0]; z < end[0]; z++ {
		for y := begin[1]; y < end[1]; y++ {
			rowStart := z*xStride + y*yStride + begin[2]
			copy(out[i:i+xLen], d.Data[rowStart:rowStart+xLen])
			i += xLen
		}
	}

	return nil
}
