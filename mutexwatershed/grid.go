package mutexwatershed

// gridGeometry computes the total node count implied by shape and the
// per-offset flat-index stride, mirroring the C++ array_stride/
// offset_strides computation: strides are row-major (last dimension
// fastest-varying), and each offset's stride is its dot product with the
// per-dimension strides.
func gridGeometry(offsets [][]int, shape []int) (numberOfNodes int, offsetStrides []int, err error) {
	if len(offsets) == 0 {
		return 0, nil, ErrEmptyOffsets
	}

	ndims := len(shape)
	numberOfNodes = 1
	for _, s := range shape {
		numberOfNodes *= s
	}

	arrayStride := make([]int, ndims)
	stride := 1
	for i := ndims - 1; i >= 0; i-- {
		arrayStride[i] = stride
		stride *= shape[i]
	}

	offsetStrides = make([]int, len(offsets))
	for i, offset := range offsets {
		if len(offset) != ndims {
			return 0, nil, ErrOffsetDimMismatch
		}
		var s int
		for d := 0; d < ndims; d++ {
			s += offset[d] * arrayStride[d]
		}
		offsetStrides[i] = s
	}

	return numberOfNodes, offsetStrides, nil
}
