package stackedrag

import "errors"

// ErrTruncatedStream is returned when Deserialize runs out of data before
// the format it is parsing is complete.
var ErrTruncatedStream = errors.New("stackedrag: truncated serialization stream")

// Serialize encodes r per §6's persisted-state layout: range (slice
// count), an ignore-label flag (and value, if set), each slice's
// {n_in_slice_edges, in_slice_offset}, then the base graph (node count,
// edge count, flat edge list, edge lengths). Builder-only bookkeeping not
// named in that layout (per-slice MinNode/MaxNode, between-slice offsets)
// is not persisted; Deserialize leaves those fields at their zero value.
func (r *Rag) Serialize() []uint64 {
	numberOfSlices := len(r.SliceMeta)

	out := make([]uint64, 0, 2+2*numberOfSlices+2+2*len(r.Edges)+len(r.EdgeLengths))
	out = append(out, uint64(numberOfSlices))

	if r.ignoreLabel != nil {
		out = append(out, 1, uint64(*r.ignoreLabel))
	} else {
		out = append(out, 0)
	}

	for _, sm := range r.SliceMeta {
		out = append(out, uint64(sm.NumberOfInSliceEdges), uint64(sm.InSliceOffset))
	}

	out = append(out, uint64(r.NumLabels), uint64(len(r.Edges)))
	for _, e := range r.Edges {
		out = append(out, uint64(e[0]), uint64(e[1]))
	}
	for _, l := range r.EdgeLengths {
		out = append(out, uint64(l))
	}

	return out
}

// Deserialize decodes a stream produced by Serialize.
func Deserialize(data []uint64) (*Rag, error) {
	r := &Rag{}
	pop := func() (uint64, error) {
		if len(data) == 0 {
			return 0, ErrTruncatedStream
		}
		v := data[0]
		data = data[1:]

		return v, nil
	}

	numberOfSlices, err := pop()
	if err != nil {
		return nil, err
	}

	flag, err := pop()
	if err != nil {
		return nil, err
	}
	if flag == 1 {
		ignoreLabel, err := pop()
		if err != nil {
			return nil, err
		}
		v := int(ignoreLabel)
		r.ignoreLabel = &v
	}

	r.SliceMeta = make([]SliceMeta, numberOfSlices)
	for z := uint64(0); z < numberOfSlices; z++ {
		numInSlice, err := pop()
		if err != nil {
			return nil, err
		}
		offset, err := pop()
		if err != nil {
			return nil, err
		}
		r.SliceMeta[z] = SliceMeta{
			NumberOfInSliceEdges: int(numInSlice),
			InSliceOffset:        int(offset),
		}
	}
	if numberOfSlices > 0 {
		last := r.SliceMeta[numberOfSlices-1]
		r.NumberOfInSliceEdges = last.InSliceOffset + last.NumberOfInSliceEdges
	}

	numLabels, err := pop()
	if err != nil {
		return nil, err
	}
	r.NumLabels = int(numLabels)

	numEdges, err := pop()
	if err != nil {
		return nil, err
	}

	r.Edges = make([][2]int, numEdges)
	for i := uint64(0); i < numEdges; i++ {
		u, err := pop()
		if err != nil {
			return nil, err
		}
		v, err := pop()
		if err != nil {
			return nil, err
		}
		r.Edges[i] = [2]int{int(u), int(v)}
	}

	r.EdgeLengths = make([]int, numEdges)
	for i := uint64(0); i < numEdges; i++ {
		l, err := pop()
		if err != nil {
			return nil, err
		}
		r.EdgeLengths[i] = int(l)
	}
	r.NumberOfInBetweenSliceEdges = int(numEdges) - r.NumberOfInSliceEdges

	return r, nil
}
