package stackedrag

import "github.com/katviz/seggraph/volume"

func edgeKey(a, b int) [2]int {
	if a < b {
		return [2]int{a, b}
	}

	return [2]int{b, a}
}

// insertEdgeOnlyInNodeAdj records the u-v adjacency in both directions and
// reports whether this is the pair's first sighting. Safe to call
// concurrently from goroutines owning disjoint node ranges, since each
// call only touches nodeAdj[u] and nodeAdj[v] (pre-allocated maps, never
// the outer slice itself).
func insertEdgeOnlyInNodeAdj(nodeAdj []map[int]struct{}, u, v int) bool {
	if _, exists := nodeAdj[u][v]; exists {
		return false
	}
	nodeAdj[u][v] = struct{}{}
	nodeAdj[v][u] = struct{}{}

	return true
}

// Build constructs the stacked RAG over vol, a [Z, Y, X]-shaped label
// volume with numLabels distinct supervoxel ids, running the six phases
// of compute_grid_rag_stacked.hxx: in-slice scan, in-slice offsets,
// in-slice materialization, between-slice scan, between-slice offsets,
// between-slice materialization.
//
// Phase 1's concurrent writes into the shared node-adjacency table are
// only race-free if supervoxel ids are dense and monotonically increasing
// across slices; this is exactly the precondition Phase 2 verifies
// immediately afterward and reports as ErrNonMonotonicSlice, matching the
// source's own ordering (the C++ builder carries the identical
// assumption, checked one phase later via NIFTY_CHECK_OP).
func Build(vol volume.Reader, shape [3]int, numLabels int, opts Options) (*Rag, error) {
	if shape[0] <= 0 || shape[1] <= 0 || shape[2] <= 0 {
		return nil, ErrEmptyVolume
	}

	numberOfSlices := shape[0]
	sliceY, sliceX := shape[1], shape[2]
	sliceSize := sliceY * sliceX

	ignored := func(int) bool { return false }
	if opts.IgnoreLabel != nil {
		ignore := *opts.IgnoreLabel
		ignored = func(label int) bool { return label == ignore }
	}

	sliceMeta := make([]SliceMeta, numberOfSlices)
	for i := range sliceMeta {
		sliceMeta[i].MinNode = numLabels
		sliceMeta[i].MaxNode = -1
	}

	nodeAdj := make([]map[int]struct{}, numLabels)
	for i := range nodeAdj {
		nodeAdj[i] = make(map[int]struct{})
	}
	edgeLenStorage := make([]map[[2]int]int, numberOfSlices)

	logf := opts.Logger
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}

	// Phase 1: in-slice node adjacency and edge count.
	logf("stackedrag: phase 1, scanning %d slices", numberOfSlices)
	var errs errCollector
	parallelForEachSlice(opts.NumWorkers, numberOfSlices, func(z int) {
		buf := make([]int, sliceSize)
		if err := vol.ReadSubarray([3]int{z, 0, 0}, [3]int{z + 1, sliceY, sliceX}, buf); err != nil {
			errs.set(err)
			return
		}

		meta := &sliceMeta[z]
		lens := make(map[[2]int]int)
		edgeLenStorage[z] = lens

		at := func(y, x int) int { return buf[y*sliceX+x] }

		for y := 0; y < sliceY; y++ {
			for x := 0; x < sliceX; x++ {
				lu := at(y, x)
				if ignored(lu) {
					continue
				}
				if lu < meta.MinNode {
					meta.MinNode = lu
				}
				if lu > meta.MaxNode {
					meta.MaxNode = lu
				}

				if x+1 < sliceX {
					considerInSliceEdge(meta, nodeAdj, lens, lu, at(y, x+1), ignored)
				}
				if y+1 < sliceY {
					considerInSliceEdge(meta, nodeAdj, lens, lu, at(y+1, x), ignored)
				}
			}
		}
	})
	if err := errs.get(); err != nil {
		return nil, err
	}

	// Phase 2: in-slice edge offsets, monotonicity check.
	for z := 1; z < numberOfSlices; z++ {
		prev := &sliceMeta[z-1]
		cur := &sliceMeta[z]
		cur.InSliceOffset = prev.InSliceOffset + prev.NumberOfInSliceEdges

		if prev.MaxNode < prev.MinNode || cur.MaxNode < cur.MinNode {
			return nil, ErrNoSlices
		}
		if prev.MaxNode+1 != cur.MinNode {
			return nil, ErrNonMonotonicSlice
		}
	}
	last := sliceMeta[numberOfSlices-1]
	numberOfInSliceEdges := last.InSliceOffset + last.NumberOfInSliceEdges

	// Phase 3: materialize in-slice edges.
	logf("stackedrag: phase 3, materializing %d in-slice edges", numberOfInSliceEdges)
	edgesIn := make([][2]int, numberOfInSliceEdges)
	lengthsIn := make([]int, numberOfInSliceEdges)
	parallelForEachSlice(opts.NumWorkers, numberOfSlices, func(z int) {
		meta := &sliceMeta[z]
		if meta.MaxNode < meta.MinNode {
			return
		}
		lens := edgeLenStorage[z]
		edgeIndex := meta.InSliceOffset
		for u := meta.MinNode; u <= meta.MaxNode; u++ {
			for v := range nodeAdj[u] {
				if u < v {
					e := [2]int{u, v}
					edgesIn[edgeIndex] = e
					lengthsIn[edgeIndex] = lens[e]
					edgeIndex++
				}
			}
		}
	})

	// Phase 4: between-slice scan, alternating-parity waves.
	logf("stackedrag: phase 4, scanning %d slice boundaries", numberOfSlices-1)
	for z := range edgeLenStorage {
		edgeLenStorage[z] = make(map[[2]int]int)
	}
	for _, parity := range [2]int{0, 1} {
		parallelForEachSlice(opts.NumWorkers, numberOfSlices-1, func(sliceA int) {
			if sliceA%2 != parity {
				return
			}
			sliceB := sliceA + 1

			bufA := make([]int, sliceSize)
			bufB := make([]int, sliceSize)
			if err := vol.ReadSubarray([3]int{sliceA, 0, 0}, [3]int{sliceA + 1, sliceY, sliceX}, bufA); err != nil {
				errs.set(err)
				return
			}
			if err := vol.ReadSubarray([3]int{sliceB, 0, 0}, [3]int{sliceB + 1, sliceY, sliceX}, bufB); err != nil {
				errs.set(err)
				return
			}

			lens := edgeLenStorage[sliceA]
			for i := 0; i < sliceSize; i++ {
				lu, lv := bufA[i], bufB[i]
				if ignored(lu) || ignored(lv) || lu == lv {
					continue
				}
				e := edgeKey(lu, lv)
				lens[e]++
				if insertEdgeOnlyInNodeAdj(nodeAdj, lu, lv) {
					sliceMeta[sliceA].NumberOfBetweenSliceEdges++
				}
			}
		})
	}
	if err := errs.get(); err != nil {
		return nil, err
	}

	// Phase 5: between-slice edge offsets.
	numberOfInBetweenSliceEdges := 0
	if numberOfSlices > 1 {
		sliceMeta[0].BetweenSliceOffset = numberOfInSliceEdges
		numberOfInBetweenSliceEdges = sliceMeta[0].NumberOfBetweenSliceEdges
		for z := 1; z < numberOfSlices; z++ {
			prev := sliceMeta[z-1]
			sliceMeta[z].BetweenSliceOffset = prev.BetweenSliceOffset + prev.NumberOfBetweenSliceEdges
			numberOfInBetweenSliceEdges += sliceMeta[z].NumberOfBetweenSliceEdges
		}
	}

	// Phase 6: materialize between-slice edges.
	logf("stackedrag: phase 6, materializing %d between-slice edges", numberOfInBetweenSliceEdges)
	edges := make([][2]int, numberOfInSliceEdges+numberOfInBetweenSliceEdges)
	edgeLengths := make([]int, numberOfInSliceEdges+numberOfInBetweenSliceEdges)
	copy(edges, edgesIn)
	copy(edgeLengths, lengthsIn)

	parallelForEachSlice(opts.NumWorkers, numberOfSlices-1, func(sliceA int) {
		meta := &sliceMeta[sliceA]
		if meta.NumberOfBetweenSliceEdges == 0 {
			return
		}
		lens := edgeLenStorage[sliceA]
		endNode := meta.MaxNode + 1
		edgeIndex := meta.BetweenSliceOffset
		for u := meta.MinNode; u <= meta.MaxNode; u++ {
			for v := range nodeAdj[u] {
				if u < v && v >= endNode {
					e := [2]int{u, v}
					edges[edgeIndex] = e
					edgeLengths[edgeIndex] = lens[e]
					edgeIndex++
				}
			}
		}
	})

	return &Rag{
		Shape:                       shape,
		NumLabels:                   numLabels,
		NumberOfInSliceEdges:        numberOfInSliceEdges,
		NumberOfInBetweenSliceEdges: numberOfInBetweenSliceEdges,
		Edges:                       edges,
		EdgeLengths:                 edgeLengths,
		SliceMeta:                   sliceMeta,
		ignoreLabel:                 opts.IgnoreLabel,
	}, nil
}

func considerInSliceEdge(meta *SliceMeta, nodeAdj []map[int]struct{}, lens map[[2]int]int, lu, lv int, ignored func(int) bool) {
	if ignored(lv) || lu == lv {
		return
	}
	if lv < meta.MinNode {
		meta.MinNode = lv
	}
	if lv > meta.MaxNode {
		meta.MaxNode = lv
	}

	e := edgeKey(lu, lv)
	lens[e]++
	if insertEdgeOnlyInNodeAdj(nodeAdj, lu, lv) {
		meta.NumberOfInSliceEdges++
	}
}
