package mutexwatershed

import (
	"github.com/katviz/seggraph/mutexset"
	"github.com/katviz/seggraph/unionfind"
)

// edgeNodes recovers the (u, v) pair a flat edge id encodes: u is the
// edge id modulo the node count, v is u displaced by the stride of the
// offset channel the edge id falls into.
func edgeNodes(edgeID, numberOfNodes int, offsetStrides []int) (u, v int, ok bool) {
	u = edgeID % numberOfNodes
	v = u + offsetStrides[edgeID/numberOfNodes]

	return u, v, v >= 0 && v < numberOfNodes
}

// ComputeMWSSegmentation runs the grid-specialized mutex watershed over a
// pre-sorted (descending by weight) list of flat edge ids: ids below
// numberOfNodes*numAttractiveChannels are attractive, the rest mutex.
// Direct port of compute_mws_segmentation.
func ComputeMWSSegmentation(sortedFlatEdgeIDs []int, validEdges []bool, offsets [][]int, numAttractiveChannels int, shape []int) ([]int, error) {
	numberOfNodes, offsetStrides, err := gridGeometry(offsets, shape)
	if err != nil {
		return nil, err
	}
	numberOfAttractiveEdges := numberOfNodes * numAttractiveChannels

	uf := unionfind.New(numberOfNodes)
	mutexes := mutexset.NewStore(numberOfNodes)

	for _, edgeID := range sortedFlatEdgeIDs {
		if edgeID < 0 || edgeID >= len(validEdges) {
			return nil, ErrEdgeIDOutOfRange
		}
		if !validEdges[edgeID] {
			continue
		}

		u, v, ok := edgeNodes(edgeID, numberOfNodes, offsetStrides)
		if !ok {
			continue
		}

		ru, rv := uf.Find(u), uf.Find(v)
		if ru == rv {
			continue
		}
		if mutexes.Check(ru, rv) {
			continue
		}

		if edgeID >= numberOfAttractiveEdges {
			mutexes.Insert(ru, rv)
			continue
		}

		alive := uf.Link(ru, rv)
		dead := ru
		if alive == ru {
			dead = rv
		}
		mutexes.Merge(dead, alive)
	}

	labels := make([]int, numberOfNodes)
	for i := range labels {
		labels[i] = uf.Find(i)
	}

	return labels, nil
}

// ComputeDivisiveMWSSegmentation runs the two-phase divisive variant:
// phase one builds a minimum spanning forest over attractive edges that
// survive mutex constraints (tracked even when the merge happens anyway,
// matching mutex_watershed.hxx's nb_mrg/nb_mrg_not bookkeeping intent
// without the diagnostic counters, which are incidental to the result);
// phase two recomputes connected components using only the edges marked
// in that forest, discarding the unconditional merges phase one performed
// to keep mutex bookkeeping consistent. Direct port of
// compute_divisive_mws_segmentation.
func ComputeDivisiveMWSSegmentation(sortedFlatEdgeIDs []int, validEdges []bool, offsets [][]int, numAttractiveChannels int, shape []int) ([]int, error) {
	numberOfNodes, offsetStrides, err := gridGeometry(offsets, shape)
	if err != nil {
		return nil, err
	}
	numberOfAttractiveEdges := numberOfNodes * numAttractiveChannels

	msf := make([]bool, len(validEdges))

	uf := unionfind.New(numberOfNodes)
	mutexes := mutexset.NewStore(numberOfNodes)
	numberOfClusters := numberOfNodes

	for _, edgeID := range sortedFlatEdgeIDs {
		if numberOfClusters <= 1 {
			break
		}
		if edgeID < 0 || edgeID >= len(validEdges) {
			return nil, ErrEdgeIDOutOfRange
		}
		if !validEdges[edgeID] {
			continue
		}

		u, v, ok := edgeNodes(edgeID, numberOfNodes, offsetStrides)
		if !ok {
			continue
		}

		ru, rv := uf.Find(u), uf.Find(v)
		if ru == rv {
			continue
		}

		constrained := mutexes.Check(ru, rv)
		isMutex := edgeID >= numberOfAttractiveEdges

		if isMutex {
			if !constrained {
				mutexes.Insert(ru, rv)
			}
			continue
		}

		if !constrained {
			msf[edgeID] = true
		}

		numberOfClusters--
		alive := uf.Link(ru, rv)
		dead := ru
		if alive == ru {
			dead = rv
		}
		mutexes.Merge(dead, alive)
	}

	ccUF := unionfind.New(numberOfNodes)
	for edgeID := 0; edgeID < numberOfAttractiveEdges; edgeID++ {
		if !msf[edgeID] || !validEdges[edgeID] {
			continue
		}
		u, v, ok := edgeNodes(edgeID, numberOfNodes, offsetStrides)
		if !ok {
			continue
		}
		ccUF.Link(u, v)
	}

	labels := make([]int, numberOfNodes)
	for i := range labels {
		labels[i] = ccUF.Find(i)
	}

	return labels, nil
}
