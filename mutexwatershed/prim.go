package mutexwatershed

import (
	"container/heap"

	"github.com/katviz/seggraph/mutexset"
	"github.com/katviz/seggraph/unionfind"
)

// primPQElement mirrors the (weight, edge_id, u, v) tuple add_neighbours
// pushes in the C++ source.
type primPQElement struct {
	weight   float64
	edgeID   int
	position int
	neighbor int
}

// primHeap is a max-heap on weight, matching std::priority_queue's default
// (highest weight first), grounded on the teacher's container/heap idiom
// (see DESIGN.md's domain-stack note); lazy deletion via a visited flag
// stands in for boost's std::priority_queue, which has no decrease-key.
type primHeap []primPQElement

func (h primHeap) Len() int            { return len(h) }
func (h primHeap) Less(i, j int) bool  { return h[i].weight > h[j].weight }
func (h primHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *primHeap) Push(x interface{}) { *h = append(*h, x.(primPQElement)) }
func (h *primHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// addNeighbours pushes every not-yet-visited edge leaving position, in
// both the positive and negative direction of each offset, whose far
// endpoint is not already in position's cluster. Direct port of
// add_neighbours.
func addNeighbours(position int, offsetStrides []int, numberOfNodes int, edgeWeights []float64, validEdges []bool, uf *unionfind.UnionFind, visited []bool, q *primHeap) {
	ru := uf.Find(position)

	for i, stride := range offsetStrides {
		edgeID := position + i*numberOfNodes
		if edgeID < len(validEdges) && validEdges[edgeID] && !visited[edgeID] {
			neighbor := position + stride
			if neighbor >= 0 && neighbor < numberOfNodes && uf.Find(neighbor) != ru {
				heap.Push(q, primPQElement{weight: edgeWeights[edgeID], edgeID: edgeID, position: position, neighbor: neighbor})
			}
		}

		negNeighbor := position - stride
		if negNeighbor < 0 || negNeighbor >= numberOfNodes {
			continue
		}
		negEdgeID := negNeighbor + i*numberOfNodes
		if negEdgeID < len(validEdges) && validEdges[negEdgeID] && !visited[negEdgeID] && uf.Find(negNeighbor) != ru {
			heap.Push(q, primPQElement{weight: edgeWeights[negEdgeID], edgeID: negEdgeID, position: position, neighbor: negNeighbor})
		}
	}
}

// ComputeMWSPrimSegmentation runs the Prim-style mutex watershed,
// expanding the growing cluster from node 0 outward instead of sorting
// every edge up front. Direct port of compute_mws_prim_segmentation.
func ComputeMWSPrimSegmentation(edgeWeights []float64, validEdges []bool, offsets [][]int, numAttractiveChannels int, shape []int) ([]int, error) {
	numberOfNodes, offsetStrides, err := gridGeometry(offsets, shape)
	if err != nil {
		return nil, err
	}
	if len(edgeWeights) != len(validEdges) {
		return nil, ErrLengthMismatch
	}
	numberOfAttractiveEdges := numberOfNodes * numAttractiveChannels

	visited := make([]bool, len(edgeWeights))
	uf := unionfind.New(numberOfNodes)
	mutexes := mutexset.NewStore(numberOfNodes)

	q := &primHeap{}
	heap.Init(q)
	addNeighbours(0, offsetStrides, numberOfNodes, edgeWeights, validEdges, uf, visited, q)

	for q.Len() > 0 {
		elem := heap.Pop(q).(primPQElement)
		if visited[elem.edgeID] {
			continue
		}
		visited[elem.edgeID] = true

		ru, rv := uf.Find(elem.position), uf.Find(elem.neighbor)
		if ru == rv {
			continue
		}
		if mutexes.Check(ru, rv) {
			continue
		}

		if elem.edgeID >= numberOfAttractiveEdges {
			mutexes.Insert(ru, rv)
		} else {
			alive := uf.Link(ru, rv)
			dead := ru
			if alive == ru {
				dead = rv
			}
			mutexes.Merge(dead, alive)
		}

		addNeighbours(elem.neighbor, offsetStrides, numberOfNodes, edgeWeights, validEdges, uf, visited, q)
	}

	labels := make([]int, numberOfNodes)
	for i := range labels {
		labels[i] = uf.Find(i)
	}

	return labels, nil
}
