package mutexwatershed

import (
	"sort"

	"github.com/katviz/seggraph/mutexset"
	"github.com/katviz/seggraph/unionfind"
)

type taggedEdge struct {
	u, v   int
	weight float64
	mutex  bool
}

// ComputeMWSClustering runs the general-graph mutex watershed: every
// attractive and mutex edge is sorted once, descending by weight, and
// processed in that order. An attractive edge merges its endpoints unless
// they are already mutex-constrained; a mutex edge records a constraint
// unless its endpoints are already in the same cluster. Direct port of
// compute_mws_clustering.
func ComputeMWSClustering(n int, attrUV, mutexUV [][2]int, attrW, mutexW []float64) ([]int, error) {
	if len(attrUV) != len(attrW) || len(mutexUV) != len(mutexW) {
		return nil, ErrLengthMismatch
	}

	edges := make([]taggedEdge, 0, len(attrUV)+len(mutexUV))
	for i, uv := range attrUV {
		if uv[0] < 0 || uv[0] >= n || uv[1] < 0 || uv[1] >= n {
			return nil, ErrNodeOutOfRange
		}
		edges = append(edges, taggedEdge{u: uv[0], v: uv[1], weight: attrW[i]})
	}
	for i, uv := range mutexUV {
		if uv[0] < 0 || uv[0] >= n || uv[1] < 0 || uv[1] >= n {
			return nil, ErrNodeOutOfRange
		}
		edges = append(edges, taggedEdge{u: uv[0], v: uv[1], weight: mutexW[i], mutex: true})
	}

	sort.SliceStable(edges, func(i, j int) bool { return edges[i].weight > edges[j].weight })

	uf := unionfind.New(n)
	mutexes := mutexset.NewStore(n)

	for _, e := range edges {
		ru, rv := uf.Find(e.u), uf.Find(e.v)
		if ru == rv {
			continue
		}
		if mutexes.Check(ru, rv) {
			continue
		}

		if e.mutex {
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

	labels := make([]int, n)
	for i := range labels {
		labels[i] = uf.Find(i)
	}

	return labels, nil
}
