package mutexwatershed_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katviz/seggraph/mutexwatershed"
)

// TestS2MutexConflictProducesExpectedClusters: 4 nodes, attractive edges
// (0-1, 0.9), (2-3, 0.9), (1-2, 0.8), and a mutex edge (1-2, 1.0) that
// outranks the competing attractive edge. Expected clusters {0,1},{2,3}.
func TestS2MutexConflictProducesExpectedClusters(t *testing.T) {
	attrUV := [][2]int{{0, 1}, {2, 3}, {1, 2}}
	attrW := []float64{0.9, 0.9, 0.8}
	mutexUV := [][2]int{{1, 2}}
	mutexW := []float64{1.0}

	labels, err := mutexwatershed.ComputeMWSClustering(4, attrUV, mutexUV, attrW, mutexW)
	require.NoError(t, err)

	require.Equal(t, labels[0], labels[1])
	require.Equal(t, labels[2], labels[3])
	require.NotEqual(t, labels[0], labels[2])
}

// gridFixture builds a 2x2 grid with one attractive offset (horizontal,
// within-row) and one mutex offset (vertical, within-column), masking out
// edges that would wrap across a row/column boundary.
func gridFixture() (validEdges []bool, edgeWeights []float64, offsets [][]int, shape []int) {
	// node ids: 0=(r0,c0) 1=(r0,c1) 2=(r1,c0) 3=(r1,c1)
	// edge ids 0-3: attractive (offset [0,1], horizontal); 4-7: mutex (offset [1,0], vertical)
	validEdges = []bool{true, false, true, false, true, true, false, false}
	edgeWeights = []float64{0.9, 0, 0.85, 0, 0.5, 0.4, 0, 0}
	offsets = [][]int{{0, 1}, {1, 0}}
	shape = []int{2, 2}

	return validEdges, edgeWeights, offsets, shape
}

// TestS3KruskalAndPrimProduceSameEquivalenceClasses verifies the Kruskal
// (sorted-edge) and Prim (frontier-expansion) grid variants agree on the
// resulting partition, even though their internal traversal order and the
// concrete representative ids they land on can differ.
func TestS3KruskalAndPrimProduceSameEquivalenceClasses(t *testing.T) {
	validEdges, edgeWeights, offsets, shape := gridFixture()

	sortedFlatEdgeIDs := []int{0, 2, 4, 5} // valid ids, descending by weight
	kruskal, err := mutexwatershed.ComputeMWSSegmentation(sortedFlatEdgeIDs, validEdges, offsets, 1, shape)
	require.NoError(t, err)

	prim, err := mutexwatershed.ComputeMWSPrimSegmentation(edgeWeights, validEdges, offsets, 1, shape)
	require.NoError(t, err)

	require.Equal(t, sameCluster(kruskal), sameCluster(prim))
}

// sameCluster maps each node to the sorted list of nodes sharing its
// label, giving a representation-independent view of the partition.
func sameCluster(labels []int) map[int][]int {
	groups := make(map[int][]int)
	for node, label := range labels {
		groups[label] = append(groups[label], node)
	}

	byMember := make(map[int][]int, len(labels))
	for _, members := range groups {
		for _, m := range members {
			byMember[m] = members
		}
	}

	return byMember
}

func TestComputeDivisiveMWSSegmentationMatchesKruskalOnAcyclicForest(t *testing.T) {
	validEdges, _, offsets, shape := gridFixture()
	sortedFlatEdgeIDs := []int{0, 2, 4, 5}

	kruskal, err := mutexwatershed.ComputeMWSSegmentation(sortedFlatEdgeIDs, validEdges, offsets, 1, shape)
	require.NoError(t, err)

	divisive, err := mutexwatershed.ComputeDivisiveMWSSegmentation(sortedFlatEdgeIDs, validEdges, offsets, 1, shape)
	require.NoError(t, err)

	require.Equal(t, sameCluster(kruskal), sameCluster(divisive))
}

func TestComputeMWSClusteringRejectsOutOfRangeNode(t *testing.T) {
	_, err := mutexwatershed.ComputeMWSClustering(2, [][2]int{{0, 2}}, nil, []float64{1}, nil)
	require.ErrorIs(t, err, mutexwatershed.ErrNodeOutOfRange)
}

func TestComputeMWSClusteringRejectsLengthMismatch(t *testing.T) {
	_, err := mutexwatershed.ComputeMWSClustering(2, [][2]int{{0, 1}}, nil, []float64{1, 2}, nil)
	require.ErrorIs(t, err, mutexwatershed.ErrLengthMismatch)
}
