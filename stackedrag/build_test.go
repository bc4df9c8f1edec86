package stackedrag_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katviz/seggraph/stackedrag"
	"github.com/katviz/seggraph/volume"
)

// columnSlices builds a 3x4x4 volume where each z-slice is split into
// three column bands (widths 2,1,1) labeled base(z)+{0,1,2}, so every
// slice has supervoxel ids {0,1,2}, {3,4,5}, {6,7,8} respectively,
// matching the spec's S6 fixture.
func columnSlices(t *testing.T) *volume.Dense {
	t.Helper()

	shape := [3]int{3, 4, 4}
	data := make([]int, shape[0]*shape[1]*shape[2])
	colLabel := []int{0, 0, 1, 2}

	for z := 0; z < shape[0]; z++ {
		base := z * 3
		for y := 0; y < shape[1]; y++ {
			for x := 0; x < shape[2]; x++ {
				data[z*16+y*4+x] = base + colLabel[x]
			}
		}
	}

	d, err := volume.NewDense(shape, data)
	require.NoError(t, err)

	return d
}

func TestS6StackedRagBuildOffsets(t *testing.T) {
	vol := columnSlices(t)

	rag, err := stackedrag.Build(vol, vol.Shape, 9, stackedrag.Options{})
	require.NoError(t, err)

	require.Len(t, rag.SliceMeta, 3)
	require.Equal(t, 0, rag.SliceMeta[0].InSliceOffset)
	require.Equal(t, 2, rag.SliceMeta[0].NumberOfInSliceEdges)
	require.Equal(t, 2, rag.SliceMeta[1].InSliceOffset)
	require.Equal(t, 2, rag.SliceMeta[1].NumberOfInSliceEdges)
	require.Equal(t, 4, rag.SliceMeta[2].InSliceOffset)
	require.Equal(t, 2, rag.SliceMeta[2].NumberOfInSliceEdges)

	require.Equal(t, 6, rag.NumberOfInSliceEdges)
	require.Equal(t, 6, rag.SliceMeta[0].BetweenSliceOffset)
	require.Equal(t, 6, rag.NumberOfInBetweenSliceEdges)

	require.Len(t, rag.Edges, 12)
	require.Len(t, rag.EdgeLengths, 12)
}

func TestStackedRagBuildRejectsNonMonotonicSlices(t *testing.T) {
	shape := [3]int{2, 2, 2}
	// slice 0 uses labels {0,1}, slice 1 reuses {0,1} instead of {2,3}.
	data := []int{0, 1, 1, 0, 0, 1, 1, 0}
	vol, err := volume.NewDense(shape, data)
	require.NoError(t, err)

	_, err = stackedrag.Build(vol, shape, 2, stackedrag.Options{})
	require.ErrorIs(t, err, stackedrag.ErrNonMonotonicSlice)
}

func TestStackedRagRoundTripSerializeDeserialize(t *testing.T) {
	vol := columnSlices(t)

	rag, err := stackedrag.Build(vol, vol.Shape, 9, stackedrag.Options{NumWorkers: 2})
	require.NoError(t, err)

	blob := rag.Serialize()
	restored, err := stackedrag.Deserialize(blob)
	require.NoError(t, err)

	require.Equal(t, rag.NumLabels, restored.NumLabels)
	require.Equal(t, rag.NumberOfInSliceEdges, restored.NumberOfInSliceEdges)
	require.Equal(t, rag.NumberOfInBetweenSliceEdges, restored.NumberOfInBetweenSliceEdges)
	require.Equal(t, rag.Edges, restored.Edges)
	require.Equal(t, rag.EdgeLengths, restored.EdgeLengths)

	require.Len(t, restored.SliceMeta, len(rag.SliceMeta))
	for i, sm := range rag.SliceMeta {
		require.Equal(t, sm.NumberOfInSliceEdges, restored.SliceMeta[i].NumberOfInSliceEdges)
		require.Equal(t, sm.InSliceOffset, restored.SliceMeta[i].InSliceOffset)
	}
}
