package policy_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katviz/seggraph/ecg"
	"github.com/katviz/seggraph/policy"
)

// TestS4LiftedEdgeNeverChosenButStatisticsMerge runs scenario S4: a
// triangle (0-1, 1-2, 0-2) where edge (0,2) is lifted. It must never be
// selected for contraction, yet its histogram keeps receiving statistics
// whenever an adjacent edge contracts.
func TestS4LiftedEdgeNeverChosenButStatisticsMerge(t *testing.T) {
	g, err := ecg.NewGraph(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)

	indicator := []float64{0.2, 0.3, 0.9}
	size := []float64{1, 1, 1}
	nodeSize := []float64{1, 1, 1}
	isLifted := []bool{false, false, true}

	p := policy.NewLiftedEdgeWeightedPolicy(indicator, size, nodeSize, isLifted)
	cg := ecg.NewContractionGraph(g, p)
	p.Attach(cg)

	require.False(t, p.IsDone())
	edge, prio := p.EdgeToContractNext()
	require.NotEqual(t, 2, edge, "the lifted edge must never be the next edge to contract")
	require.False(t, math.IsInf(prio, 1))

	require.NoError(t, cg.ContractEdge(edge))

	// Contracting edge (0,1) makes edges (1,2) and (0,2) parallel; the
	// lifted edge's statistics must have merged into whichever survives.
	require.Equal(t, 1, cg.NumberOfEdges())
}
