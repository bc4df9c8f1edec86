package policy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katviz/seggraph/ecg"
	"github.com/katviz/seggraph/mergerule"
	"github.com/katviz/seggraph/policy"
)

// grid3x3 returns the 4-neighbor edge list for a 3x3 grid with
// node id = row*3+col, and per-edge weights w[i]=i as in scenario S1.
func grid3x3() (edges [][2]int, weights []float64) {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			n := r*3 + c
			if c+1 < 3 {
				edges = append(edges, [2]int{n, n + 1})
			}
			if r+1 < 3 {
				edges = append(edges, [2]int{n, n + 3})
			}
		}
	}
	weights = make([]float64, len(edges))
	for i := range weights {
		weights[i] = float64(i)
	}

	return edges, weights
}

// TestS1MaxPriorityGridContractsInDecreasingWeightOrder runs scenario S1:
// max-priority agglomeration on a 3x3 grid with stop_nodes=1 must contract
// exactly 8 edges in strictly decreasing weight order, ending in one
// cluster.
func TestS1MaxPriorityGridContractsInDecreasingWeightOrder(t *testing.T) {
	edgeList, weights := grid3x3()
	g, err := ecg.NewGraph(9, edgeList)
	require.NoError(t, err)

	sizes := make([]float64, len(weights))
	for i := range sizes {
		sizes[i] = 1
	}
	nodeSizes := make([]float64, 9)
	for i := range nodeSizes {
		nodeSizes[i] = 1
	}

	p := policy.NewEdgeWeightedPolicy(mergerule.Max(), append([]float64(nil), weights...), sizes, nodeSizes, policy.WithStopNodes(1))
	cg := ecg.NewContractionGraph(g, p)
	p.Attach(cg)

	var contractedWeights []float64
	for !p.IsDone() {
		edge, prio := p.EdgeToContractNext()
		contractedWeights = append(contractedWeights, prio)
		require.NoError(t, cg.ContractEdge(edge))
	}

	require.Len(t, contractedWeights, 8)
	for i := 1; i < len(contractedWeights); i++ {
		require.Less(t, contractedWeights[i], contractedWeights[i-1])
	}
	require.Equal(t, 1, cg.NumberOfNodes())
}
