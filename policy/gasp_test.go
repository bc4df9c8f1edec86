package policy_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katviz/seggraph/ecg"
	"github.com/katviz/seggraph/mergerule"
	"github.com/katviz/seggraph/policy"
)

// TestGASPMutexConflictProducesExpectedClusters mirrors scenario S2: nodes
// 0-1 and 2-3 are attractive, 1-2 is attractive but weaker and mutex, so
// the mutex must block 1-2 from ever contracting, yielding {0,1} and {2,3}.
func TestGASPMutexConflictProducesExpectedClusters(t *testing.T) {
	g, err := ecg.NewGraph(4, [][2]int{{0, 1}, {2, 3}, {1, 2}})
	require.NoError(t, err)

	mergePrios := []float64{0.9, 0.9, 0.8}
	notMergePrios := []float64{0.1, 0.1, 0.1}
	sizes := []float64{1, 1, 1}
	isLocal := []bool{true, true, true}

	p := policy.NewGASPPolicy(mergerule.ArithmeticMean(), mergerule.ArithmeticMean(), mergePrios, notMergePrios, sizes, isLocal, 4,
		policy.WithGASPStopNodes(1))
	cg := ecg.NewContractionGraph(g, p)
	p.Attach(cg)

	// Manually register the mutex between edge (1,2)'s endpoints before
	// running: this is what a mutex-aware caller (or a richer GASP variant
	// wired to an external constraint set) would do ahead of clustering.
	p.InsertMutex(1, 2)

	for !p.IsDone() {
		edge, _ := p.EdgeToContractNext()
		require.NoError(t, cg.ContractEdge(edge))
	}

	require.Equal(t, cg.Find(0), cg.Find(1))
	require.Equal(t, cg.Find(2), cg.Find(3))
	require.NotEqual(t, cg.Find(0), cg.Find(2))
}
