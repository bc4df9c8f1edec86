package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katviz/seggraph/solver"
)

// trivialSolver labels every node 0, refusing any request for more than
// one node.
type trivialSolver struct{}

func (trivialSolver) Solve(ctx context.Context, numNodes int, edges [][2]int, edgeCosts []float64) ([]int, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if numNodes > 1 {
		return nil, solver.ErrUnsupported
	}

	return make([]int, numNodes), nil
}

func TestFactoryProducesIndependentSolverInstances(t *testing.T) {
	factory := solver.Factory(func() solver.MulticutSolver { return trivialSolver{} })

	a := factory()
	b := factory()

	labels, err := a.Solve(context.Background(), 1, nil, nil)
	require.NoError(t, err)
	require.Equal(t, []int{0}, labels)

	_, err = b.Solve(context.Background(), 2, [][2]int{{0, 1}}, []float64{1})
	require.ErrorIs(t, err, solver.ErrUnsupported)
}

func TestSolveRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var s trivialSolver
	_, err := s.Solve(ctx, 1, nil, nil)
	require.ErrorIs(t, err, context.Canceled)
}
