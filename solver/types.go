package solver

import (
	"context"
	"errors"
)

// ErrUnsupported is returned when a solver is asked to honor a feature it
// cannot (e.g. a weight update it has no incremental support for).
// Callers may catch it and fall back to a different solver.
var ErrUnsupported = errors.New("solver: requested feature not supported by this solver")

// MulticutSolver partitions a weighted graph into labels minimizing the
// multicut objective. ctx follows the teacher's cancellation convention
// (flow.Dinic/flow.EdmondsKarp take a context.Context directly): a solver
// must check ctx between iterations and return ctx.Err() on cancellation.
type MulticutSolver interface {
	Solve(ctx context.Context, numNodes int, edges [][2]int, edgeCosts []float64) (labels []int, err error)
}

// Factory constructs a fresh MulticutSolver, letting callers (e.g. a
// perturb-and-map driver) give each parallel worker its own solver
// instance per spec.md §5's concurrency model.
type Factory func() MulticutSolver
