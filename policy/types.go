package policy

import (
	"github.com/katviz/seggraph/ecg"
	"github.com/katviz/seggraph/pq"
)

// Order mirrors pq.Order; re-exported so callers configuring a policy
// don't need to import package pq directly.
type Order = pq.Order

const (
	MaxPriority Order = pq.MaxHeap
	MinPriority Order = pq.MinHeap
)

// ClusterPolicy extends ecg.Policy with the two operations the
// agglomerative driver (package agglo) needs: which edge to contract next,
// and whether clustering has finished.
type ClusterPolicy interface {
	ecg.Policy

	// EdgeToContractNext returns the edge the policy currently judges most
	// eligible for contraction, and its priority. Only meaningful when
	// IsDone reports false.
	EdgeToContractNext() (edge int, priority float64)

	// IsDone reports whether clustering should stop. Implementations may
	// mutate internal state (lazily discarding invalidated queue entries)
	// while deciding.
	IsDone() bool
}
