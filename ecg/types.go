package ecg

import "errors"

// ErrSelfLoopContraction indicates ContractEdge was asked to contract an
// edge whose endpoints already share a representative (already contracted
// by an earlier step, directly or transitively).
var ErrSelfLoopContraction = errors.New("ecg: edge endpoints already share a representative")

// ErrBadEndpoint indicates an edge endpoint falls outside [0, numNodes).
var ErrBadEndpoint = errors.New("ecg: edge endpoint out of range")

// ErrDegenerateEdge indicates an edge's two endpoints are equal.
var ErrDegenerateEdge = errors.New("ecg: edge has identical endpoints")

// Policy receives the four ECG callbacks in the fixed order ContractEdge
// describes. Implementations form the basis of the ClusterPolicy variants
// in package policy.
type Policy interface {
	// ContractEdge is invoked first, before any union-find state changes,
	// so the policy can still resolve edge to its (still distinct) endpoints.
	ContractEdge(edge int)

	// MergeNodes is invoked once the union-find has been updated, naming
	// the surviving representative alive and the absorbed one dead.
	MergeNodes(alive, dead int)

	// MergeEdges is invoked once per pair of parallel edges collapsing
	// during the adjacency walk; alive is the surviving edge id, dead the
	// one being retired.
	MergeEdges(alive, dead int)

	// ContractEdgeDone is invoked last, after all adjacency bookkeeping for
	// this contraction has completed.
	ContractEdgeDone(edge int)
}
