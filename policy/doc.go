// Package policy implements the concrete ClusterPolicy variants that drive
// agglomerative clustering over an ecg.ContractionGraph: EdgeWeightedPolicy,
// GASPPolicy, LiftedEdgeWeightedPolicy, LiftedAggloPolicy, and
// MutexWatershedPolicy.
//
// Every policy is constructed in two steps, mirroring nifty's circular
// graph<->policy reference: build the policy from its per-edge/per-node
// input arrays, pass it to ecg.NewContractionGraph, then call Attach with
// the resulting *ecg.ContractionGraph so the policy can resolve edges to
// their live representatives. Each concrete type is its own file, mirroring
// builder/impl_*.go's one-variant-per-file layout.
package policy
