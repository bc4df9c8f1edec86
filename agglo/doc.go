// Package agglo drives agglomerative clustering: repeatedly ask a
// policy.ClusterPolicy for the next edge to contract and hand it to an
// ecg.ContractionGraph, until the policy reports done.
package agglo
