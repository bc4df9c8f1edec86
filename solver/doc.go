// Package solver defines the pluggable multicut-solver contract named by
// spec.md §1 as "not redesigned here": a bare interface and factory type,
// with no concrete multicut implementation shipped in this module.
package solver
