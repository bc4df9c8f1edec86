// Package volume defines the read-only label-volume contract the stacked
// region-adjacency graph builder uses, plus an in-memory implementation
// for tests. A concrete chunked-storage-backed implementation is out of
// scope (spec §1); callers bring their own Reader.
package volume
