// Package mutexset implements the cannot-link constraint store shared by
// GASP-style cluster policies and mutex watershed segmentation: a set of
// forbidden representative pairs, indexed by current union-find
// representative, that grows and is merged as contraction proceeds.
//
// Grounded on original_source's mutex_watershed.hxx check_mutex/
// insert_mutex/merge_mutexes free functions. That file and the GASP policy
// header each carry their own copy of this logic; Store consolidates both
// into one implementation shared by package policy and package
// mutexwatershed.
package mutexset
