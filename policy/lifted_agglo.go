package policy

import (
	"github.com/katviz/seggraph/ecg"
	"github.com/katviz/seggraph/mutexset"
	"github.com/katviz/seggraph/pq"
)

// LiftedAggloOptions configures a LiftedAggloPolicy.
type LiftedAggloOptions struct {
	StopNodes int

	// ActionThreshold is the priority a popped edge must exceed to be
	// acted on at all (merged if it's a merge edge, recorded as a
	// non-link constraint otherwise). Below it, clustering stops.
	ActionThreshold float64

	// MutexPenalty scales the non-link-constraint-count term added to a
	// merge edge's priority (spec.md's "+0.1 * (|mutex(u)|+|mutex(v)|)").
	MutexPenalty float64
}

// LiftedAggloOption mutates a LiftedAggloOptions.
type LiftedAggloOption func(*LiftedAggloOptions)

// DefaultLiftedAggloOptions matches nifty's hardcoded 0.5 action threshold
// and 0.1 mutex penalty weight.
func DefaultLiftedAggloOptions() LiftedAggloOptions {
	return LiftedAggloOptions{StopNodes: 1, ActionThreshold: 0.5, MutexPenalty: 0.1}
}

func WithLiftedAggloStopNodes(n int) LiftedAggloOption {
	return func(o *LiftedAggloOptions) { o.StopNodes = n }
}

func WithActionThreshold(t float64) LiftedAggloOption {
	return func(o *LiftedAggloOptions) { o.ActionThreshold = t }
}

func WithMutexPenalty(w float64) LiftedAggloOption {
	return func(o *LiftedAggloOptions) { o.MutexPenalty = w }
}

// LiftedAggloPolicy implements spec.md §4.6.3's second variant: separate
// merge/not-merge priorities and an is-merge-edge flag per edge. A
// popped merge edge is contracted unless its reps are mutex-forbidden or
// already identical, in which case it is demoted and the loop continues;
// a popped not-merge edge instead registers a non-link (mutex) constraint
// between its reps and is demoted the same way.
//
// Grounded directly on original_source's lifted_agglo_cluster_policy.hxx.
// That file never migrates a dead representative's mutex entries onto the
// surviving one in mergeNodes, so constraints recorded against it become
// unreachable after a later union — this port fixes that by merging mutex
// sets on every MergeNodes call, per spec.md §4.6.2's "merge mutex sets"
// requirement (also applied identically in GASPPolicy).
type LiftedAggloPolicy struct {
	cg   *ecg.ContractionGraph
	opts LiftedAggloOptions

	mergePrio, notMergePrio []float64
	isMergeEdge             []bool
	edgeSize                []float64

	mutexes *mutexset.Store
	pq      *pq.IndexedPQ

	nextEdge int
	nextPrio float64
}

// NewLiftedAggloPolicy builds the policy from per-edge merge/not-merge
// priorities, sizes, and the is-merge-edge classification. Call Attach
// once the owning ecg.ContractionGraph exists.
func NewLiftedAggloPolicy(mergePrio, notMergePrio, edgeSize []float64, isMergeEdge []bool, numNodes int, opts ...LiftedAggloOption) *LiftedAggloPolicy {
	o := DefaultLiftedAggloOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return &LiftedAggloPolicy{
		opts:         o,
		mergePrio:    append([]float64(nil), mergePrio...),
		notMergePrio: append([]float64(nil), notMergePrio...),
		isMergeEdge:  append([]bool(nil), isMergeEdge...),
		edgeSize:     append([]float64(nil), edgeSize...),
		mutexes:      mutexset.NewStore(numNodes),
		pq:           pq.New(len(mergePrio), MaxPriority),
	}
}

// Attach binds the policy to its owning ContractionGraph and seeds the
// priority queue.
func (p *LiftedAggloPolicy) Attach(cg *ecg.ContractionGraph) {
	p.cg = cg
	for e := range p.mergePrio {
		_ = p.pq.Push(e, p.actionPriority(e))
	}
}

func (p *LiftedAggloPolicy) actionPriority(edge int) float64 {
	if !p.isMergeEdge[edge] {
		return p.notMergePrio[edge]
	}
	ru, rv := p.cg.UV(edge)

	return p.mergePrio[edge] + p.opts.MutexPenalty*float64(p.mutexes.Count(ru)+p.mutexes.Count(rv))
}

func (p *LiftedAggloPolicy) EdgeToContractNext() (int, float64) { return p.nextEdge, p.nextPrio }

// IsDone lazily drains the queue: while the top action's priority exceeds
// ActionThreshold, either select it for contraction (merge edges, when
// their reps are still distinct and unconstrained), or act on it as a
// non-link constraint and demote it, per spec.md §4.6.3.
func (p *LiftedAggloPolicy) IsDone() bool {
	if p.cg.NumberOfNodes() <= p.opts.StopNodes || p.pq.Empty() {
		return true
	}

	for !p.pq.Empty() && p.pq.TopPriority() > p.opts.ActionThreshold {
		edge, prio, _ := p.pq.Top()

		if p.isMergeEdge[edge] {
			ru, rv := p.cg.UV(edge)
			if ru != rv && !p.mutexes.Check(ru, rv) {
				p.nextEdge, p.nextPrio = edge, prio

				return false
			}
			_ = p.pq.Push(edge, -1)

			continue
		}

		ru, rv := p.cg.UV(edge)
		if ru != rv {
			p.mutexes.Insert(ru, rv)
		}
		_ = p.pq.Push(edge, -1)
	}

	return true
}

func (p *LiftedAggloPolicy) ContractEdge(edge int) { p.pq.Delete(edge) }

func (p *LiftedAggloPolicy) MergeNodes(alive, dead int) { p.mutexes.Merge(dead, alive) }

func (p *LiftedAggloPolicy) MergeEdges(alive, dead int) {
	p.pq.Delete(dead)

	sa, sd := p.edgeSize[alive], p.edgeSize[dead]
	s := sa + sd

	if p.isMergeEdge[dead] != p.isMergeEdge[alive] {
		p.isMergeEdge[alive] = p.mergePrio[alive] >= p.notMergePrio[alive]
	}

	if s > 0 {
		p.mergePrio[alive] = (sa*p.mergePrio[alive] + sd*p.mergePrio[dead]) / s
		p.notMergePrio[alive] = (sa*p.notMergePrio[alive] + sd*p.notMergePrio[dead]) / s
	}
	p.edgeSize[alive] = s

	_ = p.pq.Push(alive, p.actionPriority(alive))
}

func (p *LiftedAggloPolicy) ContractEdgeDone(edge int) {}
