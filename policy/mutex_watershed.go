package policy

import (
	"math"

	"github.com/katviz/seggraph/ecg"
	"github.com/katviz/seggraph/mergerule"
	"github.com/katviz/seggraph/mutexset"
	"github.com/katviz/seggraph/pq"
)

// MutexWatershedPolicyOptions configures a MutexWatershedPolicy.
type MutexWatershedPolicyOptions struct {
	StopNodes    int
	StopPriority float64
}

// MutexWatershedPolicyOption mutates a MutexWatershedPolicyOptions.
type MutexWatershedPolicyOption func(*MutexWatershedPolicyOptions)

func DefaultMutexWatershedPolicyOptions() MutexWatershedPolicyOptions {
	return MutexWatershedPolicyOptions{StopNodes: 1, StopPriority: math.Inf(-1)}
}

func WithMutexWatershedStopNodes(n int) MutexWatershedPolicyOption {
	return func(o *MutexWatershedPolicyOptions) { o.StopNodes = n }
}

func WithMutexWatershedStopPriority(p float64) MutexWatershedPolicyOption {
	return func(o *MutexWatershedPolicyOptions) { o.StopPriority = p }
}

// MutexWatershedPolicy implements spec.md §4.6.4 as a ClusterPolicy: a
// single signed affinity per edge, combined on contraction via
// mergerule.MutexWatershedAbsMax (keep the larger-magnitude value, sign
// preserved). Priority is the magnitude; a popped edge is an attractive
// candidate for contraction when its merged value is non-negative, or a
// repulsive constraint (recorded as a mutex between its reps) when
// negative. This mirrors the package mutexwatershed functions' Prim-style
// priority-queue traversal but surfaces the same logic as a reusable
// ClusterPolicy, usable through the generic agglo driver.
type MutexWatershedPolicy struct {
	cg   *ecg.ContractionGraph
	opts MutexWatershedPolicyOptions
	rule mergerule.Rule

	value []float64
	size  []float64

	mutexes *mutexset.Store
	pq      *pq.IndexedPQ

	nextEdge int
	nextPrio float64
}

// NewMutexWatershedPolicy builds the policy from per-edge signed affinity
// values and sizes. Call Attach once the owning ecg.ContractionGraph
// exists.
func NewMutexWatershedPolicy(value, size []float64, numNodes int, opts ...MutexWatershedPolicyOption) *MutexWatershedPolicy {
	o := DefaultMutexWatershedPolicyOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return &MutexWatershedPolicy{
		opts:    o,
		rule:    mergerule.MutexWatershedAbsMax(),
		value:   append([]float64(nil), value...),
		size:    append([]float64(nil), size...),
		mutexes: mutexset.NewStore(numNodes),
		pq:      pq.New(len(value), MaxPriority),
	}
}

// Attach binds the policy to its owning ContractionGraph and seeds the
// priority queue with each edge's magnitude.
func (p *MutexWatershedPolicy) Attach(cg *ecg.ContractionGraph) {
	p.cg = cg
	for e := range p.value {
		_ = p.pq.Push(e, math.Abs(p.value[e]))
	}
}

func (p *MutexWatershedPolicy) EdgeToContractNext() (int, float64) { return p.nextEdge, p.nextPrio }

// IsDone lazily drains the queue: a self-loop is discarded; a repulsive
// (negative-valued) or mutex-forbidden edge is recorded as a constraint
// and popped; otherwise the edge is selected for contraction.
func (p *MutexWatershedPolicy) IsDone() bool {
	for {
		if p.cg.NumberOfNodes() <= p.opts.StopNodes || p.pq.Empty() {
			return true
		}
		edge, prio, _ := p.pq.Top()
		if prio < p.opts.StopPriority {
			return true
		}

		ru, rv := p.cg.UV(edge)
		if ru == rv {
			p.pq.Pop()
			continue
		}
		if p.value[edge] < 0 || p.mutexes.Check(ru, rv) {
			p.pq.Pop()
			p.mutexes.Insert(ru, rv)
			continue
		}

		p.nextEdge, p.nextPrio = edge, prio

		return false
	}
}

func (p *MutexWatershedPolicy) ContractEdge(edge int) { p.pq.Delete(edge) }

func (p *MutexWatershedPolicy) MergeNodes(alive, dead int) { p.mutexes.Merge(dead, alive) }

func (p *MutexWatershedPolicy) MergeEdges(alive, dead int) {
	p.pq.Delete(dead)
	p.value[alive], p.size[alive] = p.rule.Combine(p.value[alive], p.size[alive], p.value[dead], p.size[dead])
	_ = p.pq.Push(alive, math.Abs(p.value[alive]))
}

func (p *MutexWatershedPolicy) ContractEdgeDone(edge int) {}
