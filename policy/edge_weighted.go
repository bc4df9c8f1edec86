package policy

import (
	"math"

	"github.com/katviz/seggraph/ecg"
	"github.com/katviz/seggraph/mergerule"
	"github.com/katviz/seggraph/pq"
)

// EdgeWeightedOptions configures an EdgeWeightedPolicy.
type EdgeWeightedOptions struct {
	Order Order

	// Lambda in [0,1] enables the size regularizer: priority is scaled by
	// (1 - Lambda*(nodeSizeU+nodeSizeV)/SizeThreshold), saturating at 0.
	// Lambda == 0 disables the regularizer entirely.
	Lambda float64

	// SizeThreshold is the regularizer's denominator; ignored when Lambda
	// is 0. Must be > 0 when Lambda > 0.
	SizeThreshold float64

	// SizeThreshMax, if > 0, demotes to -Inf the priority of any edge
	// touching a node whose size has reached or exceeded this cap.
	SizeThreshMax float64

	StopNodes    int
	StopPriority float64
}

// EdgeWeightedOption mutates an EdgeWeightedOptions.
type EdgeWeightedOption func(*EdgeWeightedOptions)

// DefaultEdgeWeightedOptions returns max-priority contraction down to a
// single node, with no size regularizer or cap.
func DefaultEdgeWeightedOptions() EdgeWeightedOptions {
	return EdgeWeightedOptions{
		Order:        MaxPriority,
		StopNodes:    1,
		StopPriority: math.Inf(-1),
	}
}

func WithOrder(o Order) EdgeWeightedOption {
	return func(o2 *EdgeWeightedOptions) { o2.Order = o }
}

func WithLambda(lambda, sizeThreshold float64) EdgeWeightedOption {
	return func(o *EdgeWeightedOptions) {
		o.Lambda = lambda
		o.SizeThreshold = sizeThreshold
	}
}

func WithSizeThreshMax(max float64) EdgeWeightedOption {
	return func(o *EdgeWeightedOptions) { o.SizeThreshMax = max }
}

func WithStopNodes(n int) EdgeWeightedOption {
	return func(o *EdgeWeightedOptions) { o.StopNodes = n }
}

func WithStopPriority(p float64) EdgeWeightedOption {
	return func(o *EdgeWeightedOptions) { o.StopPriority = p }
}

// EdgeWeightedPolicy implements spec.md §4.6.1: a max- or min-priority
// queue over a merge-rule-combined edge value, with an optional
// size-weighted regularizer and a hard per-node size cap.
type EdgeWeightedPolicy struct {
	cg   *ecg.ContractionGraph
	rule mergerule.Rule
	opts EdgeWeightedOptions

	edgeValue []float64
	edgeSize  []float64
	nodeSize  []float64

	pq *pq.IndexedPQ
}

// NewEdgeWeightedPolicy builds a policy over the given per-edge value/size
// and per-node size arrays. Call Attach once the owning
// ecg.ContractionGraph exists.
func NewEdgeWeightedPolicy(rule mergerule.Rule, edgeValue, edgeSize, nodeSize []float64, opts ...EdgeWeightedOption) *EdgeWeightedPolicy {
	o := DefaultEdgeWeightedOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return &EdgeWeightedPolicy{
		rule:      rule,
		opts:      o,
		edgeValue: edgeValue,
		edgeSize:  edgeSize,
		nodeSize:  nodeSize,
		pq:        pq.New(len(edgeValue), o.Order),
	}
}

// Attach binds the policy to its owning ContractionGraph and seeds the
// priority queue with every base edge's initial priority.
func (p *EdgeWeightedPolicy) Attach(cg *ecg.ContractionGraph) {
	p.cg = cg
	for e := 0; e < len(p.edgeValue); e++ {
		_ = p.pq.Push(e, p.priority(e))
	}
}

func (p *EdgeWeightedPolicy) priority(edge int) float64 {
	u, v := p.cg.UV(edge)
	if p.opts.SizeThreshMax > 0 && (p.nodeSize[u] >= p.opts.SizeThreshMax || p.nodeSize[v] >= p.opts.SizeThreshMax) {
		return math.Inf(-1)
	}

	base := p.edgeValue[edge]
	if p.opts.Lambda > 0 {
		factor := 1 - p.opts.Lambda*(p.nodeSize[u]+p.nodeSize[v])/p.opts.SizeThreshold
		if factor < 0 {
			factor = 0
		}
		base *= factor
	}

	return base
}

func (p *EdgeWeightedPolicy) EdgeToContractNext() (int, float64) {
	id, prio, _ := p.pq.Top()

	return id, prio
}

// IsDone lazily discards top entries that have become self-loops (their
// endpoints now share a representative through some unrelated chain of
// contractions, as can happen on any graph with cycles) before checking
// the ordinary stop conditions: node count, empty queue, or top priority
// below StopPriority.
func (p *EdgeWeightedPolicy) IsDone() bool {
	for {
		if p.cg.NumberOfNodes() <= p.opts.StopNodes || p.pq.Empty() {
			return true
		}
		edge, prio, _ := p.pq.Top()
		if prio < p.opts.StopPriority {
			return true
		}
		if u, v := p.cg.UV(edge); u == v {
			p.pq.Pop()

			continue
		}

		return false
	}
}

func (p *EdgeWeightedPolicy) ContractEdge(edge int) { p.pq.Delete(edge) }

func (p *EdgeWeightedPolicy) MergeNodes(alive, dead int) {
	p.nodeSize[alive] += p.nodeSize[dead]
}

func (p *EdgeWeightedPolicy) MergeEdges(alive, dead int) {
	p.pq.Delete(dead)
	p.edgeValue[alive], p.edgeSize[alive] = p.rule.Combine(p.edgeValue[alive], p.edgeSize[alive], p.edgeValue[dead], p.edgeSize[dead])
	_ = p.pq.Push(alive, p.priority(alive))
}

func (p *EdgeWeightedPolicy) ContractEdgeDone(edge int) {}
