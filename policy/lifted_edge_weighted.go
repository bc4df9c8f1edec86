package policy

import (
	"math"

	"github.com/katviz/seggraph/ecg"
	"github.com/katviz/seggraph/histogram"
	"github.com/katviz/seggraph/pq"
)

// LiftedEdgeWeightedOptions configures a LiftedEdgeWeightedPolicy.
type LiftedEdgeWeightedOptions struct {
	// Quantile selects which quantile of each edge's merged histogram is
	// used as its priority.
	Quantile float64

	StopNodes    int
	StopPriority float64

	HistogramMin, HistogramMax float64
	HistogramBins               int
}

// LiftedEdgeWeightedOption mutates a LiftedEdgeWeightedOptions.
type LiftedEdgeWeightedOption func(*LiftedEdgeWeightedOptions)

// DefaultLiftedEdgeWeightedOptions matches nifty's own default: median
// priority over a [0,1]-ranged 40-bin histogram, stopping at one node.
func DefaultLiftedEdgeWeightedOptions() LiftedEdgeWeightedOptions {
	return LiftedEdgeWeightedOptions{
		Quantile:     0.5,
		StopNodes:    1,
		StopPriority: math.Inf(1),
		HistogramMin: 0,
		HistogramMax: 1,
		HistogramBins: 40,
	}
}

func WithQuantile(q float64) LiftedEdgeWeightedOption {
	return func(o *LiftedEdgeWeightedOptions) { o.Quantile = q }
}

func WithLiftedStopNodes(n int) LiftedEdgeWeightedOption {
	return func(o *LiftedEdgeWeightedOptions) { o.StopNodes = n }
}

func WithLiftedStopPriority(p float64) LiftedEdgeWeightedOption {
	return func(o *LiftedEdgeWeightedOptions) { o.StopPriority = p }
}

func WithHistogramRange(min, max float64, bins int) LiftedEdgeWeightedOption {
	return func(o *LiftedEdgeWeightedOptions) {
		o.HistogramMin, o.HistogramMax, o.HistogramBins = min, max, bins
	}
}

// LiftedEdgeWeightedPolicy implements spec.md §4.6.3's first variant: a
// per-edge histogram of observed indicator values, with priority equal to
// a configured quantile. The queue is a min-heap, so lifted edges (given
// +Inf priority) always sort last and are never chosen; they exist purely
// to carry statistics across contractions their endpoints participate in.
type LiftedEdgeWeightedPolicy struct {
	cg   *ecg.ContractionGraph
	opts LiftedEdgeWeightedOptions

	edgeIndicator []float64
	edgeSize      []float64
	nodeSize      []float64
	isLifted      []bool
	hist          []*histogram.Histogram

	pq *pq.IndexedPQ
}

// NewLiftedEdgeWeightedPolicy builds the policy from per-edge indicator
// values/sizes, a lifted flag, and per-node sizes. Call Attach once the
// owning ecg.ContractionGraph exists.
func NewLiftedEdgeWeightedPolicy(edgeIndicator, edgeSize, nodeSize []float64, isLifted []bool, opts ...LiftedEdgeWeightedOption) *LiftedEdgeWeightedPolicy {
	o := DefaultLiftedEdgeWeightedOptions()
	for _, apply := range opts {
		apply(&o)
	}

	n := len(edgeIndicator)
	p := &LiftedEdgeWeightedPolicy{
		opts:          o,
		edgeIndicator: append([]float64(nil), edgeIndicator...),
		edgeSize:      append([]float64(nil), edgeSize...),
		nodeSize:      nodeSize,
		isLifted:      append([]bool(nil), isLifted...),
		hist:          make([]*histogram.Histogram, n),
		pq:            pq.New(n, MinPriority),
	}
	for e := 0; e < n; e++ {
		p.hist[e] = histogram.New(o.HistogramMin, o.HistogramMax, o.HistogramBins)
		p.hist[e].Insert(edgeIndicator[e], 1)
	}

	return p
}

// Attach binds the policy to its owning ContractionGraph and seeds the
// priority queue.
func (p *LiftedEdgeWeightedPolicy) Attach(cg *ecg.ContractionGraph) {
	p.cg = cg
	for e := range p.hist {
		_ = p.pq.Push(e, p.weight(e))
	}
}

func (p *LiftedEdgeWeightedPolicy) weight(edge int) float64 {
	if p.isLifted[edge] {
		return math.Inf(1)
	}

	return p.hist[edge].Quantile(p.opts.Quantile)
}

func (p *LiftedEdgeWeightedPolicy) EdgeToContractNext() (int, float64) {
	id, prio, _ := p.pq.Top()

	return id, prio
}

// IsDone lazily discards self-loop top entries (see EdgeWeightedPolicy's
// IsDone for why these can arise) before the ordinary stop checks. A
// lifted edge at the top means only lifted edges remain, so it also ends
// clustering.
func (p *LiftedEdgeWeightedPolicy) IsDone() bool {
	for {
		if p.pq.Empty() || p.cg.NumberOfEdges() == 0 {
			return true
		}
		if p.cg.NumberOfNodes() <= p.opts.StopNodes {
			return true
		}
		edge, prio, _ := p.pq.Top()
		if p.isLifted[edge] || prio > p.opts.StopPriority {
			return true
		}
		if u, v := p.cg.UV(edge); u == v {
			p.pq.Pop()

			continue
		}

		return false
	}
}

func (p *LiftedEdgeWeightedPolicy) ContractEdge(edge int) { p.pq.Delete(edge) }

func (p *LiftedEdgeWeightedPolicy) MergeNodes(alive, dead int) {
	p.nodeSize[alive] += p.nodeSize[dead]
}

func (p *LiftedEdgeWeightedPolicy) MergeEdges(alive, dead int) {
	p.pq.Delete(dead)

	sa, sd := p.edgeSize[alive], p.edgeSize[dead]
	s := sa + sd

	p.isLifted[alive] = p.isLifted[alive] && p.isLifted[dead]
	_ = p.hist[alive].Merge(p.hist[dead])

	if s > 0 {
		p.edgeIndicator[alive] = (sa*p.edgeIndicator[alive] + sd*p.edgeIndicator[dead]) / s
	}
	p.edgeSize[alive] = s

	_ = p.pq.Push(alive, p.weight(alive))
}

func (p *LiftedEdgeWeightedPolicy) ContractEdgeDone(edge int) {}
