package policy

import (
	"math"

	"github.com/katviz/seggraph/ecg"
	"github.com/katviz/seggraph/mergerule"
	"github.com/katviz/seggraph/mutexset"
	"github.com/katviz/seggraph/pq"
)

// accumulator pairs a mergerule.Rule with the per-edge value/size arrays
// it folds on contraction. GASPPolicy keeps two: acc0 (attractive/merge
// evidence) and acc1 (repulsive/not-merge evidence).
type accumulator struct {
	rule   mergerule.Rule
	values []float64
	sizes  []float64
}

func (a *accumulator) merge(alive, dead int) {
	a.values[alive], a.sizes[alive] = a.rule.Combine(a.values[alive], a.sizes[alive], a.values[dead], a.sizes[dead])
}

func (a *accumulator) setValueFrom(alive, dead int) {
	a.values[alive] = a.rule.SetFrom(a.values[dead])
	a.sizes[alive] = a.sizes[dead]
}

// GASPOptions configures a GASPPolicy.
type GASPOptions struct {
	// ZeroInit enables the asymmetric adoption rule on merge: when the
	// alive edge's role was pure-lifted/pure-local and the dead edge's
	// was not, SetFrom replaces the uninitialized side instead of merging.
	ZeroInit bool

	StopNodes int
	Threshold float64
}

// GASPOption mutates a GASPOptions.
type GASPOption func(*GASPOptions)

// DefaultGASPOptions disables ZeroInit and stops at one node with no
// priority threshold.
func DefaultGASPOptions() GASPOptions {
	return GASPOptions{StopNodes: 1, Threshold: math.Inf(-1)}
}

func WithZeroInit(b bool) GASPOption { return func(o *GASPOptions) { o.ZeroInit = b } }
func WithGASPStopNodes(n int) GASPOption {
	return func(o *GASPOptions) { o.StopNodes = n }
}
func WithGASPThreshold(t float64) GASPOption { return func(o *GASPOptions) { o.Threshold = t } }

// GASPPolicy implements spec.md §4.6.2: the probabilistic/GASP cluster
// policy, with two per-edge accumulators, a local/lifted flag, a mutex
// store enforcing cannot-link constraints, and lazy popping of invalidated
// queue entries in IsDone.
type GASPPolicy struct {
	cg   *ecg.ContractionGraph
	opts GASPOptions

	acc0, acc1  accumulator
	isLocal     []bool
	isPureLocal []bool
	isPureLift  []bool

	mutexes *mutexset.Store
	pq      *pq.IndexedPQ
}

// NewGASPPolicy builds a GASP policy. mergePrios/notMergePrios/edgeSizes
// seed acc0/acc1; isLocalEdge flags which edges are eligible for
// contraction at all (lifted edges never are).
func NewGASPPolicy(mergeRule, notMergeRule mergerule.Rule, mergePrios, notMergePrios, edgeSizes []float64, isLocalEdge []bool, numNodes int, opts ...GASPOption) *GASPPolicy {
	o := DefaultGASPOptions()
	for _, apply := range opts {
		apply(&o)
	}

	n := len(mergePrios)
	p := &GASPPolicy{
		opts: o,
		acc0: accumulator{rule: mergeRule, values: append([]float64(nil), mergePrios...), sizes: append([]float64(nil), edgeSizes...)},
		acc1: accumulator{rule: notMergeRule, values: append([]float64(nil), notMergePrios...), sizes: append([]float64(nil), edgeSizes...)},
		isLocal:     append([]bool(nil), isLocalEdge...),
		isPureLocal: make([]bool, n),
		isPureLift:  make([]bool, n),
		mutexes:     mutexset.NewStore(numNodes),
		pq:          pq.New(n, MaxPriority),
	}
	for e := 0; e < n; e++ {
		p.isPureLocal[e] = isLocalEdge[e]
		p.isPureLift[e] = !isLocalEdge[e]
		if o.ZeroInit {
			if isLocalEdge[e] {
				p.acc1.values[e], p.acc1.sizes[e] = 0, edgeSizes[e]
			} else {
				p.acc0.values[e], p.acc0.sizes[e] = 0, edgeSizes[e]
			}
		}
	}

	return p
}

// Attach binds the policy to its owning ContractionGraph and seeds the
// priority queue with every base edge's initial priority.
func (p *GASPPolicy) Attach(cg *ecg.ContractionGraph) {
	p.cg = cg
	for e := 0; e < len(p.isLocal); e++ {
		_ = p.pq.Push(e, p.mergePriority(e))
	}
}

func (p *GASPPolicy) mergePriority(edge int) float64 {
	if !p.isLocal[edge] {
		return math.Inf(-1)
	}

	return 0.5 * (p.acc0.values[edge] + (1 - p.acc1.values[edge]))
}

// InsertMutex records an external cannot-link constraint between the
// current representatives of ru and rv, ahead of or during clustering.
// Used to seed mutex constraints that don't arise from the policy's own
// lazy popping (e.g. externally supplied non-link edges).
func (p *GASPPolicy) InsertMutex(ru, rv int) { p.mutexes.Insert(ru, rv) }

func (p *GASPPolicy) EdgeToContractNext() (int, float64) {
	id, prio, _ := p.pq.Top()

	return id, prio
}

// IsDone lazily discards invalidated top entries: a self-loop (its
// endpoints already share a representative) is popped and dropped; an
// edge whose reps are mutex-forbidden is popped and the mutex is recorded
// between those reps instead. Termination is queue-empty, top priority
// below Threshold, a lifted (non-local) edge at the top, or node count at
// or below StopNodes.
func (p *GASPPolicy) IsDone() bool {
	for {
		if p.cg.NumberOfNodes() <= p.opts.StopNodes || p.pq.Empty() {
			return true
		}
		edge, prio, _ := p.pq.Top()
		if prio < p.opts.Threshold || !p.isLocal[edge] {
			return true
		}

		ru, rv := p.cg.UV(edge)
		if ru == rv {
			p.pq.Pop()
			continue
		}
		if p.mutexes.Check(ru, rv) {
			p.pq.Pop()
			p.mutexes.Insert(ru, rv)
			continue
		}

		return false
	}
}

func (p *GASPPolicy) ContractEdge(edge int) { p.pq.Delete(edge) }

func (p *GASPPolicy) MergeNodes(alive, dead int) { p.mutexes.Merge(dead, alive) }

func (p *GASPPolicy) MergeEdges(alive, dead int) {
	p.pq.Delete(dead)

	if p.opts.ZeroInit && p.isPureLift[alive] && !p.isPureLift[dead] {
		p.acc0.setValueFrom(alive, dead)
	} else {
		p.acc0.merge(alive, dead)
	}

	if p.opts.ZeroInit && p.isPureLocal[alive] && !p.isPureLocal[dead] {
		p.acc1.setValueFrom(alive, dead)
	} else {
		p.acc1.merge(alive, dead)
	}

	p.isLocal[alive] = p.isLocal[alive] || p.isLocal[dead]
	p.isPureLocal[alive] = p.isPureLocal[alive] && p.isPureLocal[dead]
	p.isPureLift[alive] = p.isPureLift[alive] && p.isPureLift[dead]

	_ = p.pq.Push(alive, p.mergePriority(alive))
}

func (p *GASPPolicy) ContractEdgeDone(edge int) {}
