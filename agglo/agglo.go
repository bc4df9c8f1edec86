package agglo

import (
	"github.com/katviz/seggraph/ecg"
	"github.com/katviz/seggraph/policy"
)

// Merge records one contraction performed by Run: which base edge was
// contracted and at what priority the policy offered it.
type Merge struct {
	Edge     int
	Priority float64
}

// Options configures Run.
type Options struct {
	// EnableUCM records every contraction into the returned history,
	// the redesign of nifty's ENABLE_UCM compile-time template flag as a
	// runtime option (see DESIGN.md).
	EnableUCM bool
}

// Option mutates an Options.
type Option func(*Options)

// WithUCM enables contraction-history recording.
func WithUCM() Option { return func(o *Options) { o.EnableUCM = true } }

// Run implements spec.md §4.7's loop: while the policy isn't done, ask it
// for the next edge and contract it. It returns the first error any
// contraction produces; per spec.md §7's propagation policy, Run simply
// halts at that point rather than rolling back state already mutated by
// completed contractions (ECG offers no transactional rollback, and
// spec.md's Lifecycle says none is expected).
func Run(cg *ecg.ContractionGraph, p policy.ClusterPolicy, opts ...Option) ([]Merge, error) {
	o := Options{}
	for _, apply := range opts {
		apply(&o)
	}

	var history []Merge
	for !p.IsDone() {
		edge, prio := p.EdgeToContractNext()
		if o.EnableUCM {
			history = append(history, Merge{Edge: edge, Priority: prio})
		}
		if err := cg.ContractEdge(edge); err != nil {
			return history, err
		}
	}

	return history, nil
}

// Representatives returns, for every original node id, its final
// representative after clustering.
func Representatives(cg *ecg.ContractionGraph) []int {
	reps := make([]int, cg.NumberOfBaseNodes())
	for i := range reps {
		reps[i] = cg.Find(i)
	}

	return reps
}
