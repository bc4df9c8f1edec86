package histogram_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katviz/seggraph/histogram"
)

func TestQuantileMonotonic(t *testing.T) {
	h := histogram.New(0, 1, 50)
	for _, v := range []float64{0.1, 0.2, 0.5, 0.7, 0.9, 0.9, 0.95} {
		h.Insert(v, 1)
	}
	q0 := h.Quantile(0)
	q5 := h.Quantile(0.5)
	q1 := h.Quantile(1)
	require.LessOrEqual(t, q0, q5)
	require.LessOrEqual(t, q5, q1)
}

func TestMergeThenQuantileMatchesUnion(t *testing.T) {
	a := histogram.New(0, 1, 40)
	b := histogram.New(0, 1, 40)
	a.Insert(0.2, 1)
	b.Insert(0.8, 1)

	require.NoError(t, a.Merge(b))

	// S5: single-sample histograms at 0.2 and 0.8 merged should give a
	// median in [0.4, 0.6] for bin count >= 40.
	median := a.Quantile(0.5)
	require.GreaterOrEqual(t, median, 0.4)
	require.LessOrEqual(t, median, 0.6)
}

func TestMergeRangeMismatch(t *testing.T) {
	a := histogram.New(0, 1, 40)
	b := histogram.New(0, 2, 40)
	require.ErrorIs(t, a.Merge(b), histogram.ErrRangeMismatch)
}

func TestEmptyQuantileIsMidpoint(t *testing.T) {
	h := histogram.New(2, 10, 20)
	require.Equal(t, 6.0, h.Quantile(0.5))
}

func TestInsertClipsOutOfRange(t *testing.T) {
	h := histogram.New(0, 1, 10)
	h.Insert(-5, 1)
	h.Insert(5, 1)
	require.Equal(t, 2.0, h.Sum())
	// Both clipped insertions land at the extreme bins; quantiles stay in range.
	require.GreaterOrEqual(t, h.Quantile(0), 0.0)
	require.LessOrEqual(t, h.Quantile(1), 1.0)
}
