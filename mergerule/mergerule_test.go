package mergerule_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katviz/seggraph/mergerule"
)

func combine3(r mergerule.Rule, va, sa, vb, sb, vc, sc float64) (float64, float64) {
	v1, s1 := r.Combine(va, sa, vb, sb)
	v2, s2 := r.Combine(v1, s1, vc, sc)

	return v2, s2
}

func TestSumAssociative(t *testing.T) {
	r := mergerule.Sum()
	left, _ := combine3(r, 1, 1, 2, 1, 3, 1)

	v1, s1 := r.Combine(2, 1, 3, 1)
	right, _ := r.Combine(1, 1, v1, s1)

	require.InDelta(t, left, right, 1e-9)
}

func TestMaxMinAssociative(t *testing.T) {
	for _, r := range []mergerule.Rule{mergerule.Max(), mergerule.Min()} {
		left, _ := combine3(r, 1, 1, 5, 1, 3, 1)
		v1, s1 := r.Combine(5, 1, 3, 1)
		right, _ := r.Combine(1, 1, v1, s1)
		require.InDelta(t, left, right, 1e-9)
	}
}

func TestMutexWatershedAbsMaxAssociative(t *testing.T) {
	r := mergerule.MutexWatershedAbsMax()
	left, _ := combine3(r, -5, 1, 2, 1, 3, 1)
	v1, s1 := r.Combine(2, 1, 3, 1)
	right, _ := r.Combine(-5, 1, v1, s1)
	require.InDelta(t, left, right, 1e-9)
}

func TestArithmeticMeanSizeWeightedAssociative(t *testing.T) {
	r := mergerule.ArithmeticMean()
	left, _ := combine3(r, 2, 1, 4, 3, 6, 2)
	v1, s1 := r.Combine(4, 3, 6, 2)
	right, _ := r.Combine(2, 1, v1, s1)
	require.InDelta(t, left, right, 1e-9)
}

func TestArithmeticMeanZeroSizeGuard(t *testing.T) {
	r := mergerule.ArithmeticMean()
	v, s := r.Combine(3, 0, 5, 0)
	require.Equal(t, 0.0, v)
	require.Equal(t, 0.0, s)
}

func TestGeneralizedMeanCollapsesToMaxAtInfinity(t *testing.T) {
	r := mergerule.GeneralizedMean(math.Inf(1))
	v, _ := r.Combine(2, 1, 9, 1)
	require.Equal(t, 9.0, v)
}

func TestMutexWatershedAbsMaxPreservesSign(t *testing.T) {
	r := mergerule.MutexWatershedAbsMax()
	v, _ := r.Combine(-10, 1, 3, 1)
	require.Equal(t, -10.0, v)
}
