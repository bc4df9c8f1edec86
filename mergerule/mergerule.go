package mergerule

import "math"

// Rule is a commutative, size-weighted pairwise combiner for edge or
// node statistics under contraction.
type Rule interface {
	// Combine returns the merged value and size for two inputs. Callers
	// are responsible for passing size = sizeA + sizeB onward; Combine
	// returns it for convenience and because some rules (the generalized
	// mean, smooth-max) need both sizes to weight their terms.
	Combine(valueA, sizeA, valueB, sizeB float64) (value, size float64)

	// SetFrom returns the neutral "overwrite" of src, used by zero-init
	// policies that want to adopt an observed statistic outright rather
	// than blend it with an uninitialized placeholder.
	SetFrom(src float64) float64
}

func setFromIdentity(src float64) float64 { return src }

func combinedSize(sizeA, sizeB float64) float64 { return sizeA + sizeB }

type sumRule struct{}

// Sum combines values by addition.
func Sum() Rule { return sumRule{} }

func (sumRule) Combine(valueA, sizeA, valueB, sizeB float64) (float64, float64) {
	return valueA + valueB, combinedSize(sizeA, sizeB)
}
func (sumRule) SetFrom(src float64) float64 { return setFromIdentity(src) }

type arithmeticMeanRule struct{}

// ArithmeticMean combines values by their size-weighted mean.
func ArithmeticMean() Rule { return arithmeticMeanRule{} }

func (arithmeticMeanRule) Combine(valueA, sizeA, valueB, sizeB float64) (float64, float64) {
	size := combinedSize(sizeA, sizeB)
	if size == 0 {
		return 0, 0
	}

	return (sizeA*valueA + sizeB*valueB) / size, size
}
func (arithmeticMeanRule) SetFrom(src float64) float64 { return setFromIdentity(src) }

type maxRule struct{}

// Max combines values by taking the larger.
func Max() Rule { return maxRule{} }

func (maxRule) Combine(valueA, sizeA, valueB, sizeB float64) (float64, float64) {
	return math.Max(valueA, valueB), combinedSize(sizeA, sizeB)
}
func (maxRule) SetFrom(src float64) float64 { return setFromIdentity(src) }

type minRule struct{}

// Min combines values by taking the smaller.
func Min() Rule { return minRule{} }

func (minRule) Combine(valueA, sizeA, valueB, sizeB float64) (float64, float64) {
	return math.Min(valueA, valueB), combinedSize(sizeA, sizeB)
}
func (minRule) SetFrom(src float64) float64 { return setFromIdentity(src) }

type generalizedMeanRule struct{ p float64 }

// GeneralizedMean combines values via the size-weighted power mean with
// exponent p. p may be negative; a very large p approximates Max.
func GeneralizedMean(p float64) Rule { return generalizedMeanRule{p: p} }

func (r generalizedMeanRule) Combine(valueA, sizeA, valueB, sizeB float64) (float64, float64) {
	size := combinedSize(sizeA, sizeB)
	if size == 0 {
		return 0, 0
	}
	if math.IsInf(r.p, 1) {
		return math.Max(valueA, valueB), size
	}
	num := sizeA*math.Pow(valueA, r.p) + sizeB*math.Pow(valueB, r.p)

	return math.Pow(num/size, 1.0/r.p), size
}
func (generalizedMeanRule) SetFrom(src float64) float64 { return setFromIdentity(src) }

type smoothMaxRule struct{ p float64 }

// SmoothMax combines values via a soft-max-weighted blend with sharpness p.
func SmoothMax(p float64) Rule { return smoothMaxRule{p: p} }

func (r smoothMaxRule) Combine(valueA, sizeA, valueB, sizeB float64) (float64, float64) {
	size := combinedSize(sizeA, sizeB)
	wA := sizeA * math.Exp(r.p*valueA)
	wB := sizeB * math.Exp(r.p*valueB)
	denom := wA + wB
	if denom == 0 {
		return 0, size
	}

	return (valueA*wA + valueB*wB) / denom, size
}
func (smoothMaxRule) SetFrom(src float64) float64 { return setFromIdentity(src) }

type mutexWatershedAbsMaxRule struct{}

// MutexWatershedAbsMax combines two signed affinities by keeping whichever
// has the larger absolute magnitude, preserving its sign.
func MutexWatershedAbsMax() Rule { return mutexWatershedAbsMaxRule{} }

func (mutexWatershedAbsMaxRule) Combine(valueA, sizeA, valueB, sizeB float64) (float64, float64) {
	if math.Abs(valueA) >= math.Abs(valueB) {
		return valueA, combinedSize(sizeA, sizeB)
	}

	return valueB, combinedSize(sizeA, sizeB)
}
func (mutexWatershedAbsMaxRule) SetFrom(src float64) float64 { return setFromIdentity(src) }
