package kinetics

import (
	"fmt"
	"iter"
	"math"
)

// MaxCurvePoints bounds the number of samples in a single curve
const MaxCurvePoints = 1001

// Range is a closed temperature range in °C sampled every Step degrees
type Range struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

// DefaultRange returns 0..100 °C at 1 °C steps
func DefaultRange() Range {
	return Range{Min: 0, Max: 100, Step: 1}
}

// Len returns the number of samples in the range, or 0 if it is malformed
func (r Range) Len() int {
	if !(r.Step > 0) || !(r.Max >= r.Min) || math.IsInf(r.Max-r.Min, 0) {
		return 0
	}
	// Tolerate float noise so that e.g. 0..1 step 0.1 still ends on 1
	n := math.Floor((r.Max-r.Min)/r.Step+1e-9) + 1
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// At returns the i-th temperature of the range
func (r Range) At(i int) float64 {
	return r.Min + float64(i)*r.Step
}

// Validate checks the range is non-empty and within MaxCurvePoints
func (r Range) Validate() error {
	n := r.Len()
	if n == 0 {
		return fmt.Errorf("%w: min=%g max=%g step=%g", ErrInvalidRange, r.Min, r.Max, r.Step)
	}
	if n > MaxCurvePoints {
		return fmt.Errorf("%w: %d samples exceeds the limit of %d", ErrInvalidRange, n, MaxCurvePoints)
	}
	return nil
}

// CurvePoint is one sample of the rate-versus-temperature curve
type CurvePoint struct {
	Temperature float64 `json:"temperature"`
	Rate        float64 `json:"rate"`
}

// SampleRateCurve yields (temperature, rate) pairs over the closed range at a
// fixed concentration. The sequence is lazy and can be ranged over any number
// of times; each pass recomputes the same values.
func (e Evaluator) SampleRateCurve(p ReactionProfile, concentration float64, r Range) iter.Seq2[float64, float64] {
	n := r.Len()
	return func(yield func(float64, float64) bool) {
		for i := 0; i < n; i++ {
			t := r.At(i)
			k := e.RateConstant(p, t)
			if !yield(t, ReactionRate(k, concentration, p.Order)) {
				return
			}
		}
	}
}

// Curve validates its inputs and collects SampleRateCurve into a slice
func (e Evaluator) Curve(p ReactionProfile, concentration float64, r Range) ([]CurvePoint, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := e.checkTemperature(r.Min); err != nil {
		return nil, err
	}
	if err := checkConcentration(concentration); err != nil {
		return nil, err
	}

	points := make([]CurvePoint, 0, r.Len())
	for t, rate := range e.SampleRateCurve(p, concentration, r) {
		if err := checkFinite(t, e.RateConstant(p, t), rate); err != nil {
			return nil, err
		}
		points = append(points, CurvePoint{Temperature: t, Rate: rate})
	}
	return points, nil
}
