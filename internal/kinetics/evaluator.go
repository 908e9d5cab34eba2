// Package kinetics evaluates Arrhenius rate constants and power-law
// reaction rates for a reaction profile at a given temperature and
// concentration.
//
// The raw formulas (RateConstant, ReactionRate, EstimateReactionTime) are
// total over floats and never fail. Evaluate and Curve are the validating
// entry points used by the API and the CLI.
package kinetics

import (
	"fmt"
	"math"
)

// EvaluationInput is the per-request slider state
type EvaluationInput struct {
	TemperatureCelsius float64 `json:"temperature"`
	Concentration      float64 `json:"concentration"` // mol/L
}

// EvaluationResult is derived from a profile and an input, never stored
type EvaluationResult struct {
	TemperatureCelsius float64 `json:"temperature"`
	TemperatureKelvin  float64 `json:"temperature_kelvin"`
	Concentration      float64 `json:"concentration"`
	RateConstant       float64 `json:"rate_constant"`
	ReactionRate       float64 `json:"reaction_rate"`
	EstimatedTime      float64 `json:"-"` // +Inf when the rate is zero
}

// TimeIsInfinite reports whether the estimated time is the infinite sentinel
func (r EvaluationResult) TimeIsInfinite() bool {
	return math.IsInf(r.EstimatedTime, 1)
}

// Evaluator computes kinetics with an explicit set of physical constants.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	constants Constants
}

// NewEvaluator creates an evaluator bound to the given constants
func NewEvaluator(c Constants) Evaluator {
	return Evaluator{constants: c}
}

// DefaultEvaluator returns an evaluator using DefaultConstants
func DefaultEvaluator() Evaluator {
	return NewEvaluator(DefaultConstants())
}

// Constants returns the physical constants of the evaluator
func (e Evaluator) Constants() Constants {
	return e.constants
}

// Kelvin converts a Celsius temperature to Kelvin
func (e Evaluator) Kelvin(celsius float64) float64 {
	return celsius + e.constants.KelvinOffset
}

// RateConstant computes k = A * exp(-Ea / (R * T_K)).
// The caller keeps T_K positive; no domain check is made here.
func (e Evaluator) RateConstant(p ReactionProfile, celsius float64) float64 {
	tK := e.Kelvin(celsius)
	return p.PreExponentialFactor * math.Exp(-p.ActivationEnergy/(e.constants.GasConstant*tK))
}

// ReactionRate computes k * concentration^order
func ReactionRate(k, concentration float64, order int) float64 {
	return k * math.Pow(concentration, float64(order))
}

// EstimateReactionTime returns the simple inverse-rate estimate 1/rate.
// A zero rate yields +Inf instead of a division error.
func EstimateReactionTime(rate float64) float64 {
	if rate != 0 {
		return 1 / rate
	}
	return math.Inf(1)
}

// Evaluate validates its inputs and composes RateConstant, ReactionRate and
// EstimateReactionTime into a single result.
func (e Evaluator) Evaluate(p ReactionProfile, in EvaluationInput) (EvaluationResult, error) {
	if err := p.Validate(); err != nil {
		return EvaluationResult{}, err
	}
	if err := e.checkTemperature(in.TemperatureCelsius); err != nil {
		return EvaluationResult{}, err
	}
	if err := checkConcentration(in.Concentration); err != nil {
		return EvaluationResult{}, err
	}

	k := e.RateConstant(p, in.TemperatureCelsius)
	rate := ReactionRate(k, in.Concentration, p.Order)
	if err := checkFinite(in.TemperatureCelsius, k, rate); err != nil {
		return EvaluationResult{}, err
	}

	return EvaluationResult{
		TemperatureCelsius: in.TemperatureCelsius,
		TemperatureKelvin:  e.Kelvin(in.TemperatureCelsius),
		Concentration:      in.Concentration,
		RateConstant:       k,
		ReactionRate:       rate,
		EstimatedTime:      EstimateReactionTime(rate),
	}, nil
}

func (e Evaluator) checkTemperature(celsius float64) error {
	tK := e.Kelvin(celsius)
	if math.IsNaN(tK) || math.IsInf(tK, 0) || tK <= 0 {
		return fmt.Errorf("%w: %g °C is %g K", ErrTemperatureOutOfDomain, celsius, tK)
	}
	return nil
}

func checkConcentration(c float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
		return fmt.Errorf("%w: got %g", ErrNegativeConcentration, c)
	}
	return nil
}

// checkFinite rejects overflowed results; 0·Inf gives NaN, large A or conc^order give +Inf
func checkFinite(celsius, k, rate float64) error {
	if math.IsNaN(k) || math.IsInf(k, 0) || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("%w: k=%g rate=%g at %g °C", ErrResultOutOfRange, k, rate, celsius)
	}
	return nil
}
