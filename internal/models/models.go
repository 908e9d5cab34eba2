package models

import (
	"github.com/kartoza/kinetics-lab/internal/catalog"
	"github.com/kartoza/kinetics-lab/internal/kinetics"
)

// EvaluateRequest is the POST /api/evaluate body. Either a catalog key or an
// ad-hoc profile must be given.
type EvaluateRequest struct {
	Reaction      string                    `json:"reaction,omitempty" validate:"required_without=Profile"`
	Profile       *kinetics.ReactionProfile `json:"profile,omitempty"`
	Temperature   *float64                  `json:"temperature" validate:"required"`
	Concentration *float64                  `json:"concentration" validate:"required"`
}

// Result is an EvaluationResult in its JSON form. JSON has no infinity, so an
// unbounded estimated time is sent as null with EstimatedTimeInfinite set.
type Result struct {
	Temperature           float64  `json:"temperature"`
	TemperatureKelvin     float64  `json:"temperature_kelvin"`
	Concentration         float64  `json:"concentration"`
	RateConstant          float64  `json:"rate_constant"`
	ReactionRate          float64  `json:"reaction_rate"`
	EstimatedTime         *float64 `json:"estimated_time"`
	EstimatedTimeInfinite bool     `json:"estimated_time_infinite"`
}

// NewResult converts an evaluation result for the wire
func NewResult(r kinetics.EvaluationResult) Result {
	out := Result{
		Temperature:       r.TemperatureCelsius,
		TemperatureKelvin: r.TemperatureKelvin,
		Concentration:     r.Concentration,
		RateConstant:      r.RateConstant,
		ReactionRate:      r.ReactionRate,
	}
	if r.TimeIsInfinite() {
		out.EstimatedTimeInfinite = true
	} else {
		t := r.EstimatedTime
		out.EstimatedTime = &t
	}
	return out
}

// EvaluateResponse contains the result and its display strings
type EvaluateResponse struct {
	Profile kinetics.ReactionProfile `json:"profile"`
	Result  Result                   `json:"result"`
	Display kinetics.Display         `json:"display"`
}

// CurveResponse contains the sampled rate-versus-temperature curve
type CurveResponse struct {
	Reaction      string                `json:"reaction"`
	Concentration float64               `json:"concentration"`
	Label         string                `json:"label"`
	Range         kinetics.Range        `json:"range"`
	Points        []kinetics.CurvePoint `json:"points"`
}

// ReactionsResponse lists the catalog
type ReactionsResponse struct {
	Default   string                     `json:"default"`
	Reactions []kinetics.ReactionProfile `json:"reactions"`
}

// InfoResponse describes the running server
type InfoResponse struct {
	Version   string             `json:"version"`
	Catalog   string             `json:"catalog"`
	Reactions int                `json:"reactions"`
	Ranges    catalog.Ranges     `json:"ranges"`
	Constants kinetics.Constants `json:"constants"`
}
