package kinetics

import (
	"fmt"
	"math"
	"strconv"
)

// InfiniteMarker is shown instead of a time when the rate is zero
const InfiniteMarker = "∞"

// Display holds an EvaluationResult formatted for the "current conditions" panel
type Display struct {
	Temperature   string `json:"temperature"`
	Concentration string `json:"concentration"`
	RateConstant  string `json:"rate_constant"`
	ReactionRate  string `json:"reaction_rate"`
	EstimatedTime string `json:"estimated_time"`
}

// FormatResult renders k in scientific notation and the rate and time in fixed point
func FormatResult(r EvaluationResult) Display {
	return Display{
		Temperature:   strconv.FormatFloat(r.TemperatureCelsius, 'f', -1, 64) + " ℃",
		Concentration: fmt.Sprintf("%.2f mol/L", r.Concentration),
		RateConstant:  fmt.Sprintf("%.5e s⁻¹", r.RateConstant),
		ReactionRate:  fmt.Sprintf("%.3f mol/(L·s)", r.ReactionRate),
		EstimatedTime: FormatTime(r.EstimatedTime),
	}
}

// FormatTime renders an estimated time in seconds, or InfiniteMarker
func FormatTime(seconds float64) string {
	if math.IsInf(seconds, 1) {
		return InfiniteMarker
	}
	return fmt.Sprintf("%.2f s", seconds)
}

// CurveLabel is the legend label of a curve sampled at the given concentration
func CurveLabel(concentration float64) string {
	return fmt.Sprintf("concentration %.2f mol/L", concentration)
}
