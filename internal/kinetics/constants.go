package kinetics

// Physical constants used by the evaluator
const (
	GasConstant  = 8.314  // J/(mol·K)
	KelvinOffset = 273.15 // °C -> K
)

// Constants is the physical-constants record an Evaluator is built with
type Constants struct {
	GasConstant  float64 `json:"gas_constant"`
	KelvinOffset float64 `json:"kelvin_offset"`
}

// DefaultConstants returns R = 8.314 J/(mol·K) and the 273.15 Kelvin offset
func DefaultConstants() Constants {
	return Constants{
		GasConstant:  GasConstant,
		KelvinOffset: KelvinOffset,
	}
}
