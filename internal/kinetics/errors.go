package kinetics

import "errors"

var (
	// ErrTemperatureOutOfDomain is returned when a temperature does not map to a positive Kelvin value
	ErrTemperatureOutOfDomain = errors.New("temperature out of domain")

	// ErrNegativeConcentration is returned for negative or NaN concentrations
	ErrNegativeConcentration = errors.New("concentration must be non-negative")

	// ErrInvalidProfile is returned when a reaction profile violates its constraints
	ErrInvalidProfile = errors.New("invalid reaction profile")

	// ErrInvalidRange is returned for empty, inverted or oversized curve ranges
	ErrInvalidRange = errors.New("invalid temperature range")

	// ErrResultOutOfRange is returned when valid inputs overflow to a non-finite rate
	ErrResultOutOfRange = errors.New("result out of range")
)
