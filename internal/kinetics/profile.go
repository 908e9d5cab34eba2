package kinetics

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ReactionProfile holds the kinetic parameters of a single reaction.
// Profiles are values: once built they are never mutated.
type ReactionProfile struct {
	Key                  string  `json:"key" yaml:"key" validate:"omitempty,max=64"`
	Name                 string  `json:"name" yaml:"name" validate:"required,max=200"`
	PreExponentialFactor float64 `json:"pre_exponential_factor" yaml:"pre_exponential_factor" validate:"gt=0"`
	ActivationEnergy     float64 `json:"activation_energy" yaml:"activation_energy" validate:"gt=0"` // J/mol
	Order                int     `json:"order" yaml:"order" validate:"gte=0"`
	Equation             string  `json:"equation,omitempty" yaml:"equation,omitempty"`
	Description          string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// Validate checks the profile against its data model constraints
func (p ReactionProfile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidProfile, err)
	}
	return nil
}

// Label returns the display name, falling back to the key
func (p ReactionProfile) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Key
}
