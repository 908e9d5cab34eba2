package catalog

import "github.com/kartoza/kinetics-lab/internal/kinetics"

// DefaultReaction is the key preselected by the built-in catalog
const DefaultReaction = "thiosulfate_hcl"

// ClassroomRanges are the narrow sliders of the single-reaction simulator
func ClassroomRanges() Ranges {
	return Ranges{
		Temperature:   Slider{Min: 0, Max: 100, Step: 1, Default: 25},
		Concentration: Slider{Min: 0.01, Max: 0.5, Step: 0.01, Default: 0.10},
	}
}

// DefaultRanges are the sliders used with the full catalog
func DefaultRanges() Ranges {
	return Ranges{
		Temperature:   Slider{Min: 0, Max: 150, Step: 1, Default: 25},
		Concentration: Slider{Min: 0.01, Max: 2.5, Step: 0.01, Default: 0.10},
	}
}

// Pre-exponential factors and activation energies are estimates fitted
// for teaching, not reference data.
var builtinProfiles = []kinetics.ReactionProfile{
	{
		Key:                  "thiosulfate_hcl",
		Name:                 "Sodium thiosulfate + hydrochloric acid",
		PreExponentialFactor: 1.0e6,
		ActivationEnergy:     60000,
		Order:                1,
		Equation:             "Na₂S₂O₃ + 2HCl → 2NaCl + SO₂ + S + H₂O",
		Description:          "Disappearing-cross experiment; sulfur precipitate clouds the solution.",
	},
	{
		Key:                  "hydrogen_peroxide",
		Name:                 "Hydrogen peroxide decomposition",
		PreExponentialFactor: 1.2e7,
		ActivationEnergy:     75000,
		Order:                1,
		Equation:             "2H₂O₂ → 2H₂O + O₂",
	},
	{
		Key:                  "magnesium_hcl",
		Name:                 "Magnesium + hydrochloric acid",
		PreExponentialFactor: 3.5e5,
		ActivationEnergy:     45000,
		Order:                1,
		Equation:             "Mg + 2HCl → MgCl₂ + H₂",
	},
	{
		Key:                  "calcium_carbonate_hcl",
		Name:                 "Calcium carbonate + hydrochloric acid",
		PreExponentialFactor: 8.0e5,
		ActivationEnergy:     52000,
		Order:                1,
		Equation:             "CaCO₃ + 2HCl → CaCl₂ + CO₂ + H₂O",
	},
	{
		Key:                  "ester_hydrolysis",
		Name:                 "Ethyl acetate saponification",
		PreExponentialFactor: 4.5e8,
		ActivationEnergy:     48000,
		Order:                2,
		Equation:             "CH₃COOC₂H₅ + OH⁻ → CH₃COO⁻ + C₂H₅OH",
	},
}

// Builtin returns the catalog compiled into the binary
func Builtin() (*Catalog, error) {
	profiles := make([]kinetics.ReactionProfile, len(builtinProfiles))
	copy(profiles, builtinProfiles)
	return New(profiles, DefaultReaction, DefaultRanges())
}
