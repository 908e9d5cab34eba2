package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kartoza/kinetics-lab/internal/kinetics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	assert.Equal(t, len(builtinProfiles), c.Len())
	assert.Equal(t, DefaultReaction, c.DefaultKey())
	assert.Equal(t, "builtin", c.Source())
	assert.Equal(t, DefaultRanges(), c.Ranges())

	p, err := c.Get("thiosulfate_hcl")
	require.NoError(t, err)
	assert.Equal(t, 1.0e6, p.PreExponentialFactor)
	assert.Equal(t, 60000.0, p.ActivationEnergy)
	assert.Equal(t, 1, p.Order)
}

func TestListIsSortedByKey(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	list := c.List()
	require.Len(t, list, c.Len())
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Key, list[i].Key)
	}
}

func TestGetUnknown(t *testing.T) {
	c, err := Builtin()
	require.NoError(t, err)

	_, err = c.Get("phlogiston")
	assert.ErrorIs(t, err, ErrUnknownReaction)
}

func TestNewRejectsBadInput(t *testing.T) {
	good := kinetics.ReactionProfile{Key: "a", Name: "A", PreExponentialFactor: 1, ActivationEnergy: 1, Order: 1}

	tests := []struct {
		name       string
		profiles   []kinetics.ReactionProfile
		defaultKey string
		ranges     Ranges
	}{
		{"empty", nil, "", DefaultRanges()},
		{"missing key", []kinetics.ReactionProfile{{Name: "A", PreExponentialFactor: 1, ActivationEnergy: 1}}, "", DefaultRanges()},
		{"duplicate key", []kinetics.ReactionProfile{good, good}, "", DefaultRanges()},
		{"bad profile", []kinetics.ReactionProfile{{Key: "a", Name: "A", ActivationEnergy: 1}}, "", DefaultRanges()},
		{"unknown default", []kinetics.ReactionProfile{good}, "b", DefaultRanges()},
		{"inverted slider", []kinetics.ReactionProfile{good}, "", Ranges{
			Temperature:   Slider{Min: 100, Max: 0, Step: 1, Default: 50},
			Concentration: DefaultRanges().Concentration,
		}},
		{"below absolute zero", []kinetics.ReactionProfile{good}, "", Ranges{
			Temperature:   Slider{Min: -300, Max: 0, Step: 1, Default: -10},
			Concentration: DefaultRanges().Concentration,
		}},
		{"default outside slider", []kinetics.ReactionProfile{good}, "", Ranges{
			Temperature:   Slider{Min: 0, Max: 100, Step: 1, Default: 120},
			Concentration: DefaultRanges().Concentration,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.profiles, tt.defaultKey, tt.ranges)
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestNewDefaultsToFirstKey(t *testing.T) {
	profiles := []kinetics.ReactionProfile{
		{Key: "zeta", Name: "Z", PreExponentialFactor: 1, ActivationEnergy: 1, Order: 1},
		{Key: "alpha", Name: "A", PreExponentialFactor: 1, ActivationEnergy: 1, Order: 1},
	}

	c, err := New(profiles, "", ClassroomRanges())
	require.NoError(t, err)
	assert.Equal(t, "alpha", c.DefaultKey())
}

const testYAML = `
default: slow
ranges:
  temperature: {min: 0, max: 100, step: 1, default: 25}
  concentration: {min: 0.01, max: 0.5, step: 0.01, default: 0.1}
reactions:
  - key: fast
    name: Fast reaction
    pre_exponential_factor: 1.0e9
    activation_energy: 40000
    order: 1
  - key: slow
    name: Slow reaction
    pre_exponential_factor: 1.0e6
    activation_energy: 60000
    order: 2
    equation: "A + B → C"
`

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "slow", c.DefaultKey())
	assert.Equal(t, path, c.Source())
	assert.Equal(t, ClassroomRanges(), c.Ranges())

	p, err := c.Get("slow")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Order)
	assert.Equal(t, "A + B → C", p.Equation)
}

func TestParseYAMLDefaultsRanges(t *testing.T) {
	data := []byte(`
reactions:
  - key: only
    name: Only
    pre_exponential_factor: 2.0
    activation_energy: 1000
    order: 1
`)
	c, err := ParseYAML(data, "inline")
	require.NoError(t, err)
	assert.Equal(t, DefaultRanges(), c.Ranges())
	assert.Equal(t, "only", c.DefaultKey())
}

func TestParseYAMLRejectsMalformed(t *testing.T) {
	_, err := ParseYAML([]byte("reactions: [unterminated"), "inline")
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load("catalog.toml")
	assert.Error(t, err)
}

func TestLoadEmptyPathIsBuiltin(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "builtin", c.Source())
}
