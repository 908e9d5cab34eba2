package catalog

import (
	"fmt"
	"os"

	"github.com/kartoza/kinetics-lab/internal/kinetics"
	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk YAML layout:
//
//	default: thiosulfate_hcl
//	ranges:
//	  temperature: {min: 0, max: 100, step: 1, default: 25}
//	  concentration: {min: 0.01, max: 0.5, step: 0.01, default: 0.1}
//	reactions:
//	  - key: thiosulfate_hcl
//	    name: Sodium thiosulfate + hydrochloric acid
//	    pre_exponential_factor: 1.0e6
//	    activation_energy: 60000
//	    order: 1
type catalogFile struct {
	Default   string                     `yaml:"default"`
	Ranges    *Ranges                    `yaml:"ranges"`
	Reactions []kinetics.ReactionProfile `yaml:"reactions"`
}

// LoadYAML reads a catalog from a YAML file. Ranges default to DefaultRanges
// when the file omits them.
func LoadYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseYAML(data, path)
}

// ParseYAML builds a catalog from YAML bytes; source names it in error messages
func ParseYAML(data []byte, source string) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidCatalog, source, err)
	}

	ranges := DefaultRanges()
	if f.Ranges != nil {
		ranges = *f.Ranges
	}

	c, err := New(f.Reactions, f.Default, ranges)
	if err != nil {
		return nil, err
	}
	c.source = source
	return c, nil
}
