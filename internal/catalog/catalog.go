// Package catalog holds the static table of reaction profiles the app
// offers, together with the slider ranges of the deployment. A catalog is
// built once at startup from the built-in table, a YAML file or a SQLite
// database, and is read-only afterwards.
package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/kartoza/kinetics-lab/internal/kinetics"
)

var (
	// ErrUnknownReaction is returned when a key is not in the catalog
	ErrUnknownReaction = errors.New("unknown reaction")

	// ErrInvalidCatalog is returned when a catalog source fails validation
	ErrInvalidCatalog = errors.New("invalid catalog")
)

var validate = validator.New()

// Slider describes one presentation slider
type Slider struct {
	Min     float64 `json:"min" yaml:"min"`
	Max     float64 `json:"max" yaml:"max" validate:"gtfield=Min"`
	Step    float64 `json:"step" yaml:"step" validate:"gt=0"`
	Default float64 `json:"default" yaml:"default" validate:"gtefield=Min,ltefield=Max"`
}

// Ranges holds the slider configuration of a deployment
type Ranges struct {
	Temperature   Slider `json:"temperature" yaml:"temperature"`
	Concentration Slider `json:"concentration" yaml:"concentration"`
}

// TemperatureRange returns the temperature slider as a curve sampling range
func (r Ranges) TemperatureRange() kinetics.Range {
	return kinetics.Range{Min: r.Temperature.Min, Max: r.Temperature.Max, Step: r.Temperature.Step}
}

// Validate checks both sliders and that the temperature slider stays above absolute zero
func (r Ranges) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: ranges: %s", ErrInvalidCatalog, err)
	}
	if r.Temperature.Min <= -kinetics.KelvinOffset {
		return fmt.Errorf("%w: temperature slider starts at or below absolute zero", ErrInvalidCatalog)
	}
	if r.Concentration.Min < 0 {
		return fmt.Errorf("%w: concentration slider starts below zero", ErrInvalidCatalog)
	}
	if n := r.TemperatureRange().Len(); n > kinetics.MaxCurvePoints {
		return fmt.Errorf("%w: temperature slider spans %d samples", ErrInvalidCatalog, n)
	}
	return nil
}

// Catalog is the read-only set of reaction profiles
type Catalog struct {
	profiles   map[string]kinetics.ReactionProfile
	keys       []string
	defaultKey string
	ranges     Ranges
	source     string
	mu         sync.RWMutex
}

// New validates the profiles and builds a catalog. The default key falls back
// to the first profile in key order when empty.
func New(profiles []kinetics.ReactionProfile, defaultKey string, ranges Ranges) (*Catalog, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: no reactions defined", ErrInvalidCatalog)
	}
	if err := ranges.Validate(); err != nil {
		return nil, err
	}

	c := &Catalog{
		profiles: make(map[string]kinetics.ReactionProfile, len(profiles)),
		ranges:   ranges,
		source:   "builtin",
	}

	for _, p := range profiles {
		p.Key = strings.TrimSpace(p.Key)
		if p.Key == "" {
			return nil, fmt.Errorf("%w: reaction %q has no key", ErrInvalidCatalog, p.Name)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidCatalog, p.Key, err)
		}
		if _, exists := c.profiles[p.Key]; exists {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidCatalog, p.Key)
		}
		c.profiles[p.Key] = p
		c.keys = append(c.keys, p.Key)
	}
	sort.Strings(c.keys)

	if defaultKey == "" {
		defaultKey = c.keys[0]
	}
	if _, ok := c.profiles[defaultKey]; !ok {
		return nil, fmt.Errorf("%w: default reaction %q is not defined", ErrInvalidCatalog, defaultKey)
	}
	c.defaultKey = defaultKey

	return c, nil
}

// Load builds a catalog from a file, choosing the reader by extension.
// An empty path yields the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Builtin()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(path)
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", path)
	}
}

// Get returns the profile stored under key
func (c *Catalog) Get(key string) (kinetics.ReactionProfile, error) {
	c.mu.RLock()
	p, ok := c.profiles[key]
	c.mu.RUnlock()

	if !ok {
		return kinetics.ReactionProfile{}, fmt.Errorf("%w: %s", ErrUnknownReaction, key)
	}
	return p, nil
}

// List returns all profiles ordered by key
func (c *Catalog) List() []kinetics.ReactionProfile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]kinetics.ReactionProfile, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, c.profiles[k])
	}
	return out
}

// Len returns the number of profiles
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.keys)
}

// DefaultKey returns the key preselected in the UI
func (c *Catalog) DefaultKey() string {
	return c.defaultKey
}

// Ranges returns the slider configuration
func (c *Catalog) Ranges() Ranges {
	return c.ranges
}

// Source describes where the catalog was loaded from
func (c *Catalog) Source() string {
	return c.source
}
