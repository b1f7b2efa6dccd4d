// Package catalog holds the accessibility feature table shown by the app.
//
// The table is data, not code: the default ships embedded as TOML and a
// replacement file can be supplied through configuration.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed features.toml
var defaultTOML string

// ErrUnknownFeature is returned by Get when the id is not in the catalog.
var ErrUnknownFeature = errors.New("unknown feature")

type featureRecord struct {
	ID               string   `toml:"id"`
	Name             string   `toml:"name"`
	Icon             string   `toml:"icon"`
	Glyph            string   `toml:"glyph"`
	ShortDescription string   `toml:"short_description"`
	FullDescription  string   `toml:"full_description"`
	Platforms        []string `toml:"platforms"`
	Color            string   `toml:"color"`
	Category         string   `toml:"category"`
	ActivationSteps  []string `toml:"activation_steps"`
}

type catalogFile struct {
	Version int             `toml:"version"`
	Feature []featureRecord `toml:"feature"`
}

// Catalog is an immutable, ordered feature table.
type Catalog struct {
	features []Feature
	byID     map[FeatureID]int
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	c, err := Parse(defaultTOML)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return c, nil
}

// Load reads a catalog file. An empty path yields the embedded catalog.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a TOML catalog document.
func Parse(doc string) (*Catalog, error) {
	var raw catalogFile
	meta, err := toml.Decode(doc, &raw)
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown catalog keys: %s", strings.Join(keys, ", "))
	}
	if raw.Version != 1 {
		return nil, fmt.Errorf("unsupported catalog version %d", raw.Version)
	}

	c := &Catalog{
		features: make([]Feature, 0, len(raw.Feature)),
		byID:     make(map[FeatureID]int, len(raw.Feature)),
	}
	for i, rec := range raw.Feature {
		f, err := rec.feature()
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i+1, err)
		}
		if _, dup := c.byID[f.ID]; dup {
			return nil, fmt.Errorf("feature %d: duplicate id %q", i+1, f.ID)
		}
		c.byID[f.ID] = len(c.features)
		c.features = append(c.features, f)
	}
	return c, nil
}

func (r featureRecord) feature() (Feature, error) {
	id := FeatureID(strings.TrimSpace(r.ID))
	if id == "" {
		return Feature{}, errors.New("missing id")
	}
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return Feature{}, fmt.Errorf("%s: missing name", id)
	}
	cat := Category(strings.TrimSpace(r.Category))
	if !cat.Valid() {
		return Feature{}, fmt.Errorf("%s: unknown category %q", id, r.Category)
	}
	platforms := make([]Platform, 0, len(r.Platforms))
	for _, p := range r.Platforms {
		platform := Platform(strings.TrimSpace(p))
		if !platform.Valid() {
			return Feature{}, fmt.Errorf("%s: unknown platform %q", id, p)
		}
		platforms = append(platforms, platform)
	}
	steps := make([]string, 0, len(r.ActivationSteps))
	for _, s := range r.ActivationSteps {
		if s = strings.TrimSpace(s); s != "" {
			steps = append(steps, s)
		}
	}
	color := strings.TrimSpace(r.Color)
	if color == "" {
		color = cat.Color()
	}
	return Feature{
		ID:               id,
		Name:             name,
		Icon:             strings.TrimSpace(r.Icon),
		Glyph:            strings.TrimSpace(r.Glyph),
		ShortDescription: strings.TrimSpace(r.ShortDescription),
		FullDescription:  strings.TrimSpace(r.FullDescription),
		Platforms:        platforms,
		Color:            color,
		ActivationSteps:  steps,
		Category:         cat,
	}, nil
}

// All returns every feature in catalog order.
func (c *Catalog) All() []Feature {
	return append([]Feature(nil), c.features...)
}

func (c *Catalog) Len() int {
	return len(c.features)
}

func (c *Catalog) Lookup(id FeatureID) (Feature, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Feature{}, false
	}
	return c.features[i], true
}

// Get is Lookup with an error for command line callers.
func (c *Catalog) Get(id string) (Feature, error) {
	f, ok := c.Lookup(FeatureID(strings.TrimSpace(id)))
	if !ok {
		return Feature{}, fmt.Errorf("%w: %q", ErrUnknownFeature, id)
	}
	return f, nil
}
