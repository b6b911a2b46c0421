// Package texmap holds the celestial body name to texture path table used when
// patching the solar system data file.
package texmap

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Load for files that are neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported mapping file format")

// Mapping maps a celestial body name to a texture path relative to the assets directory.
type Mapping map[string]string

var defaults = Mapping{
	// Stars
	"Sol": "textures/celestial/stars/sun_2k.jpg",

	// Planets
	"Mercury": "textures/celestial/planets/mercury_2k.jpg",
	"Venus":   "textures/celestial/planets/venus_atmosphere_2k.jpg",
	"Earth":   "textures/celestial/planets/earth_2k.jpg",
	"Mars":    "textures/celestial/planets/mars_2k.jpg",
	"Jupiter": "textures/celestial/planets/jupiter_2k.jpg",
	"Saturn":  "textures/celestial/planets/saturn_2k.jpg",
	"Uranus":  "textures/celestial/planets/uranus_2k.jpg",
	"Neptune": "textures/celestial/planets/neptune_2k.jpg",

	// Dwarf planets
	"Pluto": "textures/celestial/planets/pluto_1k.jpg",
	"Ceres": "textures/celestial/planets/ceres_1k.jpg",
	"Eris":  "textures/celestial/planets/eris_1k.jpg",

	"Moon": "textures/celestial/moons/moon_2k.jpg",

	// Galilean moons
	"Io":       "textures/celestial/moons/io_1k.jpg",
	"Europa":   "textures/celestial/moons/europa_1k.jpg",
	"Ganymede": "textures/celestial/moons/ganymede_1k.jpg",
	"Callisto": "textures/celestial/moons/callisto_1k.jpg",

	// Saturn
	"Titan":     "textures/celestial/moons/titan_1k.jpg",
	"Rhea":      "textures/celestial/moons/rhea_1k.jpg",
	"Iapetus":   "textures/celestial/moons/iapetus_1k.jpg",
	"Dione":     "textures/celestial/moons/dione_1k.jpg",
	"Tethys":    "textures/celestial/moons/tethys_1k.jpg",
	"Enceladus": "textures/celestial/moons/enceladus_1k.jpg",
}

// Default returns a copy of the built-in mapping.
func Default() Mapping {
	return maps.Clone(defaults)
}

// Merge returns a new mapping containing base overlaid with overlay.
func Merge(base, overlay Mapping) Mapping {
	out := make(Mapping, len(base)+len(overlay))
	maps.Copy(out, base)
	maps.Copy(out, overlay)
	return out
}

// Names returns the body names in sorted order.
func (m Mapping) Names() []string {
	return slices.Sorted(maps.Keys(m))
}

// Lookup returns the texture path for name.
func (m Mapping) Lookup(name string) (string, bool) {
	p, ok := m[name]
	return p, ok
}

// Load reads a mapping file from fs. YAML (.yaml, .yml) and JSON (.json) are
// accepted. If selector is non-empty it is a JSONPath expression naming the
// object that holds the table, e.g. "$.textures".
func Load(fs billy.Filesystem, path, selector string) (Mapping, error) {
	data, err := util.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read mapping %s: %w", path, err)
	}

	var doc any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml %s: %w", path, err)
		}
	case ".json":
		doc, err = oj.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("decode json %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if selector != "" {
		doc, err = selectTable(doc, selector)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	return fromDocument(doc)
}

func selectTable(doc any, selector string) (any, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", selector, err)
	}
	results := x.Get(doc)
	switch len(results) {
	case 0:
		return nil, fmt.Errorf("jsonpath '%s' matched nothing", selector)
	case 1:
		return results[0], nil
	default:
		return nil, fmt.Errorf("jsonpath '%s' matched %d values, want 1", selector, len(results))
	}
}

func fromDocument(doc any) (Mapping, error) {
	table, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("mapping must be an object of name to path, got %T", doc)
	}
	out := make(Mapping, len(table))
	for name, v := range table {
		p, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("texture path for %q must be a string, got %T", name, v)
		}
		out[name] = p
	}
	return out, nil
}
