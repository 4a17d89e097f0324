package tween

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrUnknownPreset is returned by Presets.Params for names that were not
// loaded.
var ErrUnknownPreset = errors.New("tween: unknown preset")

// presetFile is the on-disk layout of a preset document:
//
//	version: 1
//	presets:
//	  pop:
//	    durationOrSpeed: 0.25
//	    ease: OutBack
//	  pulse:
//	    durationOrSpeed: 0.5
//	    loops: -1
//	    pingPong: true
//	    curve: [{t: 0, v: 0}, {t: 0.3, v: 1}, {t: 1, v: 0.8}]
type presetFile struct {
	Version int               `yaml:"version"`
	Presets map[string]Params `yaml:"presets"`
}

// Presets is a named collection of validated Params.
type Presets struct {
	byName map[string]Params
}

// LoadPresets parses a YAML preset document. Every preset is validated; a
// preset that lists a curve uses it unless useCurve is explicitly false.
func LoadPresets(data []byte) (*Presets, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("tween: parse presets: %w", err)
	}
	out := &Presets{byName: make(map[string]Params, len(file.Presets))}
	for name, p := range file.Presets {
		if p.Curve != nil && !p.UseCurve && !explicitUseCurve(data, name) {
			p.UseCurve = true
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		out.byName[name] = p
	}
	return out, nil
}

// LoadPresetsFile reads and parses the preset document at path.
func LoadPresetsFile(path string) (*Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tween: read presets: %w", err)
	}
	return LoadPresets(data)
}

// explicitUseCurve reports whether the named preset sets useCurve itself.
func explicitUseCurve(data []byte, name string) bool {
	var raw struct {
		Presets map[string]map[string]yaml.Node `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return false
	}
	_, ok := raw.Presets[name]["useCurve"]
	return ok
}

// Params returns a copy of the named preset.
func (ps *Presets) Params(name string) (Params, error) {
	p, ok := ps.byName[name]
	if !ok {
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// MustParams is Params for presets known to exist; it panics otherwise.
func (ps *Presets) MustParams(name string) Params {
	p, err := ps.Params(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Names returns the preset names in sorted order.
func (ps *Presets) Names() []string {
	names := make([]string, 0, len(ps.byName))
	for name := range ps.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
