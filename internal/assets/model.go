// Package assets loads model descriptors asynchronously.
package assets

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Model is a loaded model descriptor: how an entity is drawn and which
// animation clips it provides.
type Model struct {
	Name    string   `yaml:"name"`
	Glyph   string   `yaml:"glyph"`
	Color   string   `yaml:"color"`
	Scale   float32  `yaml:"scale"`
	YOffset float32  `yaml:"y_offset"` // Added to the entity center to get the model base
	Width   float32  `yaml:"width"`    // World-space footprint, before Scale
	Depth   float32  `yaml:"depth"`
	Surface bool     `yaml:"surface"` // Drawn as the track texture instead of an entity
	Clips   []string `yaml:"clips"`
}

// Footprint returns the scaled world-space width and depth.
func (m *Model) Footprint() (w, d float32) {
	return m.Width * m.Scale, m.Depth * m.Scale
}

// Rune returns the first rune of Glyph, or '?' when unset.
func (m *Model) Rune() rune {
	for _, r := range m.Glyph {
		return r
	}
	return '?'
}

// Parse decodes a model descriptor.
func Parse(data []byte) (*Model, error) {
	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: failed to parse model: %w", err)
	}
	if m.Name == "" {
		return nil, fmt.Errorf("assets: model has no name")
	}
	if m.Scale == 0 {
		m.Scale = 1
	}
	return &m, nil
}
