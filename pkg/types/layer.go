// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Layer is an ATT&CK Navigator layer document. Field order matches the order
// in which keys are written to the output file.
type Layer struct {
	Name        string       `json:"name" yaml:"name"`
	Versions    Versions     `json:"versions" yaml:"versions"`
	Description string       `json:"description" yaml:"description"`
	Domain      string       `json:"domain" yaml:"domain"`
	Techniques  []Technique  `json:"techniques" yaml:"techniques"`
	LegendItems []LegendItem `json:"legendItems,omitempty" yaml:"legend_items,omitempty"`

	// Sorting and Gradient are only set on score layers.
	Sorting  int       `json:"sorting,omitempty" yaml:"sorting,omitempty"`
	Gradient *Gradient `json:"gradient,omitempty" yaml:"gradient,omitempty"`
}

// Versions records the layer format and Navigator versions the document targets.
type Versions struct {
	Layer     string `json:"layer" yaml:"layer"`
	Navigator string `json:"navigator" yaml:"navigator"`
}

// Technique is one highlighted technique cell in a layer.
type Technique struct {
	TechniqueID string `json:"techniqueID" yaml:"technique_id"`
	Comment     string `json:"comment" yaml:"comment"`
	Color       string `json:"color,omitempty" yaml:"color,omitempty"`
	Score       int    `json:"score,omitempty" yaml:"score,omitempty"`
}

// SortDescendingScore is the Navigator sorting mode that orders techniques
// by descending score.
const SortDescendingScore = 3

// Gradient maps technique scores onto a color scale.
type Gradient struct {
	Colors   []string `json:"colors" yaml:"colors"`
	MinValue int      `json:"minValue" yaml:"min_value"`
	MaxValue int      `json:"maxValue" yaml:"max_value"`
}

// LegendItem describes one color in the layer legend.
type LegendItem struct {
	Label string `json:"label" yaml:"label"`
	Color string `json:"color" yaml:"color"`
}
