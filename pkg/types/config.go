// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "attack-layers/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SourceConfig holds settings for the fetch stage.
type SourceConfig struct {
	HTTPConfig `yaml:",inline"`

	// URL is the location of the STIX bundle.
	URL string `json:"url" yaml:"url"`
}

// GeneratorConfig groups everything a single layer generation run needs.
type GeneratorConfig struct {
	Source SourceConfig `json:"source" yaml:"source"`

	// ProfilePath names a YAML layer profile. Empty selects the built-in profile.
	ProfilePath string `json:"profile" yaml:"profile"`

	// Pattern overrides the profile's alias pattern when non-empty.
	Pattern string `json:"pattern" yaml:"pattern"`

	// Output is the destination path of the layer file.
	Output string `json:"output" yaml:"output"`
}
