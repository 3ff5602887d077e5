// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layer

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/attack-layers/pkg/types"
)

//go:embed profiles/bear.yaml
var defaultProfileYAML []byte

// Profile holds the static parts of a generated layer: document metadata,
// the alias pattern used to select groups, and how techniques are colored.
//
// A profile without a score section highlights every technique with Color
// and carries a single legend entry. With a score section each technique is
// scored by the number of groups using it and colored through a gradient.
type Profile struct {
	Name        string         `yaml:"name"`
	Versions    types.Versions `yaml:"versions"`
	Description string         `yaml:"description"`
	Domain      string         `yaml:"domain"`
	Pattern     string         `yaml:"pattern"`
	Color       string         `yaml:"color"`
	LegendLabel string         `yaml:"legend_label"`

	// Software also credits a group with the techniques of the malware and
	// tools it uses.
	Software bool `yaml:"software"`

	Score *ScoreProfile `yaml:"score"`
}

// ScoreProfile configures score layers.
type ScoreProfile struct {
	// Colors runs from the lowest score to the highest.
	Colors []string `yaml:"colors"`
}

// DefaultProfile returns the built-in "*Bear APTs" profile.
func DefaultProfile() Profile {
	p, err := ParseProfile(defaultProfileYAML)
	if err != nil {
		panic(fmt.Sprintf("built-in profile: %v", err))
	}
	return p
}

// ParseProfile decodes a YAML profile and checks required fields.
func ParseProfile(data []byte) (Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parsing profile: %w", err)
	}
	if err := p.validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// LoadProfile reads a YAML profile from path. An empty path returns the
// built-in profile.
func LoadProfile(path string) (Profile, error) {
	if path == "" {
		return DefaultProfile(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile %s: %w", path, err)
	}
	p, err := ParseProfile(data)
	if err != nil {
		return Profile{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func (p Profile) validate() error {
	switch {
	case p.Name == "":
		return errors.New("profile: missing required field 'name'")
	case p.Domain == "":
		return errors.New("profile: missing required field 'domain'")
	case p.Pattern == "":
		return errors.New("profile: missing required field 'pattern'")
	case p.Score == nil && p.Color == "":
		return errors.New("profile: missing required field 'color'")
	case p.Score != nil && len(p.Score.Colors) < 2:
		return errors.New("profile: score.colors needs at least two colors")
	}
	return nil
}
