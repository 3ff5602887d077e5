// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layer builds ATT&CK Navigator layers from an indexed knowledge
// base: it selects groups by alias pattern, collects the techniques they use,
// and renders and writes the layer document.
package layer

import (
	"slices"
	"strings"
	"unicode"

	"github.com/pdiddy/attack-layers/internal/attack"
	"github.com/pdiddy/attack-layers/pkg/types"
)

// Actor is a matched group together with the aliases that matched.
type Actor struct {
	Object  types.Object
	Matched []string
}

// DisplayName returns the name used for this actor in technique comments.
func (a Actor) DisplayName() string {
	return DisplayName(a.Matched)
}

// DisplayName formats matched aliases as the first alias, followed by
// " (AKA b,c)" when more than one alias matched.
func DisplayName(matched []string) string {
	if len(matched) == 0 {
		return ""
	}
	name := matched[0]
	if len(matched) > 1 {
		name += " (AKA " + strings.Join(matched[1:], ",") + ")"
	}
	return name
}

// MatchActors returns, in bundle order, the non-excluded intrusion sets with
// at least one alias containing pattern. Matching uses Unicode simple case
// folding, so "ς", "σ" and "Σ" all match one another.
func MatchActors(kb *attack.KnowledgeBase, pattern string) []Actor {
	needle := fold(pattern)
	var actors []Actor
	for _, o := range kb.ObjectsOfType(types.TypeIntrusionSet) {
		if o.Excluded() {
			continue
		}
		if matched := matchAliases(o.Aliases, needle); len(matched) > 0 {
			actors = append(actors, Actor{Object: o, Matched: matched})
		}
	}
	return actors
}

// matchAliases returns the aliases containing needle, which must already be
// folded.
func matchAliases(aliases []string, needle []rune) []string {
	var matched []string
	for _, alias := range aliases {
		if containsRunes(fold(alias), needle) {
			matched = append(matched, alias)
		}
	}
	return matched
}

// fold maps every rune of s to the smallest rune of its case-folding orbit.
func fold(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, foldRune(r))
	}
	return out
}

func foldRune(r rune) rune {
	lo := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < lo {
			lo = f
		}
	}
	return lo
}

func containsRunes(s, sub []rune) bool {
	for i := 0; i+len(sub) <= len(s); i++ {
		if slices.Equal(s[i:i+len(sub)], sub) {
			return true
		}
	}
	return false
}
