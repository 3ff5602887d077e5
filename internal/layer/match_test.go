// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/attack-layers/internal/attack"
	"github.com/pdiddy/attack-layers/pkg/types"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name    string
		matched []string
		want    string
	}{
		{"none", nil, ""},
		{"single", []string{"Fancy Bear"}, "Fancy Bear"},
		{"two", []string{"Cozy Bear", "Dancing Bear"}, "Cozy Bear (AKA Dancing Bear)"},
		{"three", []string{"A Bear", "B Bear", "C Bear"}, "A Bear (AKA B Bear,C Bear)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.matched))
		})
	}
}

func TestMatchActors_DisplayNames(t *testing.T) {
	kb := attack.NewKnowledgeBase([]types.Object{
		group("intrusion-set--1", "Fancy Bear", "APT28", "Sofacy"),
		group("intrusion-set--2", "Cozy Bear", "Dancing Bear", "APT29"),
	})

	actors := MatchActors(kb, "bear")
	require.Len(t, actors, 2)
	assert.Equal(t, "Fancy Bear", actors[0].DisplayName())
	assert.Equal(t, "Cozy Bear (AKA Dancing Bear)", actors[1].DisplayName())
	assert.Equal(t, []string{"Cozy Bear", "Dancing Bear"}, actors[1].Matched)
}

func TestMatchActors_CaseInsensitive(t *testing.T) {
	kb := attack.NewKnowledgeBase([]types.Object{
		group("intrusion-set--1", "BEARCLAW"),
		group("intrusion-set--2", "UnBearable"),
		group("intrusion-set--3", "Panda"),
	})

	for _, pattern := range []string{"bear", "BEAR", "Bear"} {
		actors := MatchActors(kb, pattern)
		require.Len(t, actors, 2, pattern)
		assert.Equal(t, "intrusion-set--1", actors[0].Object.ID)
		assert.Equal(t, "intrusion-set--2", actors[1].Object.ID)
	}
}

func TestMatchActors_ExcludesDeprecatedAndRevoked(t *testing.T) {
	actors := MatchActors(bearKB(), "bear")

	var ids []string
	for _, a := range actors {
		ids = append(ids, a.Object.ID)
	}
	assert.Equal(t, []string{"intrusion-set--apt28", "intrusion-set--apt29"}, ids)
}

func TestMatchActors_IgnoresOtherTypesAndMissingAliases(t *testing.T) {
	kb := attack.NewKnowledgeBase([]types.Object{
		{Type: types.TypeAttackPattern, ID: "attack-pattern--1", Name: "Bear Trap", Aliases: []string{"Bear Trap"}},
		{Type: "malware", ID: "malware--1", Name: "BearShell", Aliases: []string{"BearShell"}},
		{Type: types.TypeIntrusionSet, ID: "intrusion-set--1", Name: "Teddy Bear"},
	})

	assert.Empty(t, MatchActors(kb, "bear"))
}

func TestMatchActors_PatternIsLiteral(t *testing.T) {
	kb := attack.NewKnowledgeBase([]types.Object{
		group("intrusion-set--1", "Bear.Net"),
		group("intrusion-set--2", "BearXNet"),
	})

	actors := MatchActors(kb, "bear.net")
	require.Len(t, actors, 1)
	assert.Equal(t, "intrusion-set--1", actors[0].Object.ID)
}

func TestMatchActors_UnicodeCaseFolding(t *testing.T) {
	kb := attack.NewKnowledgeBase([]types.Object{
		group("intrusion-set--1", "Σ bear"),
		group("intrusion-set--2", "ΚΑΠΠΑ"),
		group("intrusion-set--3", "Plain"),
	})

	tests := []struct {
		pattern string
		want    []string
	}{
		{"ς", []string{"intrusion-set--1"}},
		{"σ BEAR", []string{"intrusion-set--1"}},
		{"κάππα", nil},
		{"καππα", []string{"intrusion-set--2"}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			var ids []string
			for _, a := range MatchActors(kb, tt.pattern) {
				ids = append(ids, a.Object.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestMatchActors_KelvinSignFoldsToK(t *testing.T) {
	kb := attack.NewKnowledgeBase([]types.Object{
		group("intrusion-set--1", "Kimsuky"),
	})

	// U+212A KELVIN SIGN folds with 'k' and 'K'.
	actors := MatchActors(kb, "\u212aimsuky")
	require.Len(t, actors, 1)
}
