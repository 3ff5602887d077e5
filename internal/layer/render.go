// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layer

import (
	"strings"

	"github.com/pdiddy/attack-layers/pkg/types"
)

// Render builds the layer document for usage under profile. Techniques are
// emitted in usage order. A plain profile highlights each technique with the
// profile color; a score profile scores each technique by the number of
// groups using it and adds a gradient spanning the observed scores.
func Render(p Profile, u *Usage) types.Layer {
	l := types.Layer{
		Name:        p.Name,
		Versions:    p.Versions,
		Description: p.Description,
		Domain:      p.Domain,
		Techniques:  make([]types.Technique, 0, u.Len()),
	}

	for _, id := range u.TechniqueIDs() {
		names := u.Names(id)
		t := types.Technique{
			TechniqueID: id,
			Comment:     "used by " + strings.Join(names, ", "),
		}
		if p.Score != nil {
			t.Score = len(names)
		} else {
			t.Color = p.Color
		}
		l.Techniques = append(l.Techniques, t)
	}

	if p.Score == nil {
		l.LegendItems = []types.LegendItem{{Label: p.LegendLabel, Color: p.Color}}
		return l
	}

	l.Sorting = types.SortDescendingScore
	l.Gradient = &types.Gradient{Colors: p.Score.Colors}
	for i, t := range l.Techniques {
		if i == 0 || t.Score < l.Gradient.MinValue {
			l.Gradient.MinValue = t.Score
		}
		if t.Score > l.Gradient.MaxValue {
			l.Gradient.MaxValue = t.Score
		}
	}
	return l
}
