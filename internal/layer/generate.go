// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package layer

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/attack-layers/internal/attack"
	"github.com/pdiddy/attack-layers/pkg/types"
)

// DefaultOutput is the layer file written when no output path is given.
const DefaultOutput = "Bear_APT.json"

// Summary reports the outcome of a generation run.
type Summary struct {
	Groups     int
	Techniques int
	Output     string
}

// Generate runs the full pipeline: load the profile, fetch and index the
// bundle, match groups, collect their techniques, and write the layer. No
// file is written unless every earlier stage succeeds.
func Generate(ctx context.Context, client *http.Client, cfg types.GeneratorConfig, w io.Writer) (Summary, error) {
	profile, err := LoadProfile(cfg.ProfilePath)
	if err != nil {
		return Summary{}, types.NewStageError("profile", types.KindSchema, err)
	}
	if cfg.Pattern != "" {
		profile.Pattern = cfg.Pattern
	}
	output := cfg.Output
	if output == "" {
		output = DefaultOutput
	}

	kb, err := attack.Fetch(ctx, client, cfg.Source, w)
	if err != nil {
		return Summary{}, err
	}

	doc, groups, err := Build(kb, profile)
	if err != nil {
		return Summary{}, err
	}
	fmt.Fprintf(w, "matched %d group(s) on %q, %d technique(s)\n", groups, profile.Pattern, len(doc.Techniques))

	if err := Write(output, doc, w); err != nil {
		return Summary{}, err
	}
	return Summary{Groups: groups, Techniques: len(doc.Techniques), Output: output}, nil
}

// Build runs the in-memory stages against an already indexed knowledge base
// and returns the rendered layer with the number of matched groups.
func Build(kb *attack.KnowledgeBase, p Profile) (types.Layer, int, error) {
	actors := MatchActors(kb, p.Pattern)
	usage, err := TechniquesUsed(kb, actors, p.Software)
	if err != nil {
		return types.Layer{}, 0, err
	}
	return Render(p, usage), len(actors), nil
}
