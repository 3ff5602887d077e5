// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package attack

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/attack-layers/internal/httputil"
	"github.com/pdiddy/attack-layers/pkg/types"
)

// DefaultURL is the MITRE CTI enterprise ATT&CK bundle.
const DefaultURL = "https://raw.githubusercontent.com/mitre/cti/master/enterprise-attack/enterprise-attack.json"

const stage = "fetch"

// Fetch downloads the STIX bundle at cfg.URL and indexes it. Transport
// failures and non-2xx responses are KindFetch errors; an undecodable body
// or a bundle without an "objects" array is a KindSchema error.
func Fetch(ctx context.Context, client *http.Client, cfg types.SourceConfig, w io.Writer) (*KnowledgeBase, error) {
	url := cfg.URL
	if url == "" {
		url = DefaultURL
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	fmt.Fprintf(w, "fetching: %s\n", url)

	body, err := httputil.Get(ctx, client, url, cfg.UserAgent)
	if err != nil {
		return nil, types.NewStageError(stage, types.KindFetch, err)
	}
	defer body.Close()

	kb, err := Decode(body)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "indexed: %d objects\n", kb.Len())
	return kb, nil
}

// Decode reads a STIX bundle from r and indexes its objects. Read errors
// mid-body are KindFetch; malformed JSON or a missing "objects" array is
// KindSchema.
func Decode(r io.Reader) (*KnowledgeBase, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, types.NewStageError(stage, types.KindFetch, fmt.Errorf("reading response body: %w", err))
	}

	var bundle types.Bundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, types.NewStageError(stage, types.KindSchema, fmt.Errorf("parsing STIX bundle: %w", err))
	}
	if bundle.Objects == nil {
		return nil, types.NewStageError(stage, types.KindSchema, errors.New(`STIX bundle has no "objects" array`))
	}
	return NewKnowledgeBase(*bundle.Objects), nil
}
