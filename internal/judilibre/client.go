// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package judilibre

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pdiddy/lexfr/internal/apierr"
	"github.com/pdiddy/lexfr/internal/httputil"
	"github.com/pdiddy/lexfr/internal/piste"
	"github.com/pdiddy/lexfr/internal/prune"
)

// apiPath is the JudiLibre application path on the PISTE gateway.
const apiPath = "/cassation/judilibre/v1.0"

// Client calls the JudiLibre API. BaseURL is the PISTE gateway root; tests
// point it at an httptest server.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	Tokens    *piste.TokenSource
	UserAgent string
}

// Search queries decisions and returns the pruned result entries.
func (c *Client) Search(ctx context.Context, opts SearchOptions) ([]any, error) {
	params, err := opts.Values()
	if err != nil {
		return nil, err
	}

	var page map[string]any
	if err := c.get(ctx, "/search?"+params.Encode(), "JudiLibre search", &page); err != nil {
		return nil, err
	}

	// The endpoint wraps entries under "results".
	if results, ok := prune.Map(page)["results"].([]any); ok {
		return results, nil
	}
	return []any{prune.Map(page)}, nil
}

// Decision fetches one decision by id as a pruned JSON document. A
// non-empty query highlights matching passages in the decision text.
func (c *Client) Decision(ctx context.Context, id, query, operator string) (map[string]any, error) {
	if id == "" {
		return nil, apierr.Validation("id", "decision id is required")
	}
	params, err := decisionParams(id, query, operator)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := c.get(ctx, "/decision?"+params.Encode(), "JudiLibre decision", &doc); err != nil {
		return nil, err
	}
	return prune.Map(doc), nil
}

// Taxonomy answers vocabulary lookups. An empty query returns the static
// catalog of taxonomy ids without touching the network.
func (c *Client) Taxonomy(ctx context.Context, q TaxonomyQuery) (any, error) {
	if q.IsEmpty() {
		return TaxonomyIDs, nil
	}
	params, err := q.Values()
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err := c.get(ctx, "/taxonomy?"+params.Encode(), "JudiLibre taxonomy", &doc); err != nil {
		return nil, err
	}

	// The endpoint wraps the payload under "result".
	pruned := prune.Map(doc)
	if result, ok := pruned["result"]; ok {
		return result, nil
	}
	return pruned, nil
}

func (c *Client) get(ctx context.Context, pathAndQuery, op string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+apiPath+pathAndQuery, nil)
	if err != nil {
		return err
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if err := c.Tokens.Authorize(req); err != nil {
		return err
	}
	return httputil.DoJSON(c.HTTP, req, op, out)
}

func decisionParams(id, query, operator string) (url.Values, error) {
	params := url.Values{
		"id":                 {id},
		"resolve_references": {"true"},
	}
	if query != "" {
		op, err := pickEnum("operator", operator, "or", QueryOperators)
		if err != nil {
			return nil, err
		}
		params.Set("query", query)
		params.Set("operator", op)
	}
	return params, nil
}
