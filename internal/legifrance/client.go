// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package legifrance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/lexfr/internal/apierr"
	"github.com/pdiddy/lexfr/internal/httputil"
	"github.com/pdiddy/lexfr/internal/piste"
	"github.com/pdiddy/lexfr/internal/prune"
)

// apiPath is the Légifrance application path on the PISTE gateway.
const apiPath = "/dila/legifrance/lf-engine-app"

// Client calls the Légifrance API. BaseURL is the PISTE gateway root;
// tests point it at an httptest server.
type Client struct {
	HTTP      *http.Client
	BaseURL   string
	Tokens    *piste.TokenSource
	UserAgent string
}

// Search runs a full-text search and returns summarized results.
func (c *Client) Search(ctx context.Context, opts SearchOptions) ([]ArticleSummary, error) {
	reqBody, err := BuildSearchRequest(opts)
	if err != nil {
		return nil, err
	}

	var sr searchResponse
	if err := c.post(ctx, "/search", reqBody, "Légifrance search", &sr); err != nil {
		return nil, err
	}
	return summarize(sr), nil
}

// consultRoutes maps document id prefixes to the consult endpoint and the
// JSON key carrying the id. Ids without a known prefix are treated as JORF
// container ids.
var consultRoutes = []struct {
	prefix   string
	path     string
	paramKey string
}{
	{"LEGIARTI", "/consult/getArticle", "id"},
	{"LEGITEXT", "/consult/legiPart", "textId"},
	{"JURITEXT", "/consult/juri", "textId"},
	{"CNILTEXT", "/consult/cnil", "textId"},
	{"KALITEXT", "/consult/kaliText", "id"},
	{"KALIARTI", "/consult/kaliArticle", "id"},
	{"ACCOTEXT", "/consult/acco", "id"},
}

// Consult fetches a single text or article by its Légifrance id. The id
// prefix selects the consult endpoint. The response is returned as a pruned
// JSON document.
func (c *Client) Consult(ctx context.Context, id string) (map[string]any, error) {
	if id == "" {
		return nil, apierr.Validation("id", "document id is required")
	}

	path, paramKey := "/consult/jorf", "textCid"
	for _, route := range consultRoutes {
		if strings.HasPrefix(id, route.prefix) {
			path, paramKey = route.path, route.paramKey
			break
		}
	}

	var doc map[string]any
	if err := c.post(ctx, path, map[string]string{paramKey: id}, "Légifrance consult", &doc); err != nil {
		return nil, err
	}
	return prune.Map(doc), nil
}

// Ping checks connectivity and authentication against the search
// application.
func (c *Client) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/search/ping", nil)
	if err != nil {
		return err
	}
	body, err := httputil.DoText(c.HTTP, req, "Légifrance ping")
	if err != nil {
		return err
	}
	if body != "pong" {
		return fmt.Errorf("unexpected ping response %q", body)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload any, op string, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", op, err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return httputil.DoJSON(c.HTTP, req, op, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body *bytes.Reader) (*http.Request, error) {
	url := c.BaseURL + apiPath + path
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, url, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, url, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if err := c.Tokens.Authorize(req); err != nil {
		return nil, err
	}
	return req, nil
}
