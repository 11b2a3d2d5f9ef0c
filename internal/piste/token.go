// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package piste

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pdiddy/lexfr/internal/apierr"
	"github.com/pdiddy/lexfr/internal/httputil"
)

// tokenExpiryMargin is subtracted from the advertised token lifetime so a
// token is refreshed before it can expire mid-request.
const tokenExpiryMargin = 60 * time.Second

// defaultTokenLifetime is assumed when the token endpoint omits expires_in.
const defaultTokenLifetime = 3600 * time.Second

// TokenSource exchanges client credentials for bearer tokens and caches the
// result until shortly before expiry. It is safe for concurrent use; when
// the cached token has lapsed exactly one caller performs the exchange while
// the others wait.
type TokenSource struct {
	client   *http.Client
	tokenURL string
	creds    Credentials

	now func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// NewTokenSource returns a TokenSource exchanging creds at tokenURL.
func NewTokenSource(client *http.Client, tokenURL string, creds Credentials) *TokenSource {
	return &TokenSource{
		client:   client,
		tokenURL: tokenURL,
		creds:    creds,
		now:      time.Now,
	}
}

// Token returns a valid bearer token, exchanging credentials only when no
// cached token remains valid.
func (s *TokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.now().Before(s.expiry) {
		return s.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {s.creds.ClientID},
		"client_secret": {s.creds.ClientSecret},
		"scope":         {"openid"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var tr tokenResponse
	if err := httputil.DoJSON(s.client, req, "token request", &tr); err != nil {
		// The OAuth endpoint signals bad credentials with 400 as well as 401.
		var upErr *apierr.UpstreamError
		if errors.As(err, &upErr) {
			return "", &apierr.AuthError{Status: upErr.Status, Body: upErr.Body}
		}
		return "", err
	}
	if tr.AccessToken == "" {
		return "", &apierr.AuthError{Status: http.StatusOK, Body: "token endpoint returned no access_token"}
	}

	lifetime := defaultTokenLifetime
	if tr.ExpiresIn > 0 {
		lifetime = time.Duration(tr.ExpiresIn) * time.Second
	}

	s.token = tr.AccessToken
	s.expiry = s.now().Add(lifetime - tokenExpiryMargin)
	return s.token, nil
}

// Authorize sets the Authorization header on req using a token from the
// source.
func (s *TokenSource) Authorize(req *http.Request) error {
	token, err := s.Token(req.Context())
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
