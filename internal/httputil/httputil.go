// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the API clients. Requests
// are executed exactly once; failures are classified into the error kinds in
// package apierr rather than retried.
package httputil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pdiddy/lexfr/internal/apierr"
)

// maxErrorBody caps how much of an error response body is kept for
// diagnostics.
const maxErrorBody = 2048

// Do executes req once. A network-level failure becomes a TransportError
// tagged with op. An HTTP 401 becomes an AuthError; any other non-2xx status
// becomes an UpstreamError. On success the response is returned with its
// body unread.
func Do(client *http.Client, req *http.Request, op string) (*http.Response, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, &apierr.TransportError{Op: op, Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	body := readErrorBody(resp)
	resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, &apierr.AuthError{Status: resp.StatusCode, Body: body}
	}
	return nil, &apierr.UpstreamError{Status: resp.StatusCode, Body: body}
}

// DoJSON executes req via Do and decodes the response body into out.
func DoJSON(client *http.Client, req *http.Request, op string, out any) error {
	resp, err := Do(client, req, op)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing %s response: %w", op, err)
	}
	return nil
}

// DoText executes req via Do and returns the trimmed response body.
func DoText(client *http.Client, req *http.Request, op string) (string, error) {
	resp, err := Do(client, req, op)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return "", fmt.Errorf("reading %s response: %w", op, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func readErrorBody(resp *http.Response) string {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
