// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package apierr defines the error kinds returned by the PISTE API clients.
// Callers distinguish failure classes with errors.As: missing configuration,
// rejected credentials, invalid query parameters, upstream API failures, and
// network-level transport failures.
package apierr

import "fmt"

// ConfigError reports missing or incomplete client configuration, such as
// absent PISTE credentials. Vars lists the environment variables that were
// consulted.
type ConfigError struct {
	Reason string
	Vars   []string
}

func (e *ConfigError) Error() string {
	if len(e.Vars) > 0 {
		return fmt.Sprintf("configuration: %s (checked %v)", e.Reason, e.Vars)
	}
	return "configuration: " + e.Reason
}

// AuthError reports a failed token exchange or a request rejected by the
// upstream service as unauthorized (HTTP 401).
type AuthError struct {
	Status int
	Body   string
}

func (e *AuthError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("authentication failed: HTTP %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("authentication failed: HTTP %d", e.Status)
}

// ValidationError reports a query parameter rejected before any request is
// sent. Param names the offending parameter.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}

// UpstreamError reports a non-success HTTP status from the upstream API
// other than 401. The response body is retained for diagnostics.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("upstream API returned HTTP %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("upstream API returned HTTP %d", e.Status)
}

// TransportError reports a network-level failure: the request never produced
// an HTTP response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Validation is shorthand for constructing a ValidationError.
func Validation(param, format string, args ...any) *ValidationError {
	return &ValidationError{Param: param, Reason: fmt.Sprintf(format, args...)}
}
