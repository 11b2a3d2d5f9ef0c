// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration structures shared between the CLI
// and the API clients.
package types

import "time"

// HTTPConfig holds shared HTTP settings for clients that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "lexfr/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// LegifranceConfig holds defaults for Légifrance searches.
type LegifranceConfig struct {
	HTTPConfig `yaml:",inline"`

	// PageSize is the default number of results per page (default 10,
	// capped at 100 by the API).
	PageSize int `json:"page_size" yaml:"page_size"`

	// Fund is the default fund to search (default CODE_ETAT).
	Fund string `json:"fund,omitempty" yaml:"fund,omitempty"`

	// Sort is the default result ordering (default PERTINENCE).
	Sort string `json:"sort,omitempty" yaml:"sort,omitempty"`
}

// JudilibreConfig holds defaults for JudiLibre searches.
type JudilibreConfig struct {
	HTTPConfig `yaml:",inline"`

	// PageSize is the default number of results per page (default 10,
	// capped at 50 by the API).
	PageSize int `json:"page_size" yaml:"page_size"`

	// Sort is the default result ordering (default scorepub).
	Sort string `json:"sort,omitempty" yaml:"sort,omitempty"`

	// Order is the default sort direction (default desc).
	Order string `json:"order,omitempty" yaml:"order,omitempty"`
}

// Config groups all client configuration.
type Config struct {
	// Sandbox selects the PISTE sandbox platform instead of production.
	Sandbox bool `json:"sandbox" yaml:"sandbox"`

	// SecretsDir is the directory holding credential files (default
	// .secrets/).
	SecretsDir string `json:"secrets_dir,omitempty" yaml:"secrets_dir,omitempty"`

	Legifrance LegifranceConfig `json:"legifrance" yaml:"legifrance"`
	Judilibre  JudilibreConfig  `json:"judilibre" yaml:"judilibre"`
}
