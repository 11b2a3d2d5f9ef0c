// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package piste handles authentication against the PISTE platform: loading
// OAuth client credentials and exchanging them for bearer tokens.
package piste

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/pdiddy/lexfr/internal/apierr"
	"github.com/pdiddy/lexfr/internal/secrets"
)

// Environment selects between the PISTE production and sandbox platforms.
// The two use separate OAuth applications, so credentials are not
// interchangeable.
type Environment string

const (
	Production Environment = "production"
	Sandbox    Environment = "sandbox"
)

// Endpoints holds the OAuth token URL and the API gateway base URL for an
// environment.
type Endpoints struct {
	TokenURL string
	BaseURL  string
}

// Endpoints returns the PISTE endpoints for the environment.
func (e Environment) Endpoints() Endpoints {
	if e == Sandbox {
		return Endpoints{
			TokenURL: "https://sandbox-oauth.piste.gouv.fr/api/oauth/token",
			BaseURL:  "https://sandbox-api.piste.gouv.fr",
		}
	}
	return Endpoints{
		TokenURL: "https://oauth.piste.gouv.fr/api/oauth/token",
		BaseURL:  "https://api.piste.gouv.fr",
	}
}

// credentialVars returns the environment variable names holding the client
// credentials for the environment.
func (e Environment) credentialVars() (idVar, secretVar string) {
	if e == Sandbox {
		return "PISTE_SANDBOX_CLIENT_ID", "PISTE_SANDBOX_CLIENT_SECRET"
	}
	return "PISTE_CLIENT_ID", "PISTE_CLIENT_SECRET"
}

// Credentials is an OAuth client id/secret pair registered on PISTE.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// LoadCredentials resolves credentials for the environment. Environment
// variables win; a .env file in the working directory is loaded first so it
// can populate them; the secrets directory is the fallback. Missing
// credentials produce a ConfigError naming the variables that were checked.
func LoadCredentials(env Environment, secretsDir string) (Credentials, error) {
	// Best effort: absent .env files are fine.
	_ = godotenv.Load()

	idVar, secretVar := env.credentialVars()
	creds := Credentials{
		ClientID:     os.Getenv(idVar),
		ClientSecret: os.Getenv(secretVar),
	}

	if creds.ClientID == "" || creds.ClientSecret == "" {
		stored, err := secrets.Load(secretsDir)
		if err != nil {
			return Credentials{}, err
		}
		if creds.ClientID == "" {
			creds.ClientID = stored[secrets.Key(idVar)]
		}
		if creds.ClientSecret == "" {
			creds.ClientSecret = stored[secrets.Key(secretVar)]
		}
	}

	if creds.ClientID == "" || creds.ClientSecret == "" {
		return Credentials{}, &apierr.ConfigError{
			Reason: "missing PISTE client credentials for " + string(env),
			Vars:   []string{idVar, secretVar},
		}
	}
	return creds, nil
}
