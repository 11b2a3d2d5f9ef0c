// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads PISTE credentials from a directory of plain-text
// files. Each file holds one secret: the filename is the key name and the
// trimmed file contents are the value.
//
// Supported key files: piste-client-id, piste-client-secret,
// piste-sandbox-client-id, piste-sandbox-client-secret.
package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Load reads all files in dir and returns a map of filename to trimmed
// contents. A missing directory is not an error; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	out := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			out[name] = value
		}
	}

	return out, nil
}

// Key translates an environment variable name into the corresponding
// secret filename: PISTE_CLIENT_ID becomes piste-client-id.
func Key(envVar string) string {
	return strings.ReplaceAll(strings.ToLower(envVar), "_", "-")
}
