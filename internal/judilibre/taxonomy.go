// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package judilibre

import (
	"net/url"
	"sort"

	"github.com/pdiddy/lexfr/internal/apierr"
)

// TaxonomyIDs are the vocabularies the taxonomy endpoint can enumerate,
// with a short description of each. The catalog itself is static; only the
// per-vocabulary entries require an API call.
var TaxonomyIDs = map[string]string{
	"type":         "decision types (arrêt, ordonnance, QPC, saisie)",
	"jurisdiction": "court families covered by JudiLibre",
	"chamber":      "chambers of the Cour de cassation",
	"formation":    "judgment formations",
	"publication":  "publication circuits (bulletin, rapport, lettres, communiqué)",
	"theme":        "matters ('matières') decisions are classified under",
	"solution":     "decision outcomes (cassation, rejet, ...)",
	"field":        "searchable text zones of a decision",
	"zones":        "structural zones of a decision document",
	"location":     "individual courts (cours d'appel, tribunaux)",
	"filetype":     "types of files attached to decisions",
}

// TaxonomyQuery addresses one lookup against the taxonomy endpoint. With a
// zero value the caller gets the static catalog instead of a network call.
// Key resolves a term's label from its key; Value resolves a key from its
// label. The two are mutually exclusive and both require ID.
type TaxonomyQuery struct {
	ID           string
	Key          string
	Value        string
	ContextValue string
}

// IsEmpty reports whether the query addresses the static catalog.
func (q TaxonomyQuery) IsEmpty() bool {
	return q.ID == "" && q.Key == "" && q.Value == "" && q.ContextValue == ""
}

// Values validates the query and encodes it as taxonomy endpoint
// parameters.
func (q TaxonomyQuery) Values() (url.Values, error) {
	if q.Key != "" && q.Value != "" {
		return nil, apierr.Validation("key", "key and value are mutually exclusive")
	}
	if (q.Key != "" || q.Value != "") && q.ID == "" {
		return nil, apierr.Validation("id", "key and value lookups require a taxonomy id")
	}
	if q.ID != "" {
		if _, ok := TaxonomyIDs[q.ID]; !ok {
			ids := make([]string, 0, len(TaxonomyIDs))
			for id := range TaxonomyIDs {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			return nil, apierr.Validation("id", "unknown taxonomy %q (known: %v)", q.ID, ids)
		}
	}

	params := url.Values{}
	if q.ID != "" {
		params.Set("id", q.ID)
	}
	if q.Key != "" {
		params.Set("key", q.Key)
	}
	if q.Value != "" {
		params.Set("value", q.Value)
	}
	if q.ContextValue != "" {
		params.Set("context_value", q.ContextValue)
	}
	return params, nil
}
