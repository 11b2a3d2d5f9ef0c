// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package legifrance

import (
	"errors"
	"strings"
	"testing"

	"github.com/pdiddy/lexfr/internal/apierr"
)

// --- Defaults ---

func TestBuildSearchRequestDefaults(t *testing.T) {
	req, err := BuildSearchRequest(SearchOptions{Query: "mariage"})
	if err != nil {
		t.Fatalf("BuildSearchRequest: %v", err)
	}

	if req.Fund != "CODE_ETAT" {
		t.Errorf("Fund = %q, want CODE_ETAT", req.Fund)
	}
	r := req.Recherche
	if r.PageNumber != 1 || r.PageSize != 10 {
		t.Errorf("pagination = %d/%d, want 1/10", r.PageNumber, r.PageSize)
	}
	if r.Operateur != "ET" || r.Sort != "PERTINENCE" {
		t.Errorf("operator/sort = %s/%s, want ET/PERTINENCE", r.Operateur, r.Sort)
	}
	if r.SecondSort != "DATE_DESC" || r.TypePagination != "DEFAUT" {
		t.Errorf("secondSort/typePagination = %s/%s", r.SecondSort, r.TypePagination)
	}
	if len(r.Champs) != 1 {
		t.Fatalf("len(Champs) = %d, want 1", len(r.Champs))
	}
	champ := r.Champs[0]
	if champ.TypeChamp != "ALL" {
		t.Errorf("TypeChamp = %q, want ALL", champ.TypeChamp)
	}
	if len(champ.Criteres) != 1 {
		t.Fatalf("len(Criteres) = %d, want 1", len(champ.Criteres))
	}
	crit := champ.Criteres[0]
	if crit.Valeur != "mariage" || crit.TypeRecherche != "UN_DES_MOTS" || crit.Operateur != "ET" {
		t.Errorf("Critere = %+v", crit)
	}
}

func TestBuildSearchRequestEmptyQuery(t *testing.T) {
	_, err := BuildSearchRequest(SearchOptions{})
	if err == nil {
		t.Fatal("expected error for empty query")
	}
	var ve *apierr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error type = %T, want *apierr.ValidationError", err)
	}
	if ve.Param != "query" {
		t.Errorf("Param = %q, want query", ve.Param)
	}
}

// --- Enum validation ---

func TestBuildSearchRequestEnumValidation(t *testing.T) {
	tests := []struct {
		name      string
		opts      SearchOptions
		wantParam string
	}{
		{"unknown fund", SearchOptions{Query: "q", Fund: "BOGUS"}, "fund"},
		{"unknown field", SearchOptions{Query: "q", Field: "BODY"}, "field"},
		{"unknown search type", SearchOptions{Query: "q", SearchType: "FUZZY"}, "search_type"},
		{"unknown operator", SearchOptions{Query: "q", Operator: "AND"}, "operator"},
		{"unknown sort", SearchOptions{Query: "q", Sort: "RELEVANCE"}, "sort"},
		{"lowercase fund rejected", SearchOptions{Query: "q", Fund: "code_etat"}, "fund"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildSearchRequest(tt.opts)
			if err == nil {
				t.Fatal("expected error")
			}
			var ve *apierr.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error type = %T, want *apierr.ValidationError", err)
			}
			if ve.Param != tt.wantParam {
				t.Errorf("Param = %q, want %q", ve.Param, tt.wantParam)
			}
		})
	}
}

func TestBuildSearchRequestAcceptsAllEnumValues(t *testing.T) {
	for _, fund := range Funds {
		if _, err := BuildSearchRequest(SearchOptions{Query: "q", Fund: fund}); err != nil {
			t.Errorf("fund %s rejected: %v", fund, err)
		}
	}
	for _, field := range SearchFields {
		if _, err := BuildSearchRequest(SearchOptions{Query: "q", Field: field}); err != nil {
			t.Errorf("field %s rejected: %v", field, err)
		}
	}
	for _, mode := range SortModes {
		if _, err := BuildSearchRequest(SearchOptions{Query: "q", Sort: mode}); err != nil {
			t.Errorf("sort %s rejected: %v", mode, err)
		}
	}
}

// --- Pagination ---

func TestBuildSearchRequestPageSizeCap(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"zero uses default", 0, 10},
		{"negative uses default", -5, 10},
		{"within cap", 25, 25},
		{"at cap", 100, 100},
		{"above cap clamps", 500, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := BuildSearchRequest(SearchOptions{Query: "q", PageSize: tt.in})
			if err != nil {
				t.Fatalf("BuildSearchRequest: %v", err)
			}
			if req.Recherche.PageSize != tt.want {
				t.Errorf("PageSize = %d, want %d", req.Recherche.PageSize, tt.want)
			}
		})
	}
}

// --- Code name filter ---

func TestBuildSearchRequestCodeNameFilter(t *testing.T) {
	tests := []struct {
		name       string
		fund       string
		wantFilter bool
	}{
		{"CODE_ETAT gets filter", "CODE_ETAT", true},
		{"CODE_DATE gets filter", "CODE_DATE", true},
		{"JORF ignores code name", "JORF", false},
		{"LODA_ETAT ignores code name", "LODA_ETAT", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := BuildSearchRequest(SearchOptions{
				Query:    "mariage",
				Fund:     tt.fund,
				CodeName: "Code civil",
			})
			if err != nil {
				t.Fatalf("BuildSearchRequest: %v", err)
			}

			var found *Filtre
			for i := range req.Recherche.Filtres {
				if req.Recherche.Filtres[i].Facette == "TEXT_NOM_CODE" {
					found = &req.Recherche.Filtres[i]
				}
			}
			if tt.wantFilter {
				if found == nil {
					t.Fatal("TEXT_NOM_CODE filter missing")
				}
				if len(found.Valeurs) != 1 || found.Valeurs[0] != "Code civil" {
					t.Errorf("Valeurs = %v, want [Code civil]", found.Valeurs)
				}
			} else if found != nil {
				t.Errorf("unexpected TEXT_NOM_CODE filter for fund %s", tt.fund)
			}
		})
	}
}

// --- Value filters ---

func TestBuildSearchRequestValueFilters(t *testing.T) {
	req, err := BuildSearchRequest(SearchOptions{
		Query: "environnement",
		Fund:  "LODA_ETAT",
		ValueFilters: []ValueFilter{
			{Facet: "NATURE", Values: []string{"LOI", "ORDONNANCE"}},
		},
	})
	if err != nil {
		t.Fatalf("BuildSearchRequest: %v", err)
	}
	if len(req.Recherche.Filtres) != 1 {
		t.Fatalf("len(Filtres) = %d, want 1", len(req.Recherche.Filtres))
	}
	f := req.Recherche.Filtres[0]
	if f.Facette != "NATURE" || len(f.Valeurs) != 2 {
		t.Errorf("Filtre = %+v", f)
	}
}

func TestBuildSearchRequestValueFilterValidation(t *testing.T) {
	tests := []struct {
		name string
		vf   ValueFilter
	}{
		{"missing facet", ValueFilter{Values: []string{"LOI"}}},
		{"missing values", ValueFilter{Facet: "NATURE"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildSearchRequest(SearchOptions{Query: "q", ValueFilters: []ValueFilter{tt.vf}})
			var ve *apierr.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error = %v, want *apierr.ValidationError", err)
			}
		})
	}
}

// --- Date filters ---

func TestBuildSearchRequestDateRange(t *testing.T) {
	req, err := BuildSearchRequest(SearchOptions{
		Query: "q",
		DateFilters: []DateFilter{
			{Facet: "DATE_SIGNATURE", Start: "2020-01-01", End: "2023-12-31"},
		},
	})
	if err != nil {
		t.Fatalf("BuildSearchRequest: %v", err)
	}
	f := req.Recherche.Filtres[0]
	if f.Dates == nil {
		t.Fatal("Dates filter missing")
	}
	if f.Dates.Start != "2020-01-01" || f.Dates.End != "2023-12-31" {
		t.Errorf("Dates = %+v", f.Dates)
	}
	if f.SingleDate != "" {
		t.Errorf("SingleDate = %q, want empty for a range", f.SingleDate)
	}
}

func TestBuildSearchRequestSingleDate(t *testing.T) {
	req, err := BuildSearchRequest(SearchOptions{
		Query: "q",
		Fund:  "CODE_DATE",
		DateFilters: []DateFilter{
			{Facet: "DATE_VERSION", On: "2022-06-15"},
		},
	})
	if err != nil {
		t.Fatalf("BuildSearchRequest: %v", err)
	}
	f := req.Recherche.Filtres[0]
	if f.SingleDate != "2022-06-15" {
		t.Errorf("SingleDate = %q, want 2022-06-15", f.SingleDate)
	}
	if f.Dates != nil {
		t.Errorf("Dates = %+v, want nil for a single date", f.Dates)
	}
}

func TestBuildSearchRequestDateValidation(t *testing.T) {
	tests := []struct {
		name       string
		df         DateFilter
		wantReason string
	}{
		{"start without end", DateFilter{Facet: "DATE_SIGNATURE", Start: "2020-01-01"}, "both start and end"},
		{"end without start", DateFilter{Facet: "DATE_SIGNATURE", End: "2020-01-01"}, "both start and end"},
		{"start after end", DateFilter{Facet: "DATE_SIGNATURE", Start: "2023-01-01", End: "2020-01-01"}, "after end"},
		{"malformed start", DateFilter{Facet: "DATE_SIGNATURE", Start: "01/01/2020", End: "2023-01-01"}, "YYYY-MM-DD"},
		{"malformed single date", DateFilter{Facet: "DATE_VERSION", On: "yesterday"}, "YYYY-MM-DD"},
		{"single date with range", DateFilter{Facet: "DATE_VERSION", On: "2022-01-01", Start: "2020-01-01", End: "2023-01-01"}, "single date"},
		{"missing facet", DateFilter{Start: "2020-01-01", End: "2023-01-01"}, "facet is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildSearchRequest(SearchOptions{Query: "q", DateFilters: []DateFilter{tt.df}})
			if err == nil {
				t.Fatal("expected error")
			}
			var ve *apierr.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error type = %T, want *apierr.ValidationError", err)
			}
			if ve.Param != "date_filter" {
				t.Errorf("Param = %q, want date_filter", ve.Param)
			}
			if !strings.Contains(ve.Reason, tt.wantReason) {
				t.Errorf("Reason = %q, want substring %q", ve.Reason, tt.wantReason)
			}
		})
	}
}

// Equal start and end is a valid one-day range.
func TestBuildSearchRequestSameDayRange(t *testing.T) {
	_, err := BuildSearchRequest(SearchOptions{
		Query: "q",
		DateFilters: []DateFilter{
			{Facet: "DATE_SIGNATURE", Start: "2022-06-15", End: "2022-06-15"},
		},
	})
	if err != nil {
		t.Errorf("same-day range rejected: %v", err)
	}
}
