// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package legifrance implements a client for the Légifrance API behind the
// PISTE gateway: full-text search across the legal funds and retrieval of
// individual texts and articles.
package legifrance

import (
	"sort"
	"time"

	"github.com/pdiddy/lexfr/internal/apierr"
)

// Funds are the Légifrance document collections that can be searched.
// CODE_DATE and LODA_DATE address versions at a point in time; the _ETAT
// variants address versions by legal status.
var Funds = []string{
	"JORF", "CNIL", "CETAT", "JURI", "JUFI", "CONSTIT", "KALI",
	"CODE_DATE", "CODE_ETAT", "LODA_DATE", "LODA_ETAT", "ALL", "CIRC", "ACCO",
}

// SearchFields are the document fields a criterion can target.
var SearchFields = []string{
	"ALL", "TITLE", "TABLE", "NOR", "NUM", "ADVANCED_TEXTE_ID",
	"NUM_DELIB", "NUM_DEC", "NUM_ARTICLE", "ARTICLE", "MINISTERE",
	"VISA", "NOTICE", "VISA_NOTICE", "TRAVAUX_PREP", "SIGNATURE",
	"NOTA", "NUM_AFFAIRE", "ABSTRATS", "RESUMES", "TEXTE", "ECLI",
	"NUM_LOI_DEF", "TYPE_DECISION", "NUMERO_INTERNE", "REF_PUBLI",
	"RESUME_CIRC", "TEXTE_REF", "TITRE_LOI_DEF", "RAISON_SOCIALE",
	"MOTS_CLES", "IDCC",
}

// SearchTypes are the matching modes for a criterion value.
var SearchTypes = []string{
	"UN_DES_MOTS", "EXACTE", "TOUS_LES_MOTS_DANS_UN_CHAMP",
	"AUCUN_DES_MOTS", "AUCUNE_CORRESPONDANCE_A_CETTE_EXPRESSION",
}

// SortModes are the orderings the search endpoint accepts.
var SortModes = []string{
	"PERTINENCE", "SIGNATURE_DATE_DESC", "SIGNATURE_DATE_ASC",
	"DATE_PUBLI_DESC", "DATE_PUBLI_ASC", "DATE_VERSION_DESC",
	"DATE_VERSION_ASC", "ID_DESC", "ID_ASC", "DATE_UPDATE",
}

// Operators join criteria and fields.
var Operators = []string{"ET", "OU"}

const (
	defaultFund       = "CODE_ETAT"
	defaultField      = "ALL"
	defaultSearchType = "UN_DES_MOTS"
	defaultOperator   = "ET"
	defaultSort       = "PERTINENCE"
	defaultPageSize   = 10
	maxPageSize       = 100

	dateFmt = "2006-01-02"
)

// ValueFilter restricts results by a facet to one of the listed values,
// e.g. facet NATURE to LOI and ORDONNANCE.
type ValueFilter struct {
	Facet  string
	Values []string
}

// DateFilter restricts results by a date facet, either to a closed range
// (Start and End) or to a single date (On). Dates use YYYY-MM-DD.
type DateFilter struct {
	Facet string
	Start string
	End   string
	On    string
}

// SearchOptions collects everything a search request can carry. The zero
// value of each optional field selects the documented default.
type SearchOptions struct {
	// Query is the search text. Required.
	Query string

	Fund       string // default CODE_ETAT
	Field      string // default ALL
	SearchType string // default UN_DES_MOTS
	Operator   string // default ET
	Sort       string // default PERTINENCE

	// CodeName narrows CODE_DATE/CODE_ETAT searches to one code by its
	// title, e.g. "Code civil". Ignored for other funds.
	CodeName string

	ValueFilters []ValueFilter
	DateFilters  []DateFilter

	PageNumber int // 1-based, default 1
	PageSize   int // default 10, capped at 100
}

// BuildSearchRequest validates opts and assembles the request DTO the
// Légifrance search endpoint expects. Validation failures are reported as
// ValidationError naming the parameter; nothing is sent on failure.
func BuildSearchRequest(opts SearchOptions) (*SearchRequest, error) {
	if opts.Query == "" {
		return nil, apierr.Validation("query", "search text is required")
	}

	fund, err := pickEnum("fund", opts.Fund, defaultFund, Funds)
	if err != nil {
		return nil, err
	}
	field, err := pickEnum("field", opts.Field, defaultField, SearchFields)
	if err != nil {
		return nil, err
	}
	searchType, err := pickEnum("search_type", opts.SearchType, defaultSearchType, SearchTypes)
	if err != nil {
		return nil, err
	}
	operator, err := pickEnum("operator", opts.Operator, defaultOperator, Operators)
	if err != nil {
		return nil, err
	}
	sortMode, err := pickEnum("sort", opts.Sort, defaultSort, SortModes)
	if err != nil {
		return nil, err
	}

	filters, err := buildFilters(fund, opts)
	if err != nil {
		return nil, err
	}

	pageNumber := opts.PageNumber
	if pageNumber <= 0 {
		pageNumber = 1
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return &SearchRequest{
		Fund: fund,
		Recherche: Recherche{
			Champs: []Champ{{
				TypeChamp: field,
				Criteres: []Critere{{
					Valeur:        opts.Query,
					TypeRecherche: searchType,
					Operateur:     operator,
				}},
				Operateur: operator,
			}},
			Filtres:        filters,
			PageNumber:     pageNumber,
			PageSize:       pageSize,
			Operateur:      operator,
			Sort:           sortMode,
			SecondSort:     "DATE_DESC",
			TypePagination: "DEFAUT",
		},
	}, nil
}

func buildFilters(fund string, opts SearchOptions) ([]Filtre, error) {
	var filters []Filtre

	// A code name only makes sense against the code funds.
	if opts.CodeName != "" && (fund == "CODE_ETAT" || fund == "CODE_DATE") {
		filters = append(filters, Filtre{
			Facette: "TEXT_NOM_CODE",
			Valeurs: []string{opts.CodeName},
		})
	}

	for _, vf := range opts.ValueFilters {
		if vf.Facet == "" {
			return nil, apierr.Validation("filter", "filter facet is required")
		}
		if len(vf.Values) == 0 {
			return nil, apierr.Validation("filter", "filter %s has no values", vf.Facet)
		}
		filters = append(filters, Filtre{Facette: vf.Facet, Valeurs: vf.Values})
	}

	for _, df := range opts.DateFilters {
		f, err := buildDateFilter(df)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}

	return filters, nil
}

func buildDateFilter(df DateFilter) (Filtre, error) {
	if df.Facet == "" {
		return Filtre{}, apierr.Validation("date_filter", "date facet is required")
	}

	if df.On != "" {
		if df.Start != "" || df.End != "" {
			return Filtre{}, apierr.Validation("date_filter", "%s combines a single date with a range", df.Facet)
		}
		if _, err := time.Parse(dateFmt, df.On); err != nil {
			return Filtre{}, apierr.Validation("date_filter", "%s date %q is not YYYY-MM-DD", df.Facet, df.On)
		}
		return Filtre{Facette: df.Facet, SingleDate: df.On}, nil
	}

	// A range needs both ends.
	if df.Start == "" || df.End == "" {
		return Filtre{}, apierr.Validation("date_filter", "%s range needs both start and end", df.Facet)
	}
	start, err := time.Parse(dateFmt, df.Start)
	if err != nil {
		return Filtre{}, apierr.Validation("date_filter", "%s start %q is not YYYY-MM-DD", df.Facet, df.Start)
	}
	end, err := time.Parse(dateFmt, df.End)
	if err != nil {
		return Filtre{}, apierr.Validation("date_filter", "%s end %q is not YYYY-MM-DD", df.Facet, df.End)
	}
	if start.After(end) {
		return Filtre{}, apierr.Validation("date_filter", "%s start %s is after end %s", df.Facet, df.Start, df.End)
	}

	return Filtre{
		Facette: df.Facet,
		Dates:   &DatePeriod{Start: df.Start, End: df.End},
	}, nil
}

// pickEnum applies the default when value is empty and rejects values
// outside the allowed set.
func pickEnum(param, value, fallback string, allowed []string) (string, error) {
	if value == "" {
		return fallback, nil
	}
	for _, a := range allowed {
		if value == a {
			return value, nil
		}
	}
	sorted := append([]string(nil), allowed...)
	sort.Strings(sorted)
	return "", apierr.Validation(param, "unknown value %q (allowed: %v)", value, sorted)
}

// Légifrance search request DTO. Field names follow the upstream API schema.

type SearchRequest struct {
	Fund      string    `json:"fond"`
	Recherche Recherche `json:"recherche"`
}

type Recherche struct {
	Champs         []Champ  `json:"champs"`
	Filtres        []Filtre `json:"filtres"`
	PageNumber     int      `json:"pageNumber"`
	PageSize       int      `json:"pageSize"`
	Operateur      string   `json:"operateur"`
	Sort           string   `json:"sort"`
	SecondSort     string   `json:"secondSort"`
	TypePagination string   `json:"typePagination"`
}

type Champ struct {
	TypeChamp string    `json:"typeChamp"`
	Criteres  []Critere `json:"criteres"`
	Operateur string    `json:"operateur"`
}

type Critere struct {
	Valeur        string `json:"valeur"`
	TypeRecherche string `json:"typeRecherche"`
	Operateur     string `json:"operateur"`
}

type Filtre struct {
	Facette    string      `json:"facette"`
	Valeurs    []string    `json:"valeurs,omitempty"`
	Dates      *DatePeriod `json:"dates,omitempty"`
	SingleDate string      `json:"singleDate,omitempty"`
}

type DatePeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
