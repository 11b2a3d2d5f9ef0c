// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package judilibre implements a client for the JudiLibre case-law API
// behind the PISTE gateway: decision search, decision retrieval, and the
// taxonomy endpoint describing the searchable vocabularies.
package judilibre

import (
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/pdiddy/lexfr/internal/apierr"
)

// DecisionTypes are the decision categories the search endpoint accepts.
var DecisionTypes = []string{"arret", "ordonnance", "qpc", "saisie"}

// Jurisdictions are the court families JudiLibre covers.
var Jurisdictions = []string{"cc", "ca", "tj", "tcom", "ta", "caa", "ce", "tc", "crc"}

// Chambers are the chambers of the Cour de cassation.
var Chambers = []string{
	"pl", "mi", "civ1", "civ2", "civ3", "comm", "soc", "cr",
	"creun", "ordo", "allciv", "other",
}

// Publications are the publication circuits (bulletin, rapport, lettres,
// communiqué).
var Publications = []string{"b", "r", "l", "c"}

// Solutions are the decision outcomes.
var Solutions = []string{
	"cassation", "cassation_partielle", "rejet", "annulation",
	"irrecevabilite", "desistement", "non-lieu", "nonlieu", "qpc",
	"avis", "decheance", "designation", "rabat",
}

// SortModes and Orders control result ordering.
var (
	SortModes = []string{"score", "scorepub", "date"}
	Orders    = []string{"asc", "desc"}
)

// QueryOperators join multiple query terms.
var QueryOperators = []string{"or", "and", "exact"}

const (
	defaultSort     = "scorepub"
	defaultOrder    = "desc"
	defaultPageSize = 10
	maxPageSize     = 50

	dateFmt = "2006-01-02"
)

// SearchOptions collects the parameters of a decision search. Multi-valued
// fields repeat the parameter in the query string.
type SearchOptions struct {
	Query    string
	Fields   []string
	Operator string // default or

	Types         []string
	Themes        []string
	Chambers      []string
	Formations    []string
	Jurisdictions []string
	Locations     []string
	Publications  []string
	Solutions     []string

	DateStart string
	DateEnd   string

	Sort  string // default scorepub
	Order string // default desc

	PageSize int // default 10, capped at 50
	Page     int // 0-based

	ResolveReferences  bool
	ParticularInterest bool
	WithFileOfType     []string
}

// Values validates opts and encodes them as the query parameters the search
// endpoint expects. Validation failures are reported as ValidationError
// naming the parameter; nothing is sent on failure.
func (o SearchOptions) Values() (url.Values, error) {
	operator, err := pickEnum("operator", o.Operator, "or", QueryOperators)
	if err != nil {
		return nil, err
	}
	sortMode, err := pickEnum("sort", o.Sort, defaultSort, SortModes)
	if err != nil {
		return nil, err
	}
	order, err := pickEnum("order", o.Order, defaultOrder, Orders)
	if err != nil {
		return nil, err
	}
	if err := checkEnumList("type", o.Types, DecisionTypes); err != nil {
		return nil, err
	}
	if err := checkEnumList("jurisdiction", o.Jurisdictions, Jurisdictions); err != nil {
		return nil, err
	}
	if err := checkEnumList("chamber", o.Chambers, Chambers); err != nil {
		return nil, err
	}
	if err := checkEnumList("publication", o.Publications, Publications); err != nil {
		return nil, err
	}
	if err := checkEnumList("solution", o.Solutions, Solutions); err != nil {
		return nil, err
	}
	if err := checkDates(o.DateStart, o.DateEnd); err != nil {
		return nil, err
	}

	pageSize := o.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		return nil, apierr.Validation("page_size", "must be at most %d, got %d", maxPageSize, pageSize)
	}
	if o.Page < 0 {
		return nil, apierr.Validation("page", "must not be negative, got %d", o.Page)
	}

	params := url.Values{}
	if o.Query != "" {
		params.Set("query", o.Query)
		params.Set("operator", operator)
	}
	setAll(params, "field", o.Fields)
	setAll(params, "type", o.Types)
	setAll(params, "theme", o.Themes)
	setAll(params, "chamber", o.Chambers)
	setAll(params, "formation", o.Formations)
	setAll(params, "jurisdiction", o.Jurisdictions)
	setAll(params, "location", o.Locations)
	setAll(params, "publication", o.Publications)
	setAll(params, "solution", o.Solutions)
	setAll(params, "withFileOfType", o.WithFileOfType)
	if o.DateStart != "" {
		params.Set("date_start", o.DateStart)
		params.Set("date_end", o.DateEnd)
	}
	params.Set("sort", sortMode)
	params.Set("order", order)
	params.Set("page_size", strconv.Itoa(pageSize))
	params.Set("page", strconv.Itoa(o.Page))
	params.Set("resolve_references", strconv.FormatBool(o.ResolveReferences))
	if o.ParticularInterest {
		params.Set("particularInterest", "true")
	}
	return params, nil
}

func setAll(params url.Values, key string, values []string) {
	for _, v := range values {
		params.Add(key, v)
	}
}

func checkDates(start, end string) error {
	if start == "" && end == "" {
		return nil
	}
	// A range needs both ends.
	if start == "" || end == "" {
		return apierr.Validation("date_start", "date range needs both date_start and date_end")
	}
	s, err := time.Parse(dateFmt, start)
	if err != nil {
		return apierr.Validation("date_start", "%q is not YYYY-MM-DD", start)
	}
	e, err := time.Parse(dateFmt, end)
	if err != nil {
		return apierr.Validation("date_end", "%q is not YYYY-MM-DD", end)
	}
	if s.After(e) {
		return apierr.Validation("date_start", "%s is after date_end %s", start, end)
	}
	return nil
}

func checkEnumList(param string, values, allowed []string) error {
	for _, v := range values {
		if !contains(allowed, v) {
			sorted := append([]string(nil), allowed...)
			sort.Strings(sorted)
			return apierr.Validation(param, "unknown value %q (allowed: %v)", v, sorted)
		}
	}
	return nil
}

func pickEnum(param, value, fallback string, allowed []string) (string, error) {
	if value == "" {
		return fallback, nil
	}
	if !contains(allowed, value) {
		sorted := append([]string(nil), allowed...)
		sort.Strings(sorted)
		return "", apierr.Validation(param, "unknown value %q (allowed: %v)", value, sorted)
	}
	return value, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
