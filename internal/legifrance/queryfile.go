// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package legifrance

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// QueryFile is the on-disk representation of a search and its results. A
// search can be saved to a file and reloaded later without re-querying the
// API.
type QueryFile struct {
	Query   QueryParams      `yaml:"query"`
	Results []ArticleSummary `yaml:"results"`
	Summary QuerySummary     `yaml:"summary"`
}

// QueryParams stores search options in a serializable form.
type QueryParams struct {
	Query      string       `yaml:"query"`
	Fund       string       `yaml:"fund,omitempty"`
	Field      string       `yaml:"field,omitempty"`
	SearchType string       `yaml:"search_type,omitempty"`
	Operator   string       `yaml:"operator,omitempty"`
	Sort       string       `yaml:"sort,omitempty"`
	CodeName   string       `yaml:"code_name,omitempty"`
	Filters    []FilterSpec `yaml:"filters,omitempty"`
	Dates      []DateSpec   `yaml:"dates,omitempty"`
	PageNumber int          `yaml:"page_number,omitempty"`
	PageSize   int          `yaml:"page_size,omitempty"`
}

// FilterSpec stores a value filter.
type FilterSpec struct {
	Facet  string   `yaml:"facet"`
	Values []string `yaml:"values"`
}

// DateSpec stores a date filter.
type DateSpec struct {
	Facet string `yaml:"facet"`
	Start string `yaml:"start,omitempty"`
	End   string `yaml:"end,omitempty"`
	On    string `yaml:"on,omitempty"`
}

// QuerySummary stores a result count and a timestamp.
type QuerySummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteQueryFile saves search options and results to a YAML file.
func WriteQueryFile(path string, opts SearchOptions, results []ArticleSummary) error {
	qf := QueryFile{
		Query:   paramsFromOptions(opts),
		Results: results,
		Summary: QuerySummary{
			Total:     len(results),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&qf)
	if err != nil {
		return fmt.Errorf("marshaling query file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadQueryFile loads a previously saved query file from disk.
func ReadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading query file: %w", err)
	}
	var qf QueryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return nil, fmt.Errorf("parsing query file: %w", err)
	}
	return &qf, nil
}

func paramsFromOptions(opts SearchOptions) QueryParams {
	p := QueryParams{
		Query:      opts.Query,
		Fund:       opts.Fund,
		Field:      opts.Field,
		SearchType: opts.SearchType,
		Operator:   opts.Operator,
		Sort:       opts.Sort,
		CodeName:   opts.CodeName,
		PageNumber: opts.PageNumber,
		PageSize:   opts.PageSize,
	}
	for _, vf := range opts.ValueFilters {
		p.Filters = append(p.Filters, FilterSpec{Facet: vf.Facet, Values: vf.Values})
	}
	for _, df := range opts.DateFilters {
		p.Dates = append(p.Dates, DateSpec{Facet: df.Facet, Start: df.Start, End: df.End, On: df.On})
	}
	return p
}

// ToOptions converts stored QueryParams back into SearchOptions.
func (p QueryParams) ToOptions() SearchOptions {
	opts := SearchOptions{
		Query:      p.Query,
		Fund:       p.Fund,
		Field:      p.Field,
		SearchType: p.SearchType,
		Operator:   p.Operator,
		Sort:       p.Sort,
		CodeName:   p.CodeName,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}
	for _, f := range p.Filters {
		opts.ValueFilters = append(opts.ValueFilters, ValueFilter{Facet: f.Facet, Values: f.Values})
	}
	for _, d := range p.Dates {
		opts.DateFilters = append(opts.DateFilters, DateFilter{Facet: d.Facet, Start: d.Start, End: d.End, On: d.On})
	}
	return opts
}
