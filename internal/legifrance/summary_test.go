// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package legifrance

import "testing"

func TestCleanExtractText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"strips mark tags", "Le <mark>mariage</mark> civil", "Le mariage civil"},
		{"collapses elisions", "avant [...] après", "avant ... après"},
		{"collapses adjacent elisions", "a [...][...] b", "a ... b"},
		{"trims whitespace", "  texte  ", "texte"},
		{"plain text unchanged", "Article 143", "Article 143"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanExtractText(tt.in); got != tt.want {
				t.Errorf("cleanExtractText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		e    sectionExtract
		want string
	}{
		{"num and title", sectionExtract{Num: "143", Title: "Conditions"}, "Article 143 - Conditions"},
		{"num only", sectionExtract{Num: "143"}, "Article 143"},
		{"title only", sectionExtract{Title: "Dispositions"}, "Dispositions"},
		{"neither", sectionExtract{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractTitle(tt.e); got != tt.want {
				t.Errorf("extractTitle(%+v) = %q, want %q", tt.e, got, tt.want)
			}
		})
	}
}

func TestSummarizeSkipsResultsWithoutIDs(t *testing.T) {
	sr := searchResponse{
		Results: []searchResult{
			{
				Titles: []resultTitle{{Title: "no id"}},
				Sections: []resultSection{
					{Extracts: []sectionExtract{{Num: "1"}}},
				},
			},
		},
	}
	if got := summarize(sr); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
