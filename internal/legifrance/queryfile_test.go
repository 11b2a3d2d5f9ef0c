// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package legifrance

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestQueryFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")

	opts := SearchOptions{
		Query:    "mariage",
		Fund:     "CODE_ETAT",
		CodeName: "Code civil",
		PageSize: 25,
		ValueFilters: []ValueFilter{
			{Facet: "NATURE", Values: []string{"LOI"}},
		},
		DateFilters: []DateFilter{
			{Facet: "DATE_SIGNATURE", Start: "2020-01-01", End: "2023-12-31"},
		},
	}
	results := []ArticleSummary{
		{ArticleID: "LEGIARTI000006422766", Title: "Article 143", SectionTitle: "Du mariage"},
	}

	if err := WriteQueryFile(path, opts, results); err != nil {
		t.Fatalf("WriteQueryFile: %v", err)
	}

	qf, err := ReadQueryFile(path)
	if err != nil {
		t.Fatalf("ReadQueryFile: %v", err)
	}

	if !reflect.DeepEqual(qf.Query.ToOptions(), opts) {
		t.Errorf("options round trip:\ngot  %+v\nwant %+v", qf.Query.ToOptions(), opts)
	}
	if !reflect.DeepEqual(qf.Results, results) {
		t.Errorf("results round trip: %+v", qf.Results)
	}
	if qf.Summary.Total != 1 {
		t.Errorf("Total = %d, want 1", qf.Summary.Total)
	}
	if qf.Summary.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestReadQueryFileMissing(t *testing.T) {
	_, err := ReadQueryFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadQueryFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("query: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ReadQueryFile(path)
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
