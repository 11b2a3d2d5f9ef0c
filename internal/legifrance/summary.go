// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package legifrance

import "strings"

// ArticleSummary is one flattened search result. Search responses nest
// titles and section extracts several levels deep; the summary keeps only
// the fields a researcher acts on. Empty fields are omitted from JSON
// output.
type ArticleSummary struct {
	ArticleID    string `json:"article_id" yaml:"article_id"`
	Title        string `json:"title" yaml:"title"`
	SectionTitle string `json:"section_title,omitempty" yaml:"section_title,omitempty"`
	Nature       string `json:"nature,omitempty" yaml:"nature,omitempty"`
	Text         string `json:"text,omitempty" yaml:"text,omitempty"`
	Content      string `json:"content,omitempty" yaml:"content,omitempty"`
	DateVersion  string `json:"date_version,omitempty" yaml:"date_version,omitempty"`
	DateStart    string `json:"date_debut,omitempty" yaml:"date_debut,omitempty"`
	DateEnd      string `json:"date_fin,omitempty" yaml:"date_fin,omitempty"`
}

// summarize flattens a search response into one summary per titled text and
// per section extract. Results without an id are skipped.
func summarize(sr searchResponse) []ArticleSummary {
	var out []ArticleSummary
	for _, res := range sr.Results {
		for _, title := range res.Titles {
			if title.ID == "" {
				continue
			}
			out = append(out, ArticleSummary{
				ArticleID: title.ID,
				Title:     title.Title,
				Nature:    res.Nature,
				Text:      cleanExtractText(res.Text),
			})
		}
		for _, section := range res.Sections {
			for _, extract := range section.Extracts {
				if extract.ID == "" {
					continue
				}
				out = append(out, ArticleSummary{
					ArticleID:    extract.ID,
					Title:        extractTitle(extract),
					SectionTitle: section.Title,
					Content:      cleanExtractText(strings.Join(extract.Values, " ")),
					DateVersion:  extract.DateVersion,
					DateStart:    extract.DateDebut,
					DateEnd:      extract.DateFin,
				})
			}
		}
	}
	return out
}

func extractTitle(e sectionExtract) string {
	switch {
	case e.Num != "" && e.Title != "":
		return "Article " + e.Num + " - " + e.Title
	case e.Num != "":
		return "Article " + e.Num
	default:
		return e.Title
	}
}

// cleanExtractText strips the <mark> highlight tags the API injects and
// collapses elision markers.
func cleanExtractText(s string) string {
	s = strings.ReplaceAll(s, "<mark>", "")
	s = strings.ReplaceAll(s, "</mark>", "")
	s = strings.ReplaceAll(s, "[...]", "...")
	for strings.Contains(s, "......") {
		s = strings.ReplaceAll(s, "......", "...")
	}
	return strings.TrimSpace(s)
}

// Légifrance search response JSON structures (the subset summarize reads).
type searchResponse struct {
	TotalResults int            `json:"totalResultNumber"`
	Results      []searchResult `json:"results"`
}

type searchResult struct {
	Nature   string          `json:"nature"`
	Text     string          `json:"text"`
	Titles   []resultTitle   `json:"titles"`
	Sections []resultSection `json:"sections"`
}

type resultTitle struct {
	ID    string `json:"id"`
	CID   string `json:"cid"`
	Title string `json:"title"`
}

type resultSection struct {
	Title    string           `json:"title"`
	Extracts []sectionExtract `json:"extracts"`
}

type sectionExtract struct {
	ID          string   `json:"id"`
	Num         string   `json:"num"`
	Title       string   `json:"title"`
	LegalStatus string   `json:"legalStatus"`
	DateVersion string   `json:"dateVersion"`
	DateDebut   string   `json:"dateDebut"`
	DateFin     string   `json:"dateFin"`
	Values      []string `json:"values"`
}
