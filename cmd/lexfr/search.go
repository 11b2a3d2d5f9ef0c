// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lexfr/internal/legifrance"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search Légifrance for codes, statutes and regulations",
	Long: `Search runs a full-text query against a Légifrance fund. The default fund
is CODE_ETAT (codes by legal status); use --fund to search statutes (LODA_ETAT),
the official journal (JORF), case law (JURI), or any other fund.

Results can be saved to a YAML file with --save and reprinted later with
--load, without re-querying the API.`,
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	// Load mode: reprint a saved search.
	if loadPath, _ := cmd.Flags().GetString("load"); loadPath != "" {
		qf, err := legifrance.ReadQueryFile(loadPath)
		if err != nil {
			return err
		}
		return formatSearchOutput(qf.Results, jsonOutput)
	}

	opts, err := searchOptsFromFlags(cmd, args)
	if err != nil {
		return err
	}

	client, cfg, err := newLegifranceClient()
	if err != nil {
		return err
	}
	if opts.PageSize == 0 {
		opts.PageSize = cfg.PageSize
	}
	if opts.Fund == "" {
		opts.Fund = cfg.Fund
	}
	if opts.Sort == "" {
		opts.Sort = cfg.Sort
	}

	results, err := client.Search(context.Background(), opts)
	if err != nil {
		return err
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := legifrance.WriteQueryFile(savePath, opts, results); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved %d results to %s\n", len(results), savePath)
	}

	return formatSearchOutput(results, jsonOutput)
}

func searchOptsFromFlags(cmd *cobra.Command, args []string) (legifrance.SearchOptions, error) {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	fund, _ := cmd.Flags().GetString("fund")
	field, _ := cmd.Flags().GetString("field")
	searchType, _ := cmd.Flags().GetString("search-type")
	operator, _ := cmd.Flags().GetString("operator")
	sortMode, _ := cmd.Flags().GetString("sort")
	codeName, _ := cmd.Flags().GetString("code")
	page, _ := cmd.Flags().GetInt("page")
	pageSize, _ := cmd.Flags().GetInt("page-size")

	opts := legifrance.SearchOptions{
		Query:      queryText,
		Fund:       fund,
		Field:      field,
		SearchType: searchType,
		Operator:   operator,
		Sort:       sortMode,
		CodeName:   codeName,
		PageNumber: page,
		PageSize:   pageSize,
	}

	rawFilters, _ := cmd.Flags().GetStringArray("filter")
	for _, raw := range rawFilters {
		vf, err := parseValueFilter(raw)
		if err != nil {
			return opts, err
		}
		opts.ValueFilters = append(opts.ValueFilters, vf)
	}

	dateFacet, _ := cmd.Flags().GetString("date-facet")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	on, _ := cmd.Flags().GetString("on")
	if from != "" || to != "" || on != "" {
		opts.DateFilters = append(opts.DateFilters, legifrance.DateFilter{
			Facet: dateFacet,
			Start: from,
			End:   to,
			On:    on,
		})
	}

	return opts, nil
}

// parseValueFilter parses a FACET=V1,V2 flag value.
func parseValueFilter(raw string) (legifrance.ValueFilter, error) {
	facet, values, ok := strings.Cut(raw, "=")
	if !ok {
		return legifrance.ValueFilter{}, fmt.Errorf("invalid filter %q: expected FACET=VALUE[,VALUE...]", raw)
	}
	var vf legifrance.ValueFilter
	vf.Facet = strings.TrimSpace(facet)
	for _, v := range strings.Split(values, ",") {
		if v = strings.TrimSpace(v); v != "" {
			vf.Values = append(vf.Values, v)
		}
	}
	return vf, nil
}

func formatSearchOutput(results []legifrance.ArticleSummary, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-45s  %-30s  %s\n", "ID", "Title", "Section", "Dates")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for _, r := range results {
		dates := r.DateVersion
		if dates == "" && r.DateStart != "" {
			dates = r.DateStart + ".." + r.DateEnd
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-45s  %-30s  %s\n",
			truncate(r.ArticleID, 20), truncate(r.Title, 45), truncate(r.SectionTitle, 30), dates)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func init() {
	searchCmd.Flags().String("query", "", "search text (may also be given as positional arguments)")
	searchCmd.Flags().String("fund", "", "fund to search: CODE_ETAT, LODA_ETAT, JORF, JURI, ... (default CODE_ETAT)")
	searchCmd.Flags().String("field", "", "document field to match: ALL, TITLE, ARTICLE, NUM_ARTICLE, ... (default ALL)")
	searchCmd.Flags().String("search-type", "", "matching mode: UN_DES_MOTS, EXACTE, TOUS_LES_MOTS_DANS_UN_CHAMP, ... (default UN_DES_MOTS)")
	searchCmd.Flags().String("operator", "", "criteria operator: ET or OU (default ET)")
	searchCmd.Flags().String("sort", "", "result ordering: PERTINENCE, SIGNATURE_DATE_DESC, ... (default PERTINENCE)")
	searchCmd.Flags().String("code", "", "narrow CODE_ETAT/CODE_DATE searches to one code, e.g. \"Code civil\"")
	searchCmd.Flags().StringArray("filter", nil, "facet filter as FACET=VALUE[,VALUE...], repeatable")
	searchCmd.Flags().String("date-facet", "", "date facet for --from/--to/--on, e.g. DATE_SIGNATURE")
	searchCmd.Flags().String("from", "", "date range start (YYYY-MM-DD)")
	searchCmd.Flags().String("to", "", "date range end (YYYY-MM-DD)")
	searchCmd.Flags().String("on", "", "single date (YYYY-MM-DD)")
	searchCmd.Flags().Int("page", 0, "page number (1-based)")
	searchCmd.Flags().Int("page-size", 0, "results per page (max 100)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "save the query and results to a YAML file")
	searchCmd.Flags().String("load", "", "print results from a saved query file instead of searching")

	rootCmd.AddCommand(searchCmd)
}
