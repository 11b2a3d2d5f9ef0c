// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lexfr/internal/judilibre"
)

var caselawCmd = &cobra.Command{
	Use:   "caselaw",
	Short: "Search and fetch court decisions from JudiLibre",
	Long: `Caselaw queries the JudiLibre API of the Cour de cassation. Use subcommands
to search decisions or fetch one decision in full.`,
}

// --- search subcommand ---

var caselawSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search court decisions",
	Long: `Search queries JudiLibre for decisions matching the text and filters.
Filters take the short codes of the JudiLibre taxonomies; run
"lexfr taxonomy <id>" to list them (for example "lexfr taxonomy chamber").`,
	RunE: runCaselawSearch,
}

func runCaselawSearch(cmd *cobra.Command, args []string) error {
	opts, err := caselawOptsFromFlags(cmd, args)
	if err != nil {
		return err
	}

	client, cfg, err := newJudilibreClient()
	if err != nil {
		return err
	}
	if opts.PageSize == 0 {
		opts.PageSize = cfg.PageSize
	}
	if opts.Sort == "" {
		opts.Sort = cfg.Sort
	}
	if opts.Order == "" {
		opts.Order = cfg.Order
	}

	results, err := client.Search(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatDecisionOutput(results, jsonOutput)
}

func caselawOptsFromFlags(cmd *cobra.Command, args []string) (judilibre.SearchOptions, error) {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	getList := func(name string) []string {
		v, _ := cmd.Flags().GetStringSlice(name)
		return v
	}
	operator, _ := cmd.Flags().GetString("operator")
	dateStart, _ := cmd.Flags().GetString("from")
	dateEnd, _ := cmd.Flags().GetString("to")
	sortMode, _ := cmd.Flags().GetString("sort")
	order, _ := cmd.Flags().GetString("order")
	pageSize, _ := cmd.Flags().GetInt("page-size")
	page, _ := cmd.Flags().GetInt("page")
	resolve, _ := cmd.Flags().GetBool("resolve-references")
	interest, _ := cmd.Flags().GetBool("particular-interest")

	return judilibre.SearchOptions{
		Query:              queryText,
		Fields:             getList("field"),
		Operator:           operator,
		Types:              getList("type"),
		Themes:             getList("theme"),
		Chambers:           getList("chamber"),
		Formations:         getList("formation"),
		Jurisdictions:      getList("jurisdiction"),
		Locations:          getList("location"),
		Publications:       getList("publication"),
		Solutions:          getList("solution"),
		DateStart:          dateStart,
		DateEnd:            dateEnd,
		Sort:               sortMode,
		Order:              order,
		PageSize:           pageSize,
		Page:               page,
		ResolveReferences:  resolve,
		ParticularInterest: interest,
		WithFileOfType:     getList("with-file-of-type"),
	}, nil
}

func formatDecisionOutput(results []any, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-26s  %-12s  %-10s  %-10s  %s\n",
		"ID", "Date", "Chamber", "Solution", "Number")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))

	for _, r := range results {
		entry, ok := r.(map[string]any)
		if !ok {
			continue
		}
		fmt.Fprintf(os.Stdout, "%-26s  %-12s  %-10s  %-10s  %s\n",
			truncate(stringField(entry, "id"), 26),
			stringField(entry, "decision_date"),
			truncate(stringField(entry, "chamber"), 10),
			truncate(stringField(entry, "solution"), 10),
			stringField(entry, "number"))
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func stringField(entry map[string]any, key string) string {
	s, _ := entry[key].(string)
	return s
}

// --- decision subcommand ---

var caselawDecisionCmd = &cobra.Command{
	Use:   "decision <id>",
	Short: "Fetch one decision in full",
	Long: `Decision fetches a single decision by its JudiLibre id, with cited texts
and precedents resolved. Pass --highlight to mark passages matching a query
in the decision text. The response is printed as JSON with empty fields
removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runCaselawDecision,
}

func runCaselawDecision(cmd *cobra.Command, args []string) error {
	highlight, _ := cmd.Flags().GetString("highlight")
	operator, _ := cmd.Flags().GetString("operator")

	client, _, err := newJudilibreClient()
	if err != nil {
		return err
	}

	doc, err := client.Decision(context.Background(), args[0], highlight, operator)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func init() {
	caselawSearchCmd.Flags().String("query", "", "search text (may also be given as positional arguments)")
	caselawSearchCmd.Flags().String("operator", "", "term operator: or, and, exact (default or)")
	caselawSearchCmd.Flags().StringSlice("field", nil, "text zones to search, repeatable")
	caselawSearchCmd.Flags().StringSlice("type", nil, "decision types: arret, ordonnance, qpc, saisie")
	caselawSearchCmd.Flags().StringSlice("theme", nil, "matter codes, repeatable")
	caselawSearchCmd.Flags().StringSlice("chamber", nil, "chamber codes: civ1, civ2, civ3, comm, soc, cr, ...")
	caselawSearchCmd.Flags().StringSlice("formation", nil, "formation codes, repeatable")
	caselawSearchCmd.Flags().StringSlice("jurisdiction", nil, "jurisdiction codes: cc, ca, tj, ...")
	caselawSearchCmd.Flags().StringSlice("location", nil, "court codes, repeatable")
	caselawSearchCmd.Flags().StringSlice("publication", nil, "publication circuits: b, r, l, c")
	caselawSearchCmd.Flags().StringSlice("solution", nil, "solution codes, repeatable")
	caselawSearchCmd.Flags().String("from", "", "decision date range start (YYYY-MM-DD)")
	caselawSearchCmd.Flags().String("to", "", "decision date range end (YYYY-MM-DD)")
	caselawSearchCmd.Flags().String("sort", "", "ordering: score, scorepub, date (default scorepub)")
	caselawSearchCmd.Flags().String("order", "", "direction: asc or desc (default desc)")
	caselawSearchCmd.Flags().Int("page-size", 0, "results per page (max 50)")
	caselawSearchCmd.Flags().Int("page", 0, "page number (0-based)")
	caselawSearchCmd.Flags().Bool("resolve-references", false, "resolve cited texts and precedents")
	caselawSearchCmd.Flags().Bool("particular-interest", false, "only decisions flagged as of particular interest")
	caselawSearchCmd.Flags().StringSlice("with-file-of-type", nil, "only decisions with attached files of these types")
	caselawSearchCmd.Flags().Bool("json", false, "output results as JSON")

	caselawDecisionCmd.Flags().String("highlight", "", "query text to highlight in the decision")
	caselawDecisionCmd.Flags().String("operator", "", "highlight term operator: or, and, exact")

	caselawCmd.AddCommand(caselawSearchCmd)
	caselawCmd.AddCommand(caselawDecisionCmd)

	rootCmd.AddCommand(caselawCmd)
}
