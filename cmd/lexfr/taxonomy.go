// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/lexfr/internal/judilibre"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy [id]",
	Short: "List JudiLibre search vocabularies",
	Long: `Taxonomy lists the vocabularies used by caselaw search filters. Without
arguments it prints the available taxonomy ids. With an id it fetches the
entries of that vocabulary, e.g. "lexfr taxonomy chamber" lists the chamber
codes.

Use --key to resolve a code into its label, or --value to resolve a label
into its code; the two are mutually exclusive.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTaxonomy,
}

func runTaxonomy(cmd *cobra.Command, args []string) error {
	q := judilibre.TaxonomyQuery{}
	if len(args) > 0 {
		q.ID = args[0]
	}
	q.Key, _ = cmd.Flags().GetString("key")
	q.Value, _ = cmd.Flags().GetString("value")
	q.ContextValue, _ = cmd.Flags().GetString("context")

	// The catalog is static; print it without building a client.
	if q.IsEmpty() {
		ids := make([]string, 0, len(judilibre.TaxonomyIDs))
		for id := range judilibre.TaxonomyIDs {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Fprintf(os.Stdout, "%-14s  %s\n", id, judilibre.TaxonomyIDs[id])
		}
		return nil
	}

	client, _, err := newJudilibreClient()
	if err != nil {
		return err
	}

	result, err := client.Taxonomy(context.Background(), q)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func init() {
	taxonomyCmd.Flags().String("key", "", "resolve this code into its label (requires an id)")
	taxonomyCmd.Flags().String("value", "", "resolve this label into its code (requires an id)")
	taxonomyCmd.Flags().String("context", "", "jurisdiction context for the lookup, e.g. cc")

	rootCmd.AddCommand(taxonomyCmd)
}
