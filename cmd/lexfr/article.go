// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var articleCmd = &cobra.Command{
	Use:   "article <id>",
	Short: "Fetch a Légifrance text or article by id",
	Long: `Article fetches one document from Légifrance by its id. The id prefix
selects the endpoint: LEGIARTI fetches a single article, LEGITEXT a code
part, JURITEXT a court decision, CNILTEXT a CNIL deliberation, KALITEXT and
KALIARTI collective agreement texts, ACCOTEXT a company agreement. Other ids
are treated as official journal container ids.

The response is printed as JSON with empty fields removed.`,
	Args: cobra.ExactArgs(1),
	RunE: runArticle,
}

func runArticle(cmd *cobra.Command, args []string) error {
	client, _, err := newLegifranceClient()
	if err != nil {
		return err
	}

	doc, err := client.Consult(context.Background(), args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(articleCmd)
}
