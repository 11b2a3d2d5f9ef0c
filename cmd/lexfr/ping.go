// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check connectivity and credentials against Légifrance",
	Long: `Ping exchanges credentials for a token and calls the Légifrance search
application's ping endpoint. A success confirms the credentials and the
selected platform (production or sandbox) are usable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newLegifranceClient()
		if err != nil {
			return err
		}
		if err := client.Ping(context.Background()); err != nil {
			return err
		}
		fmt.Println("pong")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
