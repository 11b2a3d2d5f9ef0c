// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the lexfr CLI.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/lexfr/internal/judilibre"
	"github.com/pdiddy/lexfr/internal/legifrance"
	"github.com/pdiddy/lexfr/internal/piste"
	"github.com/pdiddy/lexfr/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the lexfr CLI.
var rootCmd = &cobra.Command{
	Use:   "lexfr",
	Short: "Query French law: Légifrance texts and JudiLibre case law",
	Long: `lexfr queries the French government legal APIs behind the PISTE platform:
Légifrance for codes, statutes and regulations, and JudiLibre for court
decisions.

Credentials come from PISTE_CLIENT_ID / PISTE_CLIENT_SECRET (or the sandbox
variants), a .env file, or files in the secrets directory.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./lexfr.yaml or ~/.config/lexfr/config.yaml)")
	rootCmd.PersistentFlags().Bool("sandbox", false, "use the PISTE sandbox platform")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "HTTP request timeout")
	rootCmd.PersistentFlags().String("secrets-dir", ".secrets/", "directory holding credential files")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("lexfr")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "lexfr"))
		}
	}

	viper.SetEnvPrefix("LEXFR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// clientConfig merges config-file settings with the persistent flags.
func clientConfig() types.Config {
	flags := rootCmd.PersistentFlags()

	cfg := types.Config{
		Sandbox:    viper.GetBool("sandbox"),
		SecretsDir: viper.GetString("secrets_dir"),
	}
	if sandbox, _ := flags.GetBool("sandbox"); sandbox {
		cfg.Sandbox = true
	}
	if cfg.SecretsDir == "" {
		cfg.SecretsDir, _ = flags.GetString("secrets-dir")
	}

	timeout, _ := flags.GetDuration("timeout")
	userAgent := "lexfr/" + version

	cfg.Legifrance = types.LegifranceConfig{
		HTTPConfig: types.HTTPConfig{Timeout: timeout, UserAgent: userAgent},
		PageSize:   viper.GetInt("legifrance.page_size"),
		Fund:       viper.GetString("legifrance.fund"),
		Sort:       viper.GetString("legifrance.sort"),
	}
	cfg.Judilibre = types.JudilibreConfig{
		HTTPConfig: types.HTTPConfig{Timeout: timeout, UserAgent: userAgent},
		PageSize:   viper.GetInt("judilibre.page_size"),
		Sort:       viper.GetString("judilibre.sort"),
		Order:      viper.GetString("judilibre.order"),
	}
	return cfg
}

func environment(cfg types.Config) piste.Environment {
	if cfg.Sandbox {
		return piste.Sandbox
	}
	return piste.Production
}

func newLegifranceClient() (*legifrance.Client, types.LegifranceConfig, error) {
	cfg := clientConfig()
	env := environment(cfg)

	creds, err := piste.LoadCredentials(env, cfg.SecretsDir)
	if err != nil {
		return nil, cfg.Legifrance, err
	}

	eps := env.Endpoints()
	httpClient := &http.Client{Timeout: cfg.Legifrance.Timeout}
	return &legifrance.Client{
		HTTP:      httpClient,
		BaseURL:   eps.BaseURL,
		Tokens:    piste.NewTokenSource(httpClient, eps.TokenURL, creds),
		UserAgent: cfg.Legifrance.UserAgent,
	}, cfg.Legifrance, nil
}

func newJudilibreClient() (*judilibre.Client, types.JudilibreConfig, error) {
	cfg := clientConfig()
	env := environment(cfg)

	creds, err := piste.LoadCredentials(env, cfg.SecretsDir)
	if err != nil {
		return nil, cfg.Judilibre, err
	}

	eps := env.Endpoints()
	httpClient := &http.Client{Timeout: cfg.Judilibre.Timeout}
	return &judilibre.Client{
		HTTP:      httpClient,
		BaseURL:   eps.BaseURL,
		Tokens:    piste.NewTokenSource(httpClient, eps.TokenURL, creds),
		UserAgent: cfg.Judilibre.UserAgent,
	}, cfg.Judilibre, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
