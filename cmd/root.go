// Package cmd is the folio command line: the HTTP server and its
// maintenance commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Personal portfolio site with an admin content API",
	Long: `folio serves a portfolio page and a JSON content API backed by SQLite or
PostgreSQL. Content is edited through authenticated admin endpoints.

Configuration is read from a YAML file (--config or CONFIG_PATH, default
./config.yaml) and environment variables, environment taking precedence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFile != "" {
			return os.Setenv("CONFIG_PATH", configFile)
		}
		return nil
	},
	RunE: runServe,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $CONFIG_PATH or ./config.yaml)")
}
