package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	rootCmd = &cobra.Command{
		Use:          "sqlfront",
		Short:        "sqlfront",
		SilenceUsage: true,
		Long:         `A dialect-aware SQL tokenizer and Pratt parser, exposed as a CLI for parsing, AST inspection, and linting.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			log.SetFormatter(&logrus.TextFormatter{
				DisableColors: !term.IsTerminal(int(os.Stdout.Fd())),
			})
		},
	}

	dialectFlag string
	configPath  string
	verbose     bool

	log = logrus.StandardLogger()
)

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVar(&dialectFlag, "dialect", "", "SQL dialect to parse as (generic, postgresql, mysql, mssql, sqlite, snowflake, bigquery, redshift, clickhouse, duckdb, hive, databricks); overrides sqlfront.yaml")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "sqlfront.yaml", "path to the project config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	return rootCmd.Execute()
}
