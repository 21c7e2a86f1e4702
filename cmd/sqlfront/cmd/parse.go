package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	sqlparser "github.com/sqlfront/parser"
)

var dumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse <file> [file...]",
	Short: "Parse SQL files and report the statement count, or --dump the AST",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		d, err := effectiveDialect(cfg)
		if err != nil {
			return err
		}

		var failed bool
		for _, path := range args {
			src, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "reading %s", path)
			}
			stmts, err := sqlparser.Parse(string(src), d, cfg.Options())
			if err != nil {
				log.WithField("file", path).Errorf("parse failed: %v", err)
				failed = true
				continue
			}
			log.WithField("file", path).Infof("parsed %d statement(s)", len(stmts))
			if dumpAST {
				for i, stmt := range stmts {
					fmt.Printf("-- %s [%d] --\n%s\n", path, i, repr.String(stmt, repr.Indent("  ")))
				}
			}
		}
		if failed {
			return errors.New("one or more files failed to parse")
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&dumpAST, "dump", false, "print the parsed AST for each statement")
	rootCmd.AddCommand(parseCmd)
}
