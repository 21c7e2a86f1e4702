package cmd

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	sqlparser "github.com/sqlfront/parser"
)

var lintCmd = &cobra.Command{
	Use:   "lint [glob...]",
	Short: "Lint SQL files for risky or non-portable patterns",
	Long:  "Runs the analysis pass against every file matched by the given globs (or sqlfront.yaml's globs, if none are given) and logs one structured line per finding.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		d, err := effectiveDialect(cfg)
		if err != nil {
			return err
		}

		globs := args
		if len(globs) == 0 {
			globs = cfg.Globs
		}
		if len(globs) == 0 {
			return errors.New("no file globs given and none configured in sqlfront.yaml")
		}

		runID := uuid.New().String()
		runLog := log.WithField("run_id", runID)

		var files []string
		for _, g := range globs {
			matches, err := filepath.Glob(g)
			if err != nil {
				return errors.Wrapf(err, "bad glob %q", g)
			}
			files = append(files, matches...)
		}

		var findingCount, criticalCount int
		for _, path := range files {
			src, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "reading %s", path)
			}
			report := sqlparser.AnalyzeSQLWithOptions(string(src), sqlparser.AnalysisOptions{Dialect: d})
			fileLog := runLog.WithField("file", path)
			for _, f := range report.Findings {
				findingCount++
				entry := fileLog.WithField("code", f.Code).WithField("statement", f.StatementIndex)
				switch f.Severity {
				case sqlparser.SeverityCritical:
					criticalCount++
					entry.Error(f.Message)
				case sqlparser.SeverityWarning:
					entry.Warn(f.Message)
				default:
					entry.Info(f.Message)
				}
			}
		}

		runLog.Infof("linted %d file(s), %d finding(s), %d critical", len(files), findingCount, criticalCount)
		if criticalCount > 0 {
			return errors.Errorf("%d critical finding(s)", criticalCount)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
