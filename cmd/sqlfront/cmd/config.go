package cmd

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sqlfront/parser/dialect"
	"github.com/sqlfront/parser/parser"
)

// Config is the sqlfront.yaml project configuration: the dialect and
// parse options to apply when none are given on the command line, plus
// the file globs a bare `sqlfront lint` scans.
type Config struct {
	Dialect        string   `yaml:"dialect"`
	RecursionLimit uint     `yaml:"recursion_limit"`
	TrailingCommas bool     `yaml:"trailing_commas"`
	Globs          []string `yaml:"globs"`
}

// LoadConfig reads path if it exists, or returns library defaults if it
// doesn't (a missing sqlfront.yaml is not an error: the CLI works
// standalone against explicit file arguments and --dialect).
func LoadConfig(path string) (Config, error) {
	cfg := Config{Dialect: "generic", RecursionLimit: parser.DefaultOptions().RecursionLimit}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "reading %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing %s", path)
	}
	return cfg, nil
}

// Options builds parser.Options from the config, with TrailingCommas and
// RecursionLimit overridable by future flags.
func (c Config) Options() parser.Options {
	opts := parser.DefaultOptions()
	opts.TrailingCommas = c.TrailingCommas
	if c.RecursionLimit > 0 {
		opts.RecursionLimit = c.RecursionLimit
	}
	return opts
}

// resolveDialect maps a dialect name (CLI flag or config file value) to
// a concrete dialect.Dialect, defaulting to Generic for an empty name.
func resolveDialect(name string) (dialect.Dialect, error) {
	switch name {
	case "", "generic":
		return dialect.Generic(), nil
	case "postgresql", "postgres":
		return dialect.Postgres(), nil
	case "mysql":
		return dialect.MySQL(), nil
	case "mssql", "sqlserver":
		return dialect.MSSQL(), nil
	case "sqlite":
		return dialect.SQLite(), nil
	case "snowflake":
		return dialect.Snowflake(), nil
	case "bigquery":
		return dialect.BigQuery(), nil
	case "redshift":
		return dialect.Redshift(), nil
	case "clickhouse":
		return dialect.ClickHouse(), nil
	case "duckdb":
		return dialect.DuckDB(), nil
	case "hive":
		return dialect.Hive(), nil
	case "databricks":
		return dialect.Databricks(), nil
	default:
		return nil, errors.Errorf("unknown dialect %q", name)
	}
}

// effectiveDialect resolves the dialect to use for a command invocation:
// the --dialect flag wins over the config file's dialect.
func effectiveDialect(cfg Config) (dialect.Dialect, error) {
	name := dialectFlag
	if name == "" {
		name = cfg.Dialect
	}
	return resolveDialect(name)
}
