package config

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/snippets/internal/common"
	"github.com/spf13/pflag"
)

// Output formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds runtime settings for the snippets CLI.
//
// Fields:
//   - DatabaseDSN: PostgreSQL DSN (pgx), e.g. "dbname=snippets".
//   - LogFile: file receiving leveled diagnostic lines; empty disables logging.
//   - LogLevel: minimum level written to LogFile.
//   - Format: "text" or "json" command output.
type Config struct {
	DatabaseDSN string
	LogFile     string
	LogLevel    string
	Format      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "dbname=snippets"
	c.LogFile = "snippets.log"
	c.LogLevel = "debug"
	c.Format = FormatText
}

// Validate reports settings the CLI cannot work with.
func (c *Config) Validate() error {
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("%w %q: must be %q or %q", common.ErrorInvalidFormat, c.Format, FormatText, FormatJSON)
	}

	level := strings.ToLower(c.LogLevel)
	for _, l := range logLevels {
		if level == l {
			return nil
		}
	}
	return fmt.Errorf("%w %q: must be one of %v", common.ErrorInvalidLogLevel, c.LogLevel, logLevels)
}

// Load builds a Config by applying defaults, then the config file, the
// environment and finally the flags in fs that were explicitly set. fs may
// be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	loadDotEnv()

	path := configPath(fs)
	if path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, err
		}
	}

	parseEnv(cfg)

	if fs != nil {
		if err := applyFlags(cfg, fs); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
