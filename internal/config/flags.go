package config

import (
	"os"

	"github.com/spf13/pflag"
)

// Flag names shared by RegisterFlags and Load.
const (
	FlagConfig   = "config"
	FlagDSN      = "dsn"
	FlagLogFile  = "log-file"
	FlagLogLevel = "log-level"
	FlagFormat   = "format"
)

// RegisterFlags adds the global configuration flags to fs:
//
//	-c, --config string   config file (.json, .yaml, .yml)
//	-d, --dsn string      PostgreSQL DSN
//	    --log-file string diagnostic log file ("" disables logging)
//	    --log-level string
//	    --format string   text | json
func RegisterFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(FlagConfig, "c", "", "path to config file (.json, .yaml, .yml)")
	fs.StringP(FlagDSN, "d", d.DatabaseDSN, "PostgreSQL DSN")
	fs.String(FlagLogFile, d.LogFile, `diagnostic log file ("" disables logging)`)
	fs.String(FlagLogLevel, d.LogLevel, "log level (debug|info|warn|error)")
	fs.String(FlagFormat, d.Format, "output format (text|json)")
}

// configPath returns the config file named by --config, falling back to
// SNIPPETS_CONFIG.
func configPath(fs *pflag.FlagSet) string {
	if fs != nil {
		if fl := fs.Lookup(FlagConfig); fl != nil && fl.Changed {
			return fl.Value.String()
		}
	}
	return os.Getenv(EnvConfig)
}

// applyFlags copies explicitly set flags into config. Flags left at their
// defaults do not clobber values from the file or the environment.
func applyFlags(config *Config, fs *pflag.FlagSet) error {
	targets := map[string]*string{
		FlagDSN:      &config.DatabaseDSN,
		FlagLogFile:  &config.LogFile,
		FlagLogLevel: &config.LogLevel,
		FlagFormat:   &config.Format,
	}

	for name, dst := range targets {
		if !fs.Changed(name) {
			continue
		}
		v, err := fs.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}
	return nil
}
