package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvConfig   = "SNIPPETS_CONFIG"
	EnvDSN      = "SNIPPETS_DSN"
	EnvLogFile  = "SNIPPETS_LOG_FILE"
	EnvLogLevel = "SNIPPETS_LOG_LEVEL"
	EnvFormat   = "SNIPPETS_FORMAT"
)

// loadDotEnv reads ./.env if present. Variables already in the environment win.
func loadDotEnv() {
	_ = godotenv.Load()
}

// parseEnv overlays values from SNIPPETS_* variables. A variable that is set
// but empty still applies, so SNIPPETS_LOG_FILE= disables logging.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv(EnvDSN); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		config.LogFile = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		config.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvFormat); ok {
		config.Format = v
	}
}
