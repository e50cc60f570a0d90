// Package config loads runtime configuration for the snippets CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c/--config (or SNIPPETS_CONFIG).
//     ".json" files are decoded with encoding/json, ".yaml"/".yml" with yaml.v3.
//  3. Environment variables; a .env file in the working directory is loaded
//     first and never overrides variables already set.
//  4. Command-line flags that were explicitly set.
//
// Environment variables
//
//	SNIPPETS_DSN        PostgreSQL DSN (URL or keyword/value form)
//	SNIPPETS_LOG_FILE   diagnostic log file, empty to disable
//	SNIPPETS_LOG_LEVEL  debug | info | warn | error
//	SNIPPETS_FORMAT     text | json
//
// # File schema
//
//	{
//	  "database_dsn": "dbname=snippets",
//	  "log_file": "snippets.log",
//	  "log_level": "debug",
//	  "format": "text"
//	}
package config
