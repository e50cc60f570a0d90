// Package cli implements the snippets command line: put, get, catalog and
// search over the snippet store.
//
// Each invocation resolves configuration (see package config), opens the
// log file and one PostgreSQL connection, runs a single command and closes
// everything again. Results are printed as text or, with --format json, as
// indented JSON on stdout. Errors go to stderr and map to exit codes (see
// exitcodes.go).
package cli
