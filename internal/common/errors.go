// Package common defines sentinel errors shared by the repository, service
// and CLI layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Configuration errors.
	ErrorInvalidFormat   = errors.New("invalid output format")
	ErrorInvalidLogLevel = errors.New("invalid log level")
	ErrorConfigFile      = errors.New("unsupported config file")

	// Input errors.
	ErrorEmptySnippet = errors.New("empty snippet")
)
