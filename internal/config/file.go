package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/snippets/internal/common"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of a config file. Only non-empty fields
// override earlier values.
type FileConfig struct {
	DatabaseDSN string `json:"database_dsn" yaml:"database_dsn"`
	LogFile     string `json:"log_file" yaml:"log_file"`
	LogLevel    string `json:"log_level" yaml:"log_level"`
	Format      string `json:"format" yaml:"format"`
}

// parseFile loads path into config. The decoder is picked by extension.
func parseFile(config *Config, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &FileConfig{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(b, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, c)
	default:
		return fmt.Errorf("%w: %q (want .json, .yaml or .yml)", common.ErrorConfigFile, path)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.LogFile != "" {
		config.LogFile = c.LogFile
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.Format != "" {
		config.Format = c.Format
	}
	return nil
}
