package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrEmptyJournalDSN = errors.New("journal config: dsn must not be empty")

// JournalConfig holds the settings for connecting a journal store,
// typically loaded from a YAML file.
type JournalConfig struct {
	DSN       string `yaml:"dsn"`
	TableName string `yaml:"table_name"`
}

// LoadJournalConfig reads a JournalConfig from a YAML file.
//
// The table name is optional; when empty the journal store falls back to its
// default. An empty DSN is an error.
func LoadJournalConfig(path string) (JournalConfig, error) {
	raw, readErr := os.ReadFile(path)
	if readErr != nil {
		return JournalConfig{}, fmt.Errorf("journal config: reading %s: %w", path, readErr)
	}

	var cfg JournalConfig
	if unmarshalErr := yaml.Unmarshal(raw, &cfg); unmarshalErr != nil {
		return JournalConfig{}, fmt.Errorf("journal config: parsing %s: %w", path, unmarshalErr)
	}

	if cfg.DSN == "" {
		return JournalConfig{}, ErrEmptyJournalDSN
	}

	return cfg, nil
}
