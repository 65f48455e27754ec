package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file at the data directory root.
const FileName = "tallybook.yaml"

// Config represents the top-level tallybook.yaml configuration.
type Config struct {
	Profile  ProfileConfig  `yaml:"profile"`
	Currency CurrencyConfig `yaml:"currency"`
	Git      GitConfig      `yaml:"git"`
}

// ProfileConfig identifies whose records these are.
type ProfileConfig struct {
	Name string `yaml:"name"`
}

// CurrencyConfig controls how amounts are rendered in reports and exports.
type CurrencyConfig struct {
	Symbol string `yaml:"symbol"`
	Code   string `yaml:"code"`
}

// GitConfig controls git integration for the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a tallybook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data directory.
func Default(profileName string) *Config {
	return &Config{
		Profile: ProfileConfig{
			Name: profileName,
		},
		Currency: CurrencyConfig{
			Symbol: "$",
			Code:   "USD",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Tallybook",
			AuthorEmail: "tallybook@localhost",
		},
	}
}
