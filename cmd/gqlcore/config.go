package main

import (
	"os"

	"github.com/goccy/go-yaml"
)

// config holds the optional overrides §6 lets a caller supply instead
// of hardcoding the parser's limits: recursion_limit/token_limit, and
// which file names should be treated as schema documents.
type config struct {
	RecursionLimit int      `yaml:"recursion_limit"`
	TokenLimit     int      `yaml:"token_limit"`
	SchemaFiles    []string `yaml:"schema_files"`
}

func loadConfig(path string) (config, error) {
	var c config
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, err
	}
	return c, nil
}
