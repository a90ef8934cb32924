package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the keys of an enumext.yaml project file.
type fileConfig struct {
	Out      string   `yaml:"out"`
	Packages []string `yaml:"packages"`
	Types    []string `yaml:"types"`
	Random   bool     `yaml:"random"`
}

// loadFileConfig reads the project config. A missing file is not an error;
// the CLI falls back to flags alone.
func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}
