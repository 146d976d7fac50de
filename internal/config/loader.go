package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a pagegen.yaml file, parses it into a Manifest struct,
// and applies default values for optional fields.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses raw YAML bytes into a Manifest struct and applies defaults.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest YAML: %w", err)
	}
	ApplyDefaults(&m)
	return &m, nil
}
