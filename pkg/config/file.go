package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk configuration format:
//
//	modulus: 6
//	elements: [1, 2, 3]
//	deduplicate: false
//	strict: false
type File struct {
	Modulus     *int  `yaml:"modulus"`
	Elements    []int `yaml:"elements"`
	Deduplicate bool  `yaml:"deduplicate"`
	Strict      bool  `yaml:"strict"`
}

// LoadFile reads and decodes a YAML config file. Unknown keys are rejected.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return ParseFile(data)
}

// ParseFile decodes a YAML config document.
func ParseFile(data []byte) (*File, error) {
	f := &File{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return f, nil
}
