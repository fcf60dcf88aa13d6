package rules

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a rules file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported rules file extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// LoadFile loads and parses a rules file from the given path.
func LoadFile(path string) (*RuleSet, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	return Parse(data, format)
}

// Parse decodes rules data in the given format.
func Parse(data []byte, format Format) (*RuleSet, error) {
	var rs RuleSet

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		// An empty document decodes to an empty set; Validate reports it.
		if err := dec.Decode(&rs); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse rules YAML: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &rs)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rules TOML: %w", err)
		}

		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to parse rules TOML: unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("unknown rules format %q", format)
	}

	applyDefaults(&rs)

	return &rs, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(rs *RuleSet) {
	if rs.Version == "" {
		rs.Version = "1"
	}

	for i := range rs.Rules {
		r := &rs.Rules[i]
		if r.Name == "" {
			r.Name = r.Collection
		}
	}
}

// Marshal serializes a RuleSet to YAML.
func Marshal(rs *RuleSet) ([]byte, error) {
	return yaml.Marshal(rs)
}
