package spec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest represents the root of a YAML resolver manifest file.
// It is a second specification source, read after all source directives.
type Manifest struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Output configures where and under which package artifacts land.
	Output OutputConfig `yaml:"output,omitempty"`

	// Resolvers is the ordered list of declared specifications.
	Resolvers []ResolverEntry `yaml:"resolvers,omitempty"`

	// source is the path the manifest was loaded from; it becomes the
	// scoping unit of every entry.
	source string
}

// OutputConfig holds generation output settings.
type OutputConfig struct {
	// Dir is the directory generated files are written to.
	Dir string `yaml:"dir,omitempty"`
	// Package overrides the generated package name.
	Package string `yaml:"package,omitempty"`
}

// ResolverEntry is one manifest-declared specification.
type ResolverEntry struct {
	Property string   `yaml:"property"`
	Include  []string `yaml:"include,omitempty"`
	Exclude  []string `yaml:"exclude,omitempty"`

	line   int
	column int
}

// UnmarshalYAML decodes the entry and records its node position, which
// serves as the declaration site in diagnostics.
func (e *ResolverEntry) UnmarshalYAML(node *yaml.Node) error {
	type plain ResolverEntry

	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}

	*e = ResolverEntry(p)
	e.line = node.Line
	e.column = node.Column

	return nil
}

// LoadFile loads and parses a YAML manifest from the given path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(data, path)
}

// Parse parses YAML data into a Manifest. The source path is recorded as
// the scoping unit for all entries.
func Parse(data []byte, source string) (*Manifest, error) {
	var mf Manifest

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	mf.source = source
	applyDefaults(&mf)

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *Manifest) {
	if mf.Version == "" {
		mf.Version = "1"
	}
}

// Specs converts the manifest entries into resolver specifications,
// preserving document order. Entries with an empty property name are
// dropped silently.
func (mf *Manifest) Specs() []Resolver {
	var specs []Resolver

	for _, e := range mf.Resolvers {
		if e.Property == "" {
			continue
		}

		specs = append(specs, Resolver{
			Property: e.Property,
			Include:  trimBlank(e.Include),
			Exclude:  trimBlank(e.Exclude),
			Unit:     mf.source,
			Location: formatLocation(mf.source, e.line, e.column),
		})
	}

	return specs
}

// Marshal serializes a Manifest to YAML.
func Marshal(mf *Manifest) ([]byte, error) {
	return yaml.Marshal(mf)
}

// WriteFile writes a Manifest to the given path.
func WriteFile(mf *Manifest, path string) error {
	data, err := Marshal(mf)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}
