package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a remap profile file.
//
//	mappings: mappings/1.21.1.tiny
//	query: named
//	target: official
//	descriptor_cache: 512
type Profile struct {
	// Mappings is the path of the TINY v2 mapping file.
	Mappings string `yaml:"mappings,omitempty"`

	// Query is the namespace incoming identifiers are written in.
	Query string `yaml:"query,omitempty"`

	// Target is the namespace results are translated into.
	Target string `yaml:"target,omitempty"`

	// DescriptorCache is the descriptor translation cache size.
	DescriptorCache int `yaml:"descriptor_cache,omitempty"`
}

// Default profile values, applied for fields the file leaves unset.
const (
	DefaultQuery           = "named"
	DefaultTarget          = "official"
	DefaultDescriptorCache = 512
)

// LoadFile loads and parses a YAML profile from the given path.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}

	return p, nil
}

// Parse parses YAML data into a Profile.
func Parse(data []byte) (*Profile, error) {
	var p Profile

	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	applyDefaults(&p)

	return &p, nil
}

// Default returns a profile with every field at its default.
func Default() *Profile {
	p := &Profile{}
	applyDefaults(p)

	return p
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(p *Profile) {
	if p.Query == "" {
		p.Query = DefaultQuery
	}

	if p.Target == "" {
		p.Target = DefaultTarget
	}

	if p.DescriptorCache <= 0 {
		p.DescriptorCache = DefaultDescriptorCache
	}
}
