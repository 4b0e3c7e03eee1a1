package overrides

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tokenkit/tokenkit/tokens"
)

// Sentinel errors for override loading.
var (
	// ErrUnsupportedFormat indicates the file extension maps to no known
	// override format.
	ErrUnsupportedFormat = errors.New("unsupported override file format")

	// ErrInvalidOverride indicates the file content does not describe a
	// valid token table.
	ErrInvalidOverride = errors.New("invalid override table")
)

// record is the structured entry shape in override files.
type record struct {
	Prompt     *float64 `yaml:"prompt" toml:"prompt"`
	Completion *float64 `yaml:"completion" toml:"completion"`
	Context    *float64 `yaml:"context" toml:"context"`
	Output     *float64 `yaml:"output" toml:"output"`
}

func (r record) config() tokens.TokenConfig {
	return tokens.TokenConfig{
		Prompt:     r.Prompt,
		Completion: r.Completion,
		Context:    r.Context,
		Output:     r.Output,
	}
}

// Load reads an override table from a YAML (.yaml, .yml) or TOML (.toml)
// file. Entry order follows the file, so operators author
// general-before-specific just like the built-in tables. Keys are
// lowercased on load.
func Load(path string) (*tokens.TokenMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading override file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ParseYAML parses an override table from YAML, preserving document order.
// Each entry is either a bare number or a record with prompt, completion,
// context, and output fields:
//
//	gpt-4: 8192
//	gpt-4-32k:
//	  context: 32768
//	  output: 4096
//	system_default: 4096
func ParseYAML(data []byte) (*tokens.TokenMap, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOverride, err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		// Empty file: no overrides.
		return tokens.NewTokenMap(), nil
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping", ErrInvalidOverride)
	}

	m := tokens.NewTokenMap()
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valueNode := mapping.Content[i], mapping.Content[i+1]
		key := strings.ToLower(keyNode.Value)

		switch valueNode.Kind {
		case yaml.ScalarNode:
			var n float64
			if err := valueNode.Decode(&n); err != nil {
				return nil, fmt.Errorf("%w: entry %q: %v", ErrInvalidOverride, key, err)
			}
			m.Set(key, tokens.Limit(n))
		case yaml.MappingNode:
			if key == tokens.SystemDefaultKey {
				return nil, fmt.Errorf("%w: %s must be a plain number", ErrInvalidOverride, tokens.SystemDefaultKey)
			}
			var r record
			if err := valueNode.Decode(&r); err != nil {
				return nil, fmt.Errorf("%w: entry %q: %v", ErrInvalidOverride, key, err)
			}
			m.Set(key, r.config())
		default:
			return nil, fmt.Errorf("%w: entry %q: expected a number or a record", ErrInvalidOverride, key)
		}
	}
	return m, nil
}

// ParseTOML parses an override table from TOML, preserving file order.
// Bare numbers are top-level values; records are tables:
//
//	gpt-4 = 8192
//	system_default = 4096
//
//	[gpt-4-32k]
//	context = 32768
//	output = 4096
func ParseTOML(data []byte) (*tokens.TokenMap, error) {
	var raw map[string]toml.Primitive
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOverride, err)
	}

	m := tokens.NewTokenMap()
	for _, tomlKey := range md.Keys() {
		if len(tomlKey) != 1 {
			continue // nested keys are handled with their table
		}
		name := tomlKey[0]
		key := strings.ToLower(name)
		prim := raw[name]

		var n float64
		if err := md.PrimitiveDecode(prim, &n); err == nil {
			m.Set(key, tokens.Limit(n))
			continue
		}

		if key == tokens.SystemDefaultKey {
			return nil, fmt.Errorf("%w: %s must be a plain number", ErrInvalidOverride, tokens.SystemDefaultKey)
		}
		var r record
		if err := md.PrimitiveDecode(prim, &r); err != nil {
			return nil, fmt.Errorf("%w: entry %q: expected a number or a record", ErrInvalidOverride, key)
		}
		m.Set(key, r.config())
	}
	return m, nil
}

// Layer merges an override table over a base table. Base entries keep
// their order; override entries follow, so the reverse pattern scan
// prefers them. A key present in both keeps the base position with the
// override value, which still shadows any base pattern it duplicates.
func Layer(base, override *tokens.TokenMap) *tokens.TokenMap {
	merged := tokens.NewTokenMap()
	for _, m := range []*tokens.TokenMap{base, override} {
		if m == nil {
			continue
		}
		for _, key := range m.Keys() {
			v, _ := m.Get(key)
			merged.Set(key, v)
		}
	}
	return merged
}
