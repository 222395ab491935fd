// Package config handles loading and parsing of compline configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/compline/compline/internal/cerrors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// SupportedConfigNames contains supported configuration file names (in order of preference)
var SupportedConfigNames = []string{
	".compline.yml",
	".compline.yaml",
	".compline.toml",
	".compline.json",
}

// Matcher names accepted in the matcher field.
const (
	MatcherSubstring = "substring"
	MatcherFuzzy     = "fuzzy"
)

// DefaultSeparator splits the line into words when the config is silent.
const DefaultSeparator = " "

// WordEntry is one static completion word with an optional description.
type WordEntry struct {
	Value string
	Doc   string
}

// SegmentConfig describes how one position of the line is completed.
type SegmentConfig struct {
	// Words is a static word list. Each element is either a plain string or
	// an object with value/doc keys.
	Words []interface{} `koanf:"words"`
	// Binaries enables executable discovery for this position.
	Binaries bool `koanf:"binaries"`
	// Path overrides the search path used by Binaries. Templated.
	Path string `koanf:"path"`
	// Files enables filesystem path completion for this position.
	Files bool `koanf:"files"`
	// Root anchors relative file queries. Templated. Empty means prefix
	// switching over ./, ~/, / and the working directory.
	Root string `koanf:"root"`
	// Extensions keeps only files with one of these suffixes.
	Extensions []string `koanf:"extensions"`
}

// GetWords returns the normalized word list.
func (s *SegmentConfig) GetWords() []WordEntry {
	result := make([]WordEntry, 0, len(s.Words))
	for _, value := range s.Words {
		switch v := value.(type) {
		case string:
			result = append(result, WordEntry{Value: v})
		case map[string]interface{}:
			entry := WordEntry{}
			if val, ok := v["value"].(string); ok {
				entry.Value = val
			}
			if doc, ok := v["doc"].(string); ok {
				entry.Doc = doc
			}
			if entry.Value != "" {
				result = append(result, entry)
			}
		}
	}
	return result
}

// Empty reports whether the segment enables nothing.
func (s *SegmentConfig) Empty() bool {
	return len(s.Words) == 0 && !s.Binaries && !s.Files
}

// Config represents a compline configuration
type Config struct {
	Separator string        `koanf:"separator"`
	Matcher   string        `koanf:"matcher"`
	Command   SegmentConfig `koanf:"command"`
	Arguments SegmentConfig `koanf:"arguments"`

	// ConfigDir is the directory the config was loaded from; it feeds
	// template expansion.
	ConfigDir string
}

// Loader loads configuration files
type Loader struct{}

// New creates a new config loader
func New() *Loader {
	return &Loader{}
}

// Default returns the configuration used when no config file exists:
// executables for the first word, filesystem paths for the rest.
func Default() *Config {
	return &Config{
		Separator: DefaultSeparator,
		Matcher:   MatcherSubstring,
		Command:   SegmentConfig{Binaries: true},
		Arguments: SegmentConfig{Files: true},
	}
}

// Find looks for a supported config file in dir, returning its path or ""
// when none exists.
func Find(dir string) string {
	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads and parses a config file, applying defaults for omitted fields.
func (l *Loader) Load(path string) (*Config, error) {
	k := koanf.New(".")

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, cerrors.NewConfigurationError(path, "failed to parse config", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, cerrors.NewConfigurationError(path, "failed to decode config", err)
	}

	if cfg.Separator == "" {
		cfg.Separator = DefaultSeparator
	}
	if cfg.Matcher == "" {
		cfg.Matcher = MatcherSubstring
	}
	cfg.ConfigDir = filepath.Dir(path)

	return cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch {
	case strings.HasSuffix(path, ".yml"), strings.HasSuffix(path, ".yaml"):
		return yaml.Parser(), nil
	case strings.HasSuffix(path, ".toml"):
		return toml.Parser(), nil
	case strings.HasSuffix(path, ".json"):
		return json.Parser(), nil
	default:
		return nil, cerrors.NewConfigurationError(path, fmt.Sprintf("unsupported config format: %s", filepath.Ext(path)), nil)
	}
}
