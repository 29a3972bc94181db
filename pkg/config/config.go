// Package config loads sharpen.yaml, the optional per-project settings file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/raymyers/sharpen/pkg/lexer"
)

// DefaultFile is read from the working directory when no path is given
const DefaultFile = "sharpen.yaml"

// Config holds the harness settings. Flags override file values.
type Config struct {
	OutDir    string   `yaml:"out_dir"`
	Extension string   `yaml:"extension"`
	Trace     bool     `yaml:"trace"`
	Suppress  []string `yaml:"suppress"` // token type names, e.g. NEWLINE
}

// Default returns the built-in settings
func Default() *Config {
	suppress := make([]string, 0, len(lexer.Trivia))
	for _, t := range lexer.Trivia {
		suppress = append(suppress, t.String())
	}
	return &Config{
		OutDir:    ".",
		Extension: ".cs",
		Suppress:  suppress,
	}
}

// Load reads path over the defaults. A missing DefaultFile is not an error;
// any other missing path is.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if _, err := cfg.SuppressedKinds(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// SuppressedKinds resolves Suppress to token types
func (c *Config) SuppressedKinds() ([]lexer.TokenType, error) {
	kinds := make([]lexer.TokenType, 0, len(c.Suppress))
	for _, name := range c.Suppress {
		t, ok := lexer.LookupTokenType(name)
		if !ok {
			return nil, fmt.Errorf("unknown token kind %q in suppress list", name)
		}
		kinds = append(kinds, t)
	}
	return kinds, nil
}
