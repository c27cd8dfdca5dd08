package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/excerptkit/excerpt"
	"github.com/randalmurphal/excerptkit/tokens"
)

// Settings configures excerpt extraction for an embedding application.
type Settings struct {
	// MaxTokens is the hard token budget for a returned excerpt.
	MaxTokens int `yaml:"max_tokens" toml:"max_tokens" json:"max_tokens"`

	// MaxLines is the maximum line span of a context window.
	MaxLines int `yaml:"max_lines" toml:"max_lines" json:"max_lines"`

	// CharsPerToken tunes the estimating counter. Zero keeps the
	// default ratio.
	CharsPerToken float64 `yaml:"chars_per_token" toml:"chars_per_token" json:"chars_per_token,omitempty"`

	// Model, when set, derives MaxTokens from the model's context
	// window instead of the explicit value.
	Model string `yaml:"model" toml:"model" json:"model,omitempty"`
}

// Default returns settings matching the library defaults.
func Default() Settings {
	return Settings{
		MaxTokens: excerpt.DefaultMaxTokens,
		MaxLines:  excerpt.DefaultMaxLines,
	}
}

// Load reads settings from a YAML or TOML file, dispatching on the
// file extension. Fields absent from the file keep their defaults; the
// result is validated before it is returned.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	s := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return Settings{}, fmt.Errorf("unsupported settings format %q (want .yaml, .yml, or .toml)", ext)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks that the settings describe a usable configuration.
func (s Settings) Validate() error {
	if s.MaxTokens < 1 {
		return fmt.Errorf("max_tokens must be positive, got %d", s.MaxTokens)
	}
	if s.MaxLines < 1 {
		return fmt.Errorf("max_lines must be positive, got %d", s.MaxLines)
	}
	if s.CharsPerToken < 0 {
		return fmt.Errorf("chars_per_token must not be negative, got %v", s.CharsPerToken)
	}
	return nil
}

// Options converts the settings into builder options. When Model is
// set, the token budget is the model's excerpt share rather than the
// explicit MaxTokens value.
func (s Settings) Options() excerpt.Options {
	maxTokens := s.MaxTokens
	if s.Model != "" {
		maxTokens = tokens.NewContextBudgetForModel(s.Model).Excerpt
	}
	return excerpt.Options{
		MaxTokens: maxTokens,
		MaxLines:  s.MaxLines,
	}
}

// Counter returns the token counter implied by the settings.
func (s Settings) Counter() tokens.Counter {
	if s.CharsPerToken > 0 {
		return tokens.NewEstimatingCounterWithRatio(s.CharsPerToken)
	}
	return tokens.NewEstimatingCounter()
}
