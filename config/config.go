// Package config loads the settings of the interactive front end from a
// YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults
const (
	DefaultPrompt       = "miischeme> "
	DefaultContinuation = "       ... "
	DefaultLanguage     = "rn"
	DefaultHistory      = "~/.miischeme_history"
	DefaultMaxDepth     = 10000
)

// DefaultPath is where the front end looks for a configuration file when
// none is given.
const DefaultPath = "~/.miischeme.yaml"

// Config holds the front end settings.
type Config struct {
	Prompt       string `yaml:"prompt"`
	Continuation string `yaml:"continuation"`
	Language     string `yaml:"language"`
	History      string `yaml:"history"`
	MaxDepth     int    `yaml:"max_depth"`
	Debug        bool   `yaml:"debug"`

	// Path is the file the settings were read from, empty when the
	// defaults were used.
	Path string `yaml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Prompt:       DefaultPrompt,
		Continuation: DefaultContinuation,
		Language:     DefaultLanguage,
		History:      DefaultHistory,
		MaxDepth:     DefaultMaxDepth,
	}
}

// Load reads settings from path. Fields missing from the file keep their
// defaults, and a missing file yields the defaults.
func Load(path string) (*Config, error) {
	conf := Default()
	if path == "" {
		return conf, nil
	}

	abs, err := ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}

	file, err := os.Open(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return conf, nil
		}
		return nil, err
	}
	defer file.Close()

	if err := conf.Decode(file); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", abs, err)
	}

	conf.Path = abs
	return conf, nil
}

// Decode reads YAML settings from r on top of the current ones.
func (c *Config) Decode(r io.Reader) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return c.validate()
}

// Write encodes the settings as YAML.
func (c *Config) Write(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(c); err != nil {
		return err
	}
	return encoder.Close()
}

// HistoryPath returns the history file with the home directory expanded.
func (c *Config) HistoryPath() (string, error) {
	if c.History == "" {
		return "", nil
	}
	return ExpandHome(c.History)
}

func (c *Config) validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	if strings.TrimSpace(c.Language) == "" {
		c.Language = DefaultLanguage
	}
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
	if c.Continuation == "" {
		c.Continuation = DefaultContinuation
	}
	return nil
}

// ExpandHome replaces a leading "~" with the home directory of the current
// user.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
