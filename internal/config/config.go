package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable pointing at the config file.
const EnvConfigPath = "MANGO_CONFIG"

const (
	DumpNone = ""
	DumpAst  = "ast"
)

var ErrInvalidDump = errors.New("invalid dump mode")

// Config holds the host program settings, read from YAML:
//
//	prompt: "> "
//	history_file: /tmp/.gomango_history
//	timing: true
//	dump: ast
type Config struct {
	// Prompt is the REPL prompt.
	Prompt string `yaml:"prompt"`
	// HistoryFile persists REPL history when set.
	HistoryFile string `yaml:"history_file"`
	// Timing reports the run duration on stderr.
	Timing bool `yaml:"timing"`
	// Dump prints the parsed tree before running it.
	Dump string `yaml:"dump"`
}

func Default() *Config {
	return &Config{Prompt: "> "}
}

// Load reads the file named by $MANGO_CONFIG, or returns the defaults when unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Dump {
	case DumpNone, DumpAst:
		return nil
	}
	return fmt.Errorf("%w %q, expected %q or empty", ErrInvalidDump, c.Dump, DumpAst)
}
