// Package config holds the run configuration of the corpus mining commands.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Mode selects what a run writes.
type Mode string

const (
	// ModeFrequency writes one row per distinct pattern with its count.
	ModeFrequency Mode = "frequency"
	// ModeUtterances writes the original, wrong and correct utterances per file.
	ModeUtterances Mode = "utterances"
)

// IsValid reports whether m is a known mode.
func (m Mode) IsValid() bool {
	switch m {
	case ModeFrequency, ModeUtterances:
		return true
	}
	return false
}

// DefaultOutput returns the output path used when none is configured.
func (m Mode) DefaultOutput() string {
	if m == ModeUtterances {
		return "cha_data.csv"
	}
	return "Patterns_CHILDES.xlsx"
}

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a known level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Level converts l to a slog level. Unknown levels map to info.
func (l LogLevel) Level() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config is the run configuration.
type Config struct {
	// Root is the corpus directory searched for .cha transcripts.
	Root string `yaml:"root"`
	// Output is the file written by the run. Empty selects Mode.DefaultOutput.
	Output string `yaml:"output"`
	// Mode, when set, must match the command the file is given to.
	Mode Mode `yaml:"mode"`
	// Workers bounds concurrent transcript processing. 0 uses all CPUs.
	Workers int `yaml:"workers"`
	// Lexicon is the path of the word list wrong forms are checked against.
	Lexicon string `yaml:"lexicon"`
	// AllowWords are accepted as valid words in addition to the lexicon.
	// Nil keeps the built-in allow-list.
	AllowWords []string `yaml:"allow_words"`
	// RequireTimestamps drops unaligned utterances from datasets.
	RequireTimestamps *bool    `yaml:"require_timestamps"`
	LogLevel          LogLevel `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Root:     "CHILDES",
		LogLevel: LogInfo,
	}
}

// OutputPath returns Output, or the mode's default when it is empty.
func (c *Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}
	return c.Mode.DefaultOutput()
}

// UseMode sets Mode to m for a command that only runs in mode m. A config
// that already names a different mode is rejected.
func (c *Config) UseMode(m Mode) error {
	if c.Mode != "" && c.Mode != m {
		return fmt.Errorf("%w: mode %q cannot be used with a %s run", ErrInvalidConfig, c.Mode, m)
	}
	c.Mode = m
	return nil
}

// TimestampsRequired returns RequireTimestamps, defaulting to true.
func (c *Config) TimestampsRequired() bool {
	if c.RequireTimestamps == nil {
		return true
	}
	return *c.RequireTimestamps
}

// Load reads the YAML configuration file at path and returns a validated
// Config. Fields missing from the file keep their Default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r and validates the result.
// Unknown fields are rejected.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values. It returns a
// joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Root == "" {
		errs = append(errs, fmt.Errorf("%w: root is required", ErrInvalidConfig))
	}
	if cfg.Mode != "" && !cfg.Mode.IsValid() {
		errs = append(errs, fmt.Errorf("%w: mode %q is invalid; valid values: frequency, utterances", ErrInvalidConfig, cfg.Mode))
	}
	if cfg.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, cfg.Workers))
	}
	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("%w: log_level %q is invalid; valid values: debug, info, warn, error", ErrInvalidConfig, cfg.LogLevel))
	}
	for i, w := range cfg.AllowWords {
		if w == "" {
			errs = append(errs, fmt.Errorf("%w: allow_words[%d] is empty", ErrInvalidConfig, i))
		}
	}

	return errors.Join(errs...)
}
