package childes

import (
	"log/slog"
	"runtime"
)

// Option configures a Miner.
type Option func(*config)

type config struct {
	workers           int
	allowWords        []string
	requireTimestamps bool
	logger            *slog.Logger
}

func defaultConfig() config {
	return config{
		workers:           runtime.NumCPU(),
		requireTimestamps: true,
		logger:            slog.Default(),
	}
}

// WithWorkers sets how many transcripts are processed concurrently
// (default: runtime.NumCPU()).
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithAllowWords replaces the list of informal spellings treated as valid
// words (default: lexicon.DefaultAllowWords).
func WithAllowWords(words []string) Option {
	return func(c *config) {
		c.allowWords = words
	}
}

// WithRequireTimestamps controls whether dataset rows only include utterances
// that carry a media timestamp (default: true).
func WithRequireTimestamps(require bool) Option {
	return func(c *config) {
		c.requireTimestamps = require
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
