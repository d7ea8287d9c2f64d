// SPDX-License-Identifier: MIT
package reader

import (
	"runtime"

	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Reader's operations.
	Config struct {
		// Logger for Reader messages.
		Logger logrus.FieldLogger
		Debug  bool

		// TabWhitespace treats '\t' as whitespace; by default a tab is an invalid character.
		TabWhitespace bool

		// PoolSize is the number of workers used by ParseBatch.
		PoolSize int
	}

	// Option defines the Reader functional option type.
	Option func(*Config)
)

// DefConfig obtains the package's default Config.
func DefConfig() *Config {
	return &Config{
		Logger:   logrus.New(),
		PoolSize: runtime.NumCPU(),
	}
}

func newConfig(opts ...Option) *Config {
	cfg := DefConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.Validate()

	return cfg
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *Config) { c.Logger = logger } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

// WithTabWhitespace configures whether '\t' is skipped as whitespace.
func WithTabWhitespace(tab bool) Option { return func(c *Config) { c.TabWhitespace = tab } }

// WithPoolSize configures the ParseBatch worker count.
func WithPoolSize(n int) Option { return func(c *Config) { c.PoolSize = n } }

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.PoolSize < 1 {
		c.PoolSize = runtime.NumCPU()
	}
}
