// Package config loads the YAML configuration shared by the CLI and server.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/baditaflorin/go_simhash_similarity/internal/adapters/loader"
	"github.com/baditaflorin/go_simhash_similarity/internal/adapters/report"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/hasher"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/scorer"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/simhash"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/tokenizer"
)

// Config is the root configuration document.
type Config struct {
	SimHash SimHashConfig `yaml:"simhash"`
	Loader  LoaderConfig  `yaml:"loader"`
	Report  ReportConfig  `yaml:"report"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// SimHashConfig configures the fingerprinting core.
type SimHashConfig struct {
	Seed         uint64            `yaml:"seed"`
	TokenPattern string            `yaml:"token_pattern"`
	Thresholds   scorer.Thresholds `yaml:"thresholds"`
}

// LoaderConfig lists the encodings tried when reading documents, in order.
type LoaderConfig struct {
	Encodings []string `yaml:"encodings"`
}

// ReportConfig selects the report format.
type ReportConfig struct {
	Format string `yaml:"format"`
}

// LogConfig configures the logger.
type LogConfig struct {
	JSON bool   `yaml:"json"`
	File string `yaml:"file"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port           int           `yaml:"port"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	MaxRequestSize int           `yaml:"max_request_size"`
	Concurrency    int           `yaml:"concurrency"`
	WarmUp         bool          `yaml:"warm_up"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SimHash: SimHashConfig{
			Seed:         hasher.DefaultSeed,
			TokenPattern: tokenizer.DefaultPattern,
			Thresholds:   scorer.DefaultThresholds(),
		},
		Loader: LoaderConfig{Encodings: loader.DefaultEncodings()},
		Report: ReportConfig{Format: report.FormatText},
		Server: ServerConfig{
			Port:           8080,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			MaxRequestSize: 10 * 1024 * 1024, // 10MB
			Concurrency:    0,                // 0 means fasthttp default
			WarmUp:         true,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if err := c.Calculator().Validate(); err != nil {
		return err
	}
	if len(c.Loader.Encodings) == 0 {
		return errors.New("loader.encodings must not be empty")
	}
	if _, err := loader.New(c.Loader.Encodings, nil); err != nil {
		return err
	}
	switch c.Report.Format {
	case report.FormatText, report.FormatJSON:
	default:
		return fmt.Errorf("invalid report format: %s. Must be 'text' or 'json'", c.Report.Format)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	return nil
}

// Calculator converts the simhash section into the core configuration.
func (c Config) Calculator() simhash.SimilarityConfig {
	return simhash.SimilarityConfig{
		Seed:         c.SimHash.Seed,
		TokenPattern: c.SimHash.TokenPattern,
		Thresholds:   c.SimHash.Thresholds,
	}
}
