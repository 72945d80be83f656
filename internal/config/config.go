// Package config loads the YAML configuration of the nadlogar command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/njchilds90/nadlogar/generator"
	"github.com/njchilds90/nadlogar/lattice"
)

// Config is the top-level configuration.
type Config struct {
	Generator GeneratorConfig               `yaml:"generator"`
	Server    ServerConfig                  `yaml:"server"`
	Logging   LoggingConfig                 `yaml:"logging"`
	Templates map[string]generator.Template `yaml:"templates,omitempty"`
}

// GeneratorConfig configures sampling and retries.
type GeneratorConfig struct {
	MaxAttempts  int          `yaml:"max_attempts"`
	Budget       string       `yaml:"budget,omitempty"` // per instance, e.g. "2s"; empty means none
	Workers      int          `yaml:"workers"`          // 0 means GOMAXPROCS
	Coefficients lattice.Spec `yaml:"coefficients"`
	Roots        lattice.Spec `yaml:"roots"`
	Candidates   []int64      `yaml:"candidates"`
}

// ServerConfig configures the HTTP endpoint.
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	ReadTimeout  string `yaml:"read_timeout"`
	WriteTimeout string `yaml:"write_timeout"`
	MaxBatch     int    `yaml:"max_batch"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{
			MaxAttempts:  generator.DefaultMaxAttempts,
			Coefficients: lattice.Coefficients(),
			Roots:        lattice.Roots(),
			Candidates:   []int64{-5, -4, -3, -2, -1, 2, 3, 4, 5},
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  "15s",
			WriteTimeout: "15s",
			MaxBatch:     100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies NADLOGAR_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("NADLOGAR_MAX_ATTEMPTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NADLOGAR_MAX_ATTEMPTS: %w", err)
		}
		c.Generator.MaxAttempts = n
	}
	if v := os.Getenv("NADLOGAR_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NADLOGAR_WORKERS: %w", err)
		}
		c.Generator.Workers = n
	}
	if v := os.Getenv("NADLOGAR_BUDGET"); v != "" {
		c.Generator.Budget = v
	}
	if v := os.Getenv("NADLOGAR_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("NADLOGAR_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("NADLOGAR_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	return nil
}

// GetBudget returns the per-instance budget, zero when unset or invalid.
func (c *Config) GetBudget() time.Duration {
	d, err := time.ParseDuration(c.Generator.Budget)
	if err != nil {
		return 0
	}
	return d
}

// GetReadTimeout returns the server read timeout.
func (c *Config) GetReadTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ReadTimeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// GetWriteTimeout returns the server write timeout.
func (c *Config) GetWriteTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.WriteTimeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Generator.MaxAttempts < 1 {
		return fmt.Errorf("generator.max_attempts must be positive, got %d", c.Generator.MaxAttempts)
	}
	if c.Generator.Workers < 0 {
		return fmt.Errorf("generator.workers must not be negative, got %d", c.Generator.Workers)
	}
	if c.Generator.Budget != "" {
		if _, err := time.ParseDuration(c.Generator.Budget); err != nil {
			return fmt.Errorf("generator.budget: %w", err)
		}
	}
	if _, err := c.Params(); err != nil {
		return err
	}
	if c.Server.MaxBatch < 1 {
		return fmt.Errorf("server.max_batch must be positive, got %d", c.Server.MaxBatch)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid logging.format: %s (valid: json, console)", c.Logging.Format)
	}
	return nil
}

// Params builds the sampling domains.
func (c *Config) Params() (generator.Params, error) {
	return generator.NewParams(c.Generator.Coefficients, c.Generator.Roots, c.Generator.Candidates)
}

// Options translates the configuration into generator options.
func (c *Config) Options() ([]generator.Option, error) {
	params, err := c.Params()
	if err != nil {
		return nil, err
	}
	opts := []generator.Option{
		generator.WithRegistry(generator.DefaultRegistry(params)),
		generator.WithMaxAttempts(c.Generator.MaxAttempts),
		generator.WithBudget(c.GetBudget()),
	}
	if c.Generator.Workers > 0 {
		opts = append(opts, generator.WithWorkers(c.Generator.Workers))
	}
	for kind, t := range c.Templates {
		opts = append(opts, generator.WithTemplate(kind, t))
	}
	return opts, nil
}
