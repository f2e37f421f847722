package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration shared by the CLI and the web server
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Matching MatchingConfig `yaml:"matching"`
	Features FeatureConfig  `yaml:"features"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Addr returns the host:port listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig contains the property store connection settings. An empty
// URL disables the store.
type DatabaseConfig struct {
	Driver         string `yaml:"driver"` // "postgres" or "sqlite"
	URL            string `yaml:"url"`
	MaxConnections int    `yaml:"max_connections"`
}

// MatchingConfig holds the score thresholds used to tier matches
type MatchingConfig struct {
	MinMatchScore   float64 `yaml:"min_match_score"`
	FuzzyMatchScore float64 `yaml:"fuzzy_match_score"`
	CandidateLimit  int     `yaml:"candidate_limit"`
}

// FeatureConfig contains feature toggles
type FeatureConfig struct {
	Debug bool `yaml:"debug"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Database: DatabaseConfig{
			Driver:         "postgres",
			MaxConnections: 10,
		},
		Matching: MatchingConfig{
			MinMatchScore:   0.70,
			FuzzyMatchScore: 0.55,
			CandidateLimit:  50,
		},
	}
}

// LoadFile reads a YAML config file over the defaults
func LoadFile(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}

	return cfg, nil
}

// Load builds the configuration from an optional file plus environment
// overrides
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename != "" {
		var err error
		if cfg, err = LoadFile(filename); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables
func (c *Config) ApplyEnv() {
	c.Server.Host = GetEnv("WEB_HOST", c.Server.Host)
	c.Server.Port = GetEnvInt("WEB_PORT", c.Server.Port)
	c.Database.Driver = GetEnv("DB_DRIVER", c.Database.Driver)
	c.Database.URL = GetEnv("DATABASE_URL", c.Database.URL)
	c.Database.MaxConnections = GetEnvInt("DB_MAX_CONNECTIONS", c.Database.MaxConnections)
	c.Matching.MinMatchScore = GetEnvFloat("ADDR_MIN_MATCH_SCORE", c.Matching.MinMatchScore)
	c.Matching.FuzzyMatchScore = GetEnvFloat("ADDR_FUZZY_MATCH_SCORE", c.Matching.FuzzyMatchScore)
	c.Matching.CandidateLimit = GetEnvInt("ADDR_CANDIDATE_LIMIT", c.Matching.CandidateLimit)
	c.Features.Debug = GetEnvBool("ADDR_DEBUG", c.Features.Debug)
}

// Validate checks that thresholds are ordered and in range
func (c *Config) Validate() error {
	m := c.Matching
	if m.FuzzyMatchScore < 0 || m.MinMatchScore > 1 || m.FuzzyMatchScore > m.MinMatchScore {
		return fmt.Errorf("invalid match thresholds: fuzzy=%.2f min=%.2f", m.FuzzyMatchScore, m.MinMatchScore)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	return nil
}
