package config

import (
	"os"
	"strings"

	"github.com/eirikbell/videostore/pricing"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Statement output formats
const (
	FormatText = "text"
	FormatHTML = "html"
)

// Config represents the statement tool configuration
type Config struct {
	Log       LogConfig        `yaml:"log"`
	Statement StatementConfig  `yaml:"statement"`
	Movies    []MovieConfig    `yaml:"movies"`
	Customers []CustomerConfig `yaml:"customers"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// StatementConfig contains statement rendering settings
type StatementConfig struct {
	Format string `yaml:"format"` // "text" or "html"
}

// MovieConfig a catalog entry
type MovieConfig struct {
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
}

// CustomerConfig a customer and the rentals to report
type CustomerConfig struct {
	Name    string         `yaml:"name"`
	Rentals []RentalConfig `yaml:"rentals"`
}

// RentalConfig a rental of a catalog movie
type RentalConfig struct {
	Movie string `yaml:"movie"`
	Days  int    `yaml:"days"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "Reading config file failed")
	}

	return Parse(data)
}

// Parse decodes YAML configuration, applies environment overrides and validates it
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "Parsing config failed")
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "Invalid config")
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
	if val := os.Getenv("STATEMENT_FORMAT"); val != "" {
		c.Statement.Format = val
	}
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Statement.Format == "" {
		c.Statement.Format = FormatText
	}
	c.Statement.Format = strings.ToLower(c.Statement.Format)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.Errorf("Unknown log level %q", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.Errorf("Unknown log format %q", c.Log.Format)
	}

	switch c.Statement.Format {
	case FormatText, FormatHTML:
	default:
		return errors.Errorf("Unknown statement format %q", c.Statement.Format)
	}

	titles := map[string]bool{}
	for i, m := range c.Movies {
		if m.Title == "" {
			return errors.Errorf("Movie %d has no title", i+1)
		}
		if titles[m.Title] {
			return errors.Errorf("Movie %q is listed more than once", m.Title)
		}
		titles[m.Title] = true

		if _, err := pricing.ParseCategory(m.Category); err != nil {
			return errors.Wrapf(err, "Movie %q", m.Title)
		}
	}

	for i, cust := range c.Customers {
		if cust.Name == "" {
			return errors.Errorf("Customer %d has no name", i+1)
		}
		for _, r := range cust.Rentals {
			if !titles[r.Movie] {
				return errors.Errorf("Customer %q rents unknown movie %q", cust.Name, r.Movie)
			}
			if r.Days < 1 {
				return errors.Errorf("Customer %q rents %q for %d days, at least one day is required", cust.Name, r.Movie, r.Days)
			}
		}
	}

	return nil
}
