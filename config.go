package reach

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Cache levels selectable from configuration.
const (
	// LevelClass indexes entity classes and subclass declarations.
	LevelClass = "class"
	// LevelEntity indexes entities.
	LevelEntity = "entity"
)

// Config describes how a host wires the reachability cache: which database
// to read, at which level to index it, and which files to watch for
// out-of-band mutation.
type Config struct {
	// Dialect is the database dialect name (dialect.SQLite, ...).
	Dialect string `yaml:"dialect"`

	// DSN is the data source name passed to the driver.
	DSN string `yaml:"dsn"`

	// Level selects the build strategy: LevelClass or LevelEntity.
	Level string `yaml:"level"`

	// Watch lists database file paths whose modification should drop the
	// cached graph. Only meaningful for file-backed dialects.
	Watch []string `yaml:"watch,omitempty"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reach: reading config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("reach: parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	switch c.Level {
	case LevelClass, LevelEntity:
	case "":
		return fmt.Errorf("reach: config is missing a level")
	default:
		return fmt.Errorf("reach: unknown level %q", c.Level)
	}
	if c.DSN == "" {
		return fmt.Errorf("reach: config is missing a dsn")
	}
	return nil
}
