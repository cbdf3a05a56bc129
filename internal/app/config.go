package app

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "github.com/jarviz/jarvizbot/core/config"
	coredatabase "github.com/jarviz/jarvizbot/core/database"
)

// Config is the full service configuration: the shared bot core plus the
// Postgres connection block.
type Config struct {
	coreconfig.Config `yaml:",inline"`

	Database coredatabase.Config `yaml:"database"`
}

// CoreConfig exposes the embedded core configuration for the runner.
func (c *Config) CoreConfig() *coreconfig.Config {
	if c == nil {
		return nil
	}
	return &c.Config
}

// Load reads the YAML config, overlays environment variables, and validates
// both the core and database sections. A .env file next to the process is
// applied first so local runs match the deployment platform's variable store.
func Load(path string) (*Config, error) {
	// Missing .env is the normal case in deployed environments.
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Config); err != nil {
		return nil, err
	}
	if err := coredatabase.Normalize(&cfg.Database); err != nil {
		return nil, err
	}
	return &cfg, nil
}
