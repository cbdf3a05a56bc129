package database

import (
	"fmt"
	"strings"
)

// Config holds connection settings for the pooled Postgres endpoint.
// Env names follow the libpq convention so the same variables work for psql.
type Config struct {
	Host           string `yaml:"host" envconfig:"PGHOST"`
	Port           string `yaml:"port" envconfig:"PGPORT"`
	User           string `yaml:"user" envconfig:"PGUSER"`
	Password       string `yaml:"password" envconfig:"PGPASSWORD"`
	Name           string `yaml:"name" envconfig:"PGDATABASE"`
	SSLMode        string `yaml:"sslmode" envconfig:"PGSSLMODE"`
	MaxConnections int    `yaml:"max_connections" envconfig:"PGPOOL_MAX"`
}

// Normalize fills defaults and reports missing required settings by name.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil database config")
	}
	if cfg.Port == "" {
		cfg.Port = "5432"
	}
	if cfg.SSLMode == "" {
		cfg.SSLMode = "require"
	}
	if cfg.MaxConnections <= 0 {
		cfg.MaxConnections = 10
	}

	var missing []string
	if strings.TrimSpace(cfg.Host) == "" {
		missing = append(missing, "PGHOST")
	}
	if strings.TrimSpace(cfg.Name) == "" {
		missing = append(missing, "PGDATABASE")
	}
	if strings.TrimSpace(cfg.User) == "" {
		missing = append(missing, "PGUSER")
	}
	if strings.TrimSpace(cfg.Password) == "" {
		missing = append(missing, "PGPASSWORD")
	}
	if len(missing) > 0 {
		return fmt.Errorf("database config incomplete, set %s", strings.Join(missing, ", "))
	}
	return nil
}

// DSN returns the keyword/value connection string for lib/pq.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// URL returns the postgres:// form used by golang-migrate.
func (c Config) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}
