// Package config loads server configuration from a YAML file with
// environment overrides for deployment-specific values.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
}

type Server struct {
	Addr string `yaml:"addr"`
}

type Database struct {
	DSN           string `yaml:"dsn"`
	MigrationsDir string `yaml:"migrations_dir"`
}

func Default() Config {
	return Config{
		Server:   Server{Addr: ":8080"},
		Database: Database{MigrationsDir: "./migrations"},
	}
}

// Load reads the YAML file at path on top of the defaults. A missing
// file is not an error: the defaults plus environment overrides are
// enough for a local run. WORLDFORGE_DB_DSN and WORLDFORGE_ADDR always
// win over file values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return cfg, err
		}
		if err == nil {
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return cfg, fmt.Errorf("config %s: %w", path, err)
			}
		}
	}
	if dsn := strings.TrimSpace(os.Getenv("WORLDFORGE_DB_DSN")); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if addr := strings.TrimSpace(os.Getenv("WORLDFORGE_ADDR")); addr != "" {
		cfg.Server.Addr = addr
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Database.MigrationsDir == "" {
		cfg.Database.MigrationsDir = "./migrations"
	}
	return cfg, nil
}
