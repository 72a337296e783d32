// Package config loads the adminctl configuration: a yaml file with env
// overrides, so CI and local shells can point the console at different
// backends without editing files.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerURL     string `yaml:"server_url"`
	ImageBaseURL  string `yaml:"image_base_url"`
	AdminUsername string `yaml:"admin_username"`
	AdminPassword string `yaml:"admin_password"`
}

// Load reads configPath (missing file is fine, env can carry everything) and
// applies EKKA_* environment overrides.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if v := os.Getenv("EKKA_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("EKKA_IMAGE_BASE_URL"); v != "" {
		cfg.ImageBaseURL = v
	}
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		cfg.AdminUsername = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.AdminPassword = v
	}

	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://localhost:8080"
	}
	return cfg, nil
}
