package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port      int    `yaml:"port" validate:"omitempty,gt=0,lte=65535"`
	Env       string `yaml:"env" validate:"omitempty,oneof=development staging production test"`
	RateLimit int    `yaml:"rateLimit" validate:"gte=0"`
}

// DataConfig points at the schedule artifacts produced upstream.
type DataConfig struct {
	GraphPath    string `yaml:"graphPath" validate:"required"`
	RegistryPath string `yaml:"registryPath" validate:"required"`
}

// SearchConfig holds the default search knobs; requests may override the
// window and transfer bound per call.
type SearchConfig struct {
	MaxTransfers  int `yaml:"maxTransfers" validate:"gte=0,lte=2"`
	WindowMinutes int `yaml:"windowMinutes" validate:"gte=0"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data" validate:"required"`
	Search SearchConfig `yaml:"search"`
}

// Load reads and validates a YAML configuration file, then fills in
// defaults for anything left unset.
func Load(path string) (AppConfig, error) {
	var cfg AppConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing config file: %w", err)
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults fills zero-valued fields with the service defaults. An
// explicit zero in the file is indistinguishable from an absent field, so
// a zero transfer bound or zero window cannot be configured here; the
// command-line flags are the way to set those.
func (cfg *AppConfig) ApplyDefaults() {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 4000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Search.MaxTransfers == 0 {
		cfg.Search.MaxTransfers = 2
	}
	if cfg.Search.WindowMinutes == 0 {
		cfg.Search.WindowMinutes = 120
	}
}
