package config

import (
	"time"

	"github.com/promptwarden/promptwarden/internal/cache"
	"github.com/promptwarden/promptwarden/internal/corpus"
	"github.com/promptwarden/promptwarden/internal/logger"
	"github.com/promptwarden/promptwarden/internal/redteam"
	"github.com/promptwarden/promptwarden/internal/store"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Logging  logger.Config  `yaml:"logging" mapstructure:"logging"`
	Rules    RulesConfig    `yaml:"rules" mapstructure:"rules"`
	Detector DetectorConfig `yaml:"detector" mapstructure:"detector"`
	Cache    cache.Config   `yaml:"cache" mapstructure:"cache"`
	Store    store.Config   `yaml:"store" mapstructure:"store"`
	RedTeam  redteam.Config `yaml:"redteam" mapstructure:"redteam"`
	Corpus   corpus.Config  `yaml:"corpus" mapstructure:"corpus"`
}

// ServerConfig configures the optional HTTP API surface.
type ServerConfig struct {
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// RulesConfig locates the rule file. An empty path means the built-in
// default rule set with no hot reload.
type RulesConfig struct {
	Path  string `yaml:"path" mapstructure:"path"`
	Watch bool   `yaml:"watch" mapstructure:"watch"`
}

// DetectorConfig holds scan-time settings.
type DetectorConfig struct {
	// Threshold is the confidence at or above which a scan is positive.
	Threshold int `yaml:"threshold" mapstructure:"threshold"`
}

// GetDefaults returns the default configuration.
func GetDefaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8089,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Logging: logger.Config{
			Level:  "info",
			Format: "json",
		},
		Rules: RulesConfig{
			Path:  "",
			Watch: false,
		},
		Detector: DetectorConfig{
			Threshold: 60,
		},
		Cache: cache.DefaultConfig(),
		Store: store.DefaultConfig(),
		RedTeam: redteam.Config{
			Provider:        "mock",
			AttacksPerRun:   12,
			BypassThreshold: 60,
			RequestsPerMin:  30,
		},
		Corpus: corpus.DefaultConfig(),
	}
}
