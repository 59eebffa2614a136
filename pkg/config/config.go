package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config defines runtime settings for the DartPad admission service.
type Config struct {
	Gateway   GatewayConfig `yaml:"gateway"`
	Templates string        `yaml:"templatesPath"`
	Policy    string        `yaml:"policyOverlay"`
	AuditDir  string        `yaml:"auditDir"`
	LogLevel  string        `yaml:"logLevel"`
	LogFormat string        `yaml:"logFormat"`
}

type GatewayConfig struct {
	Address      string   `yaml:"address"`
	AllowedAddrs []string `yaml:"allowedAddrs"`
}

// LoadConfig loads configuration from a YAML file and environment
// overrides. An empty path loads defaults only.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Gateway:   GatewayConfig{Address: ":8080"},
		Templates: "./templates",
		LogLevel:  "info",
		LogFormat: "json",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if addr := os.Getenv("DARTPAD_ADDR"); addr != "" {
		cfg.Gateway.Address = addr
	}
	if templates := os.Getenv("DARTPAD_TEMPLATES"); templates != "" {
		cfg.Templates = templates
	}
	if overlay := os.Getenv("DARTPAD_POLICY"); overlay != "" {
		cfg.Policy = overlay
	}
	if auditDir := os.Getenv("DARTPAD_AUDIT_DIR"); auditDir != "" {
		cfg.AuditDir = auditDir
	}
	if logLevel := os.Getenv("DARTPAD_LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat := os.Getenv("DARTPAD_LOG_FORMAT"); logFormat != "" {
		cfg.LogFormat = logFormat
	}

	return cfg, nil
}

// DefaultConfigPath returns the default location for the config file.
func DefaultConfigPath() string {
	if path := os.Getenv("DARTPAD_CONFIG"); path != "" {
		return path
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".dartpad", "config.yaml")
}
