package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.Gateway.Address != ":8080" {
		t.Fatalf("unexpected default address %q", cfg.Gateway.Address)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Fatalf("unexpected log defaults %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)

	raw := `
gateway:
  address: ":9000"
  allowedAddrs:
    - 127.0.0.1
templatesPath: /srv/templates
policyOverlay: /etc/dartpad/tables.yaml
auditDir: /var/log/dartpad
logLevel: debug
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Gateway.Address != ":9000" {
		t.Fatalf("address not loaded: %q", cfg.Gateway.Address)
	}
	if len(cfg.Gateway.AllowedAddrs) != 1 || cfg.Gateway.AllowedAddrs[0] != "127.0.0.1" {
		t.Fatalf("allowed addrs not loaded: %v", cfg.Gateway.AllowedAddrs)
	}
	if cfg.Templates != "/srv/templates" || cfg.AuditDir != "/var/log/dartpad" {
		t.Fatalf("paths not loaded: %q %q", cfg.Templates, cfg.AuditDir)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level not loaded: %q", cfg.LogLevel)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DARTPAD_ADDR", ":7777")
	t.Setenv("DARTPAD_POLICY", "/tmp/tables.yaml")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Gateway.Address != ":7777" {
		t.Fatalf("env address override missing: %q", cfg.Gateway.Address)
	}
	if cfg.Policy != "/tmp/tables.yaml" {
		t.Fatalf("env policy override missing: %q", cfg.Policy)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	clearEnv(t)

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DARTPAD_ADDR", "DARTPAD_TEMPLATES", "DARTPAD_POLICY",
		"DARTPAD_AUDIT_DIR", "DARTPAD_LOG_LEVEL", "DARTPAD_LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}
