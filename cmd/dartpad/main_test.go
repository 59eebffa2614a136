package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPolicyDefault(t *testing.T) {
	policy, err := loadPolicy("")
	if err != nil {
		t.Fatalf("default policy: %v", err)
	}
	if policy.IsUnsupported("package:http/http.dart", nil) {
		t.Fatalf("default tables should admit package:http")
	}
}

func TestLoadPolicyOverlayFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	if err := os.WriteFile(path, []byte("basic_packages:\n  - demo_pkg\n"), 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}
	policy, err := loadPolicy(path)
	if err != nil {
		t.Fatalf("overlay policy: %v", err)
	}
	if policy.IsUnsupported("package:demo_pkg/demo.dart", nil) {
		t.Fatalf("overlay package should be admitted")
	}
}
