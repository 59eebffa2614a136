package imports

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPolicyOverlay(t *testing.T) {
	t.Parallel()

	overlay := `
flutter_packages:
  - flutter_map
firebase_packages:
  - cloud_functions
basic_packages:
  - petit_lisp
core_libraries:
  - "dart:isolate"
deprecated_packages:
  - flutter_map
`
	path := filepath.Join(t.TempDir(), "tables.yaml")
	if err := os.WriteFile(path, []byte(overlay), 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}

	policy, err := LoadPolicy(path)
	if err != nil {
		t.Fatalf("load policy: %v", err)
	}

	if policy.IsUnsupported("package:petit_lisp/petit_lisp.dart", nil) {
		t.Fatalf("overlay basic package should be supported")
	}
	if policy.IsUnsupported("dart:isolate", nil) {
		t.Fatalf("overlay core library should be supported")
	}
	if !policy.DetectProfile([]ImportDecl{{URI: "package:flutter_map/flutter_map.dart"}}).UsesFlutter {
		t.Fatalf("overlay flutter package should mark Flutter usage")
	}
	profile := policy.DetectProfile([]ImportDecl{{URI: "package:cloud_functions/cloud_functions.dart"}})
	if !profile.UsesFirebase || !profile.UsesFlutter {
		t.Fatalf("overlay firebase package should mark Firebase and Flutter, got %+v", profile)
	}
	if !policy.IsDeprecated("flutter_map") {
		t.Fatalf("overlay deprecation should be visible")
	}

	// Defaults survive the overlay.
	if policy.IsUnsupported("package:http/http.dart", nil) {
		t.Fatalf("default tables must remain after overlay")
	}
}

func TestLoadPolicyMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadPolicy(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing overlay file")
	}
}

func TestLoadPolicyBadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tables.yaml")
	if err := os.WriteFile(path, []byte("flutter_packages: {broken"), 0o644); err != nil {
		t.Fatalf("write overlay: %v", err)
	}
	if _, err := LoadPolicy(path); err == nil {
		t.Fatalf("expected error for malformed overlay")
	}
}
