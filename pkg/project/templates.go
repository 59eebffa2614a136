// Package project maps a platform profile to the on-disk execution
// template and compiled summary artifact the sandbox runner should use.
// Paths are opaque strings; this package never touches the filesystem.
package project

import (
	"os"
	"path/filepath"

	"github.com/AR1947/dart-pad/pkg/imports"
)

const (
	dartProjectDir     = "dart_project"
	flutterProjectDir  = "flutter_project"
	firebaseProjectDir = "firebase_project"

	summaryFile = "summary.json"
)

// Templates locates the fixed project templates under a root directory.
type Templates struct {
	root string
}

// NewTemplates returns a Templates rooted at dir.
func NewTemplates(dir string) Templates {
	return Templates{root: dir}
}

// ResolveRoot returns the template root, preferring the DARTPAD_TEMPLATES
// environment variable over the configured default.
func ResolveRoot(fallback string) string {
	if root := os.Getenv("DARTPAD_TEMPLATES"); root != "" {
		return root
	}
	return fallback
}

// DartPath is the template for plain Dart submissions.
func (t Templates) DartPath() string {
	return filepath.Join(t.root, dartProjectDir)
}

// FlutterPath is the template for Flutter submissions.
func (t Templates) FlutterPath() string {
	return filepath.Join(t.root, flutterProjectDir)
}

// FirebasePath is the template for Flutter submissions with Firebase.
func (t Templates) FirebasePath() string {
	return filepath.Join(t.root, firebaseProjectDir)
}

// ProjectFor picks the template directory for a profile. Firebase wins
// over plain Flutter; a Firebase profile without Flutter still gets the
// Firebase template since its backend packages require that runtime.
func (t Templates) ProjectFor(profile imports.Profile) string {
	switch {
	case profile.UsesFirebase:
		return t.FirebasePath()
	case profile.UsesFlutter:
		return t.FlutterPath()
	default:
		return t.DartPath()
	}
}

// SummaryPath locates the prebuilt summary artifact for a profile.
func (t Templates) SummaryPath(profile imports.Profile) string {
	return filepath.Join(t.ProjectFor(profile), summaryFile)
}
