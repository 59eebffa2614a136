package imports

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Policy holds the frozen package tables the classifier and detectors
// consult. Build one at startup with DefaultPolicy or LoadPolicy and
// share it freely; it is never mutated afterwards, so concurrent use
// needs no locking.
type Policy struct {
	flutterIndicating map[string]bool
	firebase          map[string]bool
	basic             map[string]bool
	coreLibraries     map[string]bool
	deprecated        map[string]bool
}

// TableOverlay extends the built-in tables from a YAML file. Entries are
// additive; the defaults cannot be removed, only widened.
type TableOverlay struct {
	FlutterPackages    []string `yaml:"flutter_packages"`
	FirebasePackages   []string `yaml:"firebase_packages"`
	BasicPackages      []string `yaml:"basic_packages"`
	CoreLibraries      []string `yaml:"core_libraries"`
	DeprecatedPackages []string `yaml:"deprecated_packages"`
}

// DefaultPolicy returns the built-in tables.
func DefaultPolicy() *Policy {
	return newPolicy(TableOverlay{})
}

// LoadPolicy returns the built-in tables widened by the overlay file at
// path.
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy overlay: %w", err)
	}

	var overlay TableOverlay
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parse policy overlay: %w", err)
	}

	return newPolicy(overlay), nil
}

func newPolicy(overlay TableOverlay) *Policy {
	p := &Policy{
		flutterIndicating: make(map[string]bool),
		firebase:          tableSet(supportedFirebasePackages, overlay.FirebasePackages),
		basic:             tableSet(basicDartPackages, overlay.BasicPackages),
		coreLibraries:     tableSet(allowedCoreLibraries, overlay.CoreLibraries),
		deprecated:        tableSet(deprecatedPackages, overlay.DeprecatedPackages),
	}

	// The Flutter runtime itself, its test harness, the curated community
	// packages, and every Firebase package all mark a submission as
	// needing the Flutter execution template.
	p.flutterIndicating["flutter"] = true
	p.flutterIndicating["flutter_test"] = true
	for _, name := range supportedFlutterPackages {
		p.flutterIndicating[name] = true
	}
	for _, name := range overlay.FlutterPackages {
		p.flutterIndicating[name] = true
	}
	for name := range p.firebase {
		p.flutterIndicating[name] = true
	}
	return p
}

func tableSet(defaults, extra []string) map[string]bool {
	set := make(map[string]bool, len(defaults)+len(extra))
	for _, name := range defaults {
		set[name] = true
	}
	for _, name := range extra {
		set[name] = true
	}
	return set
}

// IsDeprecated reports whether a package is flagged for removal. Purely
// advisory; membership never affects admission.
func (p *Policy) IsDeprecated(name string) bool {
	return p.deprecated[name]
}

func (p *Policy) isFirebasePackage(name string) bool {
	return p.firebase[name] || strings.HasPrefix(name, firebasePackagePrefix)
}
