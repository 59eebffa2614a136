package imports

import (
	"net/url"
	"strings"
)

// IsUnsupported reports whether a single import must be rejected before
// execution. knownLocal lists sanitized sibling filenames of the same
// submission and may be nil.
//
// The rules form an ordered guard chain; each assumes the earlier ones
// did not match.
func (p *Policy) IsUnsupported(uri string, knownLocal map[string]bool) bool {
	// Degenerate input: nothing to reject.
	if uri == "" {
		return false
	}

	// Core libraries pass only on an exact allow-list hit. No prefix or
	// wildcard matching: new dart: libraries stay denied until vetted.
	if strings.HasPrefix(uri, dartCoreScheme) {
		return !p.coreLibraries[uri]
	}

	// A multi-file submission may reference its own sibling files by
	// their bare names.
	if knownLocal[uri] {
		return false
	}

	u, err := url.Parse(uri)
	if err != nil {
		// Permissive fallback for strings the URI parser rejects,
		// matching the reference behavior. See DESIGN.md before
		// tightening this.
		return false
	}

	if u.Scheme == "package" {
		name, ok := ExtractPackageName(uri)
		if !ok {
			return true
		}
		return !p.flutterIndicating[name] && !p.basic[name]
	}

	// Everything else: relative and absolute paths, file:, http:, and
	// any unrecognized scheme. Host filesystem and network imports are
	// never permitted.
	return true
}

// CollectUnsupported returns the imports IsUnsupported rejects, in their
// original order. A non-empty result means the whole submission must be
// refused.
func (p *Policy) CollectUnsupported(decls []ImportDecl, knownLocal map[string]bool) []ImportDecl {
	var rejected []ImportDecl
	for _, decl := range decls {
		if p.IsUnsupported(decl.URI, knownLocal) {
			rejected = append(rejected, decl)
		}
	}
	return rejected
}

// CollectDeprecated returns the distinct deprecated packages referenced
// by the imports, in first-use order. Advisory only.
func (p *Policy) CollectDeprecated(decls []ImportDecl) []string {
	var names []string
	seen := make(map[string]bool)
	for _, decl := range decls {
		name, ok := ExtractPackageName(decl.URI)
		if !ok || seen[name] || !p.IsDeprecated(name) {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
