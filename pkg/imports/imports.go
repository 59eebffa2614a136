// Package imports decides which import declarations a submission may run
// with inside the sandboxed execution environment, and which platform
// profile (Dart, Flutter, Flutter+Firebase) the submission requires.
package imports

import (
	"net/url"
	"strings"
)

// ImportDecl is a single import declaration handed over by the source
// parser. Line and Column point at the directive in the original source
// so admission errors can reference it.
type ImportDecl struct {
	URI    string `json:"uri"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// dartCoreScheme prefixes imports of libraries built into the Dart runtime.
const dartCoreScheme = "dart:"

// ExtractPackageName returns the package a "package:" import refers to,
// i.e. the first path segment of the URI. The second return is false for
// anything that is not a well-formed package URI: unparsable strings,
// other schemes, or a package URI with no path segments.
func ExtractPackageName(uri string) (string, bool) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme != "package" {
		return "", false
	}
	path := u.Opaque
	if path == "" {
		path = strings.TrimPrefix(u.Path, "/")
	}
	name := path
	if i := strings.IndexByte(path, '/'); i >= 0 {
		name = path[:i]
	}
	if name == "" {
		return "", false
	}
	return name, true
}

// LocalSet builds a lookup set from sibling filenames of a multi-file
// submission. Callers must strip any scheme-like prefix before passing
// names in; this package never sanitizes them.
func LocalSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}
