package imports

// flutterCoreRendering is the runtime library whose presence alone marks
// a Flutter submission, even without any package: import.
const flutterCoreRendering = "dart:ui"

// Profile is the platform profile a submission requires. The caller maps
// it to an on-disk execution template and a compiled summary artifact.
type Profile struct {
	UsesFlutter  bool `json:"usesFlutter"`
	UsesFirebase bool `json:"usesFirebase"`
}

// DetectProfile inspects an import list and reports which runtimes it
// needs. Pure over its inputs; the zero Profile comes back for an empty
// list.
func (p *Policy) DetectProfile(decls []ImportDecl) Profile {
	var profile Profile
	for _, decl := range decls {
		if decl.URI == flutterCoreRendering {
			profile.UsesFlutter = true
		}
		name, ok := ExtractPackageName(decl.URI)
		if !ok {
			continue
		}
		if p.flutterIndicating[name] {
			profile.UsesFlutter = true
		}
		if p.isFirebasePackage(name) {
			profile.UsesFirebase = true
		}
	}
	return profile
}
