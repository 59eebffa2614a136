package imports

// firebasePackagePrefix admits the remaining packages of the Firebase
// family without naming each one.
const firebasePackagePrefix = "firebase_"

// allowedCoreLibraries is the exact allow-list of dart: imports. New core
// libraries are deliberately not auto-allowed; dart:io and dart:html stay
// out because they reach past the web sandbox.
var allowedCoreLibraries = []string{
	"dart:async",
	"dart:collection",
	"dart:convert",
	"dart:core",
	"dart:developer",
	"dart:math",
	"dart:typed_data",
	"dart:ui",
}

// basicDartPackages are directly importable without the Flutter runtime.
var basicDartPackages = []string{
	"async",
	"basics",
	"characters",
	"collection",
	"convert",
	"crypto",
	"dartz",
	"english_words",
	"equatable",
	"fast_immutable_collections",
	"http",
	"intl",
	"js",
	"logging",
	"matcher",
	"meta",
	"path",
	"petitparser",
	"quiver",
	"rohd",
	"rxdart",
	"timezone",
	"vector_math",
	"yaml",
}

// supportedFlutterPackages is the curated allow-list of community
// packages that require the Flutter runtime.
var supportedFlutterPackages = []string{
	"animations",
	"cupertino_icons",
	"flutter_bloc",
	"flutter_hooks",
	"flutter_lints",
	"flutter_markdown",
	"flutter_riverpod",
	"flutter_svg",
	"go_router",
	"google_fonts",
	"hooks_riverpod",
	"provider",
	"riverpod",
	"shared_preferences",
	"url_launcher",
	"video_player",
}

// supportedFirebasePackages marks cloud-backend integration. Packages
// with the firebase_ prefix are also accepted via firebasePackagePrefix.
var supportedFirebasePackages = []string{
	"cloud_firestore",
	"firebase_analytics",
	"firebase_auth",
	"firebase_core",
	"firebase_database",
	"firebase_messaging",
	"firebase_storage",
}

// deprecatedPackages still run but surface a removal warning to callers.
var deprecatedPackages = []string{
	"charcode",
	"js",
	"pedantic",
	"tuple",
}
