package imports

import "testing"

func TestExtractPackageName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		uri  string
		want string
		ok   bool
	}{
		{"package:http/http.dart", "http", true},
		{"package:flutter/material.dart", "flutter", true},
		{"package:path", "path", true},
		{"package:", "", false},
		{"dart:core", "", false},
		{"not a uri::", "", false},
		{"main.dart", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ExtractPackageName(tc.uri)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ExtractPackageName(%q) = (%q, %v), want (%q, %v)", tc.uri, got, ok, tc.want, tc.ok)
		}
	}
}

func TestExtractPackageNameCaseSensitive(t *testing.T) {
	t.Parallel()

	name, ok := ExtractPackageName("package:Http/http.dart")
	if !ok || name != "Http" {
		t.Fatalf("expected verbatim first segment, got (%q, %v)", name, ok)
	}
}

func TestLocalSet(t *testing.T) {
	t.Parallel()

	if LocalSet(nil) != nil {
		t.Fatalf("expected nil set for no names")
	}
	set := LocalSet([]string{"a.dart", "b.dart"})
	if !set["a.dart"] || !set["b.dart"] || set["c.dart"] {
		t.Fatalf("unexpected set contents: %v", set)
	}
}
