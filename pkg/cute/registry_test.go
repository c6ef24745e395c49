// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cute

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryFind(t *testing.T) {
	var r Registry[testKey]
	r.Register(Switch("--boolean", keyBoolean))
	r.Register(Option("--string", keyString))

	opt, ok := r.Find("--string")
	if !ok {
		t.Fatalf("Find(--string) ok = false")
	}
	if opt.Key() != keyString || opt.Kind() != KindValue {
		t.Fatalf("Find(--string) = %v/%v, want %v/%v", opt.Key(), opt.Kind(), keyString, KindValue)
	}
	for _, s := range []string{"--str", "--string=", "string", ""} {
		if _, ok := r.Find(s); ok {
			t.Errorf("Find(%q) ok = true, want false", s)
		}
	}
}

func TestRegistryLastWriteWinsKeepsPosition(t *testing.T) {
	var r Registry[testKey]
	r.Register(Switch("--a", keyBoolean))
	r.Register(Option("--b", keyString))
	r.Register(Option("--a", keyHelp))

	want := []Opt[testKey]{
		Option("--a", keyHelp),
		Option("--b", keyString),
	}
	if diff := cmp.Diff(want, r.Opts(), cmp.AllowUnexported(Opt[testKey]{})); diff != "" {
		t.Fatalf("Opts mismatch (-want +got):\n%s", diff)
	}
	if r.HasKey(keyBoolean) {
		t.Fatalf("HasKey(keyBoolean) = true after it was replaced")
	}
}

func TestRegistryByKey(t *testing.T) {
	var r Registry[string]
	r.Register(Switch("-v", "verbose"))
	r.Register(Switch("--verbose", "verbose"))

	opt, ok := r.ByKey("verbose")
	if !ok || opt.Spelling() != "-v" {
		t.Fatalf("ByKey = %q, %v; want -v, true", opt.Spelling(), ok)
	}
	if _, ok := r.ByKey("quiet"); ok {
		t.Fatalf("ByKey(quiet) ok = true, want false")
	}
}

func TestRegistryOptsIsCopy(t *testing.T) {
	var r Registry[int]
	r.Register(Switch("-a", 1))
	opts := r.Opts()
	opts[0] = Switch("-z", 9)
	if opt, ok := r.Find("-a"); !ok || opt.Key() != 1 {
		t.Fatalf("registry changed through Opts copy")
	}
}

func TestOptBuilders(t *testing.T) {
	sw := Switch("--x", 1)
	if sw.Spelling() != "--x" || sw.Key() != 1 || sw.Kind() != KindSwitch || sw.Consumes() {
		t.Fatalf("Switch = %#v", sw)
	}
	op := Option("--y", 2)
	if op.Spelling() != "--y" || op.Key() != 2 || op.Kind() != KindValue || !op.Consumes() {
		t.Fatalf("Option = %#v", op)
	}
	if KindSwitch.String() != "switch" || KindValue.String() != "option" || Kind(0).String() != "unknown" {
		t.Fatalf("unexpected Kind strings")
	}
}

func TestSplitToken(t *testing.T) {
	tests := []struct {
		arg      string
		name     string
		value    string
		hasValue bool
	}{
		{"--test", "--test", "", false},
		{"--test=value", "--test", "value", true},
		{"--test=", "--test", "", true},
		{"--test=a=b", "--test", "a=b", true},
		{"=x", "", "x", true},
		{"", "", "", false},
	}
	for _, tt := range tests {
		name, value, hasValue := splitToken(tt.arg)
		if name != tt.name || value != tt.value || hasValue != tt.hasValue {
			t.Errorf("splitToken(%q) = %q, %q, %v; want %q, %q, %v",
				tt.arg, name, value, hasValue, tt.name, tt.value, tt.hasValue)
		}
	}
}
