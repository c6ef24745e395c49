// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cute

import "strings"

// Kind says whether an option is a boolean switch or takes a value.
type Kind uint8

const (
	// KindSwitch is a boolean flag. Its presence records true.
	KindSwitch Kind = iota + 1
	// KindValue is an option that carries a string payload, either inline
	// (--name=value) or as the following token (--name value).
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindSwitch:
		return "switch"
	case KindValue:
		return "option"
	default:
		return "unknown"
	}
}

// Opt describes one recognized option: the literal token a user types to
// invoke it, whether it takes a value, and the caller's key under which its
// result is stored.
//
// An Opt is built with Switch or Option and never changes afterwards.
type Opt[K comparable] struct {
	spelling string
	kind     Kind
	key      K
}

// Switch returns a boolean option. It never consumes the following token and
// must not be given an inline value.
//
// Spellings are matched verbatim; by convention they start with "--" or "-".
func Switch[K comparable](spelling string, key K) Opt[K] {
	return Opt[K]{spelling: spelling, kind: KindSwitch, key: key}
}

// Option returns a value-taking option. The value is read from an inline
// "=value" suffix when present, otherwise from the next token.
func Option[K comparable](spelling string, key K) Opt[K] {
	return Opt[K]{spelling: spelling, kind: KindValue, key: key}
}

// Spelling returns the token that invokes the option, e.g. "--verbose".
func (o Opt[K]) Spelling() string { return o.spelling }

// Kind returns whether the option is a switch or takes a value.
func (o Opt[K]) Kind() Kind { return o.kind }

// Key returns the caller-supplied key the option's result is stored under.
func (o Opt[K]) Key() K { return o.key }

// Consumes reports whether the option reads a value.
func (o Opt[K]) Consumes() bool { return o.kind == KindValue }

// splitToken splits an argument at its first "=" into the option name and the
// inline value. hasValue distinguishes "--name=" (empty value) from "--name".
func splitToken(arg string) (name, value string, hasValue bool) {
	return strings.Cut(arg, "=")
}
