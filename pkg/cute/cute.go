// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cute

import (
	"iter"
	"os"
	"slices"
)

// Ctx owns a set of registered options and the values parsed against them.
//
// A Ctx is not safe for concurrent use. Build a new Ctx to start over; there
// is no way to clear parsed values.
type Ctx[K comparable] struct {
	opts  Registry[K]
	store Store[K]
}

// New returns an empty Ctx.
func New[K comparable]() *Ctx[K] {
	return &Ctx[K]{}
}

// Add registers opt. A later option with the same spelling replaces an
// earlier one. Add returns c so registrations can be chained.
func (c *Ctx[K]) Add(opt Opt[K]) *Ctx[K] {
	c.opts.Register(opt)
	return c
}

// AddSwitch is shorthand for c.Add(Switch(spelling, key)).
func (c *Ctx[K]) AddSwitch(spelling string, key K) *Ctx[K] {
	return c.Add(Switch(spelling, key))
}

// AddOption is shorthand for c.Add(Option(spelling, key)).
func (c *Ctx[K]) AddOption(spelling string, key K) *Ctx[K] {
	return c.Add(Option(spelling, key))
}

// Registry returns the options registered with c.
func (c *Ctx[K]) Registry() *Registry[K] { return &c.opts }

// Get returns the first registered option that carries key.
func (c *Ctx[K]) Get(key K) (Opt[K], bool) { return c.opts.ByKey(key) }

// Has reports whether an option carrying key is registered.
func (c *Ctx[K]) Has(key K) bool { return c.opts.HasKey(key) }

// Matched reports whether key was matched during parsing.
func (c *Ctx[K]) Matched(key K) bool { return c.store.Has(key) }

// Parse parses args, which should not include the program name.
//
// Each token is matched against the registered spellings, after splitting
// it at the first "=". A switch records true. A value option records its
// inline value, or the token that follows it when there is none; that token
// is taken verbatim even if it starts with "-".
//
// Parse stops at the first error. Values recorded before the failing token
// are kept.
func (c *Ctx[K]) Parse(args []string) error {
	return c.ParseSeq(slices.Values(args))
}

// ParseSeq is like Parse but reads tokens from seq.
func (c *Ctx[K]) ParseSeq(seq iter.Seq[string]) error {
	_, err := c.parse(seq, false)
	return err
}

// ParseArgs parses the process arguments, os.Args[1:].
func (c *Ctx[K]) ParseArgs() error {
	return c.Parse(os.Args[1:])
}

// ParseKnown is like Parse but leaves unrecognized tokens in rest, in their
// original order, instead of failing on them. Malformed switches and missing
// values are still errors.
func (c *Ctx[K]) ParseKnown(args []string) (rest []string, err error) {
	return c.parse(slices.Values(args), true)
}

func (c *Ctx[K]) parse(seq iter.Seq[string], keepUnknown bool) ([]string, error) {
	next, stop := iter.Pull(seq)
	defer stop()

	var rest []string
	for {
		arg, ok := next()
		if !ok {
			return rest, nil
		}

		name, value, hasValue := splitToken(arg)
		opt, ok := c.opts.Find(name)
		if !ok {
			if keepUnknown {
				rest = append(rest, arg)
				continue
			}
			return rest, &UnrecognizedOptionError{Spelling: name}
		}

		if !opt.Consumes() {
			if hasValue {
				return rest, &MalformedSwitchError{Spelling: name, Value: value}
			}
			c.store.Set(opt.key, BoolValue(true))
			continue
		}

		if !hasValue {
			// --name value
			value, ok = next()
			if !ok {
				return rest, &MissingValueError{Spelling: name}
			}
		}
		c.store.Set(opt.key, TextValue(value))
	}
}
