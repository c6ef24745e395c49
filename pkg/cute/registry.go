// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cute

import (
	"slices"

	"tailscale.com/util/mak"
)

// Registry is an ordered set of options indexed by spelling.
//
// Registering a spelling that is already present replaces the earlier option
// in place, so the last registration wins while the original position is kept.
// The zero value is ready to use.
type Registry[K comparable] struct {
	opts  []Opt[K]
	index map[string]int // spelling -> position in opts
}

// Register adds opt, replacing any option with the same spelling.
func (r *Registry[K]) Register(opt Opt[K]) {
	if i, ok := r.index[opt.spelling]; ok {
		r.opts[i] = opt
		return
	}
	mak.Set(&r.index, opt.spelling, len(r.opts))
	r.opts = append(r.opts, opt)
}

// Find returns the option registered under spelling.
func (r *Registry[K]) Find(spelling string) (Opt[K], bool) {
	i, ok := r.index[spelling]
	if !ok {
		var zero Opt[K]
		return zero, false
	}
	return r.opts[i], true
}

// ByKey returns the first option, in registration order, that carries key.
// Several spellings may share a key to act as aliases.
func (r *Registry[K]) ByKey(key K) (Opt[K], bool) {
	i := slices.IndexFunc(r.opts, func(o Opt[K]) bool { return o.key == key })
	if i < 0 {
		var zero Opt[K]
		return zero, false
	}
	return r.opts[i], true
}

// HasKey reports whether any registered option carries key.
func (r *Registry[K]) HasKey(key K) bool {
	_, ok := r.ByKey(key)
	return ok
}

// Len returns the number of distinct spellings registered.
func (r *Registry[K]) Len() int { return len(r.opts) }

// Opts returns a copy of the registered options in registration order.
func (r *Registry[K]) Opts() []Opt[K] { return slices.Clone(r.opts) }
