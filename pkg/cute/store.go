// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cute

import (
	"slices"

	"tailscale.com/util/mak"
)

// Store holds parsed values by key. Every occurrence is kept in arrival
// order; Get returns the latest one. The zero value is ready to use.
type Store[K comparable] struct {
	values map[K][]Value
	order  []K // keys in order of first occurrence
}

// Set records v as the latest value for key.
func (s *Store[K]) Set(key K, v Value) {
	prev, ok := s.values[key]
	if !ok {
		s.order = append(s.order, key)
	}
	mak.Set(&s.values, key, append(prev, v))
}

// Get returns the latest value recorded for key.
func (s *Store[K]) Get(key K) (Value, bool) {
	vals := s.values[key]
	if len(vals) == 0 {
		return Value{}, false
	}
	return vals[len(vals)-1], true
}

// All returns a copy of every value recorded for key, oldest first.
func (s *Store[K]) All(key K) []Value {
	return slices.Clone(s.values[key])
}

// Pop removes and returns the latest value recorded for key. Once the last
// value is popped the key is forgotten.
func (s *Store[K]) Pop(key K) (Value, bool) {
	vals := s.values[key]
	if len(vals) == 0 {
		return Value{}, false
	}
	v := vals[len(vals)-1]
	if len(vals) == 1 {
		delete(s.values, key)
		s.order = slices.DeleteFunc(s.order, func(k K) bool { return k == key })
	} else {
		s.values[key] = vals[:len(vals)-1]
	}
	return v, true
}

// Has reports whether any value is recorded for key.
func (s *Store[K]) Has(key K) bool {
	return len(s.values[key]) > 0
}

// Keys returns the keys with recorded values in order of first occurrence.
func (s *Store[K]) Keys() []K { return slices.Clone(s.order) }

// Len returns the number of keys with recorded values.
func (s *Store[K]) Len() int { return len(s.order) }
