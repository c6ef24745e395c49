// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cute

import (
	"fmt"
	"strconv"
	"time"
)

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	// ValueInvalid is the kind of the zero Value.
	ValueInvalid ValueKind = iota
	// ValueBool is recorded by switches.
	ValueBool
	// ValueText is recorded by value options.
	ValueText
)

func (k ValueKind) String() string {
	switch k {
	case ValueBool:
		return "bool"
	case ValueText:
		return "string"
	default:
		return "invalid"
	}
}

// Value is a parsed result: either a boolean or a string.
type Value struct {
	kind ValueKind
	b    bool
	s    string
}

// BoolValue returns a Value holding b.
func BoolValue(b bool) Value { return Value{kind: ValueBool, b: b} }

// TextValue returns a Value holding s.
func TextValue(s string) Value { return Value{kind: ValueText, s: s} }

// Kind returns the variant held by v.
func (v Value) Kind() ValueKind { return v.kind }

// Bool returns the boolean held by v, and false for ok if v is not a bool.
func (v Value) Bool() (b, ok bool) { return v.b, v.kind == ValueBool }

// Text returns the string held by v, and false for ok if v is not text.
func (v Value) Text() (s string, ok bool) { return v.s, v.kind == ValueText }

// Any returns the held value as a bool or string, or nil for the zero Value.
func (v Value) Any() any {
	switch v.kind {
	case ValueBool:
		return v.b
	case ValueText:
		return v.s
	default:
		return nil
	}
}

// Equal reports whether v and w hold the same variant and value.
func (v Value) Equal(w Value) bool { return v == w }

func (v Value) String() string {
	switch v.kind {
	case ValueBool:
		return strconv.FormatBool(v.b)
	case ValueText:
		return v.s
	default:
		return "<invalid>"
	}
}

// ValueOf returns the latest value recorded for key as T.
//
// It returns a *KeyNotFoundError if key was never matched and a
// *TypeMismatchError if the stored variant is not T. No coercion happens:
// asking for a string from a switch is an error, not "true".
//
//	verbose, err := cute.ValueOf[bool](c, Verbose)
func ValueOf[T bool | string, K comparable](c *Ctx[K], key K) (T, error) {
	var out T
	v, ok := c.store.Get(key)
	if !ok {
		return out, &KeyNotFoundError{Key: key}
	}
	switch p := any(&out).(type) {
	case *bool:
		b, ok := v.Bool()
		if !ok {
			return out, &TypeMismatchError{Key: key, Expected: ValueBool, Actual: v.kind}
		}
		*p = b
	case *string:
		s, ok := v.Text()
		if !ok {
			return out, &TypeMismatchError{Key: key, Expected: ValueText, Actual: v.kind}
		}
		*p = s
	}
	return out, nil
}

// ValueAs returns the latest text value for key converted by conv. Conversion
// failures are returned as a *ConvertError wrapping conv's error.
//
//	port, err := cute.ValueAs(c, Port, func(s string) (uint16, error) {
//	    n, err := strconv.ParseUint(s, 10, 16)
//	    return uint16(n), err
//	})
func ValueAs[T any, K comparable](c *Ctx[K], key K, conv func(string) (T, error)) (T, error) {
	var zero T
	s, err := ValueOf[string](c, key)
	if err != nil {
		return zero, err
	}
	out, err := conv(s)
	if err != nil {
		return zero, &ConvertError{Key: key, Value: s, Err: err}
	}
	return out, nil
}

// Bool returns the switch value for key.
func (c *Ctx[K]) Bool(key K) (bool, error) { return ValueOf[bool](c, key) }

// Text returns the text value for key.
func (c *Ctx[K]) Text(key K) (string, error) { return ValueOf[string](c, key) }

// Int returns the text value for key parsed as a base-10 int.
func (c *Ctx[K]) Int(key K) (int, error) {
	return ValueAs(c, key, strconv.Atoi)
}

// Uint returns the text value for key parsed as a base-10 uint64.
func (c *Ctx[K]) Uint(key K) (uint64, error) {
	return ValueAs(c, key, func(s string) (uint64, error) {
		return strconv.ParseUint(s, 10, 64)
	})
}

// Float64 returns the text value for key parsed as a float64.
func (c *Ctx[K]) Float64(key K) (float64, error) {
	return ValueAs(c, key, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// Duration returns the text value for key parsed by time.ParseDuration.
func (c *Ctx[K]) Duration(key K) (time.Duration, error) {
	return ValueAs(c, key, time.ParseDuration)
}

// Values returns every text value recorded for key, oldest first. This is how
// repeatable options (--tag a --tag b) are read.
func (c *Ctx[K]) Values(key K) ([]string, error) {
	all := c.store.All(key)
	if len(all) == 0 {
		return nil, &KeyNotFoundError{Key: key}
	}
	out := make([]string, 0, len(all))
	for _, v := range all {
		s, ok := v.Text()
		if !ok {
			return nil, &TypeMismatchError{Key: key, Expected: ValueText, Actual: v.kind}
		}
		out = append(out, s)
	}
	return out, nil
}

// PopValue removes and returns the latest value recorded for key.
func (c *Ctx[K]) PopValue(key K) (Value, error) {
	v, ok := c.store.Pop(key)
	if !ok {
		return Value{}, &KeyNotFoundError{Key: key}
	}
	return v, nil
}

// Lookup returns the latest value recorded for key without checking its kind.
func (c *Ctx[K]) Lookup(key K) (Value, bool) { return c.store.Get(key) }

// Result is one entry of a parsed Ctx: a key and its latest value.
type Result[K comparable] struct {
	Key   K
	Value Value
	Count int // number of times the key matched
}

func (r Result[K]) String() string {
	return fmt.Sprintf("%v=%s", r.Key, r.Value)
}

// Results returns the recorded values in the order their keys first matched.
func (c *Ctx[K]) Results() []Result[K] {
	keys := c.store.Keys()
	out := make([]Result[K], 0, len(keys))
	for _, k := range keys {
		all := c.store.All(k)
		out = append(out, Result[K]{Key: k, Value: all[len(all)-1], Count: len(all)})
	}
	return out
}
