// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cute

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error returned by Parse and the value accessors
// matches one of these with errors.Is.
var (
	// ErrUnrecognizedOption is matched by *UnrecognizedOptionError.
	ErrUnrecognizedOption = errors.New("unrecognized option")

	// ErrMalformedSwitch is matched by *MalformedSwitchError.
	ErrMalformedSwitch = errors.New("switch does not take a value")

	// ErrMissingValue is matched by *MissingValueError.
	ErrMissingValue = errors.New("missing value")

	// ErrKeyNotFound is matched by *KeyNotFoundError.
	ErrKeyNotFound = errors.New("key not found")

	// ErrTypeMismatch is matched by *TypeMismatchError.
	ErrTypeMismatch = errors.New("type mismatch")
)

// UnrecognizedOptionError is returned when a token matches no registered option.
type UnrecognizedOptionError struct {
	Spelling string // Name part of the token (before any "=")
}

func (e *UnrecognizedOptionError) Error() string {
	return fmt.Sprintf("unrecognized option: %s", e.Spelling)
}

func (e *UnrecognizedOptionError) Unwrap() error { return ErrUnrecognizedOption }

// MalformedSwitchError is returned when a switch is given an inline value,
// as in "--verbose=yes".
type MalformedSwitchError struct {
	Spelling string
	Value    string
}

func (e *MalformedSwitchError) Error() string {
	return fmt.Sprintf("switch %s does not take a value, got %q", e.Spelling, e.Value)
}

func (e *MalformedSwitchError) Unwrap() error { return ErrMalformedSwitch }

// MissingValueError is returned when a value option is the last token and has
// no inline value.
type MissingValueError struct {
	Spelling string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("option %s requires a value", e.Spelling)
}

func (e *MissingValueError) Unwrap() error { return ErrMissingValue }

// KeyNotFoundError is returned when a key was never matched during parsing.
type KeyNotFoundError struct {
	Key any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("no value for key %v", e.Key)
}

func (e *KeyNotFoundError) Unwrap() error { return ErrKeyNotFound }

// TypeMismatchError is returned when a value is requested as a kind other than
// the one stored, e.g. a bool for an option that recorded text.
type TypeMismatchError struct {
	Key      any
	Expected ValueKind
	Actual   ValueKind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("value for key %v is %s, not %s", e.Key, e.Actual, e.Expected)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// ConvertError is returned when a text value cannot be converted to the
// requested type. Err holds the underlying conversion error.
type ConvertError struct {
	Key   any
	Value string
	Err   error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("value %q for key %v: %v", e.Value, e.Key, e.Err)
}

func (e *ConvertError) Unwrap() error { return e.Err }
