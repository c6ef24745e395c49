// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cute parses command-line options into values tagged with a
// caller-defined key.
//
// Options are registered on a Ctx together with a key of any comparable type,
// usually a small enum. After parsing, results are read back by key:
//
//	type Key int
//
//	const (
//	    Verbose Key = iota
//	    Output
//	)
//
//	c := cute.New[Key]()
//	c.Add(cute.Switch("--verbose", Verbose))
//	c.Add(cute.Option("--output", Output))
//
//	if err := c.Parse(os.Args[1:]); err != nil {
//	    log.Fatal(err)
//	}
//	verbose, _ := c.Bool(Verbose)
//	out, err := cute.ValueOf[string](c, Output)
//
// # Token Syntax
//
//   - Switches: --verbose
//   - Value options (equals): --output=file.txt, --output=
//   - Value options (space): --output file.txt
//
// Spellings are compared verbatim, so "-v", "--verbose" and "/?" are all valid
// spellings. Several spellings may share one key to act as aliases.
//
// # Duplicates
//
// Registering a spelling twice keeps the later option. Passing an option more
// than once keeps every occurrence; ValueOf returns the latest and Values
// returns them all.
//
// # Errors
//
// Parse returns *UnrecognizedOptionError, *MalformedSwitchError or
// *MissingValueError. The accessors return *KeyNotFoundError when a key never
// matched and *TypeMismatchError when a switch is read as text or the reverse.
// Each of these also matches a sentinel (ErrUnrecognizedOption, ...) with
// errors.Is.
package cute
