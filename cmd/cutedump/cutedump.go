// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// cutedump declares options on the command line, parses the arguments that
// follow "--" against them and prints what matched. It is a debugging aid for
// option sets built with package cute.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"github.com/yeetrun/cute/pkg/cute"
	"github.com/yeetrun/cute/pkg/tui"
	"golang.org/x/term"
)

const usage = `Usage: cutedump [flags] -- ARGS...

Declare options and show how ARGS parse against them.

Flags:
  -s, --switch SPELLING   declare a switch (repeatable)
  -o, --option SPELLING   declare a value option (repeatable)
  -f, --format FORMAT     output format: text, json, yaml, toml (default text)
      --no-color          disable colored text output
  -h, --help              show this help

Switches are declared before options, so an option declared with the same
spelling as a switch replaces it.

Example:
  cutedump -s --verbose -o --output -- --verbose --output=out.txt
`

type flagKey int

const (
	flagSwitch flagKey = iota
	flagOption
	flagFormat
	flagNoColor
	flagHelp
)

type config struct {
	switches []string
	options  []string
	format   string
	noColor  bool
	help     bool
}

func newFlagParser() *cute.Ctx[flagKey] {
	return cute.New[flagKey]().
		AddOption("--switch", flagSwitch).
		AddOption("-s", flagSwitch).
		AddOption("--option", flagOption).
		AddOption("-o", flagOption).
		AddOption("--format", flagFormat).
		AddOption("-f", flagFormat).
		AddSwitch("--no-color", flagNoColor).
		AddSwitch("--help", flagHelp).
		AddSwitch("-h", flagHelp)
}

// optional turns a missing key into the zero value.
func optional[T any](v T, err error) (T, error) {
	if errors.Is(err, cute.ErrKeyNotFound) {
		var zero T
		return zero, nil
	}
	return v, err
}

func parseConfig(args []string) (*config, error) {
	c := newFlagParser()
	if err := c.Parse(args); err != nil {
		return nil, err
	}

	cfg := &config{format: formatText}
	var err error
	if cfg.switches, err = optional(c.Values(flagSwitch)); err != nil {
		return nil, err
	}
	if cfg.options, err = optional(c.Values(flagOption)); err != nil {
		return nil, err
	}
	if cfg.noColor, err = optional(c.Bool(flagNoColor)); err != nil {
		return nil, err
	}
	if cfg.help, err = optional(c.Bool(flagHelp)); err != nil {
		return nil, err
	}
	if c.Matched(flagFormat) {
		if cfg.format, err = c.Text(flagFormat); err != nil {
			return nil, err
		}
	}
	if !slices.Contains(formats, cfg.format) {
		return nil, fmt.Errorf("unknown format %q (want one of %v)", cfg.format, formats)
	}
	return cfg, nil
}

// splitArgs splits args at the first "--".
func splitArgs(args []string) (flags, rest []string) {
	i := slices.Index(args, "--")
	if i < 0 {
		return args, nil
	}
	return args[:i], args[i+1:]
}

// run executes cutedump and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, isTTY bool) int {
	logger := log.New(stderr, "cutedump: ", 0)

	flags, rest := splitArgs(args)
	cfg, err := parseConfig(flags)
	if err != nil {
		logger.Printf("%v", err)
		fmt.Fprint(stderr, usage)
		return 2
	}
	if cfg.help {
		fmt.Fprint(stdout, usage)
		return 0
	}
	color := tui.NewColorizer(isTTY && !cfg.noColor)

	c := cute.New[string]()
	for _, s := range cfg.switches {
		c.AddSwitch(s, s)
	}
	for _, s := range cfg.options {
		c.AddOption(s, s)
	}
	if err := c.Parse(rest); err != nil {
		logger.Printf("%s %v", color.Wrap(tui.RoleError, "parse:"), err)
		return 2
	}

	if err := render(stdout, cfg.format, c.Results(), color); err != nil {
		logger.Printf("write output: %v", err)
		return 1
	}
	return 0
}

func main() {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, isTTY))
}
