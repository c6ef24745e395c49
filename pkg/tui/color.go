// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"os"

	"github.com/fatih/color"
)

// Role names what a piece of output is, so callers don't pick raw colors.
type Role int

const (
	RoleKey Role = iota
	RoleBool
	RoleText
	RoleError
	RoleDim
)

var palette = map[Role][]color.Attribute{
	RoleKey:   {color.FgCyan, color.Bold},
	RoleBool:  {color.FgGreen},
	RoleText:  {color.FgYellow},
	RoleError: {color.FgRed, color.Bold},
	RoleDim:   {color.FgHiBlack},
}

type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer that colors output only if enabled is set
// and the environment allows it (NO_COLOR unset, TERM set and not "dumb").
func NewColorizer(enabled bool) Colorizer {
	if !enabled {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

func (c Colorizer) Wrap(role Role, text string) string {
	attrs, ok := palette[role]
	if !c.Enabled || !ok {
		return text
	}
	col := color.New(attrs...)
	// fatih/color disables itself when stdout is not a tty; the caller
	// already decided.
	col.EnableColor()
	return col.Sprint(text)
}
