// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/cute/pkg/cute"
	"github.com/yeetrun/cute/pkg/tui"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

var formats = []string{formatText, formatJSON, formatYAML, formatTOML}

// record is the serialized form of one cute.Result.
type record struct {
	Key   string `json:"key" yaml:"key" toml:"key"`
	Kind  string `json:"kind" yaml:"kind" toml:"kind"`
	Value any    `json:"value" yaml:"value" toml:"value"`
	Count int    `json:"count" yaml:"count" toml:"count"`
}

func toRecords(results []cute.Result[string]) []record {
	out := make([]record, 0, len(results))
	for _, r := range results {
		out = append(out, record{
			Key:   r.Key,
			Kind:  r.Value.Kind().String(),
			Value: r.Value.Any(),
			Count: r.Count,
		})
	}
	return out
}

func render(w io.Writer, format string, results []cute.Result[string], color tui.Colorizer) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toRecords(results))
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toRecords(results)); err != nil {
			return err
		}
		return enc.Close()
	case formatTOML:
		doc := struct {
			Results []record `toml:"results"`
		}{toRecords(results)}
		return toml.NewEncoder(w).Encode(doc)
	case formatText:
		return renderText(w, results, color)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func renderText(w io.Writer, results []cute.Result[string], color tui.Colorizer) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, color.Wrap(tui.RoleDim, "no options matched"))
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, r := range results {
		var val string
		if s, ok := r.Value.Text(); ok {
			val = color.Wrap(tui.RoleText, strconv.Quote(s))
		} else {
			val = color.Wrap(tui.RoleBool, r.Value.String())
		}
		line := color.Wrap(tui.RoleKey, r.Key) + "\t" + val
		if r.Count > 1 {
			line += "\t" + color.Wrap(tui.RoleDim, fmt.Sprintf("(x%d)", r.Count))
		}
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}
