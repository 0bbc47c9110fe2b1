// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command argp is a grammar inspector: it loads a command spec from a
// YAML or TOML file, parses an argument vector against it, and prints
// the resulting tree as JSON.
//
// Usage:
//
//	argp --spec cli.yaml -- --verbose add f1 f2
//
// Everything after "--" is handed to the loaded grammar verbatim. Exit
// code 2 means the target arguments failed to parse; exit code 1 means
// the inspector itself was misused.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/yeetrun/argp/pkg/argp"
	"github.com/yeetrun/argp/pkg/specfile"
)

// inspectorArgs is the inspector's own command line, parsed with the
// same engine it inspects.
type inspectorArgs struct {
	Spec    string `flag:"spec" short:"s"`
	Compact bool   `flag:"compact" short:"c"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	spec := argp.FromStruct[inspectorArgs]("argp")
	own, err := argp.New(spec, argp.Config{AllowAbbreviatedOptions: true}).Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("argp: %v", err))
		return 1
	}

	path, ok := own.Option("spec")
	if !ok {
		fmt.Fprintln(os.Stderr, "usage: argp --spec FILE [--compact] -- ARGS...")
		return 1
	}

	grammar, cfg, err := specfile.Load(path.Str)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("argp: %v", err))
		return 1
	}

	res, err := argp.New(grammar, cfg).Parse(own.ExtraArgs)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%v", err))
		return 2
	}

	enc := json.NewEncoder(os.Stdout)
	if v, _ := own.Option("compact"); !v.Bool {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(resultJSON(res)); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("argp: %v", err))
		return 1
	}
	return 0
}

// resultJSON flattens a Result into plain maps so the Value union
// marshals as its natural JSON shape per kind.
func resultJSON(r *argp.Result) map[string]any {
	out := map[string]any{"command": r.Command}
	if r.Alias != "" {
		out["alias"] = r.Alias
	}
	if len(r.Options) > 0 {
		opts := make(map[string]any, len(r.Options))
		for name, ov := range r.Options {
			opts[name] = valueJSON(ov.Value)
		}
		out["options"] = opts
	}
	if len(r.Positionals) > 0 {
		pos := make(map[string]any, len(r.Positionals))
		for name, pv := range r.Positionals {
			pos[name] = valueJSON(pv.Value)
		}
		out["positionals"] = pos
	}
	if len(r.ExtraArgs) > 0 {
		out["extra_args"] = r.ExtraArgs
	}
	if r.Subcommand != nil {
		out["subcommand"] = resultJSON(r.Subcommand)
	}
	return out
}

func valueJSON(v argp.Value) any {
	switch v.Kind {
	case argp.KindBool:
		return v.Bool
	case argp.KindString:
		return v.Str
	case argp.KindStrings:
		return v.Strs
	case argp.KindGroups:
		return v.Groups
	case argp.KindCount:
		return v.N
	}
	return nil
}
