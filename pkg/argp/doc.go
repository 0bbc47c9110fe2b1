// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package argp is a command-line argument parsing engine: given a
// declarative spec of a command's options, positionals, and subcommands,
// it turns a raw argument vector into a typed result tree.
//
// The engine is deliberately small and policy-driven:
//   - Declarative, immutable CommandSpec trees with per-level namespaces
//   - Option abbreviation, case-insensitive and underscore/dash matching
//   - Negation words ("--no-verbose"), combined short flags ("-abv x")
//   - Arity-bounded multi-value options and positionals
//   - Accumulation policies for repeated options (last, first, collect,
//     count, reject)
//   - Recursive subcommand dispatch with alias support
//   - A closed taxonomy of structured parse errors
//
// # Basic Usage
//
//	spec := &argp.CommandSpec{
//	    Name: "app",
//	    Options: []*argp.OptionSpec{
//	        {Long: []string{"verbose"}, Short: []string{"v"}, Flag: true},
//	        {Long: []string{"output"}, Short: []string{"o"}},
//	    },
//	    Positionals: []*argp.PositionalSpec{
//	        {Name: "files", Arity: argp.OneOrMore},
//	    },
//	}
//
//	p := argp.New(spec, argp.Config{})
//	res, err := p.Parse(os.Args[1:])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if v, ok := res.Option("verbose"); ok && v.Bool {
//	    ...
//	}
//
// # Subcommands
//
// Subcommand specs nest inside their parent. Once a bare token matches a
// subcommand, the remaining tokens are parsed against the child spec and
// the nested result is attached to Result.Subcommand; tokens consumed by
// a child are never reinterpreted by the parent.
//
// # Errors
//
// Parsing never recovers from a failure: the first unknown name,
// ambiguous abbreviation, arity shortfall, or rejected duplicate aborts
// the call with a typed error (see errors.go). Callers match on error
// type and fields rather than message text:
//
//	var amb *argp.AmbiguousOptionError
//	if errors.As(err, &amb) {
//	    fmt.Println("did you mean one of", amb.Candidates)
//	}
//
// The parser performs no I/O and keeps no per-call state on the Parser;
// one Parser may serve concurrent Parse calls over immutable specs.
package argp
