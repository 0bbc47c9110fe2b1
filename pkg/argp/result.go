// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argp

// Result is the parse output for one command level. Results nest through
// Subcommand, mirroring the CommandSpec tree along the matched path.
// A Result is assembled once as recursion returns and must be treated as
// read-only by consumers.
type Result struct {
	// Command is the canonical name of the matched command.
	Command string
	// Alias is the literal token the user typed when it differs from the
	// canonical name (an alias, abbreviation, or case variant), else "".
	Alias string
	// Options maps canonical option name to its merged value. Only
	// options that actually occurred appear.
	Options map[string]OptionValue
	// Positionals maps canonical positional name to its value. Only
	// positionals that consumed at least one token appear; iteration
	// order follows the CommandSpec declaration order via the spec.
	Positionals map[string]PositionalValue
	// ExtraArgs holds tokens left over after a "--" terminator or beyond
	// every positional's maximum, verbatim and in input order.
	ExtraArgs []string
	// Subcommand is the nested result when a subcommand was matched.
	Subcommand *Result
}

// Option returns the merged value for the named option and whether it
// occurred.
func (r *Result) Option(name string) (Value, bool) {
	ov, ok := r.Options[name]
	return ov.Value, ok
}

// Positional returns the value for the named positional and whether it
// consumed any tokens.
func (r *Result) Positional(name string) (Value, bool) {
	pv, ok := r.Positionals[name]
	return pv.Value, ok
}
