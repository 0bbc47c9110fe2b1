// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argp

import (
	"fmt"
	"unicode/utf8"
)

// Default truthy/falsey literals for explicit flag values, compared
// case-folded. Overridable per option via TruthyValues/FalseyValues.
var (
	defaultTruthy = []string{"1", "true", "yes", "on", "y", "t"}
	defaultFalsey = []string{"0", "false", "no", "off", "n", "f"}
)

// OptionSpec declares one named option of a command level. Construct it,
// hand it to a CommandSpec, and treat it as read-only from then on; the
// parser never mutates specs during a parse.
type OptionSpec struct {
	// Name is the canonical key under which the parsed value is reported.
	// Defaults to the first long trigger, else the first short trigger.
	Name string
	// Long holds long-form triggers, written without the leading dashes.
	Long []string
	// Short holds single-rune triggers, written without the leading dash.
	Short []string
	// Flag marks an option that consumes no value tokens by default.
	Flag bool
	// Arity bounds how many value tokens the option consumes per
	// occurrence. Defaults to ExactlyOne for non-flags, Zero for flags.
	Arity Arity
	// Accumulate merges repeated occurrences. Defaults to LastWins.
	Accumulate AccumulationMode
	// Const is the value recorded when a flag appears with no explicit
	// value. Defaults to true.
	Const *Value
	// TruthyValues and FalseyValues are the literals accepted as explicit
	// boolean values for a flag. Defaults apply when nil; an explicitly
	// empty set, or one containing an empty string, panics at validation.
	TruthyValues []string
	FalseyValues []string
	// NegationWords are prefixes combined with each long trigger to form
	// forced-false triggers, e.g. "no" yields "--no-verbose".
	NegationWords []string
	// FlattenValues collapses one nesting level when collecting
	// multi-value occurrences.
	FlattenValues bool
}

// PositionalSpec declares one positional parameter of a command level.
// Positionals are matched by declaration order, not by trigger.
type PositionalSpec struct {
	Name  string
	Arity Arity
}

// CommandSpec declares everything that may appear on the command line at
// one level, including nested subcommands. Each level owns its namespace;
// parent options are not visible while parsing a child.
type CommandSpec struct {
	Name        string
	Aliases     []string
	Options     []*OptionSpec
	Positionals []*PositionalSpec
	Subcommands []*CommandSpec

	// Per-level matching behavior, combined with the parser Config by
	// boolean OR: a level can widen matching, never narrow it.
	CaseInsensitiveOptions     bool
	CaseInsensitiveAliases     bool
	CaseInsensitiveSubcommands bool
	FlattenOptionValues        bool
}

// Validate checks the spec tree and fills derived defaults. It panics on a
// malformed spec: misdeclared commands are programming errors and surface
// immediately at construction, never during a parse. New calls it for you.
func (c *CommandSpec) Validate() {
	if c.Name == "" {
		panic("argp: command spec has no name")
	}
	optNames := make(map[string]bool, len(c.Options))
	for _, opt := range c.Options {
		opt.normalize()
		opt.check(c.Name)
		if optNames[opt.Name] {
			panic(fmt.Sprintf("argp: command %s declares option %s twice", c.Name, opt.Name))
		}
		optNames[opt.Name] = true
	}
	posNames := make(map[string]bool, len(c.Positionals))
	for _, pos := range c.Positionals {
		if pos.Name == "" {
			panic(fmt.Sprintf("argp: command %s has a positional with no name", c.Name))
		}
		if err := pos.Arity.validate(); err != nil {
			panic(fmt.Sprintf("argp: positional %s of command %s: %v", pos.Name, c.Name, err))
		}
		if posNames[pos.Name] {
			panic(fmt.Sprintf("argp: command %s declares positional %s twice", c.Name, pos.Name))
		}
		posNames[pos.Name] = true
	}
	subNames := make(map[string]bool, len(c.Subcommands))
	for _, sub := range c.Subcommands {
		sub.Validate()
		for _, name := range append([]string{sub.Name}, sub.Aliases...) {
			if subNames[name] {
				panic(fmt.Sprintf("argp: command %s declares subcommand name %s twice", c.Name, name))
			}
			subNames[name] = true
		}
	}
}

// normalize fills derived defaults. Runs before check.
func (o *OptionSpec) normalize() {
	if o.Name == "" {
		if len(o.Long) > 0 {
			o.Name = o.Long[0]
		} else if len(o.Short) > 0 {
			o.Name = o.Short[0]
		}
	}
	if !o.Flag && o.Arity == (Arity{}) {
		o.Arity = ExactlyOne
	}
	if o.Flag {
		o.Arity = Zero
	}
}

func (o *OptionSpec) check(cmd string) {
	if len(o.Long) == 0 && len(o.Short) == 0 {
		panic(fmt.Sprintf("argp: option %s of command %s has no long or short trigger", o.Name, cmd))
	}
	for _, s := range o.Short {
		if utf8.RuneCountInString(s) != 1 {
			panic(fmt.Sprintf("argp: short trigger %q of option %s is not a single rune", s, o.Name))
		}
	}
	if err := o.Arity.validate(); err != nil {
		panic(fmt.Sprintf("argp: option %s of command %s: %v", o.Name, cmd, err))
	}
	checkFlagValueSet(o.Name, "truthy", o.TruthyValues)
	checkFlagValueSet(o.Name, "falsey", o.FalseyValues)
	if o.Accumulate < LastWins || o.Accumulate > ErrorOnDuplicate {
		panic(fmt.Sprintf("argp: option %s has invalid accumulation mode %d", o.Name, o.Accumulate))
	}
}

// checkFlagValueSet rejects customized sets that could never match: an
// explicitly empty set, or a set containing the empty string.
func checkFlagValueSet(opt, which string, set []string) {
	if set == nil {
		return
	}
	if len(set) == 0 {
		panic(fmt.Sprintf("argp: option %s declares an empty %s value set", opt, which))
	}
	for _, s := range set {
		if s == "" {
			panic(fmt.Sprintf("argp: option %s declares an empty string in its %s value set", opt, which))
		}
	}
}

func (o *OptionSpec) truthy() []string {
	if o.TruthyValues != nil {
		return o.TruthyValues
	}
	return defaultTruthy
}

func (o *OptionSpec) falsey() []string {
	if o.FalseyValues != nil {
		return o.FalseyValues
	}
	return defaultFalsey
}

// constValue is the value recorded for a bare flag occurrence.
func (o *OptionSpec) constValue() Value {
	if o.Const != nil {
		return *o.Const
	}
	return BoolValue(true)
}
