// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argp

import (
	"fmt"
	"strings"
)

// maxNameRunes bounds how much of an offending token is echoed back in an
// error message, so a pathological input cannot produce an unbounded string.
const maxNameRunes = 64

func clipName(s string) string {
	runes := []rune(s)
	if len(runes) <= maxNameRunes {
		return s
	}
	return string(runes[:maxNameRunes]) + "..."
}

// UnknownOptionError is returned when a long name or short letter does not
// resolve against the current command level.
type UnknownOptionError struct {
	Name string // the raw fragment, without dashes
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option: %s", clipName(e.Name))
}

// UnknownSubcommandError is returned when a bare token neither matches a
// subcommand nor fits any remaining positional.
type UnknownSubcommandError struct {
	Name string
}

func (e *UnknownSubcommandError) Error() string {
	return fmt.Sprintf("unknown command: %s", clipName(e.Name))
}

// AmbiguousOptionError is returned when an abbreviated option fragment is
// a prefix of two or more distinct options. Candidates is sorted.
type AmbiguousOptionError struct {
	Fragment   string
	Candidates []string
}

func (e *AmbiguousOptionError) Error() string {
	return fmt.Sprintf("ambiguous option %s: could be %s",
		clipName(e.Fragment), strings.Join(e.Candidates, ", "))
}

// AmbiguousSubcommandError is returned when an abbreviated subcommand
// fragment is a prefix of two or more distinct subcommands. Candidates is
// sorted.
type AmbiguousSubcommandError struct {
	Fragment   string
	Candidates []string
}

func (e *AmbiguousSubcommandError) Error() string {
	return fmt.Sprintf("ambiguous command %s: could be %s",
		clipName(e.Fragment), strings.Join(e.Candidates, ", "))
}

// InsufficientOptionValuesError is returned when fewer value tokens are
// available for an option than its arity minimum.
type InsufficientOptionValuesError struct {
	Option   *OptionSpec
	Expected int // arity minimum
	Got      int
}

func (e *InsufficientOptionValuesError) Error() string {
	return fmt.Sprintf("option %s requires at least %d value(s), got %d",
		e.Option.Name, e.Expected, e.Got)
}

// InsufficientPositionalsError is returned when the tokens remaining at a
// command level cannot satisfy a positional's arity minimum. Positional is
// the first spec, in declaration order, that cannot be satisfied.
type InsufficientPositionalsError struct {
	Positional *PositionalSpec
	Expected   int // arity minimum
	Got        int
}

func (e *InsufficientPositionalsError) Error() string {
	return fmt.Sprintf("argument %s requires at least %d value(s), got %d",
		e.Positional.Name, e.Expected, e.Got)
}

// DuplicateOptionError is returned when an ErrorOnDuplicate option occurs
// more than once.
type DuplicateOptionError struct {
	Option *OptionSpec
}

func (e *DuplicateOptionError) Error() string {
	return fmt.Sprintf("option %s cannot be specified multiple times", e.Option.Name)
}

// FlagValueError is returned when an explicit flag value does not match
// the option's truthy or falsey sets.
type FlagValueError struct {
	Option *OptionSpec
	Value  string
}

func (e *FlagValueError) Error() string {
	return fmt.Sprintf("invalid value %q for flag %s", clipName(e.Value), e.Option.Name)
}

// InternalError reports a decision point the parser considers unreachable.
// Seeing one means a bug in argp, never bad user input.
type InternalError struct {
	Where  string
	Detail string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("argp internal error in %s: %s", e.Where, e.Detail)
}
