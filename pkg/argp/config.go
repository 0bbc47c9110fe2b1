// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argp

// Config holds parsing policy independent of any one command spec. The
// zero value is the conservative default: exact matching only, case
// sensitive, no underscore conversion, no flag values via "=".
//
// Per-level CommandSpec flags combine with Config by boolean OR: a level
// can widen matching behavior but never disable what the Config enables.
type Config struct {
	// AllowAbbreviatedOptions matches unambiguous prefixes of long
	// option names.
	AllowAbbreviatedOptions bool
	// MinAbbreviationLength is the shortest fragment that may abbreviate
	// a name. Values below 1 mean 1.
	MinAbbreviationLength int
	// AllowAbbreviatedSubcommands matches unambiguous prefixes of
	// subcommand names and aliases.
	AllowAbbreviatedSubcommands bool
	// AllowAliases enables subcommand alias matching.
	AllowAliases bool
	// CaseInsensitiveOptions folds case on all option triggers.
	CaseInsensitiveOptions bool
	// CaseInsensitiveFlags folds case on flag triggers only.
	CaseInsensitiveFlags bool
	// CaseInsensitiveSubcommands folds case on subcommand names.
	CaseInsensitiveSubcommands bool
	// ConvertUnderscores normalizes "_" to "-" in option names on both
	// sides of the match.
	ConvertUnderscores bool
	// StrictOptionsBeforePositionals forces every "-"-prefixed token
	// after the first positional to be treated as a positional,
	// POSIX-getopt style.
	StrictOptionsBeforePositionals bool
	// AllowEqualsForFlags permits explicit boolean values on flags via
	// "--flag=value", coerced through the option's truthy/falsey sets.
	AllowEqualsForFlags bool
}
