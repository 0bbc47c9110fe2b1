// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argp

import "fmt"

// Unbounded marks an Arity with no upper limit on consumed tokens.
const Unbounded = -1

// Arity describes how many value tokens a parameter consumes.
// Min is the number of tokens required for the parameter to be
// satisfied; Max is the most it will ever take (Unbounded for no limit).
type Arity struct {
	Min int
	Max int
}

// Common arities.
var (
	// Zero consumes no tokens (a pure flag).
	Zero = Arity{0, 0}
	// ExactlyOne consumes exactly one token.
	ExactlyOne = Arity{1, 1}
	// ZeroOrOne consumes at most one token.
	ZeroOrOne = Arity{0, 1}
	// ZeroOrMore consumes any number of tokens.
	ZeroOrMore = Arity{0, Unbounded}
	// OneOrMore consumes at least one token.
	OneOrMore = Arity{1, Unbounded}
)

// NewArity returns an Arity with the given bounds. It panics if min is
// negative or max is bounded and less than min; an invalid arity is a
// programming error in the command spec, not user input.
func NewArity(min, max int) Arity {
	a := Arity{Min: min, Max: max}
	if err := a.validate(); err != nil {
		panic(err)
	}
	return a
}

func (a Arity) validate() error {
	if a.Min < 0 {
		return fmt.Errorf("argp: arity min %d is negative", a.Min)
	}
	if a.Max != Unbounded && a.Max < a.Min {
		return fmt.Errorf("argp: arity max %d is less than min %d", a.Max, a.Min)
	}
	return nil
}

// Unbounded reports whether the arity has no upper limit.
func (a Arity) Unbounded() bool { return a.Max == Unbounded }

// Contains reports whether n consumed tokens satisfies the arity.
func (a Arity) Contains(n int) bool {
	return n >= a.Min && (a.Unbounded() || n <= a.Max)
}

func (a Arity) String() string {
	if a.Unbounded() {
		return fmt.Sprintf("%d..", a.Min)
	}
	if a.Min == a.Max {
		return fmt.Sprintf("%d", a.Min)
	}
	return fmt.Sprintf("%d..%d", a.Min, a.Max)
}
