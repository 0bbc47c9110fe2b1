// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argp

import "strings"

// Parser binds a validated command spec tree to a parsing Config. A
// Parser is reusable and safe for concurrent Parse calls as long as the
// bound specs are not mutated: every call keeps its state on the stack.
type Parser struct {
	root *CommandSpec
	cfg  Config
}

// New validates the spec tree (panicking on a malformed spec) and returns
// a Parser bound to it.
func New(root *CommandSpec, cfg Config) *Parser {
	root.Validate()
	return &Parser{root: root, cfg: cfg}
}

// Parse interprets args (without the program name) against the root spec.
// The first classification, arity, or ambiguity failure aborts the call;
// no partial Result is ever returned alongside an error.
func (p *Parser) Parse(args []string) (*Result, error) {
	return p.parseLevel(p.root, "", args)
}

// scope is the call-stack-local state for one command level.
type scope struct {
	cfg  Config
	spec *CommandSpec
	res  *resolver

	args []string
	i    int

	vals   map[string]OptionValue
	posBuf []string
	sawPos bool
	extras []string
	sub    *Result
}

func (p *Parser) parseLevel(spec *CommandSpec, literal string, args []string) (*Result, error) {
	s := &scope{
		cfg:  p.cfg,
		spec: spec,
		res:  newResolver(spec, p.cfg),
		args: args,
		vals: make(map[string]OptionValue),
	}
	if err := s.scan(p); err != nil {
		return nil, err
	}
	return s.finish(literal)
}

// scan walks the tokens left to right with a single cursor. Lookahead is
// limited to value consumption for the option under the cursor; nothing
// is ever re-read.
func (s *scope) scan(p *Parser) error {
	for s.i < len(s.args) {
		tok := s.args[s.i]
		switch {
		case tok == "--":
			s.extras = append(s.extras, s.args[s.i+1:]...)
			s.i = len(s.args)

		case s.forcedPositional(tok):
			s.posBuf = append(s.posBuf, tok)
			s.i++

		case strings.HasPrefix(tok, "--"):
			if err := s.longOption(tok[2:]); err != nil {
				return err
			}

		case len(tok) > 1 && strings.HasPrefix(tok, "-") && !isNumeric(tok):
			if err := s.shortOptions(tok[1:]); err != nil {
				return err
			}

		default:
			if err := s.bareToken(p, tok); err != nil {
				return err
			}
		}
	}
	return nil
}

// forcedPositional reports whether strict POSIX ordering demotes an
// option-looking token to a positional at this point of the scan.
func (s *scope) forcedPositional(tok string) bool {
	return s.cfg.StrictOptionsBeforePositionals && s.sawPos && strings.HasPrefix(tok, "-")
}

// bareToken classifies a token with no dash prefix: subcommand trigger
// first, positional otherwise. A matched subcommand consumes the rest of
// the input in a child scope and ends this level's scan.
func (s *scope) bareToken(p *Parser, tok string) error {
	sub, err := s.res.matchSubcommand(tok)
	if err != nil {
		return err
	}
	if sub != nil {
		literal := ""
		if tok != sub.Name {
			literal = tok
		}
		child, err := p.parseLevel(sub, literal, s.args[s.i+1:])
		if err != nil {
			return err
		}
		s.sub = child
		s.i = len(s.args)
		return nil
	}
	// A pure command router (subcommands, no positionals) has nowhere to
	// put a stray bare token.
	if len(s.spec.Subcommands) > 0 && len(s.spec.Positionals) == 0 {
		return &UnknownSubcommandError{Name: tok}
	}
	s.posBuf = append(s.posBuf, tok)
	s.sawPos = true
	s.i++
	return nil
}

// longOption handles "--name" and "--name=value" forms, including
// negation triggers, which force false and ignore any inline value.
func (s *scope) longOption(frag string) error {
	var inline *string
	if j := strings.Index(frag, "="); j >= 0 {
		v := frag[j+1:]
		inline = &v
		frag = frag[:j]
	}
	opt, negated, err := s.res.matchLong(frag)
	if err != nil {
		return err
	}
	s.i++

	var occ Value
	switch {
	case negated:
		occ = BoolValue(false)
	case opt.Flag:
		occ, err = s.flagValue(opt, inline)
	default:
		occ, err = s.optionValues(opt, inline)
	}
	if err != nil {
		return err
	}
	return s.merge(opt, occ)
}

// shortOptions scans a short cluster like "-abv". Every rune except the
// last must resolve to a flag; the last may take a value from "=", from
// the remainder of the cluster, or from following tokens.
func (s *scope) shortOptions(body string) error {
	runes := []rune(body)
	for idx := 0; idx < len(runes); idx++ {
		opt, err := s.res.matchShort(string(runes[idx]))
		if err != nil {
			return err
		}
		rest := string(runes[idx+1:])

		if opt.Flag {
			if strings.HasPrefix(rest, "=") {
				s.i++
				v := rest[1:]
				occ, err := s.flagValue(opt, &v)
				if err != nil {
					return err
				}
				return s.merge(opt, occ)
			}
			if err := s.merge(opt, opt.constValue()); err != nil {
				return err
			}
			continue
		}

		// Value-taking letter: consumes the rest of the cluster.
		s.i++
		var occ Value
		switch {
		case strings.HasPrefix(rest, "="):
			v := rest[1:]
			occ, err = s.optionValues(opt, &v)
		case rest != "":
			occ, err = s.optionValues(opt, &rest)
		default:
			occ, err = s.optionValues(opt, nil)
		}
		if err != nil {
			return err
		}
		return s.merge(opt, occ)
	}
	s.i++
	return nil
}

// flagValue resolves the occurrence value of a flag: its const value when
// bare, or an explicit literal coerced through the truthy/falsey sets.
func (s *scope) flagValue(opt *OptionSpec, inline *string) (Value, error) {
	if inline == nil {
		return opt.constValue(), nil
	}
	if !s.cfg.AllowEqualsForFlags {
		return Value{}, &FlagValueError{Option: opt, Value: *inline}
	}
	folded := strings.ToLower(*inline)
	for _, t := range opt.truthy() {
		if strings.ToLower(t) == folded {
			return BoolValue(true), nil
		}
	}
	for _, f := range opt.falsey() {
		if strings.ToLower(f) == folded {
			return BoolValue(false), nil
		}
	}
	return Value{}, &FlagValueError{Option: opt, Value: *inline}
}

// optionValues consumes value tokens for one occurrence of a non-flag
// option. An inline "=" value supplies exactly one token, so it can
// never satisfy an arity minimum above one. Otherwise
// following tokens are taken up to the arity maximum, stopping at end of
// input, at the terminator, at an exact subcommand name, or at an
// option-looking token once the arity minimum is met; below the minimum,
// option-looking tokens are still consumed raw and error detection is
// deferred to the count check.
func (s *scope) optionValues(opt *OptionSpec, inline *string) (Value, error) {
	if inline != nil {
		if opt.Arity.Min > 1 {
			return Value{}, &InsufficientOptionValuesError{
				Option:   opt,
				Expected: opt.Arity.Min,
				Got:      1,
			}
		}
		if opt.Arity.Max == 1 {
			return StringValue(*inline), nil
		}
		return Value{Kind: KindStrings, Strs: []string{*inline}}, nil
	}

	var vals []string
	for s.i < len(s.args) {
		if !opt.Arity.Unbounded() && len(vals) >= opt.Arity.Max {
			break
		}
		next := s.args[s.i]
		if next == "--" || s.res.isSubcommand(next) {
			break
		}
		if len(vals) >= opt.Arity.Min && looksLikeOption(next) {
			break
		}
		vals = append(vals, next)
		s.i++
	}
	if len(vals) < opt.Arity.Min {
		return Value{}, &InsufficientOptionValuesError{
			Option:   opt,
			Expected: opt.Arity.Min,
			Got:      len(vals),
		}
	}
	if len(vals) == 1 && opt.Arity.Max == 1 {
		return StringValue(vals[0]), nil
	}
	if vals == nil {
		vals = []string{}
	}
	return Value{Kind: KindStrings, Strs: vals}, nil
}

func (s *scope) merge(opt *OptionSpec, occ Value) error {
	flatten := opt.FlattenValues || s.spec.FlattenOptionValues
	merged, err := accumulate(opt, s.vals[opt.Name].Value, occ, flatten)
	if err != nil {
		return err
	}
	s.vals[opt.Name] = OptionValue{Spec: opt, Value: merged}
	return nil
}

// finish distributes buffered positional tokens across the level's
// positional specs in declaration order and assembles the Result.
func (s *scope) finish(literal string) (*Result, error) {
	result := &Result{
		Command:     s.spec.Name,
		Alias:       literal,
		Options:     s.vals,
		Positionals: make(map[string]PositionalValue, len(s.spec.Positionals)),
		Subcommand:  s.sub,
	}

	// laterMin[i] is the token count that positionals after i still
	// require; a greedy positional never eats into that reserve.
	specs := s.spec.Positionals
	laterMin := make([]int, len(specs)+1)
	for i := len(specs) - 1; i >= 0; i-- {
		laterMin[i] = laterMin[i+1] + specs[i].Arity.Min
	}

	idx := 0
	for i, ps := range specs {
		remaining := len(s.posBuf) - idx
		if remaining < ps.Arity.Min {
			return nil, &InsufficientPositionalsError{
				Positional: ps,
				Expected:   ps.Arity.Min,
				Got:        remaining,
			}
		}
		take := remaining - laterMin[i+1]
		if take < ps.Arity.Min {
			take = ps.Arity.Min
		}
		if !ps.Arity.Unbounded() && take > ps.Arity.Max {
			take = ps.Arity.Max
		}
		if take > 0 {
			var v Value
			if take == 1 && ps.Arity.Max == 1 {
				v = StringValue(s.posBuf[idx])
			} else {
				v = Value{Kind: KindStrings, Strs: append([]string(nil), s.posBuf[idx:idx+take]...)}
			}
			result.Positionals[ps.Name] = PositionalValue{Spec: ps, Value: v}
		}
		idx += take
	}

	leftover := s.posBuf[idx:]
	if len(leftover)+len(s.extras) > 0 {
		result.ExtraArgs = append(append([]string{}, leftover...), s.extras...)
	}
	return result, nil
}

// looksLikeOption reports whether a token would be classified as an
// option trigger, with the negative-number carve-out: "-5" or "-3.14" is
// a value, not a cluster of short options.
func looksLikeOption(tok string) bool {
	return len(tok) > 1 && strings.HasPrefix(tok, "-") && !isNumeric(tok)
}

// isNumeric reports whether s is a plain decimal number, with optional
// leading sign and at most one dot.
func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	start := 0
	if s[0] == '-' || s[0] == '+' {
		if len(s) == 1 {
			return false
		}
		start = 1
	}
	hasDigit := false
	hasDot := false
	for i := start; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			hasDigit = true
		case s[i] == '.':
			if hasDot {
				return false
			}
			hasDot = true
		default:
			return false
		}
	}
	return hasDigit
}
