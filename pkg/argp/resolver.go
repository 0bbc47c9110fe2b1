// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argp

import (
	"sort"
	"strings"
)

// NormalizeName rewrites underscores to dashes. It is idempotent and
// preserves both rune count and separator count: each "_" becomes exactly
// one "-" and nothing else changes.
func NormalizeName(s string) string {
	return strings.ReplaceAll(s, "_", "-")
}

// resolver matches name fragments against one command level. Built once
// per parse scope; lookups are map hits, abbreviation scans are linear in
// the number of declared candidates.
type resolver struct {
	cfg  Config
	spec *CommandSpec

	long  map[string]longEntry
	short map[string]*OptionSpec
	subs  map[string]subEntry

	// Abbreviation candidates, in stable sorted order by display name.
	longCands []optCandidate
	subCands  []subCandidate
}

// longEntry resolves one long trigger, possibly a negation form.
type longEntry struct {
	opt     *OptionSpec
	negated bool
}

type subEntry struct {
	spec *CommandSpec
}

type optCandidate struct {
	display string // canonical long trigger, for error messages
	key     string // match key (folded/normalized per level rules)
	opt     *OptionSpec
}

type subCandidate struct {
	display string
	key     string
	spec    *CommandSpec
}

func newResolver(spec *CommandSpec, cfg Config) *resolver {
	r := &resolver{
		cfg:   cfg,
		spec:  spec,
		long:  make(map[string]longEntry),
		short: make(map[string]*OptionSpec),
		subs:  make(map[string]subEntry),
	}

	for _, opt := range spec.Options {
		fold := r.foldOptions(opt)
		for _, trig := range opt.Long {
			r.addLong(r.optKey(trig, fold), longEntry{opt: opt})
			r.longCands = append(r.longCands, optCandidate{
				display: trig,
				key:     r.optKey(trig, fold),
				opt:     opt,
			})
		}
		for _, trig := range opt.Short {
			if fold {
				trig = strings.ToLower(trig)
			}
			if _, dup := r.short[trig]; !dup {
				r.short[trig] = opt
			}
		}
	}
	// Negation triggers register after every explicit trigger, so a
	// negation form can never shadow a declared long name.
	for _, opt := range spec.Options {
		fold := r.foldOptions(opt)
		for _, trig := range opt.Long {
			for _, word := range opt.NegationWords {
				r.addLong(r.optKey(word+"-"+trig, fold), longEntry{opt: opt, negated: true})
			}
		}
	}
	sort.Slice(r.longCands, func(i, j int) bool { return r.longCands[i].display < r.longCands[j].display })

	foldSubs := cfg.CaseInsensitiveSubcommands || spec.CaseInsensitiveSubcommands
	foldAliases := foldSubs || spec.CaseInsensitiveAliases
	for _, sub := range spec.Subcommands {
		r.addSub(foldKey(sub.Name, foldSubs), sub)
		r.subCands = append(r.subCands, subCandidate{
			display: sub.Name,
			key:     foldKey(sub.Name, foldSubs),
			spec:    sub,
		})
		if !cfg.AllowAliases {
			continue
		}
		for _, alias := range sub.Aliases {
			r.addSub(foldKey(alias, foldAliases), sub)
			r.subCands = append(r.subCands, subCandidate{
				display: alias,
				key:     foldKey(alias, foldAliases),
				spec:    sub,
			})
		}
	}
	sort.Slice(r.subCands, func(i, j int) bool { return r.subCands[i].display < r.subCands[j].display })

	return r
}

// foldOptions reports whether long/short triggers of opt match
// case-insensitively at this level. CaseInsensitiveFlags widens the rule
// for flag options only.
func (r *resolver) foldOptions(opt *OptionSpec) bool {
	if r.cfg.CaseInsensitiveOptions || r.spec.CaseInsensitiveOptions {
		return true
	}
	return opt.Flag && r.cfg.CaseInsensitiveFlags
}

// optKey builds the match key for a long trigger: case fold per level
// rules, underscore normalization when enabled.
func (r *resolver) optKey(trig string, fold bool) string {
	if r.cfg.ConvertUnderscores {
		trig = NormalizeName(trig)
	}
	return foldKey(trig, fold)
}

func foldKey(s string, fold bool) string {
	if fold {
		return strings.ToLower(s)
	}
	return s
}

// First registration wins on key collisions so that a negation trigger
// can never shadow an explicitly declared long name.
func (r *resolver) addLong(key string, e longEntry) {
	if _, dup := r.long[key]; !dup {
		r.long[key] = e
	}
}

func (r *resolver) addSub(key string, s *CommandSpec) {
	if _, dup := r.subs[key]; !dup {
		r.subs[key] = subEntry{spec: s}
	}
}

func (r *resolver) minAbbrev() int {
	if r.cfg.MinAbbreviationLength > 0 {
		return r.cfg.MinAbbreviationLength
	}
	return 1
}

// matchLong resolves a long-option fragment (no leading dashes). Matching
// order: exact, underscore-normalized, then abbreviation when enabled.
func (r *resolver) matchLong(frag string) (*OptionSpec, bool, error) {
	for _, key := range r.lookupKeys(frag) {
		if e, ok := r.long[key]; ok {
			return e.opt, e.negated, nil
		}
	}

	if r.cfg.AllowAbbreviatedOptions && len(frag) >= r.minAbbrev() {
		var (
			matched  []string
			seen     = make(map[*OptionSpec]bool)
			resolved *OptionSpec
		)
		for _, keyFrag := range r.lookupKeys(frag) {
			for _, cand := range r.longCands {
				if !strings.HasPrefix(cand.key, keyFrag) {
					continue
				}
				if !seen[cand.opt] {
					seen[cand.opt] = true
					resolved = cand.opt
					matched = append(matched, cand.display)
				}
			}
			if len(matched) > 0 {
				break
			}
		}
		switch len(matched) {
		case 0:
			// fall through to unknown
		case 1:
			return resolved, false, nil
		default:
			sort.Strings(matched)
			return nil, false, &AmbiguousOptionError{Fragment: frag, Candidates: matched}
		}
	}

	return nil, false, &UnknownOptionError{Name: frag}
}

// lookupKeys yields the fragment match keys to try, in spec order: the
// raw fragment (folded for whichever case rule is widest at this level),
// then the underscore-normalized form when that conversion is on.
func (r *resolver) lookupKeys(frag string) []string {
	fold := r.cfg.CaseInsensitiveOptions || r.spec.CaseInsensitiveOptions || r.cfg.CaseInsensitiveFlags
	keys := make([]string, 0, 4)
	keys = append(keys, frag)
	if fold {
		keys = append(keys, strings.ToLower(frag))
	}
	if r.cfg.ConvertUnderscores {
		norm := NormalizeName(frag)
		keys = append(keys, norm)
		if fold {
			keys = append(keys, strings.ToLower(norm))
		}
	}
	return keys
}

// matchShort resolves a single short-option rune.
func (r *resolver) matchShort(letter string) (*OptionSpec, error) {
	if opt, ok := r.short[letter]; ok {
		return opt, nil
	}
	fold := r.cfg.CaseInsensitiveOptions || r.spec.CaseInsensitiveOptions || r.cfg.CaseInsensitiveFlags
	if fold {
		if opt, ok := r.short[strings.ToLower(letter)]; ok {
			return opt, nil
		}
	}
	return nil, &UnknownOptionError{Name: letter}
}

// matchSubcommand resolves a bare token against this level's subcommands.
// A nil spec with nil error means no match: the token falls through to
// positional classification. Ambiguous abbreviations are hard errors.
func (r *resolver) matchSubcommand(tok string) (*CommandSpec, error) {
	foldSubs := r.cfg.CaseInsensitiveSubcommands || r.spec.CaseInsensitiveSubcommands
	if e, ok := r.subs[tok]; ok {
		return e.spec, nil
	}
	if foldSubs || r.spec.CaseInsensitiveAliases {
		if e, ok := r.subs[strings.ToLower(tok)]; ok {
			return e.spec, nil
		}
	}

	if r.cfg.AllowAbbreviatedSubcommands && len(tok) >= r.minAbbrev() {
		key := foldKey(tok, foldSubs)
		var (
			matched  []string
			seen     = make(map[*CommandSpec]bool)
			resolved *CommandSpec
		)
		for _, cand := range r.subCands {
			if !strings.HasPrefix(cand.key, key) {
				continue
			}
			if !seen[cand.spec] {
				seen[cand.spec] = true
				resolved = cand.spec
				matched = append(matched, cand.display)
			}
		}
		switch len(matched) {
		case 1:
			return resolved, nil
		default:
			if len(matched) > 1 {
				sort.Strings(matched)
				return nil, &AmbiguousSubcommandError{Fragment: tok, Candidates: matched}
			}
		}
	}

	return nil, nil
}

// isSubcommand reports whether tok exactly names a subcommand or alias at
// this level. Used for option-value boundary detection, where abbreviation
// would be too eager.
func (r *resolver) isSubcommand(tok string) bool {
	if _, ok := r.subs[tok]; ok {
		return true
	}
	if r.cfg.CaseInsensitiveSubcommands || r.spec.CaseInsensitiveSubcommands || r.spec.CaseInsensitiveAliases {
		_, ok := r.subs[strings.ToLower(tok)]
		return ok
	}
	return false
}
