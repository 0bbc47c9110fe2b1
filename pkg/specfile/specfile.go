// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package specfile loads command specs and parser policy from YAML or
// TOML documents, for tools that take their command-line grammar from a
// file instead of compiled-in declarations.
package specfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/argp/pkg/argp"
	"gopkg.in/yaml.v3"
)

// Format selects the document encoding.
type Format int

const (
	YAML Format = iota
	TOML
)

// File is the top-level document shape: parser policy plus the root
// command of the grammar.
type File struct {
	Config  Config  `yaml:"config" toml:"config"`
	Command Command `yaml:"command" toml:"command"`
}

// Config mirrors argp.Config with file-friendly snake_case keys.
type Config struct {
	AbbreviatedOptions     bool `yaml:"abbreviated_options" toml:"abbreviated_options"`
	MinAbbreviation        int  `yaml:"min_abbreviation" toml:"min_abbreviation"`
	AbbreviatedSubcommands bool `yaml:"abbreviated_subcommands" toml:"abbreviated_subcommands"`
	Aliases                bool `yaml:"aliases" toml:"aliases"`
	CaseInsensitive        bool `yaml:"case_insensitive" toml:"case_insensitive"`
	CaseInsensitiveFlags   bool `yaml:"case_insensitive_flags" toml:"case_insensitive_flags"`
	CaseInsensitiveSubs    bool `yaml:"case_insensitive_subcommands" toml:"case_insensitive_subcommands"`
	ConvertUnderscores     bool `yaml:"convert_underscores" toml:"convert_underscores"`
	StrictOrdering         bool `yaml:"strict_ordering" toml:"strict_ordering"`
	FlagEquals             bool `yaml:"flag_equals" toml:"flag_equals"`
}

// Command is the document form of one command level.
type Command struct {
	Name        string       `yaml:"name" toml:"name"`
	Aliases     []string     `yaml:"aliases" toml:"aliases"`
	Options     []Option     `yaml:"options" toml:"options"`
	Positionals []Positional `yaml:"positionals" toml:"positionals"`
	Subcommands []Command    `yaml:"subcommands" toml:"subcommands"`

	CaseInsensitiveOptions bool `yaml:"case_insensitive_options" toml:"case_insensitive_options"`
	FlattenValues          bool `yaml:"flatten_values" toml:"flatten_values"`
}

// Option is the document form of one option declaration.
type Option struct {
	Name    string   `yaml:"name" toml:"name"`
	Long    []string `yaml:"long" toml:"long"`
	Short   []string `yaml:"short" toml:"short"`
	Flag    bool     `yaml:"flag" toml:"flag"`
	Arity   string   `yaml:"arity" toml:"arity"`
	Mode    string   `yaml:"mode" toml:"mode"`
	Negate  []string `yaml:"negate" toml:"negate"`
	Truthy  []string `yaml:"truthy" toml:"truthy"`
	Falsey  []string `yaml:"falsey" toml:"falsey"`
	Flatten bool     `yaml:"flatten" toml:"flatten"`
}

// Positional is the document form of one positional declaration.
type Positional struct {
	Name  string `yaml:"name" toml:"name"`
	Arity string `yaml:"arity" toml:"arity"`
}

// Load reads and parses path, picking the format from the extension:
// .yaml and .yml decode as YAML, .toml as TOML.
func Load(path string) (*argp.CommandSpec, argp.Config, error) {
	var format Format
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		format = YAML
	case ".toml":
		format = TOML
	default:
		return nil, argp.Config{}, fmt.Errorf("specfile: unsupported extension %q", ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, argp.Config{}, fmt.Errorf("specfile: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes a document and converts it into a validated command spec
// and parser config. Malformed grammars come back as errors, never
// panics: a spec file is user input.
func Parse(data []byte, format Format) (spec *argp.CommandSpec, cfg argp.Config, err error) {
	var doc File
	switch format {
	case YAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, argp.Config{}, fmt.Errorf("specfile: %w", err)
		}
	case TOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, argp.Config{}, fmt.Errorf("specfile: %w", err)
		}
	default:
		return nil, argp.Config{}, fmt.Errorf("specfile: unknown format %d", format)
	}

	spec, err = doc.Command.spec()
	if err != nil {
		return nil, argp.Config{}, err
	}

	// Validate panics on malformed specs; for file input that is an
	// ordinary error.
	defer func() {
		if r := recover(); r != nil {
			spec, err = nil, fmt.Errorf("specfile: invalid spec: %v", r)
		}
	}()
	spec.Validate()
	return spec, doc.Config.config(), nil
}

func (c Config) config() argp.Config {
	return argp.Config{
		AllowAbbreviatedOptions:        c.AbbreviatedOptions,
		MinAbbreviationLength:          c.MinAbbreviation,
		AllowAbbreviatedSubcommands:    c.AbbreviatedSubcommands,
		AllowAliases:                   c.Aliases,
		CaseInsensitiveOptions:         c.CaseInsensitive,
		CaseInsensitiveFlags:           c.CaseInsensitiveFlags,
		CaseInsensitiveSubcommands:     c.CaseInsensitiveSubs,
		ConvertUnderscores:             c.ConvertUnderscores,
		StrictOptionsBeforePositionals: c.StrictOrdering,
		AllowEqualsForFlags:            c.FlagEquals,
	}
}

func (c Command) spec() (*argp.CommandSpec, error) {
	spec := &argp.CommandSpec{
		Name:                   c.Name,
		Aliases:                c.Aliases,
		CaseInsensitiveOptions: c.CaseInsensitiveOptions,
		FlattenOptionValues:    c.FlattenValues,
	}
	for _, o := range c.Options {
		opt, err := o.spec(c.Name)
		if err != nil {
			return nil, err
		}
		spec.Options = append(spec.Options, opt)
	}
	for _, p := range c.Positionals {
		arity := argp.ExactlyOne
		if p.Arity != "" {
			a, err := parseArity(p.Arity)
			if err != nil {
				return nil, fmt.Errorf("specfile: positional %s: %w", p.Name, err)
			}
			arity = a
		}
		spec.Positionals = append(spec.Positionals, &argp.PositionalSpec{Name: p.Name, Arity: arity})
	}
	for _, s := range c.Subcommands {
		sub, err := s.spec()
		if err != nil {
			return nil, err
		}
		spec.Subcommands = append(spec.Subcommands, sub)
	}
	return spec, nil
}

func (o Option) spec(cmd string) (*argp.OptionSpec, error) {
	opt := &argp.OptionSpec{
		Name:          o.Name,
		Long:          o.Long,
		Short:         o.Short,
		Flag:          o.Flag,
		TruthyValues:  o.Truthy,
		FalseyValues:  o.Falsey,
		NegationWords: o.Negate,
		FlattenValues: o.Flatten,
	}
	if o.Arity != "" {
		a, err := parseArity(o.Arity)
		if err != nil {
			return nil, fmt.Errorf("specfile: option %s of %s: %w", o.Name, cmd, err)
		}
		opt.Arity = a
	}
	if o.Mode != "" {
		m, err := parseMode(o.Mode)
		if err != nil {
			return nil, fmt.Errorf("specfile: option %s of %s: %w", o.Name, cmd, err)
		}
		opt.Accumulate = m
	}
	return opt, nil
}

// parseArity accepts "2", "1..3", "1..", "?", "*", and "+".
func parseArity(s string) (argp.Arity, error) {
	switch s {
	case "?":
		return argp.ZeroOrOne, nil
	case "*":
		return argp.ZeroOrMore, nil
	case "+":
		return argp.OneOrMore, nil
	}
	if lo, hi, ok := strings.Cut(s, ".."); ok {
		min, err := strconv.Atoi(lo)
		if err != nil {
			return argp.Arity{}, fmt.Errorf("invalid arity %q", s)
		}
		if hi == "" {
			return argp.Arity{Min: min, Max: argp.Unbounded}, nil
		}
		max, err := strconv.Atoi(hi)
		if err != nil {
			return argp.Arity{}, fmt.Errorf("invalid arity %q", s)
		}
		return argp.Arity{Min: min, Max: max}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return argp.Arity{}, fmt.Errorf("invalid arity %q", s)
	}
	return argp.Arity{Min: n, Max: n}, nil
}

func parseMode(s string) (argp.AccumulationMode, error) {
	switch s {
	case "last":
		return argp.LastWins, nil
	case "first":
		return argp.FirstWins, nil
	case "collect":
		return argp.Collect, nil
	case "count":
		return argp.Count, nil
	case "once":
		return argp.ErrorOnDuplicate, nil
	}
	return 0, fmt.Errorf("unknown accumulation mode %q", s)
}
