// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argp

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"dry_run", "dry-run"},
		{"dry-run", "dry-run"},
		{"a_b_c", "a-b-c"},
		{"__", "--"},
		{"plain", "plain"},
		{"", ""},
	}
	for _, tt := range tests {
		got := NormalizeName(tt.in)
		if got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
		// Idempotent, and separator-for-separator: rune count never changes.
		if again := NormalizeName(got); again != got {
			t.Errorf("NormalizeName not idempotent: %q -> %q", got, again)
		}
		if len([]rune(got)) != len([]rune(tt.in)) {
			t.Errorf("NormalizeName(%q) changed rune count", tt.in)
		}
		if strings.Count(got, "-") != strings.Count(tt.in, "-")+strings.Count(tt.in, "_") {
			t.Errorf("NormalizeName(%q) changed separator count", tt.in)
		}
	}
}

func TestAbbreviation(t *testing.T) {
	spec := &CommandSpec{
		Name: "app",
		Options: []*OptionSpec{
			flagOpt("verbose"),
			flagOpt("version"),
			flagOpt("quiet"),
		},
	}

	t.Run("unambiguous prefix", func(t *testing.T) {
		res, err := New(spec, Config{AllowAbbreviatedOptions: true}).Parse([]string{"--qu"})
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if v, ok := res.Option("quiet"); !ok || !v.Bool {
			t.Errorf("quiet = %v, want true", v)
		}
	})

	t.Run("ambiguous prefix lists sorted candidates", func(t *testing.T) {
		_, err := New(spec, Config{AllowAbbreviatedOptions: true}).Parse([]string{"--ver"})
		var amb *AmbiguousOptionError
		if !errors.As(err, &amb) {
			t.Fatalf("err = %v, want *AmbiguousOptionError", err)
		}
		if amb.Fragment != "ver" {
			t.Errorf("Fragment = %q, want ver", amb.Fragment)
		}
		want := []string{"verbose", "version"}
		if !reflect.DeepEqual(amb.Candidates, want) {
			t.Errorf("Candidates = %v, want %v", amb.Candidates, want)
		}
	})

	t.Run("exact match beats shorter ambiguity", func(t *testing.T) {
		exact := &CommandSpec{
			Name:    "app",
			Options: []*OptionSpec{flagOpt("ver"), flagOpt("verbose")},
		}
		res, err := New(exact, Config{AllowAbbreviatedOptions: true}).Parse([]string{"--ver"})
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if _, ok := res.Option("ver"); !ok {
			t.Error("exact trigger did not win over the abbreviation scan")
		}
	})

	t.Run("minimum abbreviation length", func(t *testing.T) {
		cfg := Config{AllowAbbreviatedOptions: true, MinAbbreviationLength: 3}
		if _, err := New(spec, cfg).Parse([]string{"--qu"}); err == nil {
			t.Error("fragment below minimum length resolved")
		} else {
			var unknown *UnknownOptionError
			if !errors.As(err, &unknown) {
				t.Errorf("err = %v, want *UnknownOptionError", err)
			}
		}
		if _, err := New(spec, cfg).Parse([]string{"--qui"}); err != nil {
			t.Errorf("three-rune fragment rejected: %v", err)
		}
	})

	t.Run("disabled", func(t *testing.T) {
		_, err := New(spec, Config{}).Parse([]string{"--qu"})
		var unknown *UnknownOptionError
		if !errors.As(err, &unknown) {
			t.Fatalf("err = %v, want *UnknownOptionError", err)
		}
	})

	t.Run("multiple triggers of one option are not ambiguous", func(t *testing.T) {
		multi := &CommandSpec{
			Name:    "app",
			Options: []*OptionSpec{{Long: []string{"color", "colour"}, Flag: true}},
		}
		res, err := New(multi, Config{AllowAbbreviatedOptions: true}).Parse([]string{"--col"})
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if v, ok := res.Option("color"); !ok || !v.Bool {
			t.Errorf("color = %v, want true", v)
		}
	})
}

func TestCaseInsensitiveMatching(t *testing.T) {
	spec := &CommandSpec{
		Name: "app",
		Options: []*OptionSpec{
			{Long: []string{"verbose"}, Short: []string{"v"}, Flag: true},
			valueOpt("output"),
		},
	}

	t.Run("case sensitive by default", func(t *testing.T) {
		_, err := New(spec, Config{}).Parse([]string{"--VERBOSE"})
		var unknown *UnknownOptionError
		if !errors.As(err, &unknown) {
			t.Fatalf("err = %v, want *UnknownOptionError", err)
		}
	})

	t.Run("config widens all options", func(t *testing.T) {
		res, err := New(spec, Config{CaseInsensitiveOptions: true}).Parse([]string{"--OUTPUT", "x", "-V"})
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if v, _ := res.Option("output"); v.Str != "x" {
			t.Errorf("output = %v, want x", v)
		}
		if v, ok := res.Option("verbose"); !ok || !v.Bool {
			t.Errorf("verbose = %v, want true", v)
		}
	})

	t.Run("spec level widens without config", func(t *testing.T) {
		folded := &CommandSpec{
			Name:                   "app",
			CaseInsensitiveOptions: true,
			Options:                []*OptionSpec{flagOpt("verbose", "v")},
		}
		res, err := New(folded, Config{}).Parse([]string{"--VeRbOsE"})
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if v, ok := res.Option("verbose"); !ok || !v.Bool {
			t.Errorf("verbose = %v, want true", v)
		}
	})

	t.Run("flags-only folding leaves value options exact", func(t *testing.T) {
		res, err := New(spec, Config{CaseInsensitiveFlags: true}).Parse([]string{"--VERBOSE"})
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if v, ok := res.Option("verbose"); !ok || !v.Bool {
			t.Errorf("verbose = %v, want true", v)
		}
		if _, err := New(spec, Config{CaseInsensitiveFlags: true}).Parse([]string{"--OUTPUT", "x"}); err == nil {
			t.Error("value option matched case-insensitively under flags-only folding")
		}
	})

	t.Run("subcommand folding", func(t *testing.T) {
		router := &CommandSpec{
			Name:        "app",
			Subcommands: []*CommandSpec{{Name: "status"}},
		}
		res, err := New(router, Config{CaseInsensitiveSubcommands: true}).Parse([]string{"STATUS"})
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if res.Subcommand.Command != "status" || res.Subcommand.Alias != "STATUS" {
			t.Errorf("Command = %q, Alias = %q", res.Subcommand.Command, res.Subcommand.Alias)
		}
		if _, err := New(router, Config{}).Parse([]string{"STATUS"}); err == nil {
			t.Error("subcommand matched case-insensitively without folding enabled")
		}
	})
}

func TestUnderscoreConversion(t *testing.T) {
	t.Run("input underscores match declared dashes", func(t *testing.T) {
		spec := &CommandSpec{Name: "app", Options: []*OptionSpec{flagOpt("dry-run")}}
		res, err := New(spec, Config{ConvertUnderscores: true}).Parse([]string{"--dry_run"})
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if v, ok := res.Option("dry-run"); !ok || !v.Bool {
			t.Errorf("dry-run = %v, want true", v)
		}
	})

	t.Run("declared underscores match input dashes", func(t *testing.T) {
		spec := &CommandSpec{Name: "app", Options: []*OptionSpec{{Long: []string{"dry_run"}, Flag: true}}}
		res, err := New(spec, Config{ConvertUnderscores: true}).Parse([]string{"--dry-run"})
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if v, ok := res.Option("dry_run"); !ok || !v.Bool {
			t.Errorf("dry_run = %v, want true", v)
		}
	})

	t.Run("disabled keeps forms distinct", func(t *testing.T) {
		spec := &CommandSpec{Name: "app", Options: []*OptionSpec{flagOpt("dry-run")}}
		_, err := New(spec, Config{}).Parse([]string{"--dry_run"})
		var unknown *UnknownOptionError
		if !errors.As(err, &unknown) {
			t.Fatalf("err = %v, want *UnknownOptionError", err)
		}
	})
}

func TestNegationNeverShadowsDeclaredName(t *testing.T) {
	spec := &CommandSpec{
		Name: "app",
		Options: []*OptionSpec{
			{Long: []string{"color"}, Flag: true, NegationWords: []string{"no"}},
			{Long: []string{"no-color"}, Flag: true},
		},
	}
	res, err := New(spec, Config{}).Parse([]string{"--no-color"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v, ok := res.Option("no-color"); !ok || !v.Bool {
		t.Errorf("no-color = %v, ok = %v, want the declared option, true", v, ok)
	}
	if _, ok := res.Option("color"); ok {
		t.Error("negation trigger shadowed the declared --no-color option")
	}
}
