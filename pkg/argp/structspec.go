// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argp

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// FromStruct builds a CommandSpec from the struct tags of T, for callers
// that prefer declaring a command as a plain struct over assembling spec
// values by hand.
//
// Supported tags on exported fields:
//
//	flag:"name"    long trigger (defaults to the lowercased field name)
//	short:"x"      single-rune short trigger
//	arity:"1..3"   token bounds; also "2", "1..", "?", "*", "+"
//	mode:"collect" accumulation: last, first, collect, count, once
//	negate:"no"    comma-separated negation words (flags only)
//	pos:"0"        positional at index 0; "0?", "0*", "0+" as in yargs
//
// Bool fields become flags; []string fields default to collect mode with
// flattening. Malformed tags panic: a bad declaration is a programming
// error and surfaces at construction, never during a parse.
func FromStruct[T any](name string) *CommandSpec {
	var zero T
	t := reflect.TypeOf(zero)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("argp: FromStruct needs a struct type, got %v", reflect.TypeOf(zero)))
	}

	spec := &CommandSpec{Name: name}
	type posField struct {
		index int
		pos   *PositionalSpec
	}
	var positionals []posField

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		if posTag, ok := field.Tag.Lookup("pos"); ok {
			index, arity := parsePosTag(field, posTag)
			positionals = append(positionals, posField{
				index: index,
				pos:   &PositionalSpec{Name: fieldName(field), Arity: arity},
			})
			continue
		}

		spec.Options = append(spec.Options, optionFromField(field))
	}

	slices.SortStableFunc(positionals, func(a, b posField) int { return a.index - b.index })
	for _, pf := range positionals {
		spec.Positionals = append(spec.Positionals, pf.pos)
	}

	spec.Validate()
	return spec
}

func fieldName(field reflect.StructField) string {
	if name := field.Tag.Get("flag"); name != "" {
		return name
	}
	return strings.ToLower(field.Name)
}

func optionFromField(field reflect.StructField) *OptionSpec {
	opt := &OptionSpec{
		Name: fieldName(field),
		Long: []string{fieldName(field)},
	}
	if short := field.Tag.Get("short"); short != "" {
		opt.Short = []string{short}
	}

	ft := field.Type
	for ft.Kind() == reflect.Ptr {
		ft = ft.Elem()
	}
	switch ft.Kind() {
	case reflect.Bool:
		opt.Flag = true
	case reflect.Slice:
		opt.Accumulate = Collect
		opt.FlattenValues = true
	}

	if tag, ok := field.Tag.Lookup("arity"); ok {
		if opt.Flag {
			panic(fmt.Sprintf("argp: field %s: arity tag on a bool flag", field.Name))
		}
		opt.Arity = parseArityTag(field, tag)
	}
	if tag, ok := field.Tag.Lookup("mode"); ok {
		opt.Accumulate = parseModeTag(field, tag)
	}
	if tag, ok := field.Tag.Lookup("negate"); ok {
		if !opt.Flag {
			panic(fmt.Sprintf("argp: field %s: negate tag on a non-flag option", field.Name))
		}
		opt.NegationWords = strings.Split(tag, ",")
	}
	return opt
}

// parseArityTag accepts "2", "1..3", "1..", "?", "*", and "+".
func parseArityTag(field reflect.StructField, tag string) Arity {
	switch tag {
	case "?":
		return ZeroOrOne
	case "*":
		return ZeroOrMore
	case "+":
		return OneOrMore
	}
	if lo, hi, ok := strings.Cut(tag, ".."); ok {
		min := atoiTag(field, lo)
		if hi == "" {
			return NewArity(min, Unbounded)
		}
		return NewArity(min, atoiTag(field, hi))
	}
	n := atoiTag(field, tag)
	return NewArity(n, n)
}

func parseModeTag(field reflect.StructField, tag string) AccumulationMode {
	switch tag {
	case "last":
		return LastWins
	case "first":
		return FirstWins
	case "collect":
		return Collect
	case "count":
		return Count
	case "once":
		return ErrorOnDuplicate
	}
	panic(fmt.Sprintf("argp: field %s: unknown accumulation mode %q", field.Name, tag))
}

// parsePosTag accepts the yargs position grammar: "0" required single,
// "0?" optional single, "0*" variadic, "0+" variadic with a minimum of 1.
func parsePosTag(field reflect.StructField, tag string) (int, Arity) {
	arity := ExactlyOne
	switch {
	case strings.HasSuffix(tag, "?"):
		arity = ZeroOrOne
		tag = strings.TrimSuffix(tag, "?")
	case strings.HasSuffix(tag, "*"):
		arity = ZeroOrMore
		tag = strings.TrimSuffix(tag, "*")
	case strings.HasSuffix(tag, "+"):
		arity = OneOrMore
		tag = strings.TrimSuffix(tag, "+")
	}
	return atoiTag(field, tag), arity
}

func atoiTag(field reflect.StructField, s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(fmt.Sprintf("argp: field %s: invalid tag number %q", field.Name, s))
	}
	return n
}
