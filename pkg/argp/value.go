// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argp

import (
	"fmt"
	"strings"
)

// ValueKind tags the dynamic shape of a parsed Value.
type ValueKind int

const (
	// KindNone is the zero Value; no occurrence has been recorded.
	KindNone ValueKind = iota
	// KindBool is a boolean flag result.
	KindBool
	// KindString is a single scalar token.
	KindString
	// KindStrings is an ordered sequence of tokens.
	KindStrings
	// KindGroups is a sequence of per-occurrence token groups
	// (Collect without flattening).
	KindGroups
	// KindCount is an occurrence counter.
	KindCount
)

func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindStrings:
		return "strings"
	case KindGroups:
		return "groups"
	case KindCount:
		return "count"
	}
	return "unknown"
}

// Value is the merged result of one option or positional after
// accumulation: a boolean, a scalar, a sequence, nested per-occurrence
// groups, or a counter. Exactly the field selected by Kind is meaningful.
// Tokens are carried byte-for-byte; the parser never interprets them.
type Value struct {
	Kind   ValueKind
	Bool   bool
	Str    string
	Strs   []string
	Groups [][]string
	N      int
}

// BoolValue returns a KindBool value.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// StringValue returns a KindString value.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// StringsValue returns a KindStrings value.
func StringsValue(ss ...string) Value { return Value{Kind: KindStrings, Strs: ss} }

func (v Value) String() string {
	switch v.Kind {
	case KindNone:
		return "<none>"
	case KindBool:
		return boolToken(v.Bool)
	case KindString:
		return v.Str
	case KindStrings:
		return strings.Join(v.Strs, " ")
	case KindGroups:
		parts := make([]string, len(v.Groups))
		for i, g := range v.Groups {
			parts[i] = "[" + strings.Join(g, " ") + "]"
		}
		return strings.Join(parts, " ")
	case KindCount:
		return fmt.Sprintf("%d", v.N)
	}
	return "<invalid>"
}

// OptionValue is the merged value for one option, tagged with the spec
// that produced it.
type OptionValue struct {
	Spec  *OptionSpec
	Value Value
}

// PositionalValue is the merged value for one positional, tagged with the
// spec that produced it.
type PositionalValue struct {
	Spec  *PositionalSpec
	Value Value
}
