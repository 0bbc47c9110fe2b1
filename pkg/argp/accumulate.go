// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package argp

// AccumulationMode decides how repeated occurrences of the same option
// merge into a single value.
type AccumulationMode int

const (
	// LastWins keeps the value of the final occurrence. Default.
	LastWins AccumulationMode = iota
	// FirstWins keeps the value of the first occurrence and ignores the rest.
	FirstWins
	// Collect appends every occurrence to a growing sequence.
	Collect
	// Count ignores values and counts occurrences.
	Count
	// ErrorOnDuplicate rejects a second occurrence.
	ErrorOnDuplicate
)

func (m AccumulationMode) String() string {
	switch m {
	case LastWins:
		return "last"
	case FirstWins:
		return "first"
	case Collect:
		return "collect"
	case Count:
		return "count"
	case ErrorOnDuplicate:
		return "once"
	}
	return "unknown"
}

// accumulate merges the value of one completed occurrence into the running
// value for opt. prev is the running value (KindNone before the first
// occurrence). flatten collapses one nesting level in Collect mode.
func accumulate(opt *OptionSpec, prev, next Value, flatten bool) (Value, error) {
	switch opt.Accumulate {
	case LastWins:
		return next, nil
	case FirstWins:
		if prev.Kind != KindNone {
			return prev, nil
		}
		return next, nil
	case Collect:
		return collect(prev, next, flatten), nil
	case Count:
		return Value{Kind: KindCount, N: prev.N + 1}, nil
	case ErrorOnDuplicate:
		if prev.Kind != KindNone {
			return Value{}, &DuplicateOptionError{Option: opt}
		}
		return next, nil
	}
	// The mode enum is closed; reaching here means a spec was built with an
	// out-of-range tag and slipped past validation.
	return Value{}, &InternalError{
		Where:  "accumulate",
		Detail: "unrecognized accumulation mode " + opt.Accumulate.String() + " on option " + opt.Name,
	}
}

func collect(prev, next Value, flatten bool) Value {
	if flatten {
		out := Value{Kind: KindStrings, Strs: append([]string(nil), prev.Strs...)}
		switch next.Kind {
		case KindStrings:
			out.Strs = append(out.Strs, next.Strs...)
		case KindString:
			out.Strs = append(out.Strs, next.Str)
		case KindBool:
			out.Strs = append(out.Strs, boolToken(next.Bool))
		}
		return out
	}
	out := Value{Kind: KindGroups, Groups: append([][]string(nil), prev.Groups...)}
	switch next.Kind {
	case KindStrings:
		out.Groups = append(out.Groups, next.Strs)
	case KindString:
		out.Groups = append(out.Groups, []string{next.Str})
	case KindBool:
		out.Groups = append(out.Groups, []string{boolToken(next.Bool)})
	}
	return out
}

func boolToken(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
