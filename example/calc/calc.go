// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command calc is a small demo of the argp engine: sum and multiply
// subcommands with a shared verbose flag.
//
//	calc -v sum 1 2 3
//	calc mul 2 4
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/yeetrun/argp/pkg/argp"
)

func main() {
	spec := &argp.CommandSpec{
		Name: "calc",
		Options: []*argp.OptionSpec{
			{Long: []string{"verbose"}, Short: []string{"v"}, Flag: true},
		},
		Subcommands: []*argp.CommandSpec{
			argp.FromStruct[sumArgs]("sum"),
			argp.FromStruct[mulArgs]("mul"),
		},
	}

	res, err := argp.New(spec, argp.Config{AllowAbbreviatedSubcommands: true}).Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if res.Subcommand == nil {
		fmt.Fprintln(os.Stderr, "usage: calc [-v] {sum|mul} N...")
		os.Exit(1)
	}

	nums, err := numbers(res.Subcommand)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var out float64
	switch res.Subcommand.Command {
	case "sum":
		for _, n := range nums {
			out += n
		}
	case "mul":
		out = 1
		for _, n := range nums {
			out *= n
		}
	}

	if v, _ := res.Option("verbose"); v.Bool {
		fmt.Printf("%s of %v = %g\n", res.Subcommand.Command, nums, out)
		return
	}
	fmt.Printf("%g\n", out)
}

type sumArgs struct {
	Numbers []string `pos:"0+"`
}

type mulArgs struct {
	Numbers []string `pos:"0+"`
}

func numbers(res *argp.Result) ([]float64, error) {
	v, _ := res.Positional("numbers")
	out := make([]float64, 0, len(v.Strs))
	for _, s := range v.Strs {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("calc: not a number: %s", s)
		}
		out = append(out, n)
	}
	return out, nil
}
