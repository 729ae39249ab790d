// Copyright 2026 The muslabi Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"golang.org/x/mod/semver"
	"muslabi.dev/muslabi/muslabi/cmd/util"
	"muslabi.dev/muslabi/muslabi/config"
	"muslabi.dev/muslabi/pkg/abi/musl"
)

// Funcs implements subcommands.Command for the "funcs" command.
type Funcs struct {
	deprecated bool
	goTypes    bool
	release    string
}

// FuncInfo is the printed form of a routine declaration.
type FuncInfo struct {
	musl.Func `yaml:",inline"`

	// Prototype is the C declaration.
	Prototype string `json:"prototype" yaml:"prototype" toml:"prototype"`

	// GoType is the type a binding must have.
	GoType string `json:"go_type" yaml:"go_type" toml:"go_type"`
}

// Name implements subcommands.Command.Name.
func (*Funcs) Name() string {
	return "funcs"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Funcs) Synopsis() string {
	return "Print the signatures of declared routines."
}

// Usage implements subcommands.Command.Usage.
func (*Funcs) Usage() string {
	return `funcs [options] [pattern...] - Print the C prototype and linked symbol of
declared routines whose name matches one of the shell patterns.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (fs *Funcs) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&fs.deprecated, "deprecated", true, "include deprecated routines.")
	f.BoolVar(&fs.goTypes, "go", false, "print the Go binding type instead of the C prototype in tables.")
	f.StringVar(&fs.release, "musl", "", "only print routines a given musl release (e.g. 1.1.24) provides.")
}

// Execute implements subcommands.Command.Execute.
func (fs *Funcs) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	conf := args[0].(*config.Config)

	r, err := funcsResult(fs.deprecated, fs.goTypes, fs.release, f.Args())
	if err != nil {
		return util.Errorf("%v", err)
	}
	if err := write(conf, r); err != nil {
		return util.Errorf("Error writing output: %v", err)
	}
	return subcommands.ExitSuccess
}

// available reports whether a routine first provided by since exists in
// release. An empty release or since matches every release.
func available(since, release string) bool {
	if since == "" || release == "" {
		return true
	}
	return semver.Compare("v"+since, "v"+release) <= 0
}

func funcsResult(deprecated, goTypes bool, release string, patterns []string) (result, error) {
	if release != "" && !semver.IsValid("v"+release) {
		return result{}, fmt.Errorf("invalid musl release %q", release)
	}
	sig := "PROTOTYPE"
	if goTypes {
		sig = "GO TYPE"
	}
	r := result{
		name:   "funcs",
		header: []string{"NAME", "SYMBOL", sig, "SINCE", "NOTE"},
	}
	infos := []FuncInfo{}
	for _, fn := range musl.Funcs() {
		if fn.Deprecated != "" && !deprecated {
			continue
		}
		if !available(fn.Since, release) {
			continue
		}
		ok, err := matchAny(patterns, fn.Name)
		if err != nil {
			return result{}, err
		}
		if !ok {
			continue
		}
		info := FuncInfo{
			Func:      fn,
			Prototype: fn.CSignature(),
			GoType:    fn.GoType().String(),
		}
		infos = append(infos, info)

		row := []string{fn.Name, fn.Symbol, info.Prototype, fn.Since, ""}
		if goTypes {
			row[2] = info.GoType
		}
		if fn.Deprecated != "" {
			row[4] = fmt.Sprintf("deprecated: %s", fn.Deprecated)
		}
		r.rows = append(r.rows, row)
	}
	r.value = infos
	return r, nil
}
