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
	"path"
	"strings"

	"github.com/google/subcommands"
	"muslabi.dev/muslabi/muslabi/cmd/util"
	"muslabi.dev/muslabi/muslabi/config"
	"muslabi.dev/muslabi/pkg/abi/musl"
)

// Consts implements subcommands.Command for the "consts" command.
type Consts struct {
	group      string
	deprecated bool
}

// Name implements subcommands.Command.Name.
func (*Consts) Name() string {
	return "consts"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Consts) Synopsis() string {
	return "Print the values of declared constants."
}

// Usage implements subcommands.Command.Usage.
func (*Consts) Usage() string {
	return `consts [options] [pattern...] - Print declared constants whose name matches
one of the shell patterns (e.g. "SIG*"), or every constant if none is given.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (c *Consts) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.group, "group", "", "only print constants of this group (e.g. signal, errno).")
	f.BoolVar(&c.deprecated, "deprecated", true, "include deprecated names.")
}

// Execute implements subcommands.Command.Execute.
func (c *Consts) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	conf := args[0].(*config.Config)

	r, err := constsResult(c.group, c.deprecated, f.Args())
	if err != nil {
		return util.Errorf("%v", err)
	}
	if err := write(conf, r); err != nil {
		return util.Errorf("Error writing output: %v", err)
	}
	return subcommands.ExitSuccess
}

// matchAny reports whether name matches one of patterns. No patterns match
// everything.
func matchAny(patterns []string, name string) (bool, error) {
	if len(patterns) == 0 {
		return true, nil
	}
	for _, p := range patterns {
		ok, err := path.Match(p, name)
		if err != nil {
			return false, fmt.Errorf("bad pattern %q: %w", p, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func constsResult(group string, deprecated bool, patterns []string) (result, error) {
	r := result{
		name:   "consts",
		header: []string{"NAME", "VALUE", "GROUP", "ALIAS"},
		value:  []musl.Constant{},
	}
	var cs []musl.Constant
	for _, c := range musl.Constants() {
		if group != "" && c.Group != group {
			continue
		}
		if c.Deprecated && !deprecated {
			continue
		}
		ok, err := matchAny(patterns, c.Name)
		if err != nil {
			return result{}, err
		}
		if !ok {
			continue
		}
		cs = append(cs, c)
		value := fmt.Sprintf("%#x", c.Value)
		if c.Signed {
			value = fmt.Sprintf("%d", c.Int())
		}
		alias := c.AliasOf
		if c.Deprecated {
			alias = strings.TrimSpace(alias + " (deprecated)")
		}
		r.rows = append(r.rows, []string{c.Name, value, c.Group, alias})
	}
	if cs != nil {
		r.value = cs
	}
	return r, nil
}
