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
	"time"

	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
	"muslabi.dev/muslabi/muslabi/cmd/util"
	"muslabi.dev/muslabi/muslabi/config"
	"muslabi.dev/muslabi/pkg/abi/musl"
	"muslabi.dev/muslabi/pkg/dynlink"
	"muslabi.dev/muslabi/pkg/log"
)

// Resolve implements subcommands.Command for the "resolve" command.
type Resolve struct {
	strict bool
}

// ResolveInfo is the printed form of a resolution report.
type ResolveInfo struct {
	Library        string `json:"library" yaml:"library" toml:"library"`
	dynlink.Report `yaml:",inline"`
}

// library is the part of *dynlink.Library that resolution needs.
type library interface {
	dynlink.Symbols
	Path() string
	Close() error
}

// Name implements subcommands.Command.Name.
func (*Resolve) Name() string {
	return "resolve"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Resolve) Synopsis() string {
	return "Check which declared routines musl libraries export."
}

// Usage implements subcommands.Command.Usage.
func (*Resolve) Usage() string {
	return `resolve [options] [library...] - Open each library (by default the one named
by --libc, or the musl loader) and look up the symbol of every declared routine.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (r *Resolve) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&r.strict, "strict", false, "exit with failure if any declared routine is missing.")
}

// Execute implements subcommands.Command.Execute.
func (r *Resolve) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	conf := args[0].(*config.Config)

	paths := f.Args()
	if len(paths) == 0 {
		paths = []string{conf.Libc}
	}
	funcs := musl.Funcs()
	infos, err := resolveAll(ctx, paths, funcs, openLibrary)
	if err != nil {
		return util.Errorf("%v", err)
	}

	warn := log.RateLimitedLogger(log.Log(), time.Second, 10)
	missing := 0
	for _, info := range infos {
		for _, name := range info.Missing {
			warn.Warningf("%s does not export %s", info.Library, name)
		}
		missing += len(info.Missing)
	}

	if err := write(conf, resolveResult(infos, funcs)); err != nil {
		return util.Errorf("Error writing output: %v", err)
	}
	if r.strict && missing > 0 {
		return util.Errorf("%d declared routines are missing", missing)
	}
	return subcommands.ExitSuccess
}

// openLibrary opens path, or the default musl library if path is empty.
func openLibrary(path string) (library, error) {
	var (
		lib *dynlink.Library
		err error
	)
	if path != "" {
		lib, err = dynlink.Open(path)
	} else {
		lib, err = dynlink.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	return lib, nil
}

// resolveAll resolves funcs against every library in paths concurrently.
// Reports are returned in the order of paths.
func resolveAll(ctx context.Context, paths []string, funcs []musl.Func, open func(string) (library, error)) ([]ResolveInfo, error) {
	infos := make([]ResolveInfo, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lib, err := open(path)
			if err != nil {
				return err
			}
			defer lib.Close()
			infos[i] = ResolveInfo{
				Library: lib.Path(),
				Report:  dynlink.Resolve(lib, funcs),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return infos, nil
}

func resolveResult(infos []ResolveInfo, funcs []musl.Func) result {
	r := result{
		name:   "resolve",
		value:  infos,
		header: []string{"NAME", "SYMBOL"},
	}
	if len(infos) == 1 {
		r.header = append(r.header, "ADDRESS")
	} else {
		for _, info := range infos {
			r.header = append(r.header, info.Library)
		}
	}
	for _, fn := range funcs {
		row := []string{fn.Name, fn.Symbol}
		for _, info := range infos {
			addr := "missing"
			if a, ok := info.Resolved[fn.Name]; ok {
				addr = fmt.Sprintf("%#x", a)
			}
			row = append(row, addr)
		}
		r.rows = append(r.rows, row)
	}
	return r
}
