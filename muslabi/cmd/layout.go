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
	"strconv"

	"github.com/google/subcommands"
	"muslabi.dev/muslabi/muslabi/cmd/util"
	"muslabi.dev/muslabi/muslabi/config"
	"muslabi.dev/muslabi/pkg/abi/layout"
	"muslabi.dev/muslabi/pkg/abi/musl"
)

// Layout implements subcommands.Command for the "layout" command.
type Layout struct {
	holes bool
}

// Name implements subcommands.Command.Name.
func (*Layout) Name() string {
	return "layout"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Layout) Synopsis() string {
	return "Print the size, alignment and member offsets of records."
}

// Usage implements subcommands.Command.Usage.
func (*Layout) Usage() string {
	return `layout [options] [record...] - Print the memory layout of the named records,
or of every record if none is named. Records are named by C name (e.g.
"struct statvfs") or Go type name (e.g. Statvfs).
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (l *Layout) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&l.holes, "holes", false, "also list implicit padding between members.")
}

// Execute implements subcommands.Command.Execute.
func (l *Layout) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	conf := args[0].(*config.Config)

	r, err := layoutResult(f.Args(), l.holes)
	if err != nil {
		return util.Errorf("%v", err)
	}
	if err := write(conf, r); err != nil {
		return util.Errorf("Error writing output: %v", err)
	}
	return subcommands.ExitSuccess
}

// lookupRecords returns the named records, or all records if names is empty.
func lookupRecords(names []string) ([]musl.Record, error) {
	if len(names) == 0 {
		return musl.Records(), nil
	}
	var recs []musl.Record
	for _, name := range names {
		r, ok := musl.LookupRecord(name)
		if !ok {
			return nil, fmt.Errorf("unknown record %q", name)
		}
		recs = append(recs, r)
	}
	return recs, nil
}

func layoutResult(names []string, holes bool) (result, error) {
	recs, err := lookupRecords(names)
	if err != nil {
		return result{}, err
	}
	r := result{
		name:   "layout",
		header: []string{"RECORD", "MEMBER", "OFFSET", "SIZE", "ALIGN", "TYPE"},
	}
	var layouts []layout.Layout
	for _, rec := range recs {
		l := layout.Of(rec.Type)
		l.Name = rec.Name
		l.Align = rec.Align
		layouts = append(layouts, l)

		r.rows = append(r.rows, []string{rec.Name, "", "", fmtUint(l.Size), fmtUint(l.Align), rec.Type.String()})
		for _, f := range l.Leaves() {
			r.rows = append(r.rows, []string{"", f.Name, fmtUint(f.Offset), fmtUint(f.Size), fmtUint(f.Align), f.Type})
		}
		if holes {
			for _, h := range l.Holes {
				r.rows = append(r.rows, []string{"", "(after " + h.After + ")", fmtUint(h.Offset), fmtUint(h.Size), "", "padding"})
			}
		}
	}
	r.value = layouts
	return r, nil
}

func fmtUint(v uintptr) string {
	return strconv.FormatUint(uint64(v), 10)
}
