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
	"os"
	"runtime"
	"strconv"

	"github.com/google/subcommands"
	"muslabi.dev/muslabi/muslabi/cmd/util"
	"muslabi.dev/muslabi/muslabi/config"
	"muslabi.dev/muslabi/pkg/abi/musl"
	"muslabi.dev/muslabi/pkg/dynlink"
)

// Variant implements subcommands.Command for the "variant" command.
type Variant struct{}

// VariantInfo describes the declarations compiled into this binary and the
// host it runs on.
type VariantInfo struct {
	Build musl.Variant `json:"build" yaml:"build" toml:"build"`
	Host  HostInfo     `json:"host" yaml:"host" toml:"host"`
}

// HostInfo describes the running system.
type HostInfo struct {
	OS      string `json:"os" yaml:"os" toml:"os"`
	Release string `json:"release,omitempty" yaml:"release,omitempty" toml:"release,omitempty"`
	Machine string `json:"machine,omitempty" yaml:"machine,omitempty" toml:"machine,omitempty"`

	// Loader is the musl loader path for this architecture if it exists on
	// the host.
	Loader string `json:"loader,omitempty" yaml:"loader,omitempty" toml:"loader,omitempty"`
}

// Name implements subcommands.Command.Name.
func (*Variant) Name() string {
	return "variant"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Variant) Synopsis() string {
	return "Print the ABI variant compiled into this binary."
}

// Usage implements subcommands.Command.Usage.
func (*Variant) Usage() string {
	return `variant - Print the architecture family, word size, byte order and musl
revision of the compiled declarations, and a summary of the host.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*Variant) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*Variant) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := args[0].(*config.Config)

	if err := write(conf, variantResult(currentVariant())); err != nil {
		return util.Errorf("Error writing output: %v", err)
	}
	return subcommands.ExitSuccess
}

func currentVariant() VariantInfo {
	info := VariantInfo{
		Build: musl.Current(),
		Host:  hostInfo(),
	}
	if paths := dynlink.DefaultPaths(); len(paths) > 0 {
		if _, err := os.Stat(paths[0]); err == nil {
			info.Host.Loader = paths[0]
		}
	}
	if info.Host.OS == "" {
		info.Host.OS = runtime.GOOS
	}
	return info
}

func variantResult(info VariantInfo) result {
	v := info.Build
	return result{
		name:   "variant",
		value:  info,
		header: []string{"KEY", "VALUE"},
		rows: [][]string{
			{"arch", v.Arch},
			{"family", v.Family.String()},
			{"pointer_size", strconv.Itoa(v.PointerSize)},
			{"big_endian", strconv.FormatBool(v.BigEndian)},
			{"char_signed", strconv.FormatBool(v.CharSigned)},
			{"longlong_align", strconv.Itoa(v.LonglongAlign)},
			{"revision", v.Revision},
			{"host_os", info.Host.OS},
			{"host_release", info.Host.Release},
			{"host_machine", info.Host.Machine},
			{"host_loader", info.Host.Loader},
		},
	}
}
