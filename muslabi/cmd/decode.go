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
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"muslabi.dev/muslabi/muslabi/cmd/util"
	"muslabi.dev/muslabi/muslabi/config"
	"muslabi.dev/muslabi/pkg/abi/layout"
	"muslabi.dev/muslabi/pkg/abi/musl"
	"muslabi.dev/muslabi/pkg/binary"
	"muslabi.dev/muslabi/pkg/hostarch"
)

// Decode implements subcommands.Command for the "decode" command.
type Decode struct {
	hex   bool
	order string
}

// Decoded is the printed form of a decoded record.
type Decoded struct {
	Record string `json:"record" yaml:"record" toml:"record"`
	Value  any    `json:"value" yaml:"value" toml:"value"`
}

// Name implements subcommands.Command.Name.
func (*Decode) Name() string {
	return "decode"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Decode) Synopsis() string {
	return "Decode the bytes of a record."
}

// Usage implements subcommands.Command.Usage.
func (*Decode) Usage() string {
	return `decode [options] <record> [file] - Decode the in-memory bytes of a record,
read from file or stdin. The input must be exactly the size of the record.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (d *Decode) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&d.hex, "hex", false, "input is hexadecimal text; whitespace is ignored.")
	f.StringVar(&d.order, "order", "native", "byte order of the input: native, little, or big.")
}

// Execute implements subcommands.Command.Execute.
func (d *Decode) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 2 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := args[0].(*config.Config)

	order, err := byteOrder(d.order)
	if err != nil {
		return util.Errorf("%v", err)
	}

	in := io.Reader(os.Stdin)
	if f.NArg() == 2 && f.Arg(1) != "-" {
		file, err := os.Open(f.Arg(1))
		if err != nil {
			return util.Errorf("%v", err)
		}
		defer file.Close()
		in = file
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return util.Errorf("Error reading input: %v", err)
	}
	if d.hex {
		if data, err = decodeHex(data); err != nil {
			return util.Errorf("%v", err)
		}
	}

	r, err := decodeResult(f.Arg(0), data, order)
	if err != nil {
		return util.Errorf("%v", err)
	}
	if err := write(conf, r); err != nil {
		return util.Errorf("Error writing output: %v", err)
	}
	return subcommands.ExitSuccess
}

func byteOrder(name string) (binary.ByteOrder, error) {
	switch name {
	case "native":
		return hostarch.ByteOrder, nil
	case "little":
		return binary.LittleEndian, nil
	case "big":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("invalid byte order %q, must be 'native', 'little', or 'big'", name)
	}
}

func decodeHex(data []byte) ([]byte, error) {
	text := strings.Join(strings.Fields(string(data)), "")
	b, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return b, nil
}

func decodeResult(name string, data []byte, order binary.ByteOrder) (result, error) {
	rec, ok := musl.LookupRecord(name)
	if !ok {
		return result{}, fmt.Errorf("unknown record %q", name)
	}
	if size := binary.Size(reflect.New(rec.Type).Interface()); uintptr(len(data)) != size {
		return result{}, fmt.Errorf("%s is %d bytes, got %d", rec.Name, size, len(data))
	}
	ptr := reflect.New(rec.Type)
	binary.Unmarshal(data, order, ptr.Interface())

	r := result{
		name:   "decode",
		value:  Decoded{Record: rec.Name, Value: ptr.Elem().Interface()},
		header: []string{"MEMBER", "OFFSET", "VALUE"},
	}
	l := layout.Of(rec.Type)
	for _, f := range l.Leaves() {
		if f.Padding {
			continue
		}
		r.rows = append(r.rows, []string{f.Name, strconv.FormatUint(uint64(f.Offset), 10), fmtValue(member(ptr.Elem(), f.Name))})
	}
	return r, nil
}

// member returns the member of v at the dotted path.
func member(v reflect.Value, path string) reflect.Value {
	for _, name := range strings.Split(path, ".") {
		v = v.FieldByName(name)
	}
	return v
}

func fmtValue(v reflect.Value) string {
	if v.Kind() == reflect.Uintptr {
		return fmt.Sprintf("%#x", v.Uint())
	}
	return fmt.Sprint(v.Interface())
}
