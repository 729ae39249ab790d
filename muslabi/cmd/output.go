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
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
	"muslabi.dev/muslabi/muslabi/config"
)

// result is what a command prints. The structured formats encode value;
// table and csv print header and rows.
type result struct {
	// name is the top-level key of the TOML document.
	name   string
	value  any
	header []string
	rows   [][]string
}

type outputFunc func(io.Writer, result) error

// A map of output formats to output functions.
var outputMap = map[config.Format]outputFunc{
	config.FormatTable: outputTable,
	config.FormatJSON:  outputJSON,
	config.FormatCSV:   outputCSV,
	config.FormatYAML:  outputYAML,
	config.FormatTOML:  outputTOML,
}

// outputFormat resolves FormatAuto for the given output file.
func outputFormat(f config.Format, out *os.File) config.Format {
	if f != config.FormatAuto {
		return f
	}
	if term.IsTerminal(int(out.Fd())) {
		return config.FormatTable
	}
	return config.FormatJSON
}

// write prints r to stdout in the configured format.
func write(conf *config.Config, r result) error {
	format := outputFormat(conf.Format, os.Stdout)
	out, ok := outputMap[format]
	if !ok {
		return fmt.Errorf("unsupported output format %q", format)
	}
	return out(os.Stdout, r)
}

// outputTable outputs the result in tabular format.
func outputTable(w io.Writer, r result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, strings.Join(r.header, "\t")); err != nil {
		return err
	}
	for _, row := range r.rows {
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// outputCSV outputs the result as comma-separated values with a header row.
func outputCSV(w io.Writer, r result) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(r.header); err != nil {
		return err
	}
	if err := csvWriter.WriteAll(r.rows); err != nil {
		return err
	}
	return csvWriter.Error()
}

// outputJSON outputs the result in JSON format.
func outputJSON(w io.Writer, r result) error {
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(r.value)
}

// outputYAML outputs the result in YAML format.
func outputYAML(w io.Writer, r result) error {
	e := yaml.NewEncoder(w)
	e.SetIndent(2)
	if err := e.Encode(r.value); err != nil {
		return err
	}
	return e.Close()
}

// outputTOML outputs the result as a TOML document with a single key.
func outputTOML(w io.Writer, r result) error {
	return toml.NewEncoder(w).Encode(map[string]any{r.name: plain(reflect.ValueOf(r.value))})
}

// plain converts v to maps, slices and scalars TOML can encode. Members are
// keyed by their toml tag, embedded records are flattened, and uintptr
// becomes uint64.
func plain(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return plain(v.Elem())
	case reflect.Uintptr:
		return v.Uint()
	case reflect.Struct:
		m := make(map[string]any)
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			if f.Anonymous && f.Type.Kind() == reflect.Struct {
				for k, e := range plain(v.Field(i)).(map[string]any) {
					m[k] = e
				}
				continue
			}
			name, opts, _ := strings.Cut(f.Tag.Get("toml"), ",")
			if name == "-" {
				continue
			}
			if name == "" {
				name = f.Name
			}
			if opts == "omitempty" && v.Field(i).IsZero() {
				continue
			}
			if e := plain(v.Field(i)); e != nil {
				m[name] = e
			}
		}
		return m
	case reflect.Slice, reflect.Array:
		s := make([]any, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			s = append(s, plain(v.Index(i)))
		}
		return s
	case reflect.Map:
		m := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			m[fmt.Sprint(iter.Key().Interface())] = plain(iter.Value())
		}
		return m
	default:
		return v.Interface()
	}
}
