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

// Package config provides basic infrastructure to set configuration settings
// for muslabi. Each setting that can be changed from the command line must
// have a corresponding flag, and may also be given in a TOML file named by
// --config.
package config

import (
	"fmt"
	"reflect"

	"muslabi.dev/muslabi/pkg/log"
)

// Config holds configuration that is not part of a single command.
//
// Follow these steps to add a new flag:
//  1. Create a new field in Config.
//  2. Add a field tag with the flag name, and a toml tag if it may be set
//     from the config file.
//  3. Register a new flag in flags.go, with the same name and add a
//     description.
//  4. Add any necessary validation into validate().
type Config struct {
	// File is the TOML file that supplied defaults.
	File string `flag:"config" toml:"-"`

	// Format is the output format of commands. FormatAuto picks one based on
	// whether stdout is a terminal.
	Format Format `flag:"format" toml:"format"`

	// LogFilename is the log file pattern. See log.FilePattern for the
	// variables it may contain. Logs go to stderr if empty.
	LogFilename string `flag:"log" toml:"log"`

	// LogFormat is the log format: text, json, or json-k8s.
	LogFormat string `flag:"log-format" toml:"log-format"`

	// Debug indicates that debug logging should be enabled.
	Debug bool `flag:"debug" toml:"debug"`

	// Libc is the path of the musl shared object. Empty means the first of
	// the loader's default paths that exists.
	Libc string `flag:"libc" toml:"libc"`
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case "text", "json", "json-k8s":
	default:
		return fmt.Errorf("invalid log format %q, must be 'text', 'json', or 'json-k8s'", c.LogFormat)
	}
	return nil
}

// Log logs important aspects of the configuration to the given log function.
func (c *Config) Log() {
	log.Infof("Config:")
	obj := reflect.ValueOf(c).Elem()
	st := obj.Type()
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		if name, ok := f.Tag.Lookup("flag"); ok {
			log.Infof("\t%s: %s", name, getVal(obj.Field(i)))
		}
	}
}

// Format is an output format.
type Format string

// Output formats.
const (
	// FormatAuto selects FormatTable on a terminal and FormatJSON otherwise.
	FormatAuto  Format = ""
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

// Formats lists every explicit format.
var Formats = []Format{FormatTable, FormatJSON, FormatCSV, FormatYAML, FormatTOML}

func formatPtr(v Format) *Format {
	return &v
}

// Set implements flag.Value.
func (f *Format) Set(v string) error {
	if v == "" {
		*f = FormatAuto
		return nil
	}
	for _, known := range Formats {
		if Format(v) == known {
			*f = known
			return nil
		}
	}
	return fmt.Errorf("invalid format %q, must be one of %v", v, Formats)
}

// Get implements flag.Getter.
func (f *Format) Get() any {
	return *f
}

// String implements flag.Value.
func (f Format) String() string {
	return string(f)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(b []byte) error {
	return f.Set(string(b))
}
