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

package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newFlagSet(t *testing.T, args ...string) *flag.FlagSet {
	t.Helper()
	testFlags := flag.NewFlagSet("test", flag.ContinueOnError)
	RegisterFlags(testFlags)
	if err := testFlags.Parse(args); err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	return testFlags
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "muslabi.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c, err := NewFromFlags(newFlagSet(t))
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{LogFormat: "text"}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("default config mismatch (-want +got):\n%s", diff)
	}

	// All defaults doesn't require setting flags.
	if flags := c.ToFlags(); len(flags) > 0 {
		t.Errorf("default flags not set correctly for: %s", flags)
	}
}

func TestFromFlags(t *testing.T) {
	c, err := NewFromFlags(newFlagSet(t, "--debug", "--format=yaml", "--libc=/lib/libc.so", "--log-format=json"))
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Format:    FormatYAML,
		LogFormat: "json",
		Debug:     true,
		Libc:      "/lib/libc.so",
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestToFlagsFromFlags(t *testing.T) {
	args := []string{"--format=csv", "--log=/tmp/%COMMAND%.log", "--debug=true"}
	c, err := NewFromFlags(newFlagSet(t, args...))
	if err != nil {
		t.Fatal(err)
	}
	got := c.ToFlags()
	if diff := cmp.Diff(args, got); diff != "" {
		t.Errorf("ToFlags() mismatch (-want +got):\n%s", diff)
	}

	c2, err := NewFromFlags(newFlagSet(t, got...))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(c, c2); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestInvalid(t *testing.T) {
	testFlags := flag.NewFlagSet("test", flag.ContinueOnError)
	testFlags.SetOutput(new(strings.Builder))
	RegisterFlags(testFlags)
	if err := testFlags.Parse([]string{"--format=xml"}); err == nil {
		t.Errorf("--format=xml accepted")
	}

	if _, err := NewFromFlags(newFlagSet(t, "--log-format=xml")); err == nil {
		t.Errorf("NewFromFlags accepted --log-format=xml")
	}
}

func TestConfigFile(t *testing.T) {
	path := writeFile(t, `
format = "toml"
debug = true
libc = "/opt/musl/lib/libc.so"
log-format = "json-k8s"
`)
	c, err := NewFromFlags(newFlagSet(t, "--config="+path, "--libc=/lib/ld-musl-x86_64.so.1"))
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		File:      path,
		Format:    FormatTOML,
		LogFormat: "json-k8s",
		Debug:     true,
		// Explicit flags take precedence over the file.
		Libc: "/lib/ld-musl-x86_64.so.1",
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigFileErrors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "colour = true\n", "unknown keys: colour"},
		{"bad format", `format = "xml"` + "\n", "invalid format"},
		{"syntax", "debug = \n", "reading config file"},
		{"bad log format", `log-format = "xml"` + "\n", "invalid log format"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tc.content)
			_, err := NewFromFlags(newFlagSet(t, "--config="+path))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("NewFromFlags() = %v, want error containing %q", err, tc.want)
			}
		})
	}
}

func TestConfigFileMissing(t *testing.T) {
	if _, err := NewFromFlags(newFlagSet(t, "--config=/nonexistent/muslabi.toml")); err == nil {
		t.Errorf("NewFromFlags succeeded with a missing config file")
	}
}
