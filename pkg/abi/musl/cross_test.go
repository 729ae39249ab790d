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


package musl

import (
	"os"
	"os/exec"
	"runtime"
	"strings"
	"testing"
)

// supportedArchs lists every GOARCH with a family extension.
var supportedArchs = []string{
	"amd64", "arm64", "loong64", "mips64", "mips64le", "ppc64", "ppc64le", "riscv64", "s390x", "wasm",
	"386", "arm", "mips", "mipsle",
}

var revisionTags = []string{"", "musl_v1_2_3", "musl_v1_2_4"}

func goTool(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("builds the package for every architecture")
	}
	path, err := exec.LookPath("go")
	if err != nil {
		t.Skipf("go tool not found: %v", err)
	}
	return path
}

func goEnv(goarch string) []string {
	goos := "linux"
	if goarch == "wasm" {
		goos = "wasip1"
	}
	return append(os.Environ(), "GOOS="+goos, "GOARCH="+goarch, "CGO_ENABLED=0")
}

// TestVetAllArchs type-checks the package and its tests for every supported
// architecture and revision, so a file that builds for the wrong set of
// targets shows up as an undefined or redeclared name.
func TestVetAllArchs(t *testing.T) {
	gotool := goTool(t)
	for _, goarch := range supportedArchs {
		for _, tag := range revisionTags {
			name := goarch
			if tag != "" {
				name += "/" + tag
			}
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				args := []string{"vet"}
				if tag != "" {
					args = append(args, "-tags", tag)
				}
				cmd := exec.Command(gotool, append(args, ".")...)
				cmd.Env = goEnv(goarch)
				if out, err := cmd.CombinedOutput(); err != nil {
					t.Errorf("go %s: %v\n%s", strings.Join(args, " "), err, out)
				}
			})
		}
	}
}

// TestLayout386 runs the layout tests as a 386 binary, which amd64 hosts
// execute natively.
func TestLayout386(t *testing.T) {
	gotool := goTool(t)
	if runtime.GOOS != "linux" || runtime.GOARCH != "amd64" {
		t.Skipf("386 binaries do not run on %s/%s", runtime.GOOS, runtime.GOARCH)
	}
	for _, tag := range revisionTags {
		args := []string{"test", "-count=1", "-run", "^Test(RecordSizes|RecordAlign|FieldOffsets|LonglongAlignment|TimespecLayout)$"}
		if tag != "" {
			args = append(args, "-tags", tag)
		}
		cmd := exec.Command(gotool, append(args, ".")...)
		cmd.Env = goEnv("386")
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Errorf("GOARCH=386 go %s: %v\n%s", strings.Join(args, " "), err, out)
		}
	}
}
