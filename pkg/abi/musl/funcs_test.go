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
	"reflect"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

func TestFuncNames(t *testing.T) {
	want := []string{
		"getrlimit", "setrlimit", "prlimit", "gettimeofday", "ptrace",
		"getpriority", "setpriority", "fanotify_mark", "preadv2", "pwritev2",
		"getauxval", "explicit_bzero", "reallocarray", "adjtimex",
		"clock_adjtime", "ctermid", "memfd_create", "mlock2",
		"malloc_usable_size", "euidaccess", "eaccess", "asctime_r", "dirname",
		"basename", "getrandom", "posix_spawn_file_actions_addchdir_np",
		"posix_spawn_file_actions_addfchdir_np", "getutxent", "getutxid",
		"getutxline", "pututxline", "setutxent", "endutxent", "utmpxname",
	}
	if ArchFamily != FamilyNone {
		want = append(want, "sendmmsg", "recvmmsg")
	}
	var got []string
	for _, f := range Funcs() {
		got = append(got, f.Name)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Funcs() names mismatch (-want +got):\n%s", diff)
	}
}

func TestFuncGoType(t *testing.T) {
	tests := []struct {
		name string
		want reflect.Type
	}{
		{"getrlimit", reflect.TypeOf((func(int32, *Rlimit) int32)(nil))},
		{"prlimit", reflect.TypeOf((func(int32, int32, *Rlimit, *Rlimit) int32)(nil))},
		{"gettimeofday", reflect.TypeOf((func(*Timeval, unsafe.Pointer) int32)(nil))},
		{"ptrace", reflect.TypeOf((func(int32, ...uintptr) int)(nil))},
		{"fanotify_mark", reflect.TypeOf((func(int32, uint32, uint64, int32, *CChar) int32)(nil))},
		{"preadv2", reflect.TypeOf((func(int32, *Iovec, int32, int64, int32) int)(nil))},
		{"getauxval", reflect.TypeOf((func(uint) uint)(nil))},
		{"explicit_bzero", reflect.TypeOf((func(unsafe.Pointer, uint))(nil))},
		{"dirname", reflect.TypeOf((func(*CChar) *CChar)(nil))},
		{"getutxent", reflect.TypeOf((func() *Utmpx)(nil))},
		{"setutxent", reflect.TypeOf((func())(nil))},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f, ok := LookupFunc(test.name)
			if !ok {
				t.Fatalf("LookupFunc(%q) not found", test.name)
			}
			if got := f.GoType(); got != test.want {
				t.Errorf("GoType() = %v, want %v", got, test.want)
			}
		})
	}
}

func TestFuncTable(t *testing.T) {
	seen := make(map[string]bool)
	for _, f := range Funcs() {
		if seen[f.Name] {
			t.Errorf("%s listed twice", f.Name)
		}
		seen[f.Name] = true
		if f.Symbol == "" {
			t.Errorf("%s has no link symbol", f.Name)
		}
		if f.Result.CType == "" {
			t.Errorf("%s has no result type", f.Name)
		}
		if (f.Result.CType == "void") != (f.Result.Type == nil) {
			t.Errorf("%s: result %q has Go type %v", f.Name, f.Result.CType, f.Result.Type)
		}
		for _, p := range f.Params {
			if p.Type == nil || p.CType == "" || p.Name == "" {
				t.Errorf("%s: incomplete parameter %+v", f.Name, p)
			}
		}
		if f.Variadic != (f.Name == "ptrace") {
			t.Errorf("%s: Variadic = %t", f.Name, f.Variadic)
		}
	}
}

func TestDeprecatedUtmpxFuncs(t *testing.T) {
	for _, name := range []string{"getutxent", "getutxid", "getutxline", "pututxline", "setutxent", "endutxent", "utmpxname"} {
		f, ok := LookupFunc(name)
		if !ok {
			t.Errorf("LookupFunc(%q) not found", name)
			continue
		}
		if f.Deprecated == "" {
			t.Errorf("%s is not marked deprecated", name)
		}
	}
	if f, _ := LookupFunc("getrlimit"); f.Deprecated != "" {
		t.Errorf("getrlimit is marked deprecated: %q", f.Deprecated)
	}
}

func TestTime64Symbols(t *testing.T) {
	want := map[string]string{
		"gettimeofday":  "gettimeofday",
		"adjtimex":      "adjtimex",
		"clock_adjtime": "clock_adjtime",
		"getrlimit":     "getrlimit",
	}
	if !is64 {
		want = map[string]string{
			"gettimeofday":  "__gettimeofday_time64",
			"adjtimex":      "__adjtimex_time64",
			"clock_adjtime": "__clock_adjtime64",
			"getrlimit":     "getrlimit",
		}
	}
	if ArchFamily != FamilyNone {
		want["recvmmsg"] = "recvmmsg"
		want["sendmmsg"] = "sendmmsg"
		if !is64 {
			want["recvmmsg"] = "__recvmmsg_time64"
		}
	}
	got := make(map[string]string)
	for name := range want {
		f, _ := LookupFunc(name)
		got[name] = f.Symbol
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("link symbols mismatch (-want +got):\n%s", diff)
	}
}

func TestCSignature(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"getrlimit", "int getrlimit(int resource, struct rlimit *rlim)"},
		{"ptrace", "long ptrace(int request, ...)"},
		{"setutxent", "void setutxent(void)"},
		{"dirname", "char *dirname(char *path)"},
	}
	for _, test := range tests {
		f, _ := LookupFunc(test.name)
		if got := f.CSignature(); got != test.want {
			t.Errorf("CSignature(%s) = %q, want %q", test.name, got, test.want)
		}
	}
}

func TestLookupFuncMissing(t *testing.T) {
	if _, ok := LookupFunc("printf"); ok {
		t.Errorf("LookupFunc(printf) found a signature")
	}
}
