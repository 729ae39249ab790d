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

package dynlink

import (
	"errors"
	"fmt"
	"runtime"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"muslabi.dev/muslabi/pkg/abi/musl"
)

var errNoSymbol = errors.New("no such symbol")

type fakeSymbols map[string]uintptr

func (f fakeSymbols) Lookup(name string) (uintptr, error) {
	if addr, ok := f[name]; ok {
		return addr, nil
	}
	return 0, fmt.Errorf("%q: %w", name, errNoSymbol)
}

func mustFunc(t *testing.T, name string) musl.Func {
	t.Helper()
	f, ok := musl.LookupFunc(name)
	if !ok {
		t.Fatalf("LookupFunc(%q) not found", name)
	}
	return f
}

func TestResolve(t *testing.T) {
	funcs := []musl.Func{
		mustFunc(t, "utmpxname"),
		mustFunc(t, "getrlimit"),
		mustFunc(t, "dirname"),
		mustFunc(t, "getrandom"),
	}
	syms := fakeSymbols{"getrlimit": 0x1000, "getrandom": 0x2000}

	got := Resolve(syms, funcs)
	want := Report{
		Resolved: map[string]uintptr{"getrlimit": 0x1000, "getrandom": 0x2000},
		Missing:  []string{"dirname", "utmpxname"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveUsesSymbol(t *testing.T) {
	f := mustFunc(t, "gettimeofday")
	got := Resolve(fakeSymbols{f.Symbol: 0x10}, []musl.Func{f})
	if addr := got.Resolved["gettimeofday"]; addr != 0x10 {
		t.Errorf("Resolved[gettimeofday] = %#x, want 0x10 via symbol %q", addr, f.Symbol)
	}
}

func TestBindErrors(t *testing.T) {
	var getrandom func(unsafe.Pointer, musl.SizeT, musl.CUint) musl.SsizeT
	var ptrace func(musl.CInt, ...uintptr) musl.CLong
	var wrong func() musl.CInt

	syms := fakeSymbols{}
	for _, tc := range []struct {
		name string
		fptr any
		fn   string
		want error
	}{
		{"unknown", &wrong, "no_such_routine", ErrUnknownFunc},
		{"variadic", &ptrace, "ptrace", ErrVariadic},
		{"wrong type", &wrong, "getrandom", ErrSignature},
		{"not a pointer", getrandom, "getrandom", ErrSignature},
		{"nil", nil, "getrandom", ErrSignature},
		{"missing symbol", &getrandom, "getrandom", errNoSymbol},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if err := Bind(syms, tc.fptr, tc.fn); !errors.Is(err, tc.want) {
				t.Errorf("Bind(%s) = %v, want %v", tc.fn, err, tc.want)
			}
		})
	}
}

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths()
	if len(paths) == 0 || paths[len(paths)-1] != "libc.so" {
		t.Fatalf("DefaultPaths() = %v, want trailing libc.so", paths)
	}
	if p, ok := defaultPaths[runtime.GOARCH]; ok && paths[0] != p {
		t.Errorf("DefaultPaths()[0] = %q, want %q", paths[0], p)
	}
}
