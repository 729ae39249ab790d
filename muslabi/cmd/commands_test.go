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
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"muslabi.dev/muslabi/pkg/abi/layout"
	"muslabi.dev/muslabi/pkg/abi/musl"
	"muslabi.dev/muslabi/pkg/binary"
	"muslabi.dev/muslabi/pkg/dynlink"
)

func TestLayoutResult(t *testing.T) {
	r, err := layoutResult([]string{"struct rlimit"}, false)
	if err != nil {
		t.Fatal(err)
	}
	size := binary.Size(musl.Rlimit{})
	rec, _ := musl.LookupRecord("struct rlimit")
	align := fmtUint(uintptr(reflect.TypeFor[uint64]().Align()))
	want := [][]string{
		{"struct rlimit", "", "", fmtUint(size), fmtUint(rec.Align), "musl.Rlimit"},
		{"", "Cur", "0", "8", align, "uint64"},
		{"", "Max", "8", "8", align, "uint64"},
	}
	if diff := cmp.Diff(want, r.rows); diff != "" {
		t.Errorf("layoutResult() rows mismatch (-want +got):\n%s", diff)
	}
	ls := r.value.([]layout.Layout)
	if len(ls) != 1 || ls[0].Name != "struct rlimit" || ls[0].Size != size || ls[0].Align != rec.Align {
		t.Errorf("layoutResult() value = %+v", ls)
	}
}

func TestLayoutResultAll(t *testing.T) {
	r, err := layoutResult(nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(r.value.([]layout.Layout)), len(musl.Records()); got != want {
		t.Errorf("layoutResult(nil) has %d layouts, want %d", got, want)
	}
}

func TestLayoutResultUnknown(t *testing.T) {
	if _, err := layoutResult([]string{"struct nosuch"}, false); err == nil {
		t.Errorf("layoutResult succeeded for an unknown record")
	}
}

func TestConstsResult(t *testing.T) {
	r, err := constsResult("signal", true, []string{"SIGKILL", "SIGUNUSED"})
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"SIGUNUSED", fmt.Sprintf("%#x", musl.SIGUNUSED), "signal", "SIGSYS (deprecated)"},
		{"SIGKILL", "0x9", "signal", ""},
	}
	if diff := cmp.Diff(want, r.rows); diff != "" {
		t.Errorf("constsResult() rows mismatch (-want +got):\n%s", diff)
	}

	r, err = constsResult("signal", false, []string{"SIGUNUSED"})
	if err != nil {
		t.Fatal(err)
	}
	if len(r.rows) != 0 {
		t.Errorf("deprecated constant printed with -deprecated=false: %v", r.rows)
	}
	if cs := r.value.([]musl.Constant); len(cs) != 0 {
		t.Errorf("value = %v, want empty", cs)
	}
}

func TestConstsResultSigned(t *testing.T) {
	r, err := constsResult("", true, []string{"REG_ENOSYS"})
	if err != nil {
		t.Fatal(err)
	}
	if len(r.rows) != 1 || r.rows[0][1] != "-1" {
		t.Errorf("REG_ENOSYS rows = %v, want value -1", r.rows)
	}
}

func TestConstsResultBadPattern(t *testing.T) {
	if _, err := constsResult("", true, []string{"["}); err == nil {
		t.Errorf("constsResult accepted a malformed pattern")
	}
}

func TestFuncsResult(t *testing.T) {
	r, err := funcsResult(true, false, "", []string{"getrlimit", "utmpx*"})
	if err != nil {
		t.Fatal(err)
	}
	infos := r.value.([]FuncInfo)
	var names []string
	for _, info := range infos {
		names = append(names, info.Name)
	}
	if diff := cmp.Diff([]string{"getrlimit", "utmpxname"}, names); diff != "" {
		t.Errorf("funcsResult() names mismatch (-want +got):\n%s", diff)
	}
	if got, want := r.rows[0][2], "int getrlimit(int resource, struct rlimit *rlim)"; got != want {
		t.Errorf("prototype = %q, want %q", got, want)
	}
	if !strings.HasPrefix(r.rows[1][4], "deprecated: ") {
		t.Errorf("utmpxname note = %q, want deprecation", r.rows[1][4])
	}

	r, err = funcsResult(false, true, "", []string{"getrlimit", "utmpx*"})
	if err != nil {
		t.Fatal(err)
	}
	if len(r.rows) != 1 {
		t.Fatalf("rows = %v, want only getrlimit", r.rows)
	}
	if got, want := r.rows[0][2], "func(int32, *musl.Rlimit) int32"; got != want {
		t.Errorf("go type = %q, want %q", got, want)
	}
}

func TestFuncsResultRelease(t *testing.T) {
	all, err := funcsResult(true, false, "", nil)
	if err != nil {
		t.Fatal(err)
	}
	old, err := funcsResult(true, false, "1.1.19", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(old.rows) >= len(all.rows) {
		t.Errorf("release 1.1.19 lists %d routines, want fewer than %d", len(old.rows), len(all.rows))
	}
	for _, info := range old.value.([]FuncInfo) {
		if info.Since != "" {
			t.Errorf("release 1.1.19 lists %s, added in %s", info.Name, info.Since)
		}
	}
	if _, err := funcsResult(true, false, "one.two", nil); err == nil {
		t.Error("funcsResult() with invalid release succeeded")
	}
}

func TestAvailable(t *testing.T) {
	for _, tc := range []struct {
		since, release string
		want           bool
	}{
		{"", "1.1.0", true},
		{"1.2.2", "", true},
		{"1.1.20", "1.1.20", true},
		{"1.1.20", "1.1.9", false},
		{"1.1.24", "1.2.0", true},
		{"1.2.2", "1.1.24", false},
	} {
		if got := available(tc.since, tc.release); got != tc.want {
			t.Errorf("available(%q, %q) = %v, want %v", tc.since, tc.release, got, tc.want)
		}
	}
}

type fakeSymbols map[string]uintptr

func (f fakeSymbols) Lookup(name string) (uintptr, error) {
	if addr, ok := f[name]; ok {
		return addr, nil
	}
	return 0, dynlink.ErrUnsupported
}

func TestResolveResult(t *testing.T) {
	getrlimit, _ := musl.LookupFunc("getrlimit")
	dirname, _ := musl.LookupFunc("dirname")
	funcs := []musl.Func{getrlimit, dirname}
	info := ResolveInfo{
		Library: "/lib/libc.so",
		Report:  dynlink.Resolve(fakeSymbols{"getrlimit": 0x1234}, funcs),
	}
	r := resolveResult([]ResolveInfo{info}, funcs)
	if diff := cmp.Diff([]string{"NAME", "SYMBOL", "ADDRESS"}, r.header); diff != "" {
		t.Errorf("resolveResult() header mismatch (-want +got):\n%s", diff)
	}
	want := [][]string{
		{"getrlimit", "getrlimit", "0x1234"},
		{"dirname", "dirname", "missing"},
	}
	if diff := cmp.Diff(want, r.rows); diff != "" {
		t.Errorf("resolveResult() rows mismatch (-want +got):\n%s", diff)
	}

	other := ResolveInfo{
		Library: "/other/libc.so",
		Report:  dynlink.Resolve(fakeSymbols{"dirname": 0x10}, funcs),
	}
	r = resolveResult([]ResolveInfo{info, other}, funcs)
	if diff := cmp.Diff([]string{"NAME", "SYMBOL", "/lib/libc.so", "/other/libc.so"}, r.header); diff != "" {
		t.Errorf("resolveResult() header mismatch (-want +got):\n%s", diff)
	}
	want = [][]string{
		{"getrlimit", "getrlimit", "0x1234", "missing"},
		{"dirname", "dirname", "missing", "0x10"},
	}
	if diff := cmp.Diff(want, r.rows); diff != "" {
		t.Errorf("resolveResult() rows mismatch (-want +got):\n%s", diff)
	}
}

type fakeLibrary struct {
	fakeSymbols
	path   string
	closed *atomic.Int32
}

func (f fakeLibrary) Path() string { return f.path }

func (f fakeLibrary) Close() error {
	f.closed.Add(1)
	return nil
}

func TestResolveAll(t *testing.T) {
	getrlimit, _ := musl.LookupFunc("getrlimit")
	funcs := []musl.Func{getrlimit}
	var closed atomic.Int32
	open := func(path string) (library, error) {
		if path == "bad" {
			return nil, dynlink.ErrUnsupported
		}
		syms := fakeSymbols{}
		if path == "a" {
			syms["getrlimit"] = 0x1
		}
		return fakeLibrary{fakeSymbols: syms, path: path, closed: &closed}, nil
	}

	infos, err := resolveAll(context.Background(), []string{"a", "b"}, funcs, open)
	if err != nil {
		t.Fatalf("resolveAll() failed: %v", err)
	}
	var libs []string
	for _, info := range infos {
		libs = append(libs, info.Library)
	}
	if diff := cmp.Diff([]string{"a", "b"}, libs); diff != "" {
		t.Errorf("resolveAll() order mismatch (-want +got):\n%s", diff)
	}
	if got := infos[1].Missing; len(got) != 1 || got[0] != "getrlimit" {
		t.Errorf("b missing = %v, want [getrlimit]", got)
	}
	if got := closed.Load(); got != 2 {
		t.Errorf("closed %d libraries, want 2", got)
	}

	if _, err := resolveAll(context.Background(), []string{"a", "bad"}, funcs, open); !errors.Is(err, dynlink.ErrUnsupported) {
		t.Errorf("resolveAll() with bad library = %v, want %v", err, dynlink.ErrUnsupported)
	}
}

func TestDecodeResult(t *testing.T) {
	in := musl.Rlimit{Cur: 1024, Max: musl.RLIM_INFINITY}
	for _, name := range []string{"little", "big", "native"} {
		t.Run(name, func(t *testing.T) {
			order, err := byteOrder(name)
			if err != nil {
				t.Fatal(err)
			}
			r, err := decodeResult("Rlimit", binary.Marshal(nil, order, &in), order)
			if err != nil {
				t.Fatal(err)
			}
			got := r.value.(Decoded)
			if got.Record != "struct rlimit" || got.Value.(musl.Rlimit) != in {
				t.Errorf("decodeResult() = %+v, want %+v", got, in)
			}
			want := [][]string{
				{"Cur", "0", "1024"},
				{"Max", "8", "18446744073709551615"},
			}
			if diff := cmp.Diff(want, r.rows); diff != "" {
				t.Errorf("decodeResult() rows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeResultErrors(t *testing.T) {
	if _, err := decodeResult("struct rlimit", make([]byte, 3), binary.LittleEndian); err == nil {
		t.Errorf("decodeResult accepted a short buffer")
	}
	if _, err := decodeResult("struct nosuch", nil, binary.LittleEndian); err == nil {
		t.Errorf("decodeResult accepted an unknown record")
	}
	if _, err := byteOrder("middle"); err == nil {
		t.Errorf("byteOrder accepted %q", "middle")
	}
}

func TestDecodeHex(t *testing.T) {
	got, err := decodeHex([]byte("01 02\n0a\tff\n"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{1, 2, 10, 255}, got); diff != "" {
		t.Errorf("decodeHex() mismatch (-want +got):\n%s", diff)
	}
	if _, err := decodeHex([]byte("0g")); err == nil {
		t.Errorf("decodeHex accepted invalid input")
	}
}

func TestVariantResult(t *testing.T) {
	info := currentVariant()
	if diff := cmp.Diff(musl.Current(), info.Build); diff != "" {
		t.Errorf("build variant mismatch (-want +got):\n%s", diff)
	}
	if info.Host.OS == "" {
		t.Errorf("host OS is empty")
	}
	r := variantResult(info)
	if r.rows[0][0] != "arch" || r.rows[0][1] != info.Build.Arch {
		t.Errorf("first row = %v, want arch", r.rows[0])
	}
}
