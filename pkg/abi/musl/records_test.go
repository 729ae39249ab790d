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
	"runtime"
	"testing"
	"unsafe"
)

func TestRecords(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range Records() {
		if seen[r.Name] {
			t.Errorf("%s listed twice", r.Name)
		}
		seen[r.Name] = true
		if r.Type.Kind() != reflect.Struct {
			t.Errorf("%s: Go type %v is not a struct", r.Name, r.Type)
		}
		if r.Type.PkgPath() != reflect.TypeFor[Record]().PkgPath() {
			t.Errorf("%s: Go type %v is declared outside this package", r.Name, r.Type)
		}
	}
}

func TestRecordAlign(t *testing.T) {
	for _, r := range Records() {
		goAlign := uintptr(r.Type.Align())
		if r.Align < goAlign {
			t.Errorf("%s: Align = %d, below Go alignment %d", r.Name, r.Align, goAlign)
		}
		if r.Type.Size()%r.Align != 0 {
			t.Errorf("%s: sizeof = %d is not a multiple of Align %d", r.Name, r.Type.Size(), r.Align)
		}
	}

	tests := []struct {
		name string
		want uintptr
	}{
		{"struct fanotify_event_metadata", 8},
		{"struct rlimit", longlongAlign},
		{"struct flock", longlongAlign},
		{"struct termios", 4},
		{"struct sockaddr", 2},
	}
	for _, test := range tests {
		r, ok := LookupRecord(test.name)
		if !ok {
			t.Fatalf("LookupRecord(%q) not found", test.name)
		}
		if r.Align != test.want {
			t.Errorf("%s: Align = %d, want %d", test.name, r.Align, test.want)
		}
	}
}

func TestRecordsPointerFree(t *testing.T) {
	// Records are copied to and from C memory, so none may hold a Go
	// pointer.
	var check func(path string, typ reflect.Type)
	check = func(path string, typ reflect.Type) {
		switch typ.Kind() {
		case reflect.Struct:
			for i := 0; i < typ.NumField(); i++ {
				check(path+"."+typ.Field(i).Name, typ.Field(i).Type)
			}
		case reflect.Array:
			check(path+"[]", typ.Elem())
		case reflect.Pointer, reflect.UnsafePointer, reflect.Slice, reflect.String, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
			t.Errorf("%s has Go reference type %v", path, typ)
		}
	}
	for _, r := range Records() {
		check(r.Type.Name(), r.Type)
	}
}

func TestUnionRecords(t *testing.T) {
	for _, name := range []string{"siginfo_t", "union sigval", "struct sigevent", "struct tcp_info"} {
		r, ok := LookupRecord(name)
		if !ok {
			t.Errorf("LookupRecord(%q) not found", name)
			continue
		}
		if !r.Union {
			t.Errorf("%s is not marked union-backed", name)
		}
	}
	if r, ok := LookupRecord("Flock"); !ok || r.Union {
		t.Errorf("LookupRecord(Flock) = %+v, %t", r, ok)
	}
}

func TestLFSAliases(t *testing.T) {
	for _, test := range []struct {
		name string
		a, b reflect.Type
	}{
		{"Statvfs64", reflect.TypeFor[Statvfs64](), reflect.TypeFor[Statvfs]()},
		{"Statfs64", reflect.TypeFor[Statfs64](), reflect.TypeFor[Statfs]()},
		{"Flock64", reflect.TypeFor[Flock64](), reflect.TypeFor[Flock]()},
		{"Rlimit64", reflect.TypeFor[Rlimit64](), reflect.TypeFor[Rlimit]()},
		{"Off64T", reflect.TypeFor[Off64T](), reflect.TypeFor[OffT]()},
		{"Fsblkcnt64T", reflect.TypeFor[Fsblkcnt64T](), reflect.TypeFor[FsblkcntT]()},
		{"Fsfilcnt64T", reflect.TypeFor[Fsfilcnt64T](), reflect.TypeFor[FsfilcntT]()},
	} {
		if test.a != test.b {
			t.Errorf("%s = %v, want %v", test.name, test.a, test.b)
		}
	}
}

func TestScalarWidths(t *testing.T) {
	ptr := unsafe.Sizeof(uintptr(0))
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"CChar", unsafe.Sizeof(CChar(0)), 1},
		{"CShort", unsafe.Sizeof(CShort(0)), 2},
		{"CInt", unsafe.Sizeof(CInt(0)), 4},
		{"CLong", unsafe.Sizeof(CLong(0)), ptr},
		{"CLonglong", unsafe.Sizeof(CLonglong(0)), 8},
		{"SizeT", unsafe.Sizeof(SizeT(0)), ptr},
		{"TimeT", unsafe.Sizeof(TimeT(0)), 8},
		{"LegacyTimeT", unsafe.Sizeof(LegacyTimeT(0)), ptr},
		{"SusecondsT", unsafe.Sizeof(SusecondsT(0)), 8},
		{"ClockT", unsafe.Sizeof(ClockT(0)), ptr},
		{"OffT", unsafe.Sizeof(OffT(0)), 8},
		{"InoT", unsafe.Sizeof(InoT(0)), 8},
		{"RlimT", unsafe.Sizeof(RlimT(0)), 8},
		{"FsblkcntT", unsafe.Sizeof(FsblkcntT(0)), 8},
		{"SocklenT", unsafe.Sizeof(SocklenT(0)), 4},
		{"PthreadT", unsafe.Sizeof(PthreadT(0)), ptr},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("sizeof(%s) = %d, want %d", test.name, test.got, test.want)
		}
	}
}

func TestCharSignedness(t *testing.T) {
	want := false
	switch runtime.GOARCH {
	case "386", "amd64", "loong64", "mips", "mipsle", "mips64", "mips64le", "wasm":
		want = true
	}
	if CharSigned != want {
		t.Errorf("CharSigned = %t, want %t", CharSigned, want)
	}
	var c CChar
	c--
	if (c < 0) != want {
		t.Errorf("CChar(0)-1 = %d, want signed = %t", c, want)
	}
}
