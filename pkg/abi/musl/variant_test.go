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
	"runtime"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
)

func TestCurrent(t *testing.T) {
	family := FamilyNone
	switch runtime.GOARCH {
	case "amd64", "arm64", "loong64", "mips64", "mips64le", "ppc64", "ppc64le", "riscv64", "s390x", "wasm":
		family = FamilyB64
	case "386", "arm", "mips", "mipsle":
		family = FamilyB32
	}
	bigEndian := false
	switch runtime.GOARCH {
	case "mips", "mips64", "ppc64", "s390x":
		bigEndian = true
	}
	align := 8
	if runtime.GOARCH == "386" {
		align = 4
	}

	want := Variant{
		Arch:          runtime.GOARCH,
		Family:        family,
		PointerSize:   int(unsafe.Sizeof(uintptr(0))),
		BigEndian:     bigEndian,
		CharSigned:    CharSigned,
		LonglongAlign: align,
		Revision:      Revision,
	}
	if diff := cmp.Diff(want, Current()); diff != "" {
		t.Errorf("Current() mismatch (-want +got):\n%s", diff)
	}
}

func TestFamilyWordSize(t *testing.T) {
	v := Current()
	switch v.Family {
	case FamilyB64:
		if v.PointerSize != 8 {
			t.Errorf("family %s with %d-byte pointers", v.Family, v.PointerSize)
		}
	case FamilyB32:
		if v.PointerSize != 4 {
			t.Errorf("family %s with %d-byte pointers", v.Family, v.PointerSize)
		}
	}
}

func TestVariantString(t *testing.T) {
	v := Variant{Arch: "mips", Family: FamilyB32, PointerSize: 4, BigEndian: true, Revision: "1.2.3"}
	if got, want := v.String(), "mips/b32 (32-bit be, musl 1.2.3)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := FamilyNone.String(), "none"; got != want {
		t.Errorf("FamilyNone.String() = %q, want %q", got, want)
	}
}

func TestRevision(t *testing.T) {
	switch Revision {
	case "1.2.2", "1.2.3", "1.2.4":
	default:
		t.Errorf("Revision = %q", Revision)
	}
}
