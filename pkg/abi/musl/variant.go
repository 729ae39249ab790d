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
	"fmt"
	"runtime"
	"unsafe"
)

// Family is an architecture family that carries its own set of extension
// declarations.
type Family string

// Families.
const (
	// FamilyB64 covers the LP64 architectures.
	FamilyB64 Family = "b64"

	// FamilyB32 covers the ILP32 architectures.
	FamilyB32 Family = "b32"

	// FamilyNone is any other architecture. Its extension is empty.
	FamilyNone Family = ""
)

// String implements fmt.Stringer.String.
func (f Family) String() string {
	if f == FamilyNone {
		return "none"
	}
	return string(f)
}

// Variant describes the declaration set compiled into this build.
type Variant struct {
	// Arch is the Go architecture name.
	Arch string `json:"arch" yaml:"arch" toml:"arch"`

	// Family is the extension family.
	Family Family `json:"family" yaml:"family" toml:"family"`

	// PointerSize is the size of a C pointer in bytes.
	PointerSize int `json:"pointer_size" yaml:"pointer_size" toml:"pointer_size"`

	// BigEndian is true for big-endian architectures.
	BigEndian bool `json:"big_endian" yaml:"big_endian" toml:"big_endian"`

	// CharSigned is true if C char is signed.
	CharSigned bool `json:"char_signed" yaml:"char_signed" toml:"char_signed"`

	// LonglongAlign is the C alignment of long long and double.
	LonglongAlign int `json:"longlong_align" yaml:"longlong_align" toml:"longlong_align"`

	// Revision is the musl release whose layouts are declared.
	Revision string `json:"revision" yaml:"revision" toml:"revision"`
}

// Current returns the variant selected at build time.
func Current() Variant {
	return Variant{
		Arch:          runtime.GOARCH,
		Family:        ArchFamily,
		PointerSize:   int(unsafe.Sizeof(uintptr(0))),
		BigEndian:     BigEndian,
		CharSigned:    CharSigned,
		LonglongAlign: longlongAlign,
		Revision:      Revision,
	}
}

// String implements fmt.Stringer.String.
func (v Variant) String() string {
	endian := "le"
	if v.BigEndian {
		endian = "be"
	}
	return fmt.Sprintf("%s/%s (%d-bit %s, musl %s)", v.Arch, v.Family, v.PointerSize*8, endian, v.Revision)
}
