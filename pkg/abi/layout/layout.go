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

// Package layout reports the memory layout the compiler chose for ABI
// records: the offset and size of every member, the explicit padding
// members, and any implicit padding between them.
package layout

import (
	"fmt"
	"reflect"
	"strings"
)

// Field is one member of a record.
type Field struct {
	// Name is the member name. Padding members are named "_".
	Name string `json:"name" yaml:"name" toml:"name"`

	// Offset is the byte offset from the start of the outermost record.
	Offset uintptr `json:"offset" yaml:"offset" toml:"offset"`

	// Size is the size of the member in bytes.
	Size uintptr `json:"size" yaml:"size" toml:"size"`

	// Align is the alignment of the member's type.
	Align uintptr `json:"align" yaml:"align" toml:"align"`

	// Type is the Go type of the member.
	Type string `json:"type" yaml:"type" toml:"type"`

	// Padding is true for blank members.
	Padding bool `json:"padding,omitempty" yaml:"padding,omitempty" toml:"padding,omitempty"`

	// Fields holds the members of a nested record.
	Fields []Field `json:"fields,omitempty" yaml:"fields,omitempty" toml:"fields,omitempty"`
}

// End returns the offset one past the last byte of f.
func (f Field) End() uintptr {
	return f.Offset + f.Size
}

// Hole is a run of bytes the compiler inserted between members, or after
// the last one, that no member covers.
type Hole struct {
	// Offset is the start of the hole.
	Offset uintptr `json:"offset" yaml:"offset" toml:"offset"`

	// Size is the length of the hole in bytes.
	Size uintptr `json:"size" yaml:"size" toml:"size"`

	// After is the path of the member preceding the hole.
	After string `json:"after" yaml:"after" toml:"after"`
}

// Layout describes a record type.
type Layout struct {
	// Name is the Go type name.
	Name string `json:"name" yaml:"name" toml:"name"`

	// Size is the size of the record in bytes.
	Size uintptr `json:"size" yaml:"size" toml:"size"`

	// Align is the alignment of the record.
	Align uintptr `json:"align" yaml:"align" toml:"align"`

	// Fields are the top-level members in declaration order.
	Fields []Field `json:"fields" yaml:"fields" toml:"fields"`

	// Holes lists implicit padding, including padding inside nested
	// records.
	Holes []Hole `json:"holes,omitempty" yaml:"holes,omitempty" toml:"holes,omitempty"`
}

// Of returns the layout of typ. typ must be a struct type.
func Of(typ reflect.Type) Layout {
	if typ.Kind() != reflect.Struct {
		panic(fmt.Sprintf("invalid type: %v is not a struct", typ))
	}
	l := Layout{
		Name:  typ.Name(),
		Size:  typ.Size(),
		Align: uintptr(typ.Align()),
	}
	l.Fields, l.Holes = fields(typ, 0, "")
	return l
}

// fields walks the members of typ, which starts at base, and returns them
// along with the implicit padding it finds.
func fields(typ reflect.Type, base uintptr, prefix string) ([]Field, []Hole) {
	var (
		fs    []Field
		holes []Hole
		next  uintptr
		prev  string
	)
	for i, n := 0, typ.NumField(); i < n; i++ {
		sf := typ.Field(i)
		if sf.Offset != next && prev != "" {
			holes = append(holes, Hole{Offset: base + next, Size: sf.Offset - next, After: prev})
		}
		f := Field{
			Name:    sf.Name,
			Offset:  base + sf.Offset,
			Size:    sf.Type.Size(),
			Align:   uintptr(sf.Type.Align()),
			Type:    sf.Type.String(),
			Padding: sf.Name == "_",
		}
		if sf.Type.Kind() == reflect.Struct && !f.Padding {
			var inner []Hole
			f.Fields, inner = fields(sf.Type, f.Offset, prefix+sf.Name+".")
			holes = append(holes, inner...)
		}
		fs = append(fs, f)
		next = sf.Offset + f.Size
		prev = prefix + sf.Name
	}
	if next != typ.Size() && prev != "" {
		holes = append(holes, Hole{Offset: base + next, Size: typ.Size() - next, After: prev})
	}
	return fs, holes
}

// Field returns the member at path, a dot-separated list of member names
// such as "Tv.Sec".
func (l *Layout) Field(path string) (Field, bool) {
	fs := l.Fields
	var found Field
	for _, name := range strings.Split(path, ".") {
		ok := false
		for _, f := range fs {
			if f.Name == name && !f.Padding {
				found, fs, ok = f, f.Fields, true
				break
			}
		}
		if !ok {
			return Field{}, false
		}
	}
	return found, true
}

// Leaves returns the members that are not themselves records, with nested
// records expanded in place. Names are full paths.
func (l *Layout) Leaves() []Field {
	var out []Field
	var walk func(prefix string, fs []Field)
	walk = func(prefix string, fs []Field) {
		for _, f := range fs {
			if len(f.Fields) > 0 {
				walk(prefix+f.Name+".", f.Fields)
				continue
			}
			if !f.Padding {
				f.Name = prefix + f.Name
			}
			out = append(out, f)
		}
	}
	walk("", l.Fields)
	return out
}

// PaddingBytes returns the number of bytes not covered by a named member,
// counting both blank members and implicit holes.
func (l *Layout) PaddingBytes() uintptr {
	var n uintptr
	for _, f := range l.Leaves() {
		if f.Padding {
			n += f.Size
		}
	}
	for _, h := range l.Holes {
		n += h.Size
	}
	return n
}
