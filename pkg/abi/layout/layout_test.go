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

package layout

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type inner struct {
	A uint16
	B uint32
}

type record struct {
	X uint8
	_ [1]byte
	Y uint16
	I inner
	Z uint8
}

func TestOf(t *testing.T) {
	want := Layout{
		Name:  "record",
		Size:  16,
		Align: 4,
		Fields: []Field{
			{Name: "X", Offset: 0, Size: 1, Align: 1, Type: "uint8"},
			{Name: "_", Offset: 1, Size: 1, Align: 1, Type: "[1]uint8", Padding: true},
			{Name: "Y", Offset: 2, Size: 2, Align: 2, Type: "uint16"},
			{Name: "I", Offset: 4, Size: 8, Align: 4, Type: "layout.inner", Fields: []Field{
				{Name: "A", Offset: 4, Size: 2, Align: 2, Type: "uint16"},
				{Name: "B", Offset: 8, Size: 4, Align: 4, Type: "uint32"},
			}},
			{Name: "Z", Offset: 12, Size: 1, Align: 1, Type: "uint8"},
		},
		Holes: []Hole{
			{Offset: 6, Size: 2, After: "I.A"},
			{Offset: 13, Size: 3, After: "Z"},
		},
	}
	if diff := cmp.Diff(want, Of(reflect.TypeOf(record{}))); diff != "" {
		t.Errorf("Of(record) mismatch (-want +got):\n%s", diff)
	}
}

func TestField(t *testing.T) {
	l := Of(reflect.TypeOf(record{}))
	for _, test := range []struct {
		path   string
		offset uintptr
		ok     bool
	}{
		{"X", 0, true},
		{"I", 4, true},
		{"I.B", 8, true},
		{"I.C", 0, false},
		{"_", 0, false},
		{"W", 0, false},
	} {
		f, ok := l.Field(test.path)
		if ok != test.ok || (ok && f.Offset != test.offset) {
			t.Errorf("Field(%q) = %+v, %t, want offset %d, %t", test.path, f, ok, test.offset, test.ok)
		}
	}
}

func TestLeaves(t *testing.T) {
	l := Of(reflect.TypeOf(record{}))
	var got []string
	for _, f := range l.Leaves() {
		got = append(got, f.Name)
	}
	want := []string{"X", "_", "Y", "I.A", "I.B", "Z"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Leaves() names mismatch (-want +got):\n%s", diff)
	}
	if got, want := l.PaddingBytes(), uintptr(6); got != want {
		t.Errorf("PaddingBytes() = %d, want %d", got, want)
	}
}

func TestOfPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Of(int) did not panic")
		}
	}()
	Of(reflect.TypeOf(0))
}
