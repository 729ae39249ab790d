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

package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"
	"unsafe"
)

const wordSize = unsafe.Sizeof(uintptr(0))

func TestSize(t *testing.T) {
	if got, want := Size(uint32(10)), uintptr(4); got != want {
		t.Errorf("Got = %d, want = %d", got, want)
	}
	if got, want := Size(&padded{}), uintptr(8); got != want {
		t.Errorf("Got = %d, want = %d", got, want)
	}
	if got, want := Size(uintptr(0)), wordSize; got != want {
		t.Errorf("Got = %d, want = %d", got, want)
	}
}

func TestPanic(t *testing.T) {
	tests := []struct {
		name string
		f    func()
		want string
	}{
		{"Unmarshal value", func() { Unmarshal(nil, LittleEndian, 5) }, "invalid type: int"},
		{"Unmarshal slice", func() { Unmarshal(nil, LittleEndian, []int32{5}) }, "invalid type: []int32"},
		{"Marshal slice", func() { Marshal(nil, LittleEndian, []int32{5}) }, "invalid type: []int32"},
		{"Marshal pointer member", func() { Marshal(nil, LittleEndian, struct{ P *int }{}) }, "invalid type: *int"},
		{"Marshal string", func() { Marshal(nil, LittleEndian, "x") }, "invalid type: string"},
		{"Unmarshal short buffer", func() { Unmarshal(make([]byte, 2), LittleEndian, new(int32)) }, "buffer too short by 2 bytes"},
		{"Unmarshal long buffer", func() { Unmarshal(make([]byte, 50), LittleEndian, new(int32)) }, "buffer too long by 46 bytes"},
		{"Size nil", func() { Size(nil) }, "invalid type: nil"},
		{"Size bool", func() { Size(true) }, "invalid type: bool"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if got := fmt.Sprint(r); !strings.HasPrefix(got, test.want) {
					t.Errorf("Got recover() = %q, want prefix = %q", got, test.want)
				}
			}()

			test.f()
		})
	}
}

type inner struct {
	Field int32
}

type outer struct {
	Int8    int8
	Int16   int16
	Int32   int32
	Int64   int64
	Uint8   uint8
	Uint16  uint16
	Uint32  uint32
	Uint64  uint64
	Int     int
	Uint    uint
	Uintptr uintptr

	Array  [5]int32
	Struct inner
}

func TestMarshalUnmarshal(t *testing.T) {
	want := outer{
		1, -2, 3, -4, 5, 6, 7, 8, -9, 10, 11,
		[5]int32{12, 13, 14, 15, 16},
		inner{17},
	}
	for _, test := range []struct {
		name  string
		order binary.ByteOrder
	}{
		{"little", LittleEndian},
		{"big", BigEndian},
	} {
		t.Run(test.name, func(t *testing.T) {
			buf := Marshal(nil, test.order, &want)
			if uintptr(len(buf)) != unsafe.Sizeof(want) {
				t.Errorf("len(Marshal()) = %d, want %d", len(buf), unsafe.Sizeof(want))
			}
			var got outer
			Unmarshal(buf, test.order, &got)
			if !reflect.DeepEqual(&got, &want) {
				t.Errorf("Got = %#v, want = %#v", got, want)
			}
		})
	}
}

type padded struct {
	A uint8
	B uint32
}

func TestMarshalOffsets(t *testing.T) {
	got := Marshal([]byte{0xff}, LittleEndian, padded{A: 1, B: 0x02030405})
	want := []byte{0xff, 1, 0, 0, 0, 5, 4, 3, 2}
	if !bytes.Equal(got, want) {
		t.Errorf("Marshal() = %x, want %x", got, want)
	}

	got = Marshal(nil, BigEndian, padded{A: 1, B: 0x02030405})
	want = []byte{1, 0, 0, 0, 2, 3, 4, 5}
	if !bytes.Equal(got, want) {
		t.Errorf("Marshal() = %x, want %x", got, want)
	}
}

func TestUnmarshalMatchesMemory(t *testing.T) {
	// Decoding the bytes of a value with the host byte order must
	// reproduce the value.
	want := outer{Int: -1, Uintptr: 0xbeef, Int16: 0x1234, Array: [5]int32{1, 2, 3, 4, 5}}
	mem := unsafe.Slice((*byte)(unsafe.Pointer(&want)), unsafe.Sizeof(want))
	var order binary.ByteOrder = LittleEndian
	if x := uint16(1); *(*byte)(unsafe.Pointer(&x)) == 0 {
		order = BigEndian
	}
	var got outer
	Unmarshal(mem, order, &got)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Got = %#v, want = %#v", got, want)
	}
}

type outerPadding struct {
	A uint8
	_ [3]byte
	B uint32
	_ uint64
}

func TestUnmarshalSkipsPadding(t *testing.T) {
	buf := bytes.Repeat([]byte{0xff}, int(Size(outerPadding{})))
	var got outerPadding
	Unmarshal(buf, LittleEndian, &got)
	want := outerPadding{A: 0xff, B: 0xffffffff}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Got = %#v, want = %#v", got, want)
	}
}

func TestReadWrite(t *testing.T) {
	want := padded{A: 7, B: 9}
	var buf bytes.Buffer
	if err := Write(&buf, BigEndian, &want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var got padded
	if err := Read(&buf, BigEndian, &got); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != want {
		t.Errorf("Got = %+v, want = %+v", got, want)
	}
}

type readWriter struct {
	err error
}

func (rw *readWriter) Write([]byte) (int, error) {
	return 0, rw.err
}

func (rw *readWriter) Read([]byte) (int, error) {
	return 0, rw.err
}

func TestReadWriteError(t *testing.T) {
	tests := []struct {
		name string
		f    func(rw io.ReadWriter) error
	}{
		{"Write", func(rw io.ReadWriter) error { return Write(rw, LittleEndian, padded{}) }},
		{"Read", func(rw io.ReadWriter) error { return Read(rw, LittleEndian, &padded{}) }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			want := errors.New("want")
			if got := test.f(&readWriter{want}); got != want {
				t.Errorf("got = %v, want = %v", got, want)
			}
		})
	}
}

func BenchmarkMarshalUnmarshal(b *testing.B) {
	b.ReportAllocs()

	in := outer{
		1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11,
		[5]int32{12, 13, 14, 15, 16},
		inner{17},
	}
	buf := make([]byte, Size(&in))
	out := outer{}

	for i := 0; i < b.N; i++ {
		buf := Marshal(buf[:0], LittleEndian, &in)
		Unmarshal(buf, LittleEndian, &out)
	}
}
