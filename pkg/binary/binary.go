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

// Package binary translates between ABI records and the bytes C code sees
// at the record's address.
//
// Unlike encoding/binary, members are placed at the offsets the compiler
// chose for the Go declaration, so padding is preserved and int, uint and
// uintptr members take the build's native word size.
package binary

import (
	"encoding/binary"
	"fmt"
	"io"
	"reflect"
)

// ByteOrder is the same as encoding/binary.ByteOrder.
type ByteOrder = binary.ByteOrder

// LittleEndian is the same as encoding/binary.LittleEndian.
//
// It is included here as a convenience.
var LittleEndian = binary.LittleEndian

// BigEndian is the same as encoding/binary.BigEndian.
//
// It is included here as a convenience.
var BigEndian = binary.BigEndian

// Size returns the number of bytes Marshal appends for v, which is the
// in-memory size of v's type.
//
// v may be a pointer. Size panics if v's type is not supported by Marshal.
func Size(v any) uintptr {
	t := reflect.TypeOf(v)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	check(t)
	return t.Size()
}

// check panics if t contains a type that has no fixed in-memory
// representation.
func check(t reflect.Type) {
	if t == nil {
		panic("invalid type: nil")
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
	case reflect.Array:
		check(t.Elem())
	case reflect.Struct:
		for i, n := 0, t.NumField(); i < n; i++ {
			check(t.Field(i).Type)
		}
	default:
		panic("invalid type: " + t.String())
	}
}

// Marshal appends the in-memory representation of data to buf.
//
// data must only contain signed and unsigned integers, arrays, structs and
// compositions of said types. data may be a pointer, but cannot contain
// pointers. Bytes the compiler uses as padding are zero.
func Marshal(buf []byte, order binary.ByteOrder, data any) []byte {
	v := reflect.Indirect(reflect.ValueOf(data))
	check(v.Type())
	start := len(buf)
	buf = append(buf, make([]byte, v.Type().Size())...)
	marshal(buf[start:], order, v)
	return buf
}

func marshal(buf []byte, order binary.ByteOrder, data reflect.Value) {
	switch data.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		putUint(buf, order, data.Type().Size(), uint64(data.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		putUint(buf, order, data.Type().Size(), data.Uint())

	case reflect.Array:
		size := data.Type().Elem().Size()
		for i, l := 0, data.Len(); i < l; i++ {
			marshal(buf[uintptr(i)*size:], order, data.Index(i))
		}

	case reflect.Struct:
		t := data.Type()
		for i, l := 0, data.NumField(); i < l; i++ {
			marshal(buf[t.Field(i).Offset:], order, data.Field(i))
		}

	default:
		panic("invalid type: " + data.Type().String())
	}
}

// Unmarshal unpacks buf into data.
//
// data must be a pointer and buf must have a length of exactly Size(data).
// Blank members are left untouched.
func Unmarshal(buf []byte, order binary.ByteOrder, data any) {
	value := reflect.ValueOf(data)
	if value.Kind() != reflect.Pointer {
		panic("invalid type: " + value.Type().String())
	}
	value = value.Elem()
	check(value.Type())
	switch size := value.Type().Size(); {
	case uintptr(len(buf)) > size:
		panic(fmt.Sprintf("buffer too long by %d bytes", uintptr(len(buf))-size))
	case uintptr(len(buf)) < size:
		panic(fmt.Sprintf("buffer too short by %d bytes", size-uintptr(len(buf))))
	}
	unmarshal(buf, order, value)
}

func unmarshal(buf []byte, order binary.ByteOrder, data reflect.Value) {
	switch data.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		size := data.Type().Size()
		shift := 64 - 8*size
		data.SetInt(int64(getUint(buf, order, size)<<shift) >> shift)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		data.SetUint(getUint(buf, order, data.Type().Size()))

	case reflect.Array:
		size := data.Type().Elem().Size()
		for i, l := 0, data.Len(); i < l; i++ {
			unmarshal(buf[uintptr(i)*size:], order, data.Index(i))
		}

	case reflect.Struct:
		t := data.Type()
		for i, l := 0, data.NumField(); i < l; i++ {
			if field := data.Field(i); field.CanSet() {
				unmarshal(buf[t.Field(i).Offset:], order, field)
			}
		}

	default:
		panic("invalid type: " + data.Type().String())
	}
}

func putUint(buf []byte, order binary.ByteOrder, size uintptr, v uint64) {
	switch size {
	case 1:
		buf[0] = byte(v)
	case 2:
		order.PutUint16(buf, uint16(v))
	case 4:
		order.PutUint32(buf, uint32(v))
	case 8:
		order.PutUint64(buf, v)
	default:
		panic(fmt.Sprintf("invalid integer size %d", size))
	}
}

func getUint(buf []byte, order binary.ByteOrder, size uintptr) uint64 {
	switch size {
	case 1:
		return uint64(buf[0])
	case 2:
		return uint64(order.Uint16(buf))
	case 4:
		return uint64(order.Uint32(buf))
	case 8:
		return order.Uint64(buf)
	default:
		panic(fmt.Sprintf("invalid integer size %d", size))
	}
}

// Read reads Size(data) bytes from r and unpacks them into data.
func Read(r io.Reader, order binary.ByteOrder, data any) error {
	buf := make([]byte, Size(data))
	if _, err := io.ReadFull(r, buf); err != nil {
		return err
	}
	Unmarshal(buf, order, data)
	return nil
}

// Write writes the in-memory representation of data to w.
func Write(w io.Writer, order binary.ByteOrder, data any) error {
	_, err := w.Write(Marshal(nil, order, data))
	return err
}
