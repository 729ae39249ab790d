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

//go:build linux && (amd64 || arm64)

package dynlink

import (
	"testing"
	"unsafe"

	"muslabi.dev/muslabi/pkg/abi/musl"
)

// openHostLibc opens musl if installed and the host C library otherwise.
// Both export the routines exercised below.
func openHostLibc(t *testing.T) *Library {
	t.Helper()
	if lib, err := OpenDefault(); err == nil {
		return lib
	}
	lib, err := Open("libc.so.6")
	if err != nil {
		t.Skipf("no C library available: %v", err)
	}
	return lib
}

func TestBindGetrandom(t *testing.T) {
	lib := openHostLibc(t)
	defer lib.Close()

	var getrandom func(unsafe.Pointer, musl.SizeT, musl.CUint) musl.SsizeT
	if err := Bind(lib, &getrandom, "getrandom"); err != nil {
		t.Skipf("Bind(getrandom): %v", err)
	}
	buf := make([]byte, 16)
	if n := getrandom(unsafe.Pointer(&buf[0]), musl.SizeT(len(buf)), musl.GRND_NONBLOCK); n != musl.SsizeT(len(buf)) {
		t.Errorf("getrandom() = %d, want %d", n, len(buf))
	}
}

func TestLookupMissing(t *testing.T) {
	lib := openHostLibc(t)
	defer lib.Close()

	if _, err := lib.Lookup("muslabi_no_such_symbol"); err == nil {
		t.Errorf("Lookup of missing symbol succeeded")
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open("/nonexistent/libc.so"); err == nil {
		t.Errorf("Open of missing library succeeded")
	}
}
