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

//go:build !(mips || mipsle || mips64 || mips64le)

package musl

// Siginfo is siginfo_t in <signal.h>. The record is 128 bytes long and
// aligned like a pointer.
type Siginfo struct {
	_     [0]uintptr
	Signo CInt
	Errno CInt
	Code  CInt

	// Pad holds the signal-specific union. Read it with the accessor
	// methods.
	Pad [29]CInt
}
