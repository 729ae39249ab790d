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

// C scalar types. CChar is declared per architecture since its signedness
// varies.
//
// long and unsigned long have the width of a pointer on every Linux ABI, as
// do Go's int and uint.
type (
	CSchar     = int8
	CUchar     = uint8
	CShort     = int16
	CUshort    = uint16
	CInt       = int32
	CUint      = uint32
	CLong      = int
	CUlong     = uint
	CLonglong  = int64
	CUlonglong = uint64
)

// SizeT is size_t.
type SizeT = uint

// SsizeT is ssize_t.
type SsizeT = int
