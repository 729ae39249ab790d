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

//go:build 386 || arm || mipsle

package musl

// Timespec is struct timespec in <time.h>.
//
// tv_nsec keeps the width of long, and an unnamed bitfield fills the record
// out to the 64-bit tv_sec. On little-endian architectures the filler
// follows tv_nsec.
type Timespec struct {
	Sec  TimeT
	Nsec CLong
	_    int32
}
