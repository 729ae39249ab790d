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

// Iovec is struct iovec in <sys/uio.h>.
type Iovec struct {
	Base uintptr
	Len  SizeT
}

// Flags for preadv2(2) and pwritev2(2).
const (
	RWF_HIPRI  = 0x00000001
	RWF_DSYNC  = 0x00000002
	RWF_SYNC   = 0x00000004
	RWF_NOWAIT = 0x00000008
	RWF_APPEND = 0x00000010
)
