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

// Typedefs from musl's bits/alltypes.h and the headers that use them.
type (
	// PthreadT is pthread_t, an opaque pointer.
	PthreadT = uintptr

	ClockT = CLong

	// TimeT is time_t. musl widened it to 64 bits on every architecture
	// in release 1.2.0.
	TimeT = int64

	// LegacyTimeT is the time_t of musl releases before 1.2.0.
	//
	// Deprecated: musl 1.2.0 and later use the 64-bit TimeT. On 32-bit
	// architectures this type does not match any record declared here.
	LegacyTimeT = CLong

	// SusecondsT is suseconds_t, widened together with TimeT.
	SusecondsT = int64

	InoT    = uint64
	OffT    = int64
	BlkcntT = int64

	ShmattT  = CUlong
	MsgqnumT = CUlong
	MsglenT  = CUlong

	FsblkcntT = CUlonglong
	FsfilcntT = CUlonglong
	RlimT     = CUlonglong

	// Ioctl is the type of ioctl request numbers.
	Ioctl = CInt

	PidT     = CInt
	UidT     = CUint
	GidT     = CUint
	IdT      = CUint
	ModeT    = CUint
	ClockidT = CInt
	SocklenT = CUint

	SaFamilyT = CUshort

	TcflagT = CUint
	CcT     = CUchar
	SpeedT  = CUint

	// SighandlerT is a signal handler function pointer, or one of SIG_DFL,
	// SIG_IGN and SIG_ERR.
	SighandlerT = uintptr

	Elf32Word  = uint32
	Elf64Word  = uint32
	Elf64Xword = uint64
)

// Aliases musl provides for the large-file interfaces. Every musl type is
// already 64-bit, so these name the same types.
type (
	Off64T      = OffT
	Fsblkcnt64T = FsblkcntT
	Fsfilcnt64T = FsfilcntT
	Ino64T      = InoT
	Blkcnt64T   = BlkcntT
	Rlim64T     = RlimT
)
