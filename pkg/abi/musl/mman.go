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

// Protections for mmap(2).
const (
	PROT_NONE  = 0
	PROT_READ  = 1
	PROT_WRITE = 2
	PROT_EXEC  = 4
)

// Flags for mmap(2) shared by every architecture.
const (
	MAP_SHARED    = 0x01
	MAP_PRIVATE   = 0x02
	MAP_FIXED     = 0x10
	MAP_ANONYMOUS = MAP_ANON
)

// Huge page size encodings for mmap(2) with MAP_HUGETLB, and for
// memfd_create(2) with MFD_HUGETLB. The encoding is log2 of the page size,
// shifted by MAP_HUGE_SHIFT.
const (
	MAP_HUGE_SHIFT = 26
	MAP_HUGE_MASK  = 0x3f

	MAP_HUGE_64KB  = 16 << MAP_HUGE_SHIFT
	MAP_HUGE_512KB = 19 << MAP_HUGE_SHIFT
	MAP_HUGE_1MB   = 20 << MAP_HUGE_SHIFT
	MAP_HUGE_2MB   = 21 << MAP_HUGE_SHIFT
	MAP_HUGE_8MB   = 23 << MAP_HUGE_SHIFT
	MAP_HUGE_16MB  = 24 << MAP_HUGE_SHIFT
	MAP_HUGE_32MB  = 25 << MAP_HUGE_SHIFT
	MAP_HUGE_256MB = 28 << MAP_HUGE_SHIFT
	MAP_HUGE_512MB = 29 << MAP_HUGE_SHIFT
	MAP_HUGE_1GB   = 30 << MAP_HUGE_SHIFT
	MAP_HUGE_2GB   = 31 << MAP_HUGE_SHIFT
	MAP_HUGE_16GB  = 34 << MAP_HUGE_SHIFT
)

// Advice for posix_madvise(3).
const (
	POSIX_MADV_NORMAL     = 0
	POSIX_MADV_RANDOM     = 1
	POSIX_MADV_SEQUENTIAL = 2
	POSIX_MADV_WILLNEED   = 3
	POSIX_MADV_DONTNEED   = 4
)

// Flags for memfd_create(2).
const (
	MFD_CLOEXEC       = 0x0001
	MFD_ALLOW_SEALING = 0x0002
	MFD_HUGETLB       = 0x0004
)

// Flags for mlock2(2).
const (
	MLOCK_ONFAULT = 0x01
)

// Mount flags that remount may change.
const (
	MS_RMT_MASK = 0x02800051
)
