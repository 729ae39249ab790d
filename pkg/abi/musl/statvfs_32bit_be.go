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

//go:build mips

package musl

// Statvfs is struct statvfs in <sys/statvfs.h>.
//
// f_fsid is an unsigned long padded to 64 bits; on big-endian architectures
// the padding precedes it.
type Statvfs struct {
	Bsize   CUlong
	Frsize  CUlong
	Blocks  FsblkcntT
	Bfree   FsblkcntT
	Bavail  FsblkcntT
	Files   FsfilcntT
	Ffree   FsfilcntT
	Favail  FsfilcntT
	_       CInt
	Fsid    CUlong
	Flag    CUlong
	Namemax CUlong
	_       [6]CInt
}
