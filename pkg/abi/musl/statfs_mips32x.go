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

//go:build mips || mipsle

package musl

// Statfs is struct statfs in <sys/statfs.h>. mips orders the members
// differently from every other architecture.
type Statfs struct {
	Type    CUlong
	Bsize   CUlong
	Frsize  CUlong
	_       [4]byte
	Blocks  FsblkcntT
	Bfree   FsblkcntT
	Files   FsfilcntT
	Ffree   FsfilcntT
	Bavail  FsblkcntT
	Fsid    FsidT
	Namelen CUlong
	Flags   CUlong
	Spare   [5]CUlong
	_       [4]byte
}
