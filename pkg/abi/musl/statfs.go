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

// FsidT is fsid_t.
type FsidT struct {
	Val [2]CInt
}

// Large-file names of the filesystem statistics records.
type (
	Statvfs64 = Statvfs
	Statfs64  = Statfs
)

// Flags for Statvfs.Flag.
const (
	ST_RDONLY      = 1
	ST_NOSUID      = 2
	ST_NODEV       = 4
	ST_NOEXEC      = 8
	ST_SYNCHRONOUS = 16
	ST_MANDLOCK    = 64
	ST_NOATIME     = 1024
	ST_NODIRATIME  = 2048
	ST_RELATIME    = 4096
)
