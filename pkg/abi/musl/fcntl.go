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

// Access modes and flags for open(2) shared by every architecture.
const (
	O_RDONLY  = 00
	O_WRONLY  = 01
	O_RDWR    = 02
	O_TRUNC   = 01000
	O_NOATIME = 01000000
	O_CLOEXEC = 02000000
	O_PATH    = 010000000
	O_TMPFILE = 020000000 | O_DIRECTORY
	O_EXEC    = O_PATH
	O_SEARCH  = O_PATH
	O_ACCMODE = 03 | O_SEARCH
	O_NDELAY  = O_NONBLOCK
	O_RSYNC   = O_SYNC
	O_FSYNC   = O_SYNC
)

// Commands for fcntl(2).
const (
	F_DUPFD         = 0
	F_GETFD         = 1
	F_SETFD         = 2
	F_GETFL         = 3
	F_SETFL         = 4
	F_OFD_GETLK     = 36
	F_OFD_SETLK     = 37
	F_OFD_SETLKW    = 38
	F_DUPFD_CLOEXEC = 1030
)

// Flags for F_GETFD and F_SETFD.
const (
	FD_CLOEXEC = 1
)

// Lock types for Flock.Type.
const (
	F_RDLCK = 0
	F_WRLCK = 1
	F_UNLCK = 2
)

// Modes for access(2), euidaccess(3) and eaccess(3).
const (
	F_OK = 0
	X_OK = 1
	W_OK = 2
	R_OK = 4
)

// Flock64 is struct flock64. musl's large-file names alias the base record.
type Flock64 = Flock
