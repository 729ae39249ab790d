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

// PosixSpawnFileActions is posix_spawn_file_actions_t in <spawn.h>. Its
// members are private to the library.
type PosixSpawnFileActions struct {
	_ [2]CInt
	_ uintptr
	_ [16]CInt
}

// Flags for posix_spawnattr_setflags.
const (
	POSIX_SPAWN_RESETIDS      = 0x01
	POSIX_SPAWN_SETPGROUP     = 0x02
	POSIX_SPAWN_SETSIGDEF     = 0x04
	POSIX_SPAWN_SETSIGMASK    = 0x08
	POSIX_SPAWN_SETSCHEDPARAM = 0x10
	POSIX_SPAWN_SETSCHEDULER  = 0x20
	POSIX_SPAWN_USEVFORK      = 0x40
	POSIX_SPAWN_SETSID        = 0x80
)
