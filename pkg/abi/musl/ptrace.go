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

// ptrace requests.
const (
	PTRACE_TRACEME    = 0
	PTRACE_PEEKTEXT   = 1
	PTRACE_PEEKDATA   = 2
	PTRACE_PEEKUSER   = 3
	PTRACE_POKETEXT   = 4
	PTRACE_POKEDATA   = 5
	PTRACE_POKEUSER   = 6
	PTRACE_CONT       = 7
	PTRACE_KILL       = 8
	PTRACE_SINGLESTEP = 9
	PTRACE_GETREGS    = 12
	PTRACE_SETREGS    = 13
	PTRACE_GETFPREGS  = 14
	PTRACE_SETFPREGS  = 15
	PTRACE_ATTACH     = 16
	PTRACE_DETACH     = 17
	PTRACE_GETFPXREGS = 18
	PTRACE_SETFPXREGS = 19
	PTRACE_SYSCALL    = 24

	PTRACE_SETOPTIONS  = 0x4200
	PTRACE_GETEVENTMSG = 0x4201
	PTRACE_GETSIGINFO  = 0x4202
	PTRACE_SETSIGINFO  = 0x4203
	PTRACE_GETREGSET   = 0x4204
	PTRACE_SETREGSET   = 0x4205
	PTRACE_SEIZE       = 0x4206
	PTRACE_INTERRUPT   = 0x4207
	PTRACE_LISTEN      = 0x4208
	PTRACE_PEEKSIGINFO = 0x4209
	PTRACE_GETSIGMASK  = 0x420a
	PTRACE_SETSIGMASK  = 0x420b
)

// Options for PTRACE_SETOPTIONS.
const (
	PTRACE_O_TRACESYSGOOD = 0x00000001
	PTRACE_O_TRACEFORK    = 0x00000002
	PTRACE_O_TRACEVFORK   = 0x00000004
	PTRACE_O_TRACECLONE   = 0x00000008
	PTRACE_O_TRACEEXEC    = 0x00000010
	PTRACE_O_EXITKILL     = 0x00100000
)
