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

import (
	"unsafe"
)

// The views below reinterpret the bytes following the three leading words of
// a Siginfo. The union they project from starts with a pointer member, so it
// begins at the first pointer-aligned offset after those words.

type siginfoSigfault struct {
	_    [3]CInt
	addr uintptr
}

type siginfoValue struct {
	_     [3]CInt
	_     CInt // si_timerid
	_     CInt // si_overrun
	value Sigval
}

type siginfoSigchld struct {
	_      [3]CInt
	_      [0]uintptr
	pid    PidT
	uid    UidT
	status CInt
	utime  ClockT
	stime  ClockT
}

// Addr returns si_addr, the faulting address.
//
// Preconditions: s describes SIGSEGV, SIGBUS, SIGILL, SIGFPE or SIGTRAP.
func (s *Siginfo) Addr() uintptr {
	return (*siginfoSigfault)(unsafe.Pointer(s)).addr
}

// Value returns si_value.
//
// Preconditions: s describes a signal queued by sigqueue(3), a POSIX timer
// expiry or a message queue notification.
func (s *Siginfo) Value() Sigval {
	return (*siginfoValue)(unsafe.Pointer(s)).value
}

// PID returns si_pid.
//
// Preconditions: s describes SIGCHLD.
func (s *Siginfo) PID() PidT {
	return (*siginfoSigchld)(unsafe.Pointer(s)).pid
}

// UID returns si_uid.
//
// Preconditions: s describes SIGCHLD.
func (s *Siginfo) UID() UidT {
	return (*siginfoSigchld)(unsafe.Pointer(s)).uid
}

// Status returns si_status, the exit status or signal of the child.
//
// Preconditions: s describes SIGCHLD.
func (s *Siginfo) Status() CInt {
	return (*siginfoSigchld)(unsafe.Pointer(s)).status
}

// Utime returns si_utime, in clock ticks.
//
// Preconditions: s describes SIGCHLD.
func (s *Siginfo) Utime() ClockT {
	return (*siginfoSigchld)(unsafe.Pointer(s)).utime
}

// Stime returns si_stime, in clock ticks.
//
// Preconditions: s describes SIGCHLD.
func (s *Siginfo) Stime() ClockT {
	return (*siginfoSigchld)(unsafe.Pointer(s)).stime
}
