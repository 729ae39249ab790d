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

// Signal is a signal number.
type Signal int

// IsValid returns true if s is a valid signal number. Signal 0 is not
// considered valid.
func (s Signal) IsValid() bool {
	return s > 0 && s < NSIG
}

// SIGUNUSED is the historical name of SIGSYS.
//
// Deprecated: use SIGSYS.
const SIGUNUSED = SIGSYS

// Special signal handler values.
const (
	SIG_DFL SighandlerT = 0
	SIG_IGN SighandlerT = 1
	SIG_ERR             = ^SighandlerT(0)
)

// Flags for Sigaction.Flags.
const (
	SA_NOCLDSTOP = 0x00000001
	SA_RESTART   = 0x10000000
	SA_NODEFER   = 0x40000000
	SA_RESETHAND = 0x80000000
)

// Notification methods for Sigevent.Notify.
const (
	SIGEV_SIGNAL    = 0
	SIGEV_NONE      = 1
	SIGEV_THREAD    = 2
	SIGEV_THREAD_ID = 4
)

// si_code values for SIGCHLD.
const (
	CLD_EXITED    = 1
	CLD_KILLED    = 2
	CLD_DUMPED    = 3
	CLD_TRAPPED   = 4
	CLD_STOPPED   = 5
	CLD_CONTINUED = 6
)

// si_code values for SIGSEGV.
const (
	SEGV_MAPERR = 1
	SEGV_ACCERR = 2
)

// Sigset is sigset_t. musl reserves 1024 bits regardless of the number of
// signals the kernel supports.
type Sigset struct {
	Val [128 / unsafe.Sizeof(CUlong(0))]CUlong
}

// Sigval is union sigval. The pointer member sival_ptr determines its size
// and alignment; see Sigval.Int for the integer member.
type Sigval struct {
	Ptr uintptr
}

// Sigevent is struct sigevent in <signal.h>.
type Sigevent struct {
	Value  Sigval
	Signo  CInt
	Notify CInt

	// Fields is the union of sigev_notify_thread_id and the
	// sigev_notify_function, sigev_notify_attributes pair. Use the accessor
	// methods to read it.
	Fields [64 - 2*unsafe.Sizeof(CInt(0)) - unsafe.Sizeof(Sigval{})]byte
}

// Sigaction is struct sigaction in <signal.h>. musl uses the same record on
// every architecture and converts it to the kernel's layout internally.
type Sigaction struct {
	// Handler is the union of sa_handler and sa_sigaction.
	Handler  SighandlerT
	Mask     Sigset
	Flags    CInt
	Restorer uintptr
}
