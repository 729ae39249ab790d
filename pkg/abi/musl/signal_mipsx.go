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

//go:build mips || mipsle || mips64 || mips64le

package musl

// Signals. mips follows the numbering of the IRIX ABI.
const (
	SIGHUP    = Signal(1)
	SIGINT    = Signal(2)
	SIGQUIT   = Signal(3)
	SIGILL    = Signal(4)
	SIGTRAP   = Signal(5)
	SIGABRT   = Signal(6)
	SIGIOT    = SIGABRT
	SIGEMT    = Signal(7)
	SIGFPE    = Signal(8)
	SIGKILL   = Signal(9)
	SIGBUS    = Signal(10)
	SIGSEGV   = Signal(11)
	SIGSYS    = Signal(12)
	SIGPIPE   = Signal(13)
	SIGALRM   = Signal(14)
	SIGTERM   = Signal(15)
	SIGUSR1   = Signal(16)
	SIGUSR2   = Signal(17)
	SIGCHLD   = Signal(18)
	SIGPWR    = Signal(19)
	SIGWINCH  = Signal(20)
	SIGURG    = Signal(21)
	SIGIO     = Signal(22)
	SIGPOLL   = SIGIO
	SIGSTOP   = Signal(23)
	SIGTSTP   = Signal(24)
	SIGCONT   = Signal(25)
	SIGTTIN   = Signal(26)
	SIGTTOU   = Signal(27)
	SIGVTALRM = Signal(28)
	SIGPROF   = Signal(29)
	SIGXCPU   = Signal(30)
	SIGXFSZ   = Signal(31)
)

// NSIG is one more than the highest signal number.
const NSIG = 128

// Signal mask operations.
const (
	SIG_BLOCK   = 1
	SIG_UNBLOCK = 2
	SIG_SETMASK = 3
)

// Flags for Sigaction.Flags that differ on mips.
const (
	SA_NOCLDWAIT = 0x00010000
	SA_SIGINFO   = 0x00000008
	SA_ONSTACK   = 0x08000000
)

var archSignalConsts = []Constant{
	k("signal", "SIGEMT", SIGEMT),
}
