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
	"runtime"
	"testing"
	"unsafe"
)

func put[T any](base unsafe.Pointer, off uintptr, v T) {
	*(*T)(unsafe.Add(base, off)) = v
}

func TestSiginfoSigfault(t *testing.T) {
	var si Siginfo
	si.Signo = CInt(SIGSEGV)
	si.Code = SEGV_MAPERR
	put(unsafe.Pointer(&si), bits(16, 12), uintptr(0xdead0000))

	if got, want := si.Addr(), uintptr(0xdead0000); got != want {
		t.Errorf("Addr() = %#x, want %#x", got, want)
	}
}

func TestSiginfoValue(t *testing.T) {
	var si Siginfo
	put(unsafe.Pointer(&si), bits(24, 20), Sigval{Ptr: 0x1234})

	if got, want := si.Value(), (Sigval{Ptr: 0x1234}); got != want {
		t.Errorf("Value() = %+v, want %+v", got, want)
	}
}

func TestSiginfoSigchld(t *testing.T) {
	var si Siginfo
	base := unsafe.Pointer(&si)
	si.Signo = CInt(SIGCHLD)
	si.Code = CLD_EXITED
	put(base, bits(16, 12), PidT(42))
	put(base, bits(20, 16), UidT(1000))
	put(base, bits(24, 20), CInt(3))
	put(base, bits(32, 24), ClockT(7))
	put(base, bits(40, 28), ClockT(9))

	if got := si.PID(); got != 42 {
		t.Errorf("PID() = %d, want 42", got)
	}
	if got := si.UID(); got != 1000 {
		t.Errorf("UID() = %d, want 1000", got)
	}
	if got := si.Status(); got != 3 {
		t.Errorf("Status() = %d, want 3", got)
	}
	if got := si.Utime(); got != 7 {
		t.Errorf("Utime() = %d, want 7", got)
	}
	if got := si.Stime(); got != 9 {
		t.Errorf("Stime() = %d, want 9", got)
	}
}

func TestSiginfoHeader(t *testing.T) {
	// mips swaps si_code and si_errno.
	codeOff, errnoOff := uintptr(8), uintptr(4)
	switch runtime.GOARCH {
	case "mips", "mipsle", "mips64", "mips64le":
		codeOff, errnoOff = 4, 8
	}
	if got := unsafe.Offsetof(Siginfo{}.Code); got != codeOff {
		t.Errorf("offsetof(Siginfo.Code) = %d, want %d", got, codeOff)
	}
	if got := unsafe.Offsetof(Siginfo{}.Errno); got != errnoOff {
		t.Errorf("offsetof(Siginfo.Errno) = %d, want %d", got, errnoOff)
	}
}

func TestSigvalInt(t *testing.T) {
	var v Sigval
	put(unsafe.Pointer(&v), 0, CInt(-5))
	if got := v.Int(); got != -5 {
		t.Errorf("Int() = %d, want -5", got)
	}

	// sival_int shares its bytes with the start of sival_ptr.
	v = Sigval{Ptr: 1}
	want := CInt(1)
	if BigEndian && is64 {
		want = 0
	}
	if got := v.Int(); got != want {
		t.Errorf("Sigval{Ptr: 1}.Int() = %d, want %d", got, want)
	}
}

func TestSigeventNotify(t *testing.T) {
	var e Sigevent
	e.Notify = SIGEV_THREAD_ID
	put(unsafe.Pointer(&e.Fields[0]), 0, PidT(77))
	if got := e.NotifyThreadID(); got != 77 {
		t.Errorf("NotifyThreadID() = %d, want 77", got)
	}

	e = Sigevent{Notify: SIGEV_THREAD}
	put(unsafe.Pointer(&e.Fields[0]), 0, uintptr(0x1000))
	put(unsafe.Pointer(&e.Fields[0]), unsafe.Sizeof(uintptr(0)), uintptr(0x2000))
	if got := e.NotifyFunction(); got != 0x1000 {
		t.Errorf("NotifyFunction() = %#x, want 0x1000", got)
	}
	if got := e.NotifyAttributes(); got != 0x2000 {
		t.Errorf("NotifyAttributes() = %#x, want 0x2000", got)
	}
}

type tcpBitsCase struct {
	name         string
	wscale       uint8
	bits         uint8
	snd, rcv     uint8
	appLimited   bool
	fastopenFail uint8
}

func TestTCPInfoBitfields(t *testing.T) {
	// Little-endian compilers allocate bitfields from the least significant
	// bit, big-endian ones from the most significant.
	tests := []tcpBitsCase{
		{name: "snd", wscale: 0x07, snd: 7},
		{name: "rcv", wscale: 0xe0, rcv: 14},
		{name: "app limited", bits: 0x01, appLimited: true},
		{name: "fastopen", bits: 0x06, fastopenFail: 3},
		{name: "all", wscale: 0xff, bits: 0x07, snd: 15, rcv: 15, appLimited: true, fastopenFail: 3},
	}
	if BigEndian {
		tests = []tcpBitsCase{
			{name: "snd", wscale: 0x70, snd: 7},
			{name: "rcv", wscale: 0x0e, rcv: 14},
			{name: "app limited", bits: 0x80, appLimited: true},
			{name: "fastopen", bits: 0x60, fastopenFail: 3},
			{name: "all", wscale: 0xff, bits: 0xe0, snd: 15, rcv: 15, appLimited: true, fastopenFail: 3},
		}
	}
	tests = append(tests, tcpBitsCase{name: "zero"})
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ti := TCPInfo{SndRcvWscale: test.wscale, DeliveryFastopenBits: test.bits}
			if got := ti.SndWscale(); got != test.snd {
				t.Errorf("SndWscale() = %d, want %d", got, test.snd)
			}
			if got := ti.RcvWscale(); got != test.rcv {
				t.Errorf("RcvWscale() = %d, want %d", got, test.rcv)
			}
			if got := ti.DeliveryRateAppLimited(); got != test.appLimited {
				t.Errorf("DeliveryRateAppLimited() = %t, want %t", got, test.appLimited)
			}
			if got := ti.FastopenClientFail(); got != test.fastopenFail {
				t.Errorf("FastopenClientFail() = %d, want %d", got, test.fastopenFail)
			}
		})
	}
}
