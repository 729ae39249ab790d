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

//go:build arm || mips || mipsle

package musl

// Timex is struct timex in <sys/timex.h>.
type Timex struct {
	Modes     CUint
	Offset    CLong
	Freq      CLong
	Maxerror  CLong
	Esterror  CLong
	Status    CInt
	Constant  CLong
	Precision CLong
	Tolerance CLong
	_         [4]byte
	Time      Timeval
	Tick      CLong
	Ppsfreq   CLong
	Jitter    CLong
	Shift     CInt
	Stabil    CLong
	Jitcnt    CLong
	Calcnt    CLong
	Errcnt    CLong
	Stbcnt    CLong
	Tai       CInt
	_         [11]CInt
	_         [4]byte
}
