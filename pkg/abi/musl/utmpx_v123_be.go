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

//go:build (musl_v1_2_3 || musl_v1_2_4) && (mips64 || ppc64 || s390x)

package musl

// Utmpx is struct utmpx in <utmpx.h>. ut_session is an int padded to 64
// bits, with the padding before it on big-endian architectures.
type Utmpx struct {
	Type CShort
	_    CShort
	Pid  PidT
	Line [UT_LINESIZE]CChar
	ID   [4]CChar
	User [UT_NAMESIZE]CChar
	Host [UT_HOSTSIZE]CChar
	Exit ExitStatus

	_       CInt
	Session CInt
	Tv      Timeval
	AddrV6  [4]CUint
	_       [20]CChar
}
