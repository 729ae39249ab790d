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

//go:build mips || mips64 || ppc64 || s390x

package musl

// BigEndian reports whether the architecture stores the most significant
// byte first.
const BigEndian = true

// Bit positions of the tcp_info bitfields. Big-endian compilers allocate
// bitfields from the most significant bit.
const (
	tcpSndWscaleShift          = 4
	tcpRcvWscaleShift          = 0
	tcpAppLimitedShift         = 7
	tcpFastopenClientFailShift = 5
)
