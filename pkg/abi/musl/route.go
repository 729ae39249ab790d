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

// Rtentry is struct rtentry in <net/route.h>, the argument of the
// SIOCADDRT and SIOCDELRT ioctls.
type Rtentry struct {
	Pad1    CUlong
	Dst     Sockaddr
	Gateway Sockaddr
	Genmask Sockaddr
	Flags   CUshort
	Pad2    CShort
	Pad3    CUlong
	Tos     CUchar
	Class   CUchar
	Pad4    [(unsafe.Sizeof(uintptr(0)) - 2) / 2]CShort
	Metric  CShort
	Dev     uintptr
	Mtu     CUlong
	Window  CUlong
	Irtt    CUshort
}

// Route flags for Rtentry.Flags.
const (
	RTF_UP      = 0x0001
	RTF_GATEWAY = 0x0002
	RTF_HOST    = 0x0004
)
