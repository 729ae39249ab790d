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

//go:build mips64 || ppc64 || s390x

package musl

// Msghdr is struct msghdr in <sys/socket.h>. The int members that the
// kernel declares as size_t are padded to 64 bits, with the padding before
// the value on big-endian architectures.
type Msghdr struct {
	Name       uintptr
	Namelen    SocklenT
	Iov        uintptr
	_          CInt
	Iovlen     CInt
	Control    uintptr
	_          CInt
	Controllen SocklenT
	Flags      CInt
}

// Cmsghdr is struct cmsghdr in <sys/socket.h>.
type Cmsghdr struct {
	_     CInt
	Len   SocklenT
	Level CInt
	Type  CInt
}
