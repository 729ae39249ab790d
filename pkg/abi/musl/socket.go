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

// Socket types shared by every architecture.
const (
	SOCK_RAW       = 3
	SOCK_RDM       = 4
	SOCK_SEQPACKET = 5
	SOCK_DCCP      = 6

	// SOCK_PACKET is obsolete.
	//
	// Deprecated: use AF_PACKET sockets.
	SOCK_PACKET = 10

	SOCK_NONBLOCK = O_NONBLOCK
	SOCK_CLOEXEC  = O_CLOEXEC
)

// SOMAXCONN is the default listen(2) backlog limit.
const SOMAXCONN = 128

// Address families.
const (
	AF_UNSPEC  = 0
	AF_UNIX    = 1
	AF_LOCAL   = AF_UNIX
	AF_INET    = 2
	AF_INET6   = 10
	AF_NETLINK = 16
	AF_PACKET  = 17
	AF_IB      = 27
	AF_MPLS    = 28
	AF_NFC     = 39
	AF_VSOCK   = 40
	AF_XDP     = 44
)

// Protocol families.
const (
	PF_UNSPEC  = AF_UNSPEC
	PF_UNIX    = AF_UNIX
	PF_LOCAL   = AF_LOCAL
	PF_INET    = AF_INET
	PF_INET6   = AF_INET6
	PF_NETLINK = AF_NETLINK
	PF_PACKET  = AF_PACKET
	PF_IB      = AF_IB
	PF_MPLS    = AF_MPLS
	PF_NFC     = AF_NFC
	PF_VSOCK   = AF_VSOCK
	PF_XDP     = AF_XDP
)

// Buffer sizes for getnameinfo(3).
const (
	NI_MAXHOST = 255
	NI_MAXSERV = 32
)

// Sockaddr is struct sockaddr in <sys/socket.h>.
type Sockaddr struct {
	Family SaFamilyT
	Data   [14]CChar
}
