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

// TCPInfo is struct tcp_info in <netinet/tcp.h>. Two bytes hold bitfields,
// read them with the accessor methods.
type TCPInfo struct {
	State       uint8
	CaState     uint8
	Retransmits uint8
	Probes      uint8
	Backoff     uint8
	Options     uint8

	// SndRcvWscale holds tcpi_snd_wscale and tcpi_rcv_wscale.
	SndRcvWscale uint8

	// DeliveryFastopenBits holds tcpi_delivery_rate_app_limited and
	// tcpi_fastopen_client_fail.
	DeliveryFastopenBits uint8

	Rto          uint32
	Ato          uint32
	SndMss       uint32
	RcvMss       uint32
	Unacked      uint32
	Sacked       uint32
	Lost         uint32
	Retrans      uint32
	Fackets      uint32
	LastDataSent uint32
	LastAckSent  uint32
	LastDataRecv uint32
	LastAckRecv  uint32
	Pmtu         uint32
	RcvSsthresh  uint32
	Rtt          uint32
	Rttvar       uint32
	SndSsthresh  uint32
	SndCwnd      uint32
	Advmss       uint32
	Reordering   uint32
	RcvRtt       uint32
	RcvSpace     uint32
	TotalRetrans uint32

	PacingRate    uint64
	MaxPacingRate uint64
	BytesAcked    uint64
	BytesReceived uint64
	SegsOut       uint32
	SegsIn        uint32
	NotsentBytes  uint32
	MinRtt        uint32
	DataSegsIn    uint32
	DataSegsOut   uint32
	DeliveryRate  uint64
	BusyTime      uint64
	RwndLimited   uint64
	SndbufLimited uint64
	Delivered     uint32
	DeliveredCe   uint32
	BytesSent     uint64
	BytesRetrans  uint64
	DsackDups     uint32
	ReordSeen     uint32
	RcvOoopack    uint32
	SndWnd        uint32
}

// SndWscale returns tcpi_snd_wscale.
func (t *TCPInfo) SndWscale() uint8 {
	return (t.SndRcvWscale >> tcpSndWscaleShift) & 0xf
}

// RcvWscale returns tcpi_rcv_wscale.
func (t *TCPInfo) RcvWscale() uint8 {
	return (t.SndRcvWscale >> tcpRcvWscaleShift) & 0xf
}

// DeliveryRateAppLimited returns tcpi_delivery_rate_app_limited.
func (t *TCPInfo) DeliveryRateAppLimited() bool {
	return (t.DeliveryFastopenBits>>tcpAppLimitedShift)&1 != 0
}

// FastopenClientFail returns tcpi_fastopen_client_fail.
func (t *TCPInfo) FastopenClientFail() uint8 {
	return (t.DeliveryFastopenBits >> tcpFastopenClientFailShift) & 3
}

// TCP states for TCPInfo.State.
const (
	TCP_ESTABLISHED = 1
	TCP_SYN_SENT    = 2
	TCP_SYN_RECV    = 3
	TCP_FIN_WAIT1   = 4
	TCP_FIN_WAIT2   = 5
	TCP_TIME_WAIT   = 6
	TCP_CLOSE       = 7
	TCP_CLOSE_WAIT  = 8
	TCP_LAST_ACK    = 9
	TCP_LISTEN      = 10
	TCP_CLOSING     = 11
)
