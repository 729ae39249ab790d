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

//go:build 386 || arm || mips || mipsle

package musl

// Link symbols of routines whose ABI changed when time_t was widened. The
// 32-bit architectures redirect the public names to 64-bit time entry
// points.
const (
	symGettimeofday = "__gettimeofday_time64"
	symAdjtimex     = "__adjtimex_time64"
	symClockAdjtime = "__clock_adjtime64"
	symRecvmmsg     = "__recvmmsg_time64"
)
