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

// Rlimit is struct rlimit in <sys/resource.h>.
type Rlimit struct {
	Cur RlimT
	Max RlimT
}

// Rlimit64 is the large-file name of Rlimit.
type Rlimit64 = Rlimit

// RLIM_INFINITY means no limit.
const RLIM_INFINITY = ^RlimT(0)

// Aliases of RLIM_INFINITY.
const (
	RLIM_SAVED_CUR = RLIM_INFINITY
	RLIM_SAVED_MAX = RLIM_INFINITY
)

// Resources numbered the same on every architecture.
const (
	RLIMIT_CPU        = 0
	RLIMIT_FSIZE      = 1
	RLIMIT_DATA       = 2
	RLIMIT_STACK      = 3
	RLIMIT_CORE       = 4
	RLIMIT_LOCKS      = 10
	RLIMIT_SIGPENDING = 11
	RLIMIT_MSGQUEUE   = 12
	RLIMIT_NICE       = 13
	RLIMIT_RTPRIO     = 14
	RLIMIT_RTTIME     = 15
	RLIMIT_NLIMITS    = 16
)

// RLIM_NLIMITS is the historical name of RLIMIT_NLIMITS.
//
// Deprecated: use RLIMIT_NLIMITS.
const RLIM_NLIMITS = RLIMIT_NLIMITS

// Targets of getpriority and setpriority.
const (
	PRIO_PROCESS = 0
	PRIO_PGRP    = 1
	PRIO_USER    = 2
)
