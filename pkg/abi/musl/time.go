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

// Clock identifiers for use with clock_gettime(3), clock_getres(3) and
// clock_adjtime(2).
const (
	CLOCK_REALTIME           = 0
	CLOCK_MONOTONIC          = 1
	CLOCK_PROCESS_CPUTIME_ID = 2
	CLOCK_THREAD_CPUTIME_ID  = 3
	CLOCK_MONOTONIC_RAW      = 4
	CLOCK_REALTIME_COARSE    = 5
	CLOCK_MONOTONIC_COARSE   = 6
	CLOCK_BOOTTIME           = 7
	CLOCK_REALTIME_ALARM     = 8
	CLOCK_BOOTTIME_ALARM     = 9
	CLOCK_SGI_CYCLE          = 10
	CLOCK_TAI                = 11
)

// Timeval is struct timeval in <sys/time.h>. Both members are 64 bits wide
// on every architecture.
type Timeval struct {
	Sec  TimeT
	Usec SusecondsT
}

// Tm is struct tm in <time.h>.
type Tm struct {
	Sec    CInt
	Min    CInt
	Hour   CInt
	Mday   CInt
	Mon    CInt
	Year   CInt
	Wday   CInt
	Yday   CInt
	Isdst  CInt
	Gmtoff CLong
	Zone   uintptr
}
