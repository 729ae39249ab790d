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

// Sysinfo is struct sysinfo in <sys/sysinfo.h>.
type Sysinfo struct {
	Uptime    CUlong
	Loads     [3]CUlong
	Totalram  CUlong
	Freeram   CUlong
	Sharedram CUlong
	Bufferram CUlong
	Totalswap CUlong
	Freeswap  CUlong
	Procs     CUshort
	Pad       CUshort
	Totalhigh CUlong
	Freehigh  CUlong
	MemUnit   CUint
	_         [256]CChar
}

// SI_LOAD_SHIFT is the fixed-point shift of Sysinfo.Loads.
const SI_LOAD_SHIFT = 16
