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

// Actions for tcsetattr(3).
const (
	TCSANOW   = 0
	TCSADRAIN = 1
	TCSAFLUSH = 2
)

// Baud rates.
const (
	B0     = 0000000
	B50    = 0000001
	B75    = 0000002
	B110   = 0000003
	B134   = 0000004
	B150   = 0000005
	B200   = 0000006
	B300   = 0000007
	B600   = 0000010
	B1200  = 0000011
	B1800  = 0000012
	B2400  = 0000013
	B4800  = 0000014
	B9600  = 0000015
	B19200 = 0000016
	B38400 = 0000017

	EXTA = B19200
	EXTB = B38400
)
