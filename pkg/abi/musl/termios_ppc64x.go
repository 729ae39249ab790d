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

//go:build ppc64 || ppc64le

package musl

// NCCS is the number of control characters in Termios.Cc.
const NCCS = 19

// Termios is struct termios in <termios.h>. powerpc places c_line after the
// control characters.
type Termios struct {
	Iflag  TcflagT
	Oflag  TcflagT
	Cflag  TcflagT
	Lflag  TcflagT
	Cc     [NCCS]CcT
	Line   CcT
	Ispeed SpeedT
	Ospeed SpeedT
}
