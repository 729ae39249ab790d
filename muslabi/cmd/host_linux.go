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

//go:build linux

package cmd

import (
	"golang.org/x/sys/unix"
	"muslabi.dev/muslabi/pkg/log"
)

// hostInfo reports the kernel as seen by uname(2).
func hostInfo() HostInfo {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		log.Warningf("uname failed: %v", err)
		return HostInfo{}
	}
	return HostInfo{
		OS:      unix.ByteSliceToString(u.Sysname[:]),
		Release: unix.ByteSliceToString(u.Release[:]),
		Machine: unix.ByteSliceToString(u.Machine[:]),
	}
}
