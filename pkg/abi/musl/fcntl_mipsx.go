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

//go:build mips || mipsle || mips64 || mips64le

package musl

// Flags for open(2).
const (
	O_APPEND    = 010
	O_DSYNC     = 020
	O_NONBLOCK  = 0200
	O_CREAT     = 0400
	O_EXCL      = 02000
	O_NOCTTY    = 04000
	O_ASYNC     = 010000
	O_SYNC      = 040020
	O_DIRECT    = 0100000
	O_DIRECTORY = 0200000
	O_NOFOLLOW  = 0400000
)
