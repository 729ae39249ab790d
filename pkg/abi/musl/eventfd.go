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

// Flags for eventfd(2).
const (
	EFD_SEMAPHORE = 1
	EFD_CLOEXEC   = 0x80000
	EFD_NONBLOCK  = O_NONBLOCK
)

// Flags for signalfd(2).
const (
	SFD_CLOEXEC  = 0x080000
	SFD_NONBLOCK = O_NONBLOCK
)

// Flags for epoll_create1(2).
const (
	EPOLL_CLOEXEC = 0x80000
)
