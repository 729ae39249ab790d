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

// Limits from <stdio.h>.
const (
	BUFSIZ       = 1024
	TMP_MAX      = 10000
	FOPEN_MAX    = 1000
	FILENAME_MAX = 4096
	L_tmpnam     = 20
)

// PTHREAD_STACK_MIN is the smallest stack pthread_attr_setstacksize accepts.
const PTHREAD_STACK_MIN = 2048

// Sizes of the pthread attribute objects. The C names carry a leading
// double underscore.
const (
	SIZEOF_PTHREAD_CONDATTR_T    = 4
	SIZEOF_PTHREAD_MUTEXATTR_T   = 4
	SIZEOF_PTHREAD_RWLOCKATTR_T  = 8
	SIZEOF_PTHREAD_BARRIERATTR_T = 4
)
