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

// confstr names. The C names carry a leading underscore.
const (
	CS_PATH                           = 0
	CS_POSIX_V6_WIDTH_RESTRICTED_ENVS = 1
	CS_GNU_LIBC_VERSION               = 2
	CS_GNU_LIBPTHREAD_VERSION         = 3
	CS_V6_ENV                         = 1148
	CS_V7_ENV                         = 1149
)
