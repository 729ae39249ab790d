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

// Package musl contains the types, constants and routine signatures needed to
// interface with the musl C library on Linux.
//
// Every declaration mirrors the layout or value musl's public headers produce
// for the architecture being built. Architecture differences are resolved by
// build constraints: exactly one declaration of each name is compiled. The
// 64-bit (b64) and 32-bit (b32) families add further declarations; any other
// architecture gets an empty family extension.
//
// The library revision is selected with build tags. Without tags the
// declarations follow musl 1.2.2. The musl_v1_2_3 tag selects the 1.2.3
// utmpx layout, and musl_v1_2_4 additionally raises CPU_SETSIZE to 1024.
//
// This package performs no I/O and holds no mutable state.
package musl
