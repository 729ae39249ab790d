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

//go:build 386 || arm || mips || mipsle

package musl

// RegoffT is regoff_t.
type RegoffT = CInt

// PthreadAttr is pthread_attr_t. Its members are private to the library.
type PthreadAttr struct {
	_ [9]CUlong
}

// Sem is sem_t.
type Sem struct {
	Val [16]CInt
}

// Sizes of the pthread objects. The C names carry a leading double
// underscore.
const (
	SIZEOF_PTHREAD_MUTEX_T   = 24
	SIZEOF_PTHREAD_RWLOCK_T  = 32
	SIZEOF_PTHREAD_BARRIER_T = 20
)
