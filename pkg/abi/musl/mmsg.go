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

//go:build amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || wasm || 386 || arm || mips || mipsle

package musl

import (
	"reflect"
)

// Mmsghdr is struct mmsghdr, an element of the vector sendmmsg and
// recvmmsg operate on.
type Mmsghdr struct {
	Hdr Msghdr
	Len CUint
}

var (
	tMmsghdrPtr  = reflect.TypeOf((*Mmsghdr)(nil))
	tTimespecPtr = reflect.TypeOf((*Timespec)(nil))
)

var familyRecords = []Record{
	rec[PthreadAttr]("pthread_attr_t"),
	rec[Sem]("sem_t"),
	rec[Msghdr]("struct msghdr"),
	rec[Cmsghdr]("struct cmsghdr"),
	rec[Mmsghdr]("struct mmsghdr"),
}

var familyFuncs = []Func{
	{
		Name:   "sendmmsg",
		Symbol: "sendmmsg",
		Params: []Param{
			p("sockfd", "int", tInt),
			p("msgvec", "struct mmsghdr *", tMmsghdrPtr),
			p("vlen", "unsigned", tUint),
			p("flags", "unsigned", tUint),
		},
		Result: ret("int", tInt),
	},
	{
		Name:   "recvmmsg",
		Symbol: symRecvmmsg,
		Params: []Param{
			p("sockfd", "int", tInt),
			p("msgvec", "struct mmsghdr *", tMmsghdrPtr),
			p("vlen", "unsigned", tUint),
			p("flags", "unsigned", tUint),
			p("timeout", "struct timespec *", tTimespecPtr),
		},
		Result: ret("int", tInt),
	},
}

var familyConsts = []Constant{
	k("limits", "__SIZEOF_PTHREAD_MUTEX_T", SIZEOF_PTHREAD_MUTEX_T),
	k("limits", "__SIZEOF_PTHREAD_RWLOCK_T", SIZEOF_PTHREAD_RWLOCK_T),
	k("limits", "__SIZEOF_PTHREAD_BARRIER_T", SIZEOF_PTHREAD_BARRIER_T),
}
