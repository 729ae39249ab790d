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

// Error numbers that mips renumbers.
const (
	ENOMSG          = 35
	EIDRM           = 36
	EDEADLK         = 45
	ENOLCK          = 46
	EDEADLOCK       = 56
	EMULTIHOP       = 74
	EBADMSG         = 77
	ENAMETOOLONG    = 78
	EOVERFLOW       = 79
	EILSEQ          = 88
	ENOSYS          = 89
	ELOOP           = 90
	ENOTEMPTY       = 93
	ENOTSOCK        = 95
	EOPNOTSUPP      = 122
	EAFNOSUPPORT    = 124
	EADDRINUSE      = 125
	EADDRNOTAVAIL   = 126
	ENETUNREACH     = 128
	ECONNRESET      = 131
	ENOBUFS         = 132
	EISCONN         = 133
	ENOTCONN        = 134
	ETIMEDOUT       = 145
	ECONNREFUSED    = 146
	EHOSTUNREACH    = 148
	EALREADY        = 149
	EINPROGRESS     = 150
	ESTALE          = 151
	ECANCELED       = 158
	EOWNERDEAD      = 165
	ENOTRECOVERABLE = 166
	EHWPOISON       = 168
	EDQUOT          = 1133
)

var edeadlockConst = k("errno", "EDEADLOCK", EDEADLOCK)
