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

import (
	"reflect"
	"strings"
	"unsafe"
)

// Param is a parameter or result of a C routine.
type Param struct {
	// Name is the parameter name. Results are unnamed.
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`

	// CType is the C spelling of the type.
	CType string `json:"ctype" yaml:"ctype" toml:"ctype"`

	// Type is the Go type a binding passes for this parameter.
	Type reflect.Type `json:"-" yaml:"-" toml:"-"`
}

// Func describes the signature of a routine the library exports.
type Func struct {
	// Name is the C name of the routine.
	Name string `json:"name" yaml:"name" toml:"name"`

	// Symbol is the symbol a binding must resolve. It differs from Name
	// where 32-bit architectures redirect to a 64-bit time entry point.
	Symbol string `json:"symbol" yaml:"symbol" toml:"symbol"`

	// Params are the fixed parameters.
	Params []Param `json:"params" yaml:"params" toml:"params"`

	// Result is the return value. Result.Type is nil for void routines.
	Result Param `json:"result" yaml:"result" toml:"result"`

	// Variadic is true if the routine takes further arguments after
	// Params.
	Variadic bool `json:"variadic,omitempty" yaml:"variadic,omitempty" toml:"variadic,omitempty"`

	// Since is the first musl release that provides the routine, if it is
	// not part of the 1.1 baseline.
	Since string `json:"since,omitempty" yaml:"since,omitempty" toml:"since,omitempty"`

	// Deprecated explains why the routine should not be used.
	Deprecated string `json:"deprecated,omitempty" yaml:"deprecated,omitempty" toml:"deprecated,omitempty"`
}

// GoType returns the function type a Go binding of f must have. Variadic
// routines take their remaining arguments as a trailing ...uintptr.
func (f *Func) GoType() reflect.Type {
	in := make([]reflect.Type, 0, len(f.Params)+1)
	for _, p := range f.Params {
		in = append(in, p.Type)
	}
	if f.Variadic {
		in = append(in, reflect.TypeOf([]uintptr(nil)))
	}
	var out []reflect.Type
	if f.Result.Type != nil {
		out = append(out, f.Result.Type)
	}
	return reflect.FuncOf(in, out, f.Variadic)
}

// CSignature returns the C prototype of f.
func (f *Func) CSignature() string {
	var b strings.Builder
	b.WriteString(declare(f.Result.CType, f.Name))
	b.WriteByte('(')
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(declare(p.CType, p.Name))
	}
	switch {
	case f.Variadic:
		b.WriteString(", ...")
	case len(f.Params) == 0:
		b.WriteString("void")
	}
	b.WriteByte(')')
	return b.String()
}

// declare joins a C type and a name the way C declarations are written.
func declare(ctype, name string) string {
	if name == "" || strings.HasSuffix(ctype, "*") {
		return ctype + name
	}
	return ctype + " " + name
}

// Go types of the C types used in signatures.
var (
	tInt        = reflect.TypeOf(CInt(0))
	tUint       = reflect.TypeOf(CUint(0))
	tLong       = reflect.TypeOf(CLong(0))
	tUlong      = reflect.TypeOf(CUlong(0))
	tUlonglong  = reflect.TypeOf(CUlonglong(0))
	tSize       = reflect.TypeOf(SizeT(0))
	tSsize      = reflect.TypeOf(SsizeT(0))
	tOff        = reflect.TypeOf(OffT(0))
	tPid        = reflect.TypeOf(PidT(0))
	tID         = reflect.TypeOf(IdT(0))
	tClockid    = reflect.TypeOf(ClockidT(0))
	tVoidPtr    = reflect.TypeOf(unsafe.Pointer(nil))
	tCharPtr    = reflect.TypeOf((*CChar)(nil))
	tRlimitPtr  = reflect.TypeOf((*Rlimit)(nil))
	tTimevalPtr = reflect.TypeOf((*Timeval)(nil))
	tIovecPtr   = reflect.TypeOf((*Iovec)(nil))
	tTimexPtr   = reflect.TypeOf((*Timex)(nil))
	tTmPtr      = reflect.TypeOf((*Tm)(nil))
	tUtmpxPtr   = reflect.TypeOf((*Utmpx)(nil))
	tSpawnPtr   = reflect.TypeOf((*PosixSpawnFileActions)(nil))
)

func p(name, ctype string, t reflect.Type) Param {
	return Param{Name: name, CType: ctype, Type: t}
}

func ret(ctype string, t reflect.Type) Param {
	return Param{CType: ctype, Type: t}
}

var void = Param{CType: "void"}

const utmpxDeprecation = "musl provides the utmpx routines as stubs"

var funcs = []Func{
	{
		Name:   "getrlimit",
		Symbol: "getrlimit",
		Params: []Param{p("resource", "int", tInt), p("rlim", "struct rlimit *", tRlimitPtr)},
		Result: ret("int", tInt),
	},
	{
		Name:   "setrlimit",
		Symbol: "setrlimit",
		Params: []Param{p("resource", "int", tInt), p("rlim", "const struct rlimit *", tRlimitPtr)},
		Result: ret("int", tInt),
	},
	{
		Name:   "prlimit",
		Symbol: "prlimit",
		Params: []Param{
			p("pid", "pid_t", tPid),
			p("resource", "int", tInt),
			p("new_limit", "const struct rlimit *", tRlimitPtr),
			p("old_limit", "struct rlimit *", tRlimitPtr),
		},
		Result: ret("int", tInt),
	},
	{
		Name:   "gettimeofday",
		Symbol: symGettimeofday,
		Params: []Param{p("tv", "struct timeval *", tTimevalPtr), p("tz", "void *", tVoidPtr)},
		Result: ret("int", tInt),
	},
	{
		Name:     "ptrace",
		Symbol:   "ptrace",
		Params:   []Param{p("request", "int", tInt)},
		Result:   ret("long", tLong),
		Variadic: true,
	},
	{
		Name:   "getpriority",
		Symbol: "getpriority",
		Params: []Param{p("which", "int", tInt), p("who", "id_t", tID)},
		Result: ret("int", tInt),
	},
	{
		Name:   "setpriority",
		Symbol: "setpriority",
		Params: []Param{p("which", "int", tInt), p("who", "id_t", tID), p("prio", "int", tInt)},
		Result: ret("int", tInt),
	},
	{
		// The mask is unsigned long long, which is the same width as
		// uint64_t but a distinct C type.
		Name:   "fanotify_mark",
		Symbol: "fanotify_mark",
		Params: []Param{
			p("fd", "int", tInt),
			p("flags", "unsigned", tUint),
			p("mask", "unsigned long long", tUlonglong),
			p("dirfd", "int", tInt),
			p("path", "const char *", tCharPtr),
		},
		Result: ret("int", tInt),
	},
	{
		Name:   "preadv2",
		Symbol: "preadv2",
		Params: []Param{
			p("fd", "int", tInt),
			p("iov", "const struct iovec *", tIovecPtr),
			p("iovcnt", "int", tInt),
			p("offset", "off_t", tOff),
			p("flags", "int", tInt),
		},
		Result: ret("ssize_t", tSsize),
	},
	{
		Name:   "pwritev2",
		Symbol: "pwritev2",
		Params: []Param{
			p("fd", "int", tInt),
			p("iov", "const struct iovec *", tIovecPtr),
			p("iovcnt", "int", tInt),
			p("offset", "off_t", tOff),
			p("flags", "int", tInt),
		},
		Result: ret("ssize_t", tSsize),
	},
	{
		Name:   "getauxval",
		Symbol: "getauxval",
		Params: []Param{p("type", "unsigned long", tUlong)},
		Result: ret("unsigned long", tUlong),
	},
	{
		Name:   "explicit_bzero",
		Symbol: "explicit_bzero",
		Params: []Param{p("s", "void *", tVoidPtr), p("len", "size_t", tSize)},
		Result: void,
		Since:  "1.1.20",
	},
	{
		Name:   "reallocarray",
		Symbol: "reallocarray",
		Params: []Param{p("ptr", "void *", tVoidPtr), p("nmemb", "size_t", tSize), p("size", "size_t", tSize)},
		Result: ret("void *", tVoidPtr),
		Since:  "1.2.2",
	},
	{
		Name:   "adjtimex",
		Symbol: symAdjtimex,
		Params: []Param{p("buf", "struct timex *", tTimexPtr)},
		Result: ret("int", tInt),
	},
	{
		Name:   "clock_adjtime",
		Symbol: symClockAdjtime,
		Params: []Param{p("clk_id", "clockid_t", tClockid), p("buf", "struct timex *", tTimexPtr)},
		Result: ret("int", tInt),
	},
	{
		Name:   "ctermid",
		Symbol: "ctermid",
		Params: []Param{p("s", "char *", tCharPtr)},
		Result: ret("char *", tCharPtr),
	},
	{
		Name:   "memfd_create",
		Symbol: "memfd_create",
		Params: []Param{p("name", "const char *", tCharPtr), p("flags", "unsigned", tUint)},
		Result: ret("int", tInt),
	},
	{
		Name:   "mlock2",
		Symbol: "mlock2",
		Params: []Param{p("addr", "const void *", tVoidPtr), p("len", "size_t", tSize), p("flags", "unsigned", tUint)},
		Result: ret("int", tInt),
	},
	{
		Name:   "malloc_usable_size",
		Symbol: "malloc_usable_size",
		Params: []Param{p("ptr", "void *", tVoidPtr)},
		Result: ret("size_t", tSize),
	},
	{
		Name:   "euidaccess",
		Symbol: "euidaccess",
		Params: []Param{p("pathname", "const char *", tCharPtr), p("mode", "int", tInt)},
		Result: ret("int", tInt),
	},
	{
		Name:   "eaccess",
		Symbol: "eaccess",
		Params: []Param{p("pathname", "const char *", tCharPtr), p("mode", "int", tInt)},
		Result: ret("int", tInt),
	},
	{
		Name:   "asctime_r",
		Symbol: "asctime_r",
		Params: []Param{p("tm", "const struct tm *", tTmPtr), p("buf", "char *", tCharPtr)},
		Result: ret("char *", tCharPtr),
	},
	{
		Name:   "dirname",
		Symbol: "dirname",
		Params: []Param{p("path", "char *", tCharPtr)},
		Result: ret("char *", tCharPtr),
	},
	{
		Name:   "basename",
		Symbol: "basename",
		Params: []Param{p("path", "char *", tCharPtr)},
		Result: ret("char *", tCharPtr),
	},
	{
		Name:   "getrandom",
		Symbol: "getrandom",
		Params: []Param{p("buf", "void *", tVoidPtr), p("buflen", "size_t", tSize), p("flags", "unsigned", tUint)},
		Result: ret("ssize_t", tSsize),
		Since:  "1.1.20",
	},
	{
		Name:   "posix_spawn_file_actions_addchdir_np",
		Symbol: "posix_spawn_file_actions_addchdir_np",
		Params: []Param{
			p("actions", "posix_spawn_file_actions_t *", tSpawnPtr),
			p("path", "const char *", tCharPtr),
		},
		Result: ret("int", tInt),
		Since:  "1.1.24",
	},
	{
		Name:   "posix_spawn_file_actions_addfchdir_np",
		Symbol: "posix_spawn_file_actions_addfchdir_np",
		Params: []Param{
			p("actions", "posix_spawn_file_actions_t *", tSpawnPtr),
			p("fd", "int", tInt),
		},
		Result: ret("int", tInt),
		Since:  "1.1.24",
	},
	{
		Name:       "getutxent",
		Symbol:     "getutxent",
		Result:     ret("struct utmpx *", tUtmpxPtr),
		Deprecated: utmpxDeprecation,
	},
	{
		Name:       "getutxid",
		Symbol:     "getutxid",
		Params:     []Param{p("ut", "const struct utmpx *", tUtmpxPtr)},
		Result:     ret("struct utmpx *", tUtmpxPtr),
		Deprecated: utmpxDeprecation,
	},
	{
		Name:       "getutxline",
		Symbol:     "getutxline",
		Params:     []Param{p("ut", "const struct utmpx *", tUtmpxPtr)},
		Result:     ret("struct utmpx *", tUtmpxPtr),
		Deprecated: utmpxDeprecation,
	},
	{
		Name:       "pututxline",
		Symbol:     "pututxline",
		Params:     []Param{p("ut", "const struct utmpx *", tUtmpxPtr)},
		Result:     ret("struct utmpx *", tUtmpxPtr),
		Deprecated: utmpxDeprecation,
	},
	{
		Name:       "setutxent",
		Symbol:     "setutxent",
		Result:     void,
		Deprecated: utmpxDeprecation,
	},
	{
		Name:       "endutxent",
		Symbol:     "endutxent",
		Result:     void,
		Deprecated: utmpxDeprecation,
	},
	{
		Name:       "utmpxname",
		Symbol:     "utmpxname",
		Params:     []Param{p("file", "const char *", tCharPtr)},
		Result:     ret("int", tInt),
		Deprecated: utmpxDeprecation,
	},
}

// Funcs returns the signatures of every routine declared for this build.
func Funcs() []Func {
	fs := make([]Func, 0, len(funcs)+len(familyFuncs))
	fs = append(fs, funcs...)
	return append(fs, familyFuncs...)
}

// LookupFunc returns the signature of the routine with the given C name.
func LookupFunc(name string) (Func, bool) {
	for _, f := range Funcs() {
		if f.Name == name {
			return f, true
		}
	}
	return Func{}, false
}
