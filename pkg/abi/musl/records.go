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
)

// Record describes a C record declared by this package.
type Record struct {
	// Name is the C name, including any struct or union keyword.
	Name string

	// Type is the Go declaration.
	Type reflect.Type

	// Union is true if some members overlap and are read through accessor
	// methods.
	Union bool

	// Align is the C alignment of the record. It exceeds Type.Align() on
	// 32-bit targets where C aligns 64-bit members more strictly than Go.
	Align uintptr
}

func rec[T any](name string) Record {
	t := reflect.TypeFor[T]()
	r := Record{Name: name, Type: t, Align: uintptr(t.Align())}
	if has64BitScalar(t) {
		return r.aligned(longlongAlign)
	}
	return r
}

// aligned raises the C alignment of r to at least a.
func (r Record) aligned(a uintptr) Record {
	r.Align = max(r.Align, a)
	return r
}

func has64BitScalar(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if has64BitScalar(t.Field(i).Type) {
				return true
			}
		}
	case reflect.Array:
		return t.Len() > 0 && has64BitScalar(t.Elem())
	case reflect.Int64, reflect.Uint64:
		return true
	}
	return false
}

func union[T any](name string) Record {
	r := rec[T](name)
	r.Union = true
	return r
}

var records = []Record{
	// mask is __aligned_u64, 8-aligned even where long long is not.
	rec[FanotifyEventMetadata]("struct fanotify_event_metadata").aligned(8),
	rec[Sigaction]("struct sigaction"),
	union[Siginfo]("siginfo_t"),
	rec[Statvfs]("struct statvfs"),
	rec[Termios]("struct termios"),
	rec[Flock]("struct flock"),
	rec[RegexT]("regex_t"),
	rec[Rtentry]("struct rtentry"),
	rec[ExitStatus]("struct __exit_status"),
	rec[Elf64Chdr]("Elf64_Chdr"),
	rec[Elf32Chdr]("Elf32_Chdr"),
	rec[Timex]("struct timex"),
	rec[Ntptimeval]("struct ntptimeval"),
	union[TCPInfo]("struct tcp_info"),
	rec[Statfs]("struct statfs"),
	rec[Aiocb]("struct aiocb"),
	rec[Sysinfo]("struct sysinfo"),
	rec[Utmpx]("struct utmpx"),

	union[Sigval]("union sigval"),
	union[Sigevent]("struct sigevent"),
	rec[Sigset]("sigset_t"),
	rec[Timespec]("struct timespec"),
	rec[Timeval]("struct timeval"),
	rec[Tm]("struct tm"),
	rec[Iovec]("struct iovec"),
	rec[Rlimit]("struct rlimit"),
	rec[FsidT]("fsid_t"),
	rec[Sockaddr]("struct sockaddr"),
	rec[PosixSpawnFileActions]("posix_spawn_file_actions_t"),
}

// Records returns every record compiled into this build. The family
// extension's records come last.
func Records() []Record {
	rs := make([]Record, 0, len(records)+len(familyRecords))
	rs = append(rs, records...)
	return append(rs, familyRecords...)
}

// LookupRecord returns the record with the given C name or Go type name.
func LookupRecord(name string) (Record, bool) {
	for _, r := range Records() {
		if r.Name == name || r.Type.Name() == name {
			return r, true
		}
	}
	return Record{}, false
}
