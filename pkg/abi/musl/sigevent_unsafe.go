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
	"unsafe"
)

// Int returns the sival_int member. It shares the first four bytes of the
// union with sival_ptr, so on 64-bit big-endian architectures it overlaps the
// pointer's high half.
func (v *Sigval) Int() CInt {
	return *(*CInt)(unsafe.Pointer(v))
}

// NotifyThreadID returns sigev_notify_thread_id.
//
// Preconditions: e.Notify == SIGEV_THREAD_ID.
func (e *Sigevent) NotifyThreadID() PidT {
	return *(*PidT)(unsafe.Pointer(&e.Fields[0]))
}

// sigeventThread is the sigev_notify_function, sigev_notify_attributes pair.
type sigeventThread struct {
	function   uintptr
	attributes uintptr
}

// NotifyFunction returns sigev_notify_function.
//
// Preconditions: e.Notify == SIGEV_THREAD.
func (e *Sigevent) NotifyFunction() uintptr {
	return (*sigeventThread)(unsafe.Pointer(&e.Fields[0])).function
}

// NotifyAttributes returns sigev_notify_attributes, a pthread_attr_t pointer.
//
// Preconditions: e.Notify == SIGEV_THREAD.
func (e *Sigevent) NotifyAttributes() uintptr {
	return (*sigeventThread)(unsafe.Pointer(&e.Fields[0])).attributes
}
