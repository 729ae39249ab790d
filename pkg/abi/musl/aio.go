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

// Aiocb is struct aiocb in <aio.h>. The members after aio_sigevent are
// private to the library.
type Aiocb struct {
	Fildes    CInt
	LioOpcode CInt
	Reqprio   CInt
	Buf       uintptr
	Nbytes    SizeT
	Sigevent  Sigevent
	_         uintptr // __td
	_         [2]CInt // __lock
	_         CInt    // __err
	_         SsizeT  // __ret
	Offset    OffT
	_         uintptr // __next
	_         uintptr // __prev
	_         [32 - 2*unsafe.Sizeof(uintptr(0))]CChar
}

// Operation codes for Aiocb.LioOpcode and return values of aio_cancel.
const (
	AIO_CANCELED    = 0
	AIO_NOTCANCELED = 1
	AIO_ALLDONE     = 2

	LIO_READ  = 0
	LIO_WRITE = 1
	LIO_NOP   = 2

	LIO_WAIT   = 0
	LIO_NOWAIT = 1
)
