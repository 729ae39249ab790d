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

// FanotifyEventMetadata is struct fanotify_event_metadata in
// <sys/fanotify.h>. C aligns it to 8 bytes on every target; on 32-bit
// targets Go aligns it to 4, so arrays of it must be laid out with
// Record.Align.
type FanotifyEventMetadata struct {
	EventLen    CUint
	Vers        CUchar
	Reserved    CUchar
	MetadataLen CUshort
	Mask        CUlonglong
	Fd          CInt
	Pid         CInt
}

// FANOTIFY_METADATA_VERSION is the value of FanotifyEventMetadata.Vers
// understood by this layout.
const FANOTIFY_METADATA_VERSION = 3

// Flags for fanotify_mark.
const (
	FAN_MARK_ADD    = 0x00000001
	FAN_MARK_REMOVE = 0x00000002
	FAN_MARK_FLUSH  = 0x00000080
)
