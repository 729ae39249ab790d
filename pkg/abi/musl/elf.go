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

// Elf64Chdr is Elf64_Chdr, the header of a compressed ELF section.
type Elf64Chdr struct {
	Type      Elf64Word
	Reserved  Elf64Word
	Size      Elf64Xword
	Addralign Elf64Xword
}

// Elf32Chdr is Elf32_Chdr.
type Elf32Chdr struct {
	Type      Elf32Word
	Size      Elf32Word
	Addralign Elf32Word
}

// ELFCOMPRESS_ZLIB is the only compression type for Elf64Chdr.Type and
// Elf32Chdr.Type.
const ELFCOMPRESS_ZLIB = 1

// Auxiliary vector entry types, the argument of getauxval.
const (
	AT_NULL          = 0
	AT_IGNORE        = 1
	AT_EXECFD        = 2
	AT_PHDR          = 3
	AT_PHENT         = 4
	AT_PHNUM         = 5
	AT_PAGESZ        = 6
	AT_BASE          = 7
	AT_FLAGS         = 8
	AT_ENTRY         = 9
	AT_NOTELF        = 10
	AT_UID           = 11
	AT_EUID          = 12
	AT_GID           = 13
	AT_EGID          = 14
	AT_PLATFORM      = 15
	AT_HWCAP         = 16
	AT_CLKTCK        = 17
	AT_SECURE        = 23
	AT_BASE_PLATFORM = 24
	AT_RANDOM        = 25
	AT_HWCAP2        = 26
	AT_EXECFN        = 31
	AT_SYSINFO_EHDR  = 33
	AT_MINSIGSTKSZ   = 51
)
