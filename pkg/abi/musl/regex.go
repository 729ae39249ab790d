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

// RegexT is regex_t in <regex.h>. Only the subexpression count is public.
type RegexT struct {
	Nsub SizeT
	_    uintptr    // __opaque
	_    [4]uintptr // __padding
	_    SizeT      // __nsub2
	_    CChar      // __padding2
}

// RegoffT is regoff_t, declared per family.

// Return values of regcomp and regexec.
const (
	REG_OK       = 0
	REG_NOMATCH  = 1
	REG_BADPAT   = 2
	REG_ECOLLATE = 3
	REG_ECTYPE   = 4
	REG_EESCAPE  = 5
	REG_ESUBREG  = 6
	REG_EBRACK   = 7
	REG_EPAREN   = 8
	REG_EBRACE   = 9
	REG_BADBR    = 10
	REG_ERANGE   = 11
	REG_ESPACE   = 12
	REG_BADRPT   = 13
	REG_ENOSYS   = -1
)
