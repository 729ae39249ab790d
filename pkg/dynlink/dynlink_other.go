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

//go:build !(linux && (amd64 || arm64))

package dynlink

// Library is an open shared object.
type Library struct {
	path string
}

// Open always fails with ErrUnsupported.
func Open(path string) (*Library, error) {
	return nil, ErrUnsupported
}

// Path returns the path the library was opened with.
func (l *Library) Path() string {
	return l.path
}

// Lookup always fails with ErrUnsupported.
func (l *Library) Lookup(name string) (uintptr, error) {
	return 0, ErrUnsupported
}

// Close always fails with ErrUnsupported.
func (l *Library) Close() error {
	return ErrUnsupported
}

func register(fptr any, addr uintptr) error {
	return ErrUnsupported
}
