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

//go:build linux && (amd64 || arm64)

package dynlink

import (
	"fmt"

	"github.com/ebitengine/purego"
	"muslabi.dev/muslabi/pkg/log"
)

// Library is an open shared object.
type Library struct {
	path   string
	handle uintptr
}

// Open loads the shared object at path, resolving all of its symbols
// immediately.
func Open(path string) (*Library, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	log.Debugf("Opened %q", path)
	return &Library{path: path, handle: handle}, nil
}

// Path returns the path the library was opened with.
func (l *Library) Path() string {
	return l.path
}

// Lookup returns the address of the named symbol.
func (l *Library) Lookup(name string) (uintptr, error) {
	addr, err := purego.Dlsym(l.handle, name)
	if err != nil {
		return 0, fmt.Errorf("looking up %q in %q: %w", name, l.path, err)
	}
	return addr, nil
}

// Close releases the library. Functions bound from it must not be called
// afterwards.
func (l *Library) Close() error {
	if err := purego.Dlclose(l.handle); err != nil {
		return fmt.Errorf("closing %q: %w", l.path, err)
	}
	return nil
}

// register installs a trampoline calling addr into *fptr. purego reports
// unsupported argument types by panicking.
func register(fptr any, addr uintptr) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSignature, r)
		}
	}()
	purego.RegisterFunc(fptr, addr)
	return nil
}
