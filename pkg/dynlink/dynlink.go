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

// Package dynlink binds Go function variables to the routines a musl shared
// object exports, using the signatures declared in package musl.
//
// Binding is only supported where the underlying loader is available; other
// targets return ErrUnsupported from every entry point that touches a
// library.
package dynlink

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"sort"

	"muslabi.dev/muslabi/pkg/abi/musl"
	"muslabi.dev/muslabi/pkg/log"
)

var (
	// ErrUnsupported is returned on targets without a dynamic loader binding.
	ErrUnsupported = errors.New("dynamic linking is not supported on " + runtime.GOOS + "/" + runtime.GOARCH)

	// ErrVariadic is returned when binding a routine that takes variable
	// arguments. Their calling convention cannot be expressed by a Go
	// function value.
	ErrVariadic = errors.New("variadic routines cannot be bound")

	// ErrSignature is returned when the function variable's type differs
	// from the declared signature.
	ErrSignature = errors.New("function type does not match declaration")

	// ErrUnknownFunc is returned for routines that are not declared.
	ErrUnknownFunc = errors.New("routine is not declared")
)

// defaultPaths maps GOARCH to the path of the musl dynamic loader, which is
// also the C library itself.
var defaultPaths = map[string]string{
	"386":      "/lib/ld-musl-i386.so.1",
	"amd64":    "/lib/ld-musl-x86_64.so.1",
	"arm":      "/lib/ld-musl-armhf.so.1",
	"arm64":    "/lib/ld-musl-aarch64.so.1",
	"loong64":  "/lib/ld-musl-loongarch64.so.1",
	"mips":     "/lib/ld-musl-mips-sf.so.1",
	"mipsle":   "/lib/ld-musl-mipsel-sf.so.1",
	"mips64":   "/lib/ld-musl-mips64.so.1",
	"mips64le": "/lib/ld-musl-mips64el.so.1",
	"ppc64":    "/lib/ld-musl-powerpc64.so.1",
	"ppc64le":  "/lib/ld-musl-powerpc64le.so.1",
	"riscv64":  "/lib/ld-musl-riscv64.so.1",
	"s390x":    "/lib/ld-musl-s390x.so.1",
}

// DefaultPaths returns the locations OpenDefault tries, in order.
func DefaultPaths() []string {
	var paths []string
	if p, ok := defaultPaths[runtime.GOARCH]; ok {
		paths = append(paths, p)
	}
	return append(paths, "/usr/lib/libc.so", "libc.so")
}

// OpenDefault opens the first of DefaultPaths that loads.
func OpenDefault() (*Library, error) {
	var errs []error
	for _, path := range DefaultPaths() {
		lib, err := Open(path)
		if err == nil {
			return lib, nil
		}
		if errors.Is(err, ErrUnsupported) {
			return nil, err
		}
		errs = append(errs, err)
	}
	return nil, fmt.Errorf("no musl library found: %w", errors.Join(errs...))
}

// Symbols resolves symbol names to addresses. *Library implements it.
type Symbols interface {
	Lookup(name string) (uintptr, error)
}

// Report lists which declared routines a library provides.
type Report struct {
	// Resolved maps routine names to their symbol addresses.
	Resolved map[string]uintptr `json:"resolved" yaml:"resolved" toml:"resolved"`

	// Missing names declared routines whose symbol was not found, sorted.
	Missing []string `json:"missing" yaml:"missing" toml:"missing"`
}

// Resolve looks up the symbol of every routine in funcs.
func Resolve(syms Symbols, funcs []musl.Func) Report {
	r := Report{Resolved: make(map[string]uintptr, len(funcs))}
	for _, f := range funcs {
		addr, err := syms.Lookup(f.Symbol)
		if err != nil {
			log.Debugf("Symbol %q for %s not resolved: %v", f.Symbol, f.Name, err)
			r.Missing = append(r.Missing, f.Name)
			continue
		}
		r.Resolved[f.Name] = addr
	}
	sort.Strings(r.Missing)
	return r
}

// Bind sets the function variable pointed to by fptr to call the routine
// named name. The variable's type must be the routine's musl.Func.GoType.
func Bind(syms Symbols, fptr any, name string) error {
	f, ok := musl.LookupFunc(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFunc, name)
	}
	if f.Variadic {
		return fmt.Errorf("%w: %s", ErrVariadic, name)
	}
	t := reflect.TypeOf(fptr)
	if t == nil || t.Kind() != reflect.Pointer || t.Elem() != f.GoType() {
		return fmt.Errorf("%w: %s wants *%v, got %v", ErrSignature, name, f.GoType(), t)
	}
	addr, err := syms.Lookup(f.Symbol)
	if err != nil {
		return fmt.Errorf("binding %s: %w", name, err)
	}
	return register(fptr, addr)
}
