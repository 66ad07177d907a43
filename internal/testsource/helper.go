// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

// Package testsource provides utilities for building Go source code in tests.
//
// It handles the boilerplate of parsing, type-checking and constructing SSA
// form for source fragments.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"
)

const testpkg = "test"

// Package is a type-checked package in SSA form.
type Package struct {
	Fset      *token.FileSet
	File      *ast.File
	Types     *types.Package
	TypesInfo *types.Info
	Inspector *inspector.Inspector
	SSA       *ssa.Package
}

// Build parses, type checks and builds SSA for a Go source fragment.
//
// The provided declarations in src are automatically prefixed with
// `package test`.
func Build(tb testing.TB, src string) *Package {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, "package "+testpkg+"\n\n"+src, parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	files := []*ast.File{f}
	conf := &types.Config{Importer: importer.Default()}

	ssapkg, info, err := ssautil.BuildPackage(conf, fset, types.NewPackage(testpkg, testpkg), files, ssa.SanityCheckFunctions)
	if err != nil {
		tb.Fatalf("Failed to build source: %v", err)
	}

	return &Package{
		Fset:      fset,
		File:      f,
		Types:     ssapkg.Pkg,
		TypesInfo: info,
		Inspector: inspector.New(files),
		SSA:       ssapkg,
	}
}

// Func returns the SSA function or method with the given name.
func (p *Package) Func(tb testing.TB, name string) *ssa.Function {
	tb.Helper()

	if fn := p.SSA.Func(name); fn != nil {
		return fn
	}

	for _, m := range p.SSA.Members {
		t, ok := m.(*ssa.Type)
		if !ok {
			continue
		}

		mset := p.SSA.Prog.MethodSets.MethodSet(types.NewPointer(t.Type()))
		for i := range mset.Len() {
			if fn := p.SSA.Prog.MethodValue(mset.At(i)); fn != nil && fn.Name() == name {
				return fn
			}
		}
	}

	tb.Fatalf("Function %s not found", name)

	return nil
}
