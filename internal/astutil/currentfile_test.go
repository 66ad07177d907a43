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

package astutil_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	. "fillmore-labs.com/exclusivity/internal/astutil"
)

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	const src = `// Code generated by hand. DO NOT EDIT.

package test

//nolint:exclusivity
func f() {}

var x = 1 //nolint:gosec,exclusivity

var y = 2 // nolint:other
`

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "test.go", src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}

	c := NewCurrentFile(fset, f)
	if !c.Valid() || !c.Generated() || c.NoLint() {
		t.Fatalf("Got valid=%t generated=%t nolint=%t", c.Valid(), c.Generated(), c.NoLint())
	}

	fn := f.Decls[0].(*ast.FuncDecl)
	if !DocHasNoLint(fn.Doc) {
		t.Errorf("Expected nolint on %s", fn.Name.Name)
	}

	tests := []struct {
		name string
		decl int
		want bool
	}{
		{"x", 1, true},
		{"y", 2, false},
	}

	for _, tt := range tests {
		pos := f.Decls[tt.decl].Pos()
		if got := c.NoLintComment(pos); got != tt.want {
			t.Errorf("Got NoLintComment(%s) = %t, expected %t", tt.name, got, tt.want)
		}
	}
}
