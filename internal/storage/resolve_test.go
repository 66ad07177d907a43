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

package storage_test

import (
	"errors"
	"testing"

	"fillmore-labs.com/exclusivity/internal/ir"
	. "fillmore-labs.com/exclusivity/internal/storage"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	b := ir.NewBuilder("f", 0)
	xDecl := &ir.Decl{Kind: "var", Name: "x"}
	x := b.Alloc(xDecl, false, 0)
	y := b.Alloc(&ir.Decl{Kind: "var", Name: "y"}, false, 0)
	p := b.Param(&ir.Decl{Kind: "parameter", Name: "p"}, 0)
	g := &ir.Global{Name: "g", Decl: &ir.Decl{Kind: "var", Name: "g"}}
	ga1 := b.GlobalAddr(g, 0)
	ga2 := b.GlobalAddr(g, 0)
	f := &ir.Field{Index: 1, Decl: &ir.Decl{Kind: "field", Name: "n"}}
	obj := b.Opaque("object", 0)
	rf1 := b.RefFieldAddr(obj, f, 0)
	rf2 := b.RefFieldAddr(b.BeginBorrow(obj, 0), f, 0)
	rf3 := b.RefFieldAddr(obj, &ir.Field{Index: 2}, 0)
	elem := b.Project(ir.StructElement, b.Project(ir.TupleElement, x, 0), 0)
	idx := b.IndexAddr(b.Project(ir.ProjectBox, p, 0), b.Opaque("i", 0), 0)
	raw := b.PointerToAddress(b.Opaque("ptr", 0), 0)

	tests := []struct {
		name string
		a, b ir.Value
		same bool
		decl *ir.Decl
	}{
		{"SameAlloc", x, x, true, xDecl},
		{"DistinctAllocs", x, y, false, xDecl},
		{"Projection", x, elem, true, xDecl},
		{"IndexIntoParam", idx, p, true, p.Decl},
		{"Global", ga1, ga2, true, g.Decl},
		{"GlobalVsAlloc", ga1, x, false, g.Decl},
		{"FieldThroughBorrow", rf1, rf2, true, f.Decl},
		{"DifferentFields", rf1, rf3, false, f.Decl},
		{"Raw", raw, raw, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sa, err := Resolve(tt.a)
			if err != nil {
				t.Fatalf("Can't resolve %s: %v", tt.a, err)
			}

			sb, err := Resolve(tt.b)
			if err != nil {
				t.Fatalf("Can't resolve %s: %v", tt.b, err)
			}

			if got := sa == sb; got != tt.same {
				t.Errorf("Got %s == %s: %t, expected %t", sa, sb, got, tt.same)
			}

			if got := sa.Decl(); got != tt.decl {
				t.Errorf("Got decl %v, expected %v", got, tt.decl)
			}
		})
	}
}

func TestResolveMalformed(t *testing.T) {
	t.Parallel()

	b := ir.NewBuilder("f", 0)
	addr := b.Project(ir.Copy, b.Opaque("not an address", 0), 0)

	if _, err := Resolve(addr); !errors.Is(err, ir.ErrContract) {
		t.Errorf("Got error %v, expected contract violation", err)
	}
}
