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

package lower

import (
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ssa"

	"fillmore-labs.com/exclusivity/internal/ir"
	"fillmore-labs.com/exclusivity/internal/storage"
)

// address lowers an SSA value of pointer type used as an accessed address.
func (f *function) address(v ssa.Value) ir.Value {
	v = unwrapPhi(v)

	if a, ok := f.addrs[v]; ok {
		return a
	}

	var a ir.Value

	switch v := v.(type) {
	case *ssa.Alloc:
		a = f.b.Alloc(f.localDecl(v.Pos()), v.Heap, v.Pos())

	case *ssa.Global:
		a = f.b.GlobalAddr(f.global(v), v.Pos())

	case *ssa.FreeVar:
		a = f.b.Param(f.localDecl(v.Pos()), v.Pos())

	case *ssa.FieldAddr:
		field := f.field(v)

		switch x := unwrapPhi(v.X).(type) {
		case *ssa.Alloc, *ssa.Global, *ssa.FieldAddr, *ssa.IndexAddr:
			// inline storage
			a = f.b.Project(ir.StructElement, f.address(x), v.Pos())

		default:
			a = f.b.RefFieldAddr(f.object(x), field, v.Pos())
		}

	case *ssa.IndexAddr:
		index := f.opaque(v.Index)

		if _, ok := v.X.Type().Underlying().(*types.Slice); ok {
			a = f.b.IndexAddr(f.sliceBase(v.X), index, v.Pos())
		} else {
			a = f.b.IndexAddr(f.address(v.X), index, v.Pos())
		}

	default:
		a = f.b.PointerToAddress(f.opaque(v), v.Pos())
	}

	f.addrs[v] = a

	return a
}

// sliceBase lowers a slice value to the address of its backing array.
//
// The backing array of a slice loaded from a variable or field is a root of
// its own, shared by all loads from the same storage.
func (f *function) sliceBase(v ssa.Value) ir.Value {
	v = unwrapPhi(v)

	switch v := v.(type) {
	case *ssa.UnOp:
		if v.Op == token.MUL {
			return f.elementsOf(f.address(v.X), v.Pos())
		}

	case *ssa.Parameter, *ssa.FreeVar:
		return f.object(v)

	case *ssa.Slice:
		if _, ok := v.X.Type().Underlying().(*types.Pointer); ok {
			return f.b.Project(ir.AddrCast, f.address(v.X), v.Pos())
		}

		if _, ok := v.X.Type().Underlying().(*types.Slice); ok {
			return f.b.Project(ir.Copy, f.sliceBase(v.X), v.Pos())
		}

	case *ssa.ChangeType:
		return f.b.Project(ir.Copy, f.sliceBase(v.X), v.Pos())
	}

	if a, ok := f.bases[v]; ok {
		return a
	}

	a := f.b.Alloc(nil, true, v.Pos())
	f.bases[v] = a

	return a
}

// elementsOf returns the backing array of the slice stored at addr.
// It carries the declaration of the slice storage for diagnostics.
func (f *function) elementsOf(addr ir.Value, pos token.Pos) ir.Value {
	loc, err := storage.Resolve(addr)
	if err != nil {
		return f.b.Alloc(nil, true, pos)
	}

	if a, ok := f.elements[loc]; ok {
		return a
	}

	a := f.b.Alloc(loc.Decl(), true, pos)
	f.elements[loc] = a

	return a
}

// object lowers an SSA value holding a reference.
func (f *function) object(v ssa.Value) ir.Value {
	v = unwrapPhi(v)

	if o, ok := f.objects[v]; ok {
		return o
	}

	var o ir.Value

	switch v := v.(type) {
	case *ssa.FreeVar:
		o = f.address(v)

	case *ssa.ChangeType:
		o = f.b.BeginBorrow(f.object(v.X), v.Pos())

	default:
		o = f.opaque(v)
	}

	f.objects[v] = o

	return o
}

// opaque returns a non-address value standing for v.
func (f *function) opaque(v ssa.Value) ir.Value {
	if o, ok := f.opaques[v]; ok {
		return o
	}

	o := f.b.Opaque(v.Name(), v.Pos())
	f.opaques[v] = o

	return o
}

func (l *Lowerer) global(g *ssa.Global) *ir.Global {
	if ig, ok := l.globals[g]; ok {
		return ig
	}

	ig := &ir.Global{Name: g.Name(), Decl: l.decl(g.Object())}
	l.globals[g] = ig

	return ig
}

func (l *Lowerer) field(v *ssa.FieldAddr) *ir.Field {
	ptr, _ := v.X.Type().Underlying().(*types.Pointer)
	if ptr == nil {
		return &ir.Field{Index: v.Field}
	}

	st, _ := ptr.Elem().Underlying().(*types.Struct)
	if st == nil {
		return &ir.Field{Index: v.Field}
	}

	obj := st.Field(v.Field)
	if fd, ok := l.fields[obj]; ok {
		return fd
	}

	fd := &ir.Field{Index: v.Field, Decl: l.decl(obj)}
	l.fields[obj] = fd

	return fd
}

// unwrapPhi strips phi nodes whose edges all agree on the same value.
func unwrapPhi(v ssa.Value) ssa.Value {
	visited := make(map[*ssa.Phi]bool)

	return unwrapPhiVisited(v, visited)
}

func unwrapPhiVisited(v ssa.Value, visited map[*ssa.Phi]bool) ssa.Value {
	for {
		phi, ok := v.(*ssa.Phi)
		if !ok {
			return v
		}

		resolved := uniformPhi(phi, visited)
		if resolved == nil {
			return v
		}

		v = resolved
	}
}

// uniformPhi returns the single value of all edges, or nil.
// The visited set breaks cycles through loops.
func uniformPhi(phi *ssa.Phi, visited map[*ssa.Phi]bool) ssa.Value {
	if visited[phi] {
		return nil
	}

	visited[phi] = true

	var unique ssa.Value

	for _, edge := range phi.Edges {
		edge = unwrapPhiVisited(edge, visited)
		if edge == phi {
			continue
		}

		if unique == nil {
			unique = edge
		} else if unique != edge {
			return nil
		}
	}

	return unique
}
